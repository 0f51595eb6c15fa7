package cosmo

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mwbrandt/supernova/logging"
)

type batchParams struct {
	out     []float64
	workers int
}

type internalBatchOption func(*batchParams)

// BatchOption is an option to a batched evaluation such as
// DistanceModulusSlice.
type BatchOption internalBatchOption

// Out supplies the batched evaluation with a slice to write its results to
// instead of allocating a new one. Its length must match the input's.
func Out(out []float64) BatchOption {
	return func(p *batchParams) { p.out = out }
}

// Workers spreads the batched evaluation across n goroutines. Every output
// element depends only on the matching input element, so the result is
// identical to the sequential one. n < 2 keeps the evaluation sequential.
func Workers(n int) BatchOption {
	return func(p *batchParams) { p.workers = n }
}

func (p *batchParams) loadOptions(zs []float64, opts []BatchOption) []float64 {
	for _, opt := range opts {
		opt(p)
	}

	if p.out == nil {
		p.out = make([]float64, len(zs))
	} else if len(p.out) != len(zs) {
		panic(fmt.Sprintf("The Out slice has length %d, but %d redshifts "+
			"were given.", len(p.out), len(zs)))
	}
	if p.workers < 2 {
		p.workers = 1
	}
	return p.out
}

// DistanceModulusSlice calculates DistanceModulus element-wise over zs with
// h0 and omegaM held fixed. The output matches the input in length and
// order. The first quadrature failure aborts the evaluation and is returned
// with the offending redshift attached.
func DistanceModulusSlice(
	h0, omegaM float64, zs []float64, opts ...BatchOption,
) ([]float64, error) {
	p := new(batchParams)
	out := p.loadOptions(zs, opts)

	start := time.Now()
	err := evalSlice(func(z float64) (float64, error) {
		return DistanceModulus(h0, omegaM, z)
	}, zs, out, p.workers)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("evaluated distance modulus batch",
		zap.Int("n", len(zs)),
		zap.Int("workers", p.workers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}

// evalSlice applies eval to every element of zs and writes the results to
// the matching elements of out, fanning out over the requested number of
// goroutines when there is more than one.
func evalSlice(
	eval func(z float64) (float64, error), zs, out []float64, workers int,
) error {
	if workers < 2 {
		for i := range zs {
			v, err := eval(zs[i])
			if err != nil {
				return fmt.Errorf("z = %g: %w", zs[i], err)
			}
			out[i] = v
		}
		return nil
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i := range zs {
		g.Go(func() error {
			v, err := eval(zs[i])
			if err != nil {
				return fmt.Errorf("z = %g: %w", zs[i], err)
			}
			out[i] = v
			return nil
		})
	}
	return g.Wait()
}
