package cosmo

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/mwbrandt/supernova/logging"
	"github.com/mwbrandt/supernova/math/calc"
)

const (
	defaultTablePoints = 256
	minTablePoints     = 8

	// redshiftSteps bisection steps resolve a float64 redshift to machine
	// precision with room to spare.
	redshiftSteps = 64
)

type tableParams struct {
	points int
}

type internalTableOption func(*tableParams)

// TableOption is an option to a call to NewDistanceTable.
type TableOption internalTableOption

// TablePoints sets the number of redshift nodes the comoving distance is
// integrated at before fitting the spline. The default is 256, which keeps
// interpolation errors below a part in 1e9 past the first couple of grid
// intervals. Inside the first interval the natural boundary condition costs
// about a part in 1e4, so callers who care about z below zMax/points should
// either raise the point count or call the direct functions there.
func TablePoints(n int) TableOption {
	return func(p *tableParams) { p.points = n }
}

// DistanceTable precomputes the comoving distance of a single cosmology on
// a redshift grid and serves every derived distance from a natural cubic
// spline through the nodes. Building one costs a few hundred quadratures;
// afterwards each query is a constant-time spline evaluation, which is the
// difference between minutes and milliseconds when a likelihood loop asks
// for millions of moduli. Reads don't mutate the table, so a built table
// can be shared between goroutines.
type DistanceTable struct {
	params Params
	zMax   float64
	muMax  float64
	chi    interp.NaturalCubic
}

// NewDistanceTable builds a table for the cosmology p covering redshifts
// in [0, zMax].
func NewDistanceTable(
	p Params, zMax float64, opts ...TableOption,
) (*DistanceTable, error) {
	tp := &tableParams{points: defaultTablePoints}
	for _, opt := range opts {
		opt(tp)
	}

	if zMax <= 0 {
		return nil, fmt.Errorf("A distance table needs a positive "+
			"maximum redshift, but zMax = %g.", zMax)
	}
	if tp.points < minTablePoints {
		return nil, fmt.Errorf("A distance table needs at least %d points, "+
			"but TablePoints was set to %d.", minTablePoints, tp.points)
	}

	start := time.Now()

	// Each node integrates only its own segment, so the full [0, zMax]
	// range is walked exactly once no matter how many nodes there are.
	zs := floats.Span(make([]float64, tp.points), 0, zMax)
	chis := make([]float64, tp.points)
	for i := 1; i < len(zs); i++ {
		seg, _, err := calc.Quad(func(zp float64) float64 {
			return DistanceIntegrand(p.H0, p.OmegaM, zp)
		}, zs[i-1], zs[i])
		if err != nil {
			return nil, fmt.Errorf("Could not integrate to the table "+
				"node at z = %g: %w", zs[i], err)
		}
		chis[i] = chis[i-1] + seg
	}

	t := &DistanceTable{params: p, zMax: zMax}
	if err := t.chi.Fit(zs, chis); err != nil {
		return nil, fmt.Errorf("Could not fit the distance spline: %w", err)
	}
	t.muMax = modulusFromChi(zMax, chis[len(chis)-1])

	logging.Logger.Debug("built distance table",
		zap.String("params", p.String()),
		zap.Float64("zMax", zMax),
		zap.Int("points", tp.points),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("mem", logging.MemString()),
	)
	return t, nil
}

// modulusFromChi converts a comoving distance in Mpc at redshift z into a
// distance modulus.
func modulusFromChi(z, chi float64) float64 {
	return 5*math.Log10((1+z)*chi) + 25
}

// Params returns the cosmology the table was built for.
func (t *DistanceTable) Params() Params { return t.params }

// ZMax returns the largest redshift the table covers.
func (t *DistanceTable) ZMax() float64 { return t.zMax }

func (t *DistanceTable) checkRange(z float64) error {
	if z < 0 || z > t.zMax || math.IsNaN(z) {
		return fmt.Errorf("The redshift z = %g is outside the table's "+
			"range, [0, %g].", z, t.zMax)
	}
	return nil
}

// ComovingDistance interpolates D_C at z in Mpc.
func (t *DistanceTable) ComovingDistance(z float64) (float64, error) {
	if err := t.checkRange(z); err != nil {
		return 0, err
	}
	return t.chi.Predict(z), nil
}

// LuminosityDistance interpolates D_L = (1+z) D_C at z in Mpc.
func (t *DistanceTable) LuminosityDistance(z float64) (float64, error) {
	if err := t.checkRange(z); err != nil {
		return 0, err
	}
	return (1 + z) * t.chi.Predict(z), nil
}

// AngularDiameterDistance interpolates D_A = D_C / (1+z) at z in Mpc.
func (t *DistanceTable) AngularDiameterDistance(z float64) (float64, error) {
	if err := t.checkRange(z); err != nil {
		return 0, err
	}
	return t.chi.Predict(z) / (1 + z), nil
}

// DistanceModulus interpolates mu = 5 log10(D_L) + 25 at z. As with the
// direct calculation, z = 0 gives -Inf.
func (t *DistanceTable) DistanceModulus(z float64) (float64, error) {
	if err := t.checkRange(z); err != nil {
		return 0, err
	}
	return modulusFromChi(z, t.chi.Predict(z)), nil
}

// DistanceModulusSlice interpolates the distance modulus element-wise over
// zs. Every redshift is range-checked before any work is done, so the
// output is either complete or nil.
func (t *DistanceTable) DistanceModulusSlice(
	zs []float64, opts ...BatchOption,
) ([]float64, error) {
	p := new(batchParams)
	out := p.loadOptions(zs, opts)

	for _, z := range zs {
		if err := t.checkRange(z); err != nil {
			return nil, err
		}
	}

	err := evalSlice(func(z float64) (float64, error) {
		return modulusFromChi(z, t.chi.Predict(z)), nil
	}, zs, out, p.workers)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Redshift inverts the distance modulus: it returns the z in [0, zMax]
// with DistanceModulus(z) = mu. The modulus increases monotonically with
// redshift, so plain bisection is exact and cheap. Moduli beyond the
// table's ceiling mu(zMax) are errors; anything at or below it has a
// preimage, since mu falls to -Inf at z = 0.
func (t *DistanceTable) Redshift(mu float64) (float64, error) {
	if math.IsNaN(mu) {
		return 0, fmt.Errorf("Cannot invert a NaN distance modulus.")
	}
	if mu > t.muMax {
		return 0, fmt.Errorf("The distance modulus %g is beyond the "+
			"table's ceiling, mu(zMax) = %g.", mu, t.muMax)
	}

	lo, hi := 0.0, t.zMax
	for i := 0; i < redshiftSteps; i++ {
		mid := lo + (hi-lo)/2
		if modulusFromChi(mid, t.chi.Predict(mid)) < mu {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2, nil
}
