/*package calc provides the basic calculus routines that the cosmology
package is built on: globally adaptive quadrature and finite-difference
derivatives over sampled data.
*/
package calc

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Sentinel errors returned by Quad. Both are wrapped with interval detail,
// so test for them with errors.Is.
var (
	// ErrNotConverged indicates that the subdivision budget ran out before
	// the error estimate dropped below the requested tolerance.
	ErrNotConverged = errors.New("calc: integral did not converge")

	// ErrNonFinite indicates that the integrand produced a NaN or Inf
	// somewhere in the integration range.
	ErrNonFinite = errors.New("calc: integrand returned a non-finite value")
)

// Sizes of the nested Gauss-Legendre pair evaluated on every panel. The
// difference between the two estimates is the panel's error estimate.
const (
	gaussCoarse = 7
	gaussFine   = 15
)

type quadParams struct {
	absTol       float64
	relTol       float64
	maxIntervals int
}

type internalQuadOption func(*quadParams)

// QuadOption is an option to a call to Quad.
type QuadOption internalQuadOption

// AbsTol sets the absolute tolerance of a call to Quad. The default is
// 1.49e-8, matching the classic QUADPACK default.
func AbsTol(tol float64) QuadOption {
	return func(p *quadParams) { p.absTol = tol }
}

// RelTol sets the relative tolerance of a call to Quad. The default is
// 1.49e-8, matching the classic QUADPACK default.
func RelTol(tol float64) QuadOption {
	return func(p *quadParams) { p.relTol = tol }
}

// MaxIntervals sets the maximum number of subintervals the integration range
// may be split into before Quad gives up. The default is 50.
func MaxIntervals(n int) QuadOption {
	return func(p *quadParams) { p.maxIntervals = n }
}

func (p *quadParams) loadOptions(opts []QuadOption) {
	for _, opt := range opts {
		opt(p)
	}
}

// A panel is one subinterval of the integration range together with its
// current estimates.
type panel struct {
	lo, hi float64
	value  float64
	errEst float64
}

// evalPanel integrates f over [lo, hi] with the nested Gauss-Legendre pair.
func evalPanel(f func(float64) float64, lo, hi float64) panel {
	coarse := quad.Fixed(f, lo, hi, gaussCoarse, quad.Legendre{}, 0)
	fine := quad.Fixed(f, lo, hi, gaussFine, quad.Legendre{}, 0)
	return panel{lo: lo, hi: hi, value: fine, errEst: math.Abs(fine - coarse)}
}

// Quad computes the definite integral of f from a to b. The scheme is
// globally adaptive: the subinterval with the largest error estimate is
// bisected until the summed estimate drops below max(AbsTol, RelTol*|I|) or
// the interval budget runs out. Like the rest of the library, it assumes f
// is cheap; nothing is evaluated concurrently.
//
// Quad returns the integral, an estimate of its absolute error, and a
// non-nil error if the tolerance could not be met. The returned value and
// estimate are still meaningful when err != nil.
func Quad(
	f func(float64) float64, a, b float64, opts ...QuadOption,
) (value, errEst float64, err error) {
	p := &quadParams{absTol: 1.49e-8, relTol: 1.49e-8, maxIntervals: 50}
	p.loadOptions(opts)
	if p.maxIntervals < 1 {
		panic("calc: Quad given a non-positive MaxIntervals.")
	}

	if a == b {
		return 0, 0, nil
	}
	sign := 1.0
	if b < a {
		a, b, sign = b, a, -1.0
	}

	panels := make([]panel, 1, p.maxIntervals)
	panels[0] = evalPanel(f, a, b)

	for {
		value, errEst = 0, 0
		worst := 0
		for i := range panels {
			value += panels[i].value
			errEst += panels[i].errEst
			if panels[i].errEst > panels[worst].errEst {
				worst = i
			}
		}

		if math.IsNaN(value) || math.IsInf(value, 0) || math.IsNaN(errEst) {
			// NaNs compare false, so the worst-panel scan above can't be
			// trusted to have landed on the offender.
			bad := panels[worst]
			for i := range panels {
				if math.IsNaN(panels[i].value) || math.IsInf(panels[i].value, 0) {
					bad = panels[i]
					break
				}
			}
			return sign * value, errEst, fmt.Errorf("%w on [%g, %g]",
				ErrNonFinite, bad.lo, bad.hi)
		}
		if errEst <= math.Max(p.absTol, p.relTol*math.Abs(value)) {
			return sign * value, errEst, nil
		}
		if len(panels) >= p.maxIntervals {
			return sign * value, errEst, fmt.Errorf(
				"%w: error estimate is %g after %d subdivisions",
				ErrNotConverged, errEst, len(panels),
			)
		}

		split := panels[worst]
		mid := split.lo + (split.hi-split.lo)/2
		if mid <= split.lo || mid >= split.hi {
			// The worst interval has collapsed to adjacent floats, so
			// further bisection cannot change anything.
			return sign * value, errEst, fmt.Errorf(
				"%w: interval [%g, %g] cannot be subdivided further",
				ErrNotConverged, split.lo, split.hi,
			)
		}
		panels[worst] = evalPanel(f, split.lo, mid)
		panels = append(panels, evalPanel(f, mid, split.hi))
	}
}
