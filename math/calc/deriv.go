package calc

type derivParams struct{ out []float64 }
type internalDerivOption func(*derivParams)

// DerivOption is an option to a call to Deriv.
type DerivOption internalDerivOption

// Out supplies a call to Deriv with a slice to write derivatives to instead
// of allocating a new one.
func Out(out []float64) DerivOption {
	return func(p *derivParams) { p.out = out }
}

func (p *derivParams) loadOptions(opts []DerivOption) {
	for _, opt := range opts {
		opt(p)
	}
}

// Deriv computes the numerical derivative dy/dx of a sampled function at
// every sample point. The only supported orders are 2 and 4. The order 2
// stencils tolerate unevenly spaced xs; the order 4 stencils assume the xs
// are uniformly spaced.
func Deriv(xs, ys []float64, order int, opts ...DerivOption) []float64 {
	n := len(xs)

	p := new(derivParams)
	p.loadOptions(opts)
	out := p.out
	if out == nil {
		out = make([]float64, n)
	}

	if len(ys) != n {
		panic("calc: Deriv given xs and ys of different lengths.")
	} else if len(out) != n {
		panic("calc: Deriv given an Out slice of the wrong length.")
	}

	switch order {
	case 2:
		if n < 3 {
			panic("calc: order 2 Deriv needs at least 3 points.")
		}
		for i := 1; i < n-1; i++ {
			out[i] = (ys[i+1] - ys[i-1]) / (xs[i+1] - xs[i-1])
		}
		// One-sided three-point stencils at the boundaries. The
		// coefficients fold in the two local spacings, which keeps the
		// endpoints exact for quadratics even when the grid is uneven.
		h1, h2 := xs[1]-xs[0], xs[2]-xs[1]
		out[0] = -(2*h1+h2)/(h1*(h1+h2))*ys[0] +
			(h1+h2)/(h1*h2)*ys[1] -
			h1/(h2*(h1+h2))*ys[2]
		g1, g2 := xs[n-1]-xs[n-2], xs[n-2]-xs[n-3]
		out[n-1] = (2*g1+g2)/(g1*(g1+g2))*ys[n-1] -
			(g1+g2)/(g1*g2)*ys[n-2] +
			g1/(g2*(g1+g2))*ys[n-3]
	case 4:
		if n < 5 {
			panic("calc: order 4 Deriv needs at least 5 points.")
		}
		h := (xs[n-1] - xs[0]) / float64(n-1)
		for i := 2; i < n-2; i++ {
			out[i] = (-ys[i+2] + 8*ys[i+1] - 8*ys[i-1] + ys[i-2]) / (12 * h)
		}
		// One-sided five-point stencils at the boundaries.
		out[0] = (-25*ys[0] + 48*ys[1] - 36*ys[2] + 16*ys[3] - 3*ys[4]) /
			(12 * h)
		out[1] = (-3*ys[0] - 10*ys[1] + 18*ys[2] - 6*ys[3] + ys[4]) /
			(12 * h)
		out[n-2] = (3*ys[n-1] + 10*ys[n-2] - 18*ys[n-3] + 6*ys[n-4] -
			ys[n-5]) / (12 * h)
		out[n-1] = (25*ys[n-1] - 48*ys[n-2] + 36*ys[n-3] - 16*ys[n-4] +
			3*ys[n-5]) / (12 * h)
	default:
		panic("calc: Deriv only supports orders 2 and 4.")
	}

	return out
}
