package cosmo

import (
	"math"

	"github.com/mwbrandt/supernova/math/calc"
)

// ComovingDistance calculates the line-of-sight comoving distance D_C in
// Mpc by integrating c/H(z') from 0 to z. In a flat universe this is also
// the transverse comoving distance, so every other distance measure is a
// (1+z) factor away. The error return propagates quadrature failures and
// nothing else; when it is non-nil the value is the integral's best
// estimate at the point it gave up.
func ComovingDistance(h0, omegaM, z float64) (float64, error) {
	chi, _, err := calc.Quad(func(zp float64) float64 {
		return DistanceIntegrand(h0, omegaM, zp)
	}, 0, z)
	return chi, err
}

// LuminosityDistance calculates D_L = (1+z) D_C in Mpc, the distance which
// makes the inverse square law hold for bolometric fluxes.
func LuminosityDistance(h0, omegaM, z float64) (float64, error) {
	chi, err := ComovingDistance(h0, omegaM, z)
	return (1 + z) * chi, err
}

// AngularDiameterDistance calculates D_A = D_C / (1+z) in Mpc, the distance
// which converts physical transverse sizes into observed angles.
func AngularDiameterDistance(h0, omegaM, z float64) (float64, error) {
	chi, err := ComovingDistance(h0, omegaM, z)
	return chi / (1 + z), err
}

// DistanceModulus calculates mu = 5 log10(D_L / 10 pc), which for D_L in
// Mpc reduces to 5 log10(D_L) + 25. At z = 0 the luminosity distance is
// zero and the modulus is -Inf per math.Log10; that undefinedness is not
// guarded here.
func DistanceModulus(h0, omegaM, z float64) (float64, error) {
	dL, err := LuminosityDistance(h0, omegaM, z)
	return 5*math.Log10(dL) + 25, err
}

// LookbackTime calculates the light travel time in Gyr from a source at
// redshift z,
//
//	t_L(z) = t_H * int_0^z dz' / ((1+z') E(z')).
func LookbackTime(h0, omegaM, z float64) (float64, error) {
	v, _, err := calc.Quad(func(zp float64) float64 {
		return 1 / ((1 + zp) * HubbleFrac(omegaM, zp))
	}, 0, z)
	return v * HubbleTime(h0), err
}

// Age calculates the age of the universe at redshift z in Gyr. The integral
// runs over the scale factor a = 1/(1+z), where the matter term keeps the
// integrand finite all the way down to a = 0:
//
//	t(z) = t_H * int_0^a da' / sqrt(OmegaM/a' + OmegaL a'**2)
//
// With no matter component the integral diverges logarithmically at a = 0
// and the error is calc.ErrNotConverged.
func Age(h0, omegaM, z float64) (float64, error) {
	a := 1 / (1 + z)
	v, _, err := calc.Quad(func(ap float64) float64 {
		return 1 / math.Sqrt(omegaM/ap+(1-omegaM)*ap*ap)
	}, 0, a)
	return v * HubbleTime(h0), err
}
