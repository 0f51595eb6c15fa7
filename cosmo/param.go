/*package cosmo implements distance and density measures in a flat
Friedmann-Lemaitre-Robertson-Walker universe described by two numbers, the
Hubble constant H0 in km/s/Mpc and the matter density fraction OmegaM at
z = 0. Flatness pins the dark energy fraction to OmegaL = 1 - OmegaM, and
radiation and curvature are zero everywhere.

The quantities are free functions which take the parameters explicitly and
return Mpc for distances, Gyr for times, and Msun/Mpc^3 for densities.
Functions whose value comes out of a quadrature return an error when the
integral fails to converge; the closed-form ones return bare float64s.
Parameters are not validated anywhere: an OmegaM outside [0, 1] or a
negative redshift gives back whatever the formulas give back.
*/
package cosmo

import (
	"math"
)

// HubbleFrac calculates E(z) = H(z)/H0. Here H(z) is from Hubble's Law,
// H(z)**2 = H0**2 (OmegaM a**-3 + OmegaL), with a = 1/(1+z) and
// OmegaL = 1 - OmegaM. An alternate formulation is E(a) = da/dt / (a H0).
func HubbleFrac(omegaM, z float64) float64 {
	return math.Sqrt(omegaM*math.Pow(1.0+z, 3.0) + (1.0 - omegaM))
}

// Hubble calculates the Hubble parameter H(z) in km/s/Mpc.
func Hubble(h0, omegaM, z float64) float64 {
	return h0 * HubbleFrac(omegaM, z)
}

// HubbleDistance calculates the Hubble distance c/H0 in Mpc, the natural
// length scale which all the distance measures reduce to near z = 0.
func HubbleDistance(h0 float64) float64 {
	return CKmS / h0
}

// HubbleTime calculates the Hubble time 1/H0 in Gyr.
func HubbleTime(h0 float64) float64 {
	return MpcKm / h0 / GyrS
}

// DistanceIntegrand calculates dD_C/dz = c/H(z) in Mpc, the integrand of
// the comoving distance.
func DistanceIntegrand(h0, omegaM, z float64) float64 {
	return CKmS / Hubble(h0, omegaM, z)
}

func rhoCriticalMks(h0, omegaM, z float64) float64 {
	hMks := Hubble(h0, omegaM, z) * 1000 / MpcMks
	return 3.0 * hMks * hMks / (8.0 * math.Pi * GMks)
}

// RhoCritical calculates the critical density of the universe in
// Msun/Mpc^3. This shows up (among other places) in halo definitions and in
// the definitions of the omegas (OmegaFoo = rhoFoo / rhoCritical).
func RhoCritical(h0, omegaM, z float64) float64 {
	return rhoCriticalMks(h0, omegaM, z) * math.Pow(MpcMks, 3) / MSunMks
}

// RhoAverage calculates the average density of matter in the universe in
// Msun/Mpc^3.
func RhoAverage(h0, omegaM, z float64) float64 {
	return RhoCritical(h0, omegaM, 0) * omegaM * math.Pow(1+z, 3.0)
}
