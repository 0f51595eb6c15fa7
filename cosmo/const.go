package cosmo

// Physical constants. Values follow the IAU 2015 resolutions and CODATA
// 2014. Everything downstream works in km/s/Mpc for H0, Mpc for distances,
// Gyr for times, and Msun for masses.
const (
	// CKmS is the speed of light in km/s.
	CKmS = 299792.458

	// MpcKm and MpcMks are the number of kilometers and meters in a
	// megaparsec.
	MpcKm  = 3.0856775814913673e19
	MpcMks = 3.0856775814913673e22

	// GyrS is the number of seconds in a gigayear (Julian years).
	GyrS = 3.15576e16

	// GMks is Newton's constant in m^3 / (kg s^2).
	GMks = 6.67408e-11

	// MSunMks is the mass of the sun in kg.
	MSunMks = 1.98892e30
)
