package cosmo

import "fmt"

// Params bundles the two numbers which specify a flat cosmology. It exists
// so that parameter sets can be named, compared, and unmarshalled as a
// unit; the quantities themselves are free functions which take the fields
// explicitly.
type Params struct {
	// H0 is the Hubble constant in km/s/Mpc.
	H0 float64 `yaml:"h0"`
	// OmegaM is the matter density fraction at z = 0. The dark energy
	// fraction is implied by flatness, OmegaL = 1 - OmegaM.
	OmegaM float64 `yaml:"omega_m"`
}

func (p Params) String() string {
	return fmt.Sprintf("(H0 = %g km/s/Mpc, OmegaM = %g)", p.H0, p.OmegaM)
}
