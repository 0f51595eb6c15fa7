/*package supernova provides the numerical core for working with type Ia
supernova distance-modulus curves: cosmological distances as a function of
redshift in a flat FLRW universe.

The interesting code lives in the subpackages:

	cosmo     The Hubble parameter, comoving and luminosity distances,
	          distance moduli, lookback times, and named parameter sets
	          (Planck18, WMAP9, ...).
	math/calc Adaptive quadrature and finite differences backing cosmo.
	logging   Opt-in structured logging for the heavyweight code paths.
	version   The semantic version of the source and its embedded data.

The free functions are pure in (H0, OmegaM, z) and cache nothing; the one
piece of kept state, cosmo.DistanceTable, is an explicit precomputation
that callers opt into when they need millions of lookups.
*/
package supernova
