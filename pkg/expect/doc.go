// Package expect computes the expected number of quartic D4 fields ordered
// by conductor. Each prime contributes a local factor: the number of local
// Galois representations into D4 per Artin-conductor exponent, weighted by
// the group order. Odd primes are tame and counted directly from the group;
// the wild prime 2 is aggregated from the local-field catalog. The global
// expectation is the cumulative sum of the multiplicative conductor density,
// carried in exact rational arithmetic throughout.
// See docs/ARCHITECTURE.md § Expectation Aggregator.
package expect
