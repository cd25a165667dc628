// Package splitting enumerates the splitting types of primes in quartic
// extensions with Galois group D4. It holds the fixed subgroup lattice of D4,
// derives one table row per inertia/decomposition class, and renders the
// result as plain text or as the published LaTeX table.
// See docs/ARCHITECTURE.md § Splitting-Type Enumerator.
package splitting
