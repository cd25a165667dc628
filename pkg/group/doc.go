// Package group implements permutation arithmetic on four points and the
// coset and orbit machinery needed to read off how primes decompose in a
// quartic extension from its Galois group.
// See docs/ARCHITECTURE.md § Group Machinery.
package group
