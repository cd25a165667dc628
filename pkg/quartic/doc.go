// Package quartic defines the error taxonomy and version shared by the
// splitting-type enumerator and the expectation aggregator.
// See docs/ARCHITECTURE.md § Error Handling.
package quartic
