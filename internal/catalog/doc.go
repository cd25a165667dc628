// Package catalog provides the database of 2-adic local fields used by the
// expectation aggregator. The data originates from the LMFDB and the
// Jones-Roberts database of local fields, is embedded as CSV, and is loaded
// into an in-memory SQLite database on Attach. Nothing is ever written to
// disk; every run reloads the catalog from the embedded data.
// See docs/ARCHITECTURE.md § Local-Field Catalog.
package catalog
