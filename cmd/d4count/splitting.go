// Splitting command prints how primes split across the D4 subfield lattice.
// See docs/ARCHITECTURE.md § Splitting-Type Enumerator.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quartic/pkg/splitting"
)

var flagFrobenius bool

var splittingCmd = &cobra.Command{
	Use:   "splitting",
	Short: "Print the splitting-type table",
	Long: `Splitting enumerates, for every decomposition/inertia pair in the D4
subgroup lattice, how a prime with those invariants splits in each of the
seven subfields of the Galois closure. With --frobenius it also prints how
many elements of D4 realize each unramified splitting type.`,
	Args: cobra.NoArgs,
	RunE: runSplitting,
}

func init() {
	splittingCmd.Flags().BoolVar(&flagFrobenius, "frobenius", false, "also print Frobenius class multiplicities")
}

func runSplitting(cmd *cobra.Command, args []string) error {
	rows, err := splitting.Enumerate()
	if err != nil {
		return fmt.Errorf("enumerate splitting types: %w", err)
	}
	logger.Debug().Int("rows", len(rows)).Msg("splitting table enumerated")

	if latexOutput() {
		fmt.Print(splitting.Latex(rows))
	} else {
		fmt.Print(splitting.Plain(rows))
	}

	if flagFrobenius {
		frobs, err := splitting.FrobeniusClasses()
		if err != nil {
			return fmt.Errorf("frobenius classes: %w", err)
		}
		fmt.Println()
		fmt.Print(splitting.PlainFrobenius(frobs))
	}
	return nil
}
