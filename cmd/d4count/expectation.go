// Expect command prints the wild-prime outcome table and the expected
// number of quartic D4 fields by conductor bound.
// See docs/ARCHITECTURE.md § Expectation Aggregator.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quartic/internal/catalog"
	"github.com/mesh-intelligence/quartic/pkg/expect"
)

var (
	flagBounds     []int
	flagPrimeLimit int
)

var expectCmd = &cobra.Command{
	Use:     "expect",
	Aliases: []string{"expectation"},
	Short:   "Print the expected number of fields by conductor bound",
	Long: `Expect aggregates the per-prime local densities into the cumulative
expected number of quartic D4 fields with conductor up to each bound. The
output starts with the representation counts at 2, grouped by quadratic
discriminant, followed by the sweep over the configured bounds.`,
	Args: cobra.NoArgs,
	RunE: runExpect,
}

func init() {
	expectCmd.Flags().IntSliceVar(&flagBounds, "bounds", nil, "conductor bounds, strictly ascending (default: from config)")
	expectCmd.Flags().IntVar(&flagPrimeLimit, "prime-limit", 0, "sieve limit (default: from config)")
}

func runExpect(cmd *cobra.Command, args []string) error {
	bounds := flagBounds
	if len(bounds) == 0 {
		bounds = cfg.GetIntSlice(cfgKeyBounds)
	}
	primeLimit := flagPrimeLimit
	if primeLimit == 0 {
		primeLimit = cfg.GetInt(cfgKeyPrimeLimit)
	}

	cat := catalog.New()
	if err := cat.Attach(); err != nil {
		return fmt.Errorf("attach catalog: %w", err)
	}
	defer cat.Detach()

	if n, err := cat.Count(); err == nil {
		logger.Debug().Int("fields", n).Msg("local-field catalog attached")
	}

	agg, err := expect.NewAggregator(cat, primeLimit)
	if err != nil {
		return err
	}

	if latexOutput() {
		fmt.Print(expect.LatexOutcomes(agg.Outcomes()))
	} else {
		fmt.Print(expect.PlainOutcomes(agg.Outcomes()))
	}

	rows, err := agg.ExpectedCounts(bounds)
	if err != nil {
		return err
	}
	logger.Debug().Int("bounds", len(rows)).Int("prime_limit", primeLimit).Msg("sweep complete")

	fmt.Println()
	fmt.Print(expect.PlainSweep(rows))
	return nil
}
