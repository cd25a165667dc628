package expect

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// PlainOutcomes renders the (d, q) representation counts at the wild prime,
// grouped by d, followed by the total-weight statistic.
func PlainOutcomes(outcomes Outcomes) string {
	var b strings.Builder

	lastD := -1
	for _, inv := range outcomes.SortedInvariants() {
		if inv.D != lastD {
			fmt.Fprintf(&b, "d = %d\n", inv.D)
			lastD = inv.D
		}
		fmt.Fprintf(&b, "  q = %d: %d\n", inv.Q, outcomes[inv])
	}
	fmt.Fprintf(&b, "total weight: %s\n", outcomes.TotalWeight().RatString())
	return b.String()
}

// PlainSweep renders the cumulative expected counts per conductor bound.
func PlainSweep(rows []Row) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 2, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "X\texpected\t")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t\n", row.Bound, row.Expected.RatString())
	}
	w.Flush()
	return b.String()
}

// latexQRows and latexDCols fix the published density-table layout.
var (
	latexQRows = []int{0, 2, 3, 4, 5, 6}
	latexDCols = []int{0, 2, 3}
)

// LatexOutcomes renders the density table of the paper: rows by conductor
// power q, columns by quadratic discriminant, entries the representation
// counts divided by |D4|, a dash where no representation exists.
func LatexOutcomes(outcomes Outcomes) string {
	var b strings.Builder
	fmt.Fprintln(&b, `\begin{tabular}{|c||c|c|c|}\hline`)
	fmt.Fprintln(&b, `$\q$ & $\D = 1$ & $\D = 2^2$ & $\D = 2^3$ \\\hline`)
	for _, q := range latexQRows {
		fmt.Fprintf(&b, "$2^%d$", q)
		for _, d := range latexDCols {
			if n := outcomes[Invariant{D: d, Q: q}]; n > 0 {
				fmt.Fprintf(&b, ` & $%d$`, n/groupOrder)
			} else {
				fmt.Fprint(&b, ` & ---`)
			}
		}
		fmt.Fprintln(&b, ` \\`)
	}
	fmt.Fprintln(&b, `\hline`)
	fmt.Fprintln(&b, `\end{tabular}`)
	return b.String()
}
