package splitting

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// classLabel returns the human-readable ramification class label.
func classLabel(c RamClass) string {
	switch c {
	case Unramified:
		return "unramified"
	case TameSplit:
		return "tame, lacks central inertia"
	case TameCentral:
		return "tame, has central inertia"
	case WildCentral:
		return "wild, has central inertia"
	default:
		return "unknown"
	}
}

// Plain renders the splitting-type table as aligned text, one section per
// ramification class.
func Plain(rows []Row) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 2, 0, 2, ' ', 0)

	header := []string{"I_p", "D_p"}
	for _, f := range fields {
		header = append(header, f.Name)
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	last := RamClass(-1)
	for _, row := range rows {
		if row.Class != last {
			fmt.Fprintf(w, "-- %s --\t\n", classLabel(row.Class))
			last = row.Class
		}
		cols := []string{row.Inertia.Name, row.Decomp.Name}
		for _, sym := range row.Symbols {
			cols = append(cols, sym.String())
		}
		fmt.Fprintln(w, strings.Join(cols, "\t"))
	}
	w.Flush()
	return b.String()
}

// PlainFrobenius renders the Frobenius-class summary: distinct unramified
// splitting types of the quartic field with their multiplicities.
func PlainFrobenius(frobs []FrobClass) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 2, 0, 2, ' ', 0)
	fmt.Fprintln(w, "splitting type\tmultiplicity")
	total := 0
	for _, fc := range frobs {
		fmt.Fprintf(w, "%s\t%d\n", fc.Type, fc.Multiplicity)
		total += fc.Multiplicity
	}
	fmt.Fprintf(w, "total\t%d\n", total)
	w.Flush()
	return b.String()
}

// Latex renders the table in the published layout, with the rotated section
// labels of the paper.
func Latex(rows []Row) string {
	var b strings.Builder

	fmt.Fprintln(&b, `\begin{tabular}{|c|c|||c||c|c||c|c||c|c|||c|c|}`)
	fmt.Fprintln(&b, `  \hline &&&&&&&&&\multicolumn{2}{|c|}{}\\`)

	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, fmt.Sprintf(`$\varsigma_p(%s)$`, f.Lx))
	}
	fmt.Fprintf(&b, "  $I_p$ & $D_p$ & %s & \\multicolumn{2}{|c|}{} \\\\[12pt]\n", strings.Join(cols, " & "))
	fmt.Fprintln(&b, `  \hline &&&&&&&&&&\\[-10.5pt]`)
	fmt.Fprintln(&b, `  \hline &&&&&&&&&&\\[-10.5pt]`)
	fmt.Fprintln(&b, `  \hline &&&&&&&&&&\\[-5pt]`)
	fmt.Fprintln(&b)

	for i, row := range rows {
		fmt.Fprintf(&b, "  $%s$ & $%s$ & \n", row.Inertia.LatexRep, row.Decomp.LatexRep)
		syms := make([]string, 0, len(row.Symbols))
		for _, sym := range row.Symbols {
			syms = append(syms, fmt.Sprintf("$%s$", sym))
		}
		fmt.Fprintf(&b, "  %s", strings.Join(syms, " & "))
		fmt.Fprint(&b, latexRowTrailer(i))
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, `  \hline`)
	fmt.Fprintln(&b, `\end{tabular}\\[.1in]`)
	return b.String()
}

// latexRowTrailer supplies the rotated multirow labels and section dividers
// keyed to the published row positions.
func latexRowTrailer(rowNum int) string {
	switch rowNum {
	case 0:
		return ` & \multirow{5}{*}{\rotatebox[origin=c]{270}{\small Unramified}} & \multirow{10}{*}{\rotatebox[origin=c]{270}{\small Lacks central inertia}}\\` + "\n"
	case 4:
		return " & & \\\\\n" + `    [5pt] \cline{1-10} &&&&&&&&&&\\[-4pt]` + "\n"
	case 5:
		return ` & \multirow{4}{*}{\rotatebox[origin=c]{270}{\small Tame}} & \\` + "\n"
	case 8:
		return " & & \\\\\n" + `    [5pt] \hline &&&&&&&&&&\\[-10.5pt]\hline &&&&&&&&&&\\[-4pt]` + "\n"
	case 9:
		return ` & \multirow{6}{*}{\rotatebox[origin=c]{270}{\small Tame}} & \multirow{10}{*}{\rotatebox[origin=c]{270}{\small Has central inertia}}\\` + "\n"
	case 14:
		return " & & \\\\\n" + `    [5pt] \cline{1-10} &&&&&&&&&&\\[-4pt]` + "\n"
	case 15:
		return ` & \multirow{3}{*}{\rotatebox[origin=c]{270}{\small Wild}} & \\` + "\n"
	default:
		return " & & \\\\\n"
	}
}
