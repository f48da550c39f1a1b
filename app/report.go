package app

import (
	"fmt"
	"io"
	"strings"

	"polygen/domain/stats"
)

// separatorWidth matches the 20-dash rule of the reference report
const separatorWidth = 20

// RenderReport writes the batch report in its fixed text format: a labeled
// mean/SEM block per pair metric, separated by dash rules, then the derived
// metrics section and the batch mean G:L ratio. Every value is printed with
// exactly two decimals. The layout is a golden-output contract; do not adjust
// spacing or labels without updating the recorded fixtures.
func RenderReport(w io.Writer, report stats.AggregateReport) error {
	separator := strings.Repeat("-", separatorWidth)

	if _, err := fmt.Fprintf(w, "n: %d\n%s\n", report.Length, separator); err != nil {
		return err
	}

	blocks := []struct {
		label   string
		summary stats.Summary
	}{
		{"G-Gs", report.GGPairs},
		{"L-Ls", report.LLPairs},
		{"G-Ls", report.GLPairs},
		{"L-Gs", report.LGPairs},
	}
	for _, b := range blocks {
		_, err := fmt.Fprintf(w, "Mean %s: %.2f\nSEM %s:  %.2f\n%s\n",
			b.label, b.summary.Mean, b.label, b.summary.SEM, separator)
		if err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "OTHER METRICS"); err != nil {
		return err
	}

	derived := []struct {
		label   string
		summary stats.Summary
	}{
		{"L_L", report.LBlock},
		{"L_G", report.GBlock},
		{"R_c", report.RC},
	}
	for _, d := range derived {
		_, err := fmt.Fprintf(w, "%s (mean)    = %.2f\n%s (sem)     = %.2f\n\n",
			d.label, d.summary.Mean, d.label, d.summary.SEM)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Ratio of L/G (mean) = %.2f\n", report.MeanRatio)
	return err
}
