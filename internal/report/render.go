// Package report renders analysis results for the terminal and for CSV
// export. Monetary values render to two decimal places.
package report

import (
	"fmt"
	"strings"

	"github.com/krisrowe/pay-calc-sub001/internal/cli"
	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

// RenderProjection renders a projection as a boxed table with the
// per-bracket breakdown and the bottom line.
func RenderProjection(res model.ProjectionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Taxable income: %12.2f\n\n", res.TaxableIncome)

	if len(res.Breakdown) > 0 {
		b.WriteString("Bracket              Rate          Tax\n")
		for _, row := range res.Breakdown {
			fmt.Fprintf(&b, "%9.2f-%9.2f  %4.0f%%  %11.2f\n",
				row.Lower, row.Upper, row.Rate*100, row.Tax)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Tax assessed:   %12.2f\n", res.TaxAssessed)
	for _, w := range res.Withholding {
		fmt.Fprintf(&b, "Withheld (%s): %12.2f\n", w.Party, w.Amount)
	}
	fmt.Fprintf(&b, "Total withheld: %12.2f\n", res.TotalWithheld)
	if res.SSOverpayment > 0 {
		fmt.Fprintf(&b, "SS overpayment: %12.2f\n", res.SSOverpayment)
	}
	b.WriteString("\n")

	if res.Net >= 0 {
		b.WriteString(cli.SuccessStyle.Render(fmt.Sprintf("Projected refund: %.2f", res.Refund())))
	} else {
		b.WriteString(cli.WarningStyle.Render(fmt.Sprintf("Projected amount owed: %.2f", res.Owed())))
	}

	return cli.RenderBox("Annual Tax Projection", b.String())
}

// RenderGapReport renders the gaps partitioned into errors and warnings,
// along with the independent first-period finding when present.
func RenderGapReport(report model.GapReport, firstPeriodMsg string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Records analyzed: %d", report.RecordCount)
	if report.SkippedRecords > 0 {
		fmt.Fprintf(&b, " (%d skipped for unparsable dates)", report.SkippedRecords)
	}
	b.WriteString("\n")
	if report.FirstDate != nil && report.LastDate != nil {
		fmt.Fprintf(&b, "Span: %s to %s\n",
			report.FirstDate.Format("2006-01-02"), report.LastDate.Format("2006-01-02"))
	}
	b.WriteString("\n")

	errors := report.Errors()
	warnings := report.Warnings()

	for _, g := range errors {
		b.WriteString(cli.FormatError(g.Message) + "\n")
	}
	if firstPeriodMsg != "" {
		b.WriteString(cli.FormatError(firstPeriodMsg) + "\n")
	}
	for _, g := range warnings {
		b.WriteString(cli.FormatWarning(g.Message) + "\n")
	}
	if len(errors) == 0 && len(warnings) == 0 && firstPeriodMsg == "" {
		b.WriteString(cli.FormatSuccess("no gaps detected"))
	}

	return cli.RenderBox("Pay Record Gap Analysis", b.String())
}

// RenderComparison renders a filed-vs-computed comparison summary.
func RenderComparison(summary model.ComparisonSummary) string {
	var b strings.Builder

	for _, a := range summary.Amounts {
		sign := " "
		if a.Subtract {
			sign = "-"
		}
		fmt.Fprintf(&b, "%s %-18s %12.2f\n", sign, a.Caption, a.Value)
	}
	b.WriteString("\n")

	switch {
	case summary.Status == model.ComparisonMatch:
		b.WriteString(cli.FormatSuccess(fmt.Sprintf("match (variance %.2f)", summary.Variance.Amount)))
	case summary.Variance.Favorable != nil && *summary.Variance.Favorable:
		b.WriteString(cli.FormatWarning(fmt.Sprintf("gap of %.2f in your favor", summary.Variance.Amount)))
	default:
		b.WriteString(cli.FormatError(fmt.Sprintf("gap of %.2f against you", summary.Variance.Amount)))
	}

	return cli.RenderBox("Filed vs Computed", b.String())
}
