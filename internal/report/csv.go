package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

// ProjectionCSV writes a projection as CSV: the bracket breakdown first,
// then the summary lines. Monetary values use two decimal places.
func ProjectionCSV(w io.Writer, res model.ProjectionResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"section", "label", "rate", "amount"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range res.Breakdown {
		record := []string{
			"bracket",
			fmt.Sprintf("%.2f-%.2f", row.Lower, row.Upper),
			fmt.Sprintf("%.4f", row.Rate),
			fmt.Sprintf("%.2f", row.Tax),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write bracket row: %w", err)
		}
	}

	summary := [][2]string{
		{"taxable_income", fmt.Sprintf("%.2f", res.TaxableIncome)},
		{"tax_assessed", fmt.Sprintf("%.2f", res.TaxAssessed)},
	}
	for _, wh := range res.Withholding {
		summary = append(summary, [2]string{
			"withheld_" + wh.Party, fmt.Sprintf("%.2f", wh.Amount),
		})
	}
	summary = append(summary,
		[2]string{"total_withheld", fmt.Sprintf("%.2f", res.TotalWithheld)},
		[2]string{"ss_overpayment", fmt.Sprintf("%.2f", res.SSOverpayment)},
	)
	if res.Net >= 0 {
		summary = append(summary, [2]string{"refund", fmt.Sprintf("%.2f", res.Refund())})
	} else {
		summary = append(summary, [2]string{"owed", fmt.Sprintf("%.2f", res.Owed())})
	}

	for _, s := range summary {
		if err := cw.Write([]string{"summary", s[0], "", s[1]}); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
