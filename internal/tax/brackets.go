// Package tax implements the annual projection pipeline: progressive
// bracket computation, party aggregation, and the Social Security
// overpayment check.
package tax

import (
	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

// Tax returns the total liability for a taxable income under a progressive
// bracket schedule. The last bracket's rate applies to all income above its
// threshold. Income at or below zero yields zero tax.
func Tax(income float64, schedule model.TaxBracketSchedule) float64 {
	if income <= 0 {
		return 0
	}

	var total float64
	for i, b := range schedule {
		upper := income
		if i+1 < len(schedule) && schedule[i+1].Threshold < income {
			upper = schedule[i+1].Threshold
		}
		if upper <= b.Threshold {
			break
		}
		total += (upper - b.Threshold) * b.Rate
	}
	return total
}

// Breakdown returns the marginal tax contributed by each bracket for the
// given income, stopping at the bracket containing it. Each row's tax is
// computed as Tax(min(income, next threshold)) - Tax(prev threshold), so the
// rows sum to Tax(income) exactly.
func Breakdown(income float64, schedule model.TaxBracketSchedule) []model.BracketTax {
	if income <= 0 {
		return nil
	}

	var rows []model.BracketTax
	prevTax := 0.0
	for i, b := range schedule {
		upper := income
		if i+1 < len(schedule) && schedule[i+1].Threshold < income {
			upper = schedule[i+1].Threshold
		}
		if upper <= b.Threshold {
			break
		}
		cumulative := Tax(upper, schedule)
		rows = append(rows, model.BracketTax{
			Lower: b.Threshold,
			Upper: upper,
			Rate:  b.Rate,
			Tax:   cumulative - prevTax,
		})
		prevTax = cumulative
		if upper == income {
			break
		}
	}
	return rows
}
