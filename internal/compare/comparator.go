// Package compare reconciles an actual filed tax outcome against a computed
// projection and produces a signed, captioned summary.
package compare

import (
	"math"

	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

// DefaultTolerance is the one-unit rounding tolerance inside which actual and
// computed outcomes still count as a match.
const DefaultTolerance = 1.0

// Compare reconciles the two outcomes using DefaultTolerance.
func Compare(actual, calc model.FiledResult) model.ComparisonSummary {
	return CompareWithTolerance(actual, calc, DefaultTolerance)
}

// CompareWithTolerance reconciles an actual filed result against a computed
// one. The amounts always list the actual side first and the calculated side
// second, with only the calculated side marked for subtraction; direction is
// carried by the variance magnitude and favorable flag alone.
//
// The tolerance affects only the match/gap status. Favorable comes from the
// unrounded variance and is nil only at exactly zero, so a variance magnitude
// in (0, tolerance] yields a match with a non-nil favorable flag.
func CompareWithTolerance(actual, calc model.FiledResult, tolerance float64) model.ComparisonSummary {
	actualNet := actual.Net()
	calcNet := calc.Net()
	variance := actualNet - calcNet

	status := model.ComparisonGap
	if math.Abs(variance) <= tolerance {
		status = model.ComparisonMatch
	}

	var favorable *bool
	if variance != 0 {
		f := variance > 0
		favorable = &f
	}

	return model.ComparisonSummary{
		Status: status,
		Amounts: []model.CaptionedAmount{
			captioned("Actual", actualNet, false),
			captioned("Calculated", calcNet, true),
		},
		Variance: model.Variance{
			Amount:    math.Abs(variance),
			Favorable: favorable,
		},
	}
}

// captioned renders one side's net as a non-negative display amount: a
// refund caption for net >= 0, an owed caption for net < 0.
func captioned(side string, net float64, subtract bool) model.CaptionedAmount {
	caption := side + " refund"
	value := net
	if net < 0 {
		caption = side + " owed"
		value = -net
	}
	return model.CaptionedAmount{
		Caption:  caption,
		Value:    value,
		Subtract: subtract,
	}
}
