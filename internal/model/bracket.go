package model

import "fmt"

// TaxBracket is one (threshold, marginal rate) step of a bracket schedule.
// The rate applies to income above Threshold up to the next bracket's
// threshold.
type TaxBracket struct {
	Threshold float64
	Rate      float64
}

// TaxBracketSchedule is an ordered progressive bracket table for one filing
// status and year. Thresholds are strictly increasing starting at zero; the
// last bracket's rate applies to all income above its threshold.
type TaxBracketSchedule []TaxBracket

// Validate checks the structural invariants of the schedule.
func (s TaxBracketSchedule) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("bracket schedule is empty")
	}
	if s[0].Threshold != 0 {
		return fmt.Errorf("first bracket threshold must be 0, got %.2f", s[0].Threshold)
	}
	for i, b := range s {
		if b.Rate <= 0 || b.Rate > 1 {
			return fmt.Errorf("bracket %d rate must be in (0,1], got %.4f", i, b.Rate)
		}
		if i > 0 && b.Threshold <= s[i-1].Threshold {
			return fmt.Errorf("bracket thresholds must be strictly increasing, got %.2f after %.2f",
				b.Threshold, s[i-1].Threshold)
		}
	}
	return nil
}
