package model

// ComparisonStatus indicates whether a filed result agrees with a projection.
type ComparisonStatus string

// Comparison status constants.
const (
	ComparisonMatch ComparisonStatus = "match"
	ComparisonGap   ComparisonStatus = "gap"
)

// FiledResult is a refund/owed outcome, either actual (as filed) or computed.
// By convention at most one of the two fields is non-zero.
type FiledResult struct {
	Refund float64
	Owed   float64
}

// Net returns refund minus owed.
func (f FiledResult) Net() float64 {
	return f.Refund - f.Owed
}

// CaptionedAmount is one side of a comparison, ready for display.
// Value is always non-negative; Subtract marks the entry as subtracted in the
// displayed formula.
type CaptionedAmount struct {
	Caption  string  `json:"caption"`
	Value    float64 `json:"value"`
	Subtract bool    `json:"subtract"`
}

// Variance is the signed difference between actual and computed outcomes.
// Favorable is nil only when the variance is exactly zero.
type Variance struct {
	Amount    float64 `json:"amount"` // magnitude, always >= 0
	Favorable *bool   `json:"favorable"`
}

// ComparisonSummary is the result of comparing an actual filed outcome
// against a computed projection. Amounts lists the actual-side entry first
// and the calculated-side entry second.
type ComparisonSummary struct {
	Status   ComparisonStatus  `json:"status"`
	Amounts  []CaptionedAmount `json:"amounts"`
	Variance Variance          `json:"variance"`
}
