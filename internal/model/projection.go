package model

// BracketTax is one row of a per-bracket tax breakdown: the marginal tax
// contributed by income falling inside that bracket's span.
type BracketTax struct {
	Lower float64 `json:"lower"` // bracket lower bound (inclusive)
	Upper float64 `json:"upper"` // income confined to the bracket's span; equals income for the last row
	Rate  float64 `json:"rate"`
	Tax   float64 `json:"tax"`
}

// PartyWithholding is one party's federal withholding line in a projection.
type PartyWithholding struct {
	Party  string  `json:"party"`
	Amount float64 `json:"amount"`
}

// ProjectionResult is a combined two-party annual tax projection.
// Net is positive for a refund and negative for an amount owed.
type ProjectionResult struct {
	TaxableIncome float64            `json:"taxable_income"`
	TaxAssessed   float64            `json:"tax_assessed"`
	Breakdown     []BracketTax       `json:"breakdown"`
	Withholding   []PartyWithholding `json:"withholding"`
	TotalWithheld float64            `json:"total_withheld"`
	SSOverpayment float64            `json:"ss_overpayment"` // always >= 0
	Net           float64            `json:"net"`
}

// Refund returns the refund amount, or 0 when tax is owed.
func (p ProjectionResult) Refund() float64 {
	if p.Net > 0 {
		return p.Net
	}
	return 0
}

// Owed returns the amount owed, or 0 when a refund is due.
func (p ProjectionResult) Owed() float64 {
	if p.Net < 0 {
		return -p.Net
	}
	return 0
}
