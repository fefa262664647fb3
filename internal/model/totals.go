package model

// RawEarnings holds the earnings section of a party's annual totals extract.
type RawEarnings struct {
	TotalGross *float64 `json:"total_gross,omitempty"`
}

// RawTaxes holds the taxes section of a party's annual totals extract.
type RawTaxes struct {
	FederalIncomeTaxWithheld *float64 `json:"federal_income_tax_withheld,omitempty"`
	SocialSecurityWithheld   *float64 `json:"social_security_withheld,omitempty"`
	MedicareWithheld         *float64 `json:"medicare_withheld,omitempty"`
}

// RawDeductions holds the deductions section of a party's annual totals extract.
type RawDeductions struct {
	TotalDeductions *float64 `json:"total_deductions,omitempty"`
}

// RawPartyTotals is a party's raw annual totals as extracted from source
// documents. Any field may be absent; aggregation treats absence as zero.
type RawPartyTotals struct {
	FITTaxableWages *float64      `json:"fit_taxable_wages,omitempty"`
	Earnings        RawEarnings   `json:"earnings"`
	Taxes           RawTaxes      `json:"taxes"`
	Deductions      RawDeductions `json:"deductions"`
}

// OrZero resolves an optional amount, substituting zero when absent.
func OrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// PartyAggregate is a party's normalized annual totals. Every field defaults
// to zero when the source data is absent.
type PartyAggregate struct {
	TotalGross       float64
	FITTaxableWages  float64
	SSTaxableWages   float64 // capped at the annual SS wage base
	MedicareWages    float64 // never capped
	FederalWithheld  float64
	SSWithheld       float64
	MedicareWithheld float64
	TotalDeductions  float64
}
