// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Pay type tags as emitted by the extraction layer.
const (
	PayTypeRegular = "regular"
	PayTypeBonus   = "bonus"
)

// Money category keys used in per-period totals.
const (
	CategoryGross            = "gross"
	CategoryTaxableWages     = "taxable_wages"
	CategoryFederalWithheld  = "federal_income_tax_withheld"
	CategorySSWithheld       = "social_security_withheld"
	CategoryMedicareWithheld = "medicare_withheld"
)

// MoneyMap maps a money category to a non-negative amount. Lookups on
// missing categories yield zero; absence of data is not an error.
type MoneyMap map[string]float64

// Get returns the amount for a category, or 0 when the category is absent.
func (m MoneyMap) Get(category string) float64 {
	if m == nil {
		return 0
	}
	return m[category]
}

// PayRecord is a single pay-period observation produced by the extraction
// layer. Records are immutable once created; analysis consumes them read-only.
type PayRecord struct {
	PayDate    time.Time
	RawDate    string // original date string, kept for reporting when unparsable
	PayType    string
	Hash       string
	SourceFile string
	Current    MoneyMap
	YearToDate MoneyMap
	DateValid  bool // false when the extract's pay_date could not be parsed
}

// CurrentGross returns the current-period gross pay.
func (r *PayRecord) CurrentGross() float64 {
	return r.Current.Get(CategoryGross)
}

// YTDGross returns the year-to-date gross pay.
func (r *PayRecord) YTDGross() float64 {
	return r.YearToDate.Get(CategoryGross)
}

// GenerateHash creates a content hash for duplicate detection on import.
func (r *PayRecord) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%.2f:%.2f",
		r.RawDate,
		r.PayType,
		r.CurrentGross(),
		r.YTDGross())
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
