// Package loader decodes pay-record and annual-totals JSON extracts into
// domain models. It is deliberately permissive: extracts come from real-world
// document extraction and are occasionally incomplete, so missing or
// mistyped fields resolve to zero values instead of failing the load.
package loader

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"time"

	gojson "github.com/goccy/go-json"

	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

const dateLayout = "2006-01-02"

// doc is a permissive view over a decoded JSON object. Lookups on missing or
// mistyped keys yield zero values.
type doc map[string]any

func (d doc) child(key string) doc {
	if m, ok := d[key].(map[string]any); ok {
		return doc(m)
	}
	return nil
}

func (d doc) str(key string) string {
	if s, ok := d[key].(string); ok {
		return s
	}
	return ""
}

// num returns the numeric value for a key and whether it was present as a
// number at all.
func (d doc) num(key string) (float64, bool) {
	switch v := d[key].(type) {
	case float64:
		return v, true
	case gojson.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func (d doc) optNum(key string) *float64 {
	if v, ok := d.num(key); ok {
		return &v
	}
	return nil
}

// moneyMap collects the numeric entries of a JSON object into a MoneyMap,
// dropping anything that is not a number.
func moneyMap(d doc) model.MoneyMap {
	if len(d) == 0 {
		return nil
	}
	m := make(model.MoneyMap, len(d))
	for k := range d {
		if v, ok := d.num(k); ok {
			m[k] = v
		}
	}
	return m
}

// ParsePayRecords decodes one or more pay-record extracts. The payload may
// be a single object or an array of objects. A record with an unparsable
// pay_date is kept but flagged, so interval math can skip it without losing
// the record.
func ParsePayRecords(data []byte, sourceFile string) ([]model.PayRecord, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty extract %s", sourceFile)
	}

	var docs []doc
	if trimmed[0] == '[' {
		if err := gojson.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("failed to decode extract %s: %w", sourceFile, err)
		}
	} else {
		var single doc
		if err := gojson.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("failed to decode extract %s: %w", sourceFile, err)
		}
		docs = []doc{single}
	}

	records := make([]model.PayRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, buildPayRecord(d, sourceFile))
	}
	return records, nil
}

func buildPayRecord(d doc, sourceFile string) model.PayRecord {
	summary := d.child("pay_summary")

	record := model.PayRecord{
		RawDate:    d.str("pay_date"),
		PayType:    d.str("_pay_type"),
		SourceFile: sourceFile,
		Current:    moneyMap(summary.child("current")),
		YearToDate: moneyMap(summary.child("ytd")),
	}

	if parsed, err := time.Parse(dateLayout, record.RawDate); err == nil {
		record.PayDate = parsed
		record.DateValid = true
	} else {
		// Non-fatal: the record stays in the batch but is excluded from
		// interval math.
		slog.Warn("pay record has unparsable date",
			"source", sourceFile, "pay_date", record.RawDate)
	}

	record.Hash = record.GenerateHash()
	return record
}

// ParsePartyTotals decodes a party's raw annual totals. Absent keys stay
// absent (nil) so the aggregator can distinguish them from explicit zeros;
// only a payload that is not a JSON object at all is an error.
func ParsePartyTotals(data []byte) (model.RawPartyTotals, error) {
	var d doc
	if err := gojson.Unmarshal(data, &d); err != nil {
		return model.RawPartyTotals{}, fmt.Errorf("failed to decode party totals: %w", err)
	}

	earnings := d.child("earnings")
	taxes := d.child("taxes")
	deductions := d.child("deductions")

	return model.RawPartyTotals{
		FITTaxableWages: d.optNum("fit_taxable_wages"),
		Earnings: model.RawEarnings{
			TotalGross: earnings.optNum("total_gross"),
		},
		Taxes: model.RawTaxes{
			FederalIncomeTaxWithheld: taxes.optNum("federal_income_tax_withheld"),
			SocialSecurityWithheld:   taxes.optNum("social_security_withheld"),
			MedicareWithheld:         taxes.optNum("medicare_withheld"),
		},
		Deductions: model.RawDeductions{
			TotalDeductions: deductions.optNum("total_deductions"),
		},
	}, nil
}

// LoadPayRecordFile reads and decodes one extract file.
func LoadPayRecordFile(path string) ([]model.PayRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParsePayRecords(data, path)
}

// LoadPartyTotalsFile reads and decodes a party annual-totals file.
func LoadPartyTotalsFile(path string) (model.RawPartyTotals, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.RawPartyTotals{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParsePartyTotals(data)
}
