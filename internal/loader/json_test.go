package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

func TestParsePayRecords_SingleObject(t *testing.T) {
	data := []byte(`{
		"pay_date": "2021-01-15",
		"_pay_type": "regular",
		"pay_summary": {
			"current": {"gross": 2500.00, "federal_income_tax_withheld": 300.00},
			"ytd": {"gross": 5000.00}
		}
	}`)

	records, err := ParsePayRecords(data, "stub.json")
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.True(t, r.DateValid)
	assert.Equal(t, "2021-01-15", r.PayDate.Format("2006-01-02"))
	assert.Equal(t, model.PayTypeRegular, r.PayType)
	assert.Equal(t, 2500.00, r.CurrentGross())
	assert.Equal(t, 5000.00, r.YTDGross())
	assert.Equal(t, 300.00, r.Current.Get(model.CategoryFederalWithheld))
	assert.NotEmpty(t, r.Hash)
	assert.Equal(t, "stub.json", r.SourceFile)
}

func TestParsePayRecords_Array(t *testing.T) {
	data := []byte(`[
		{"pay_date": "2021-01-01", "_pay_type": "regular", "pay_summary": {"current": {"gross": 1}, "ytd": {"gross": 1}}},
		{"pay_date": "2021-01-15", "_pay_type": "regular", "pay_summary": {"current": {"gross": 1}, "ytd": {"gross": 2}}}
	]`)

	records, err := ParsePayRecords(data, "stubs.json")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParsePayRecords_UnparsableDateIsNonFatal(t *testing.T) {
	data := []byte(`{"pay_date": "January 15th", "_pay_type": "regular"}`)

	records, err := ParsePayRecords(data, "stub.json")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.False(t, records[0].DateValid)
	assert.Equal(t, "January 15th", records[0].RawDate)
}

func TestParsePayRecords_MissingAndMistypedFieldsDefaultToZero(t *testing.T) {
	data := []byte(`{
		"pay_date": "2021-02-01",
		"pay_summary": {"current": {"gross": "oops"}}
	}`)

	records, err := ParsePayRecords(data, "stub.json")
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Zero(t, r.CurrentGross(), "mistyped gross resolves to zero, not an error")
	assert.Zero(t, r.YTDGross(), "absent ytd section resolves to zero")
	assert.Empty(t, r.PayType)
}

func TestParsePayRecords_Malformed(t *testing.T) {
	_, err := ParsePayRecords([]byte(`{"pay_date": `), "bad.json")
	assert.Error(t, err)

	_, err = ParsePayRecords([]byte("  \n"), "empty.json")
	assert.Error(t, err)
}

func TestParsePartyTotals(t *testing.T) {
	data := []byte(`{
		"fit_taxable_wages": 95000.00,
		"earnings": {"total_gross": 100000.00},
		"taxes": {
			"federal_income_tax_withheld": 12000.00,
			"social_security_withheld": 6200.00
		},
		"deductions": {"total_deductions": 5000.00}
	}`)

	totals, err := ParsePartyTotals(data)
	require.NoError(t, err)

	assert.Equal(t, 95000.00, model.OrZero(totals.FITTaxableWages))
	assert.Equal(t, 100000.00, model.OrZero(totals.Earnings.TotalGross))
	assert.Equal(t, 12000.00, model.OrZero(totals.Taxes.FederalIncomeTaxWithheld))
	assert.Equal(t, 6200.00, model.OrZero(totals.Taxes.SocialSecurityWithheld))
	assert.Nil(t, totals.Taxes.MedicareWithheld, "absent keys stay absent, not zero")
	assert.Equal(t, 5000.00, model.OrZero(totals.Deductions.TotalDeductions))
}

func TestParsePartyTotals_EmptyObject(t *testing.T) {
	totals, err := ParsePartyTotals([]byte(`{}`))
	require.NoError(t, err)

	assert.Nil(t, totals.FITTaxableWages)
	assert.Nil(t, totals.Earnings.TotalGross)
	assert.Nil(t, totals.Taxes.FederalIncomeTaxWithheld)
}
