package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisrowe/pay-calc-sub001/internal/common"
	"github.com/krisrowe/pay-calc-sub001/internal/model"
	"github.com/krisrowe/pay-calc-sub001/internal/testutil"
)

func testRecord(day int, ytd float64) model.PayRecord {
	payDate := time.Date(2021, time.January, day, 0, 0, 0, 0, time.UTC)
	r := model.PayRecord{
		PayDate:    payDate,
		RawDate:    payDate.Format("2006-01-02"),
		PayType:    model.PayTypeRegular,
		DateValid:  true,
		SourceFile: "test.json",
		Current:    model.MoneyMap{model.CategoryGross: 2000},
		YearToDate: model.MoneyMap{model.CategoryGross: ytd},
	}
	r.Hash = r.GenerateHash()
	return r
}

func TestSavePayRecords_DeduplicatesByHash(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	records := []model.PayRecord{testRecord(1, 2000), testRecord(15, 4000)}

	inserted, err := store.SavePayRecords(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// Re-importing the same extract inserts nothing.
	inserted, err = store.SavePayRecords(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestGetPayRecordsByYear_RoundTrip(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	otherYear := testRecord(1, 2000)
	otherYear.PayDate = time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)
	otherYear.RawDate = "2020-12-31"
	otherYear.Hash = otherYear.GenerateHash()

	badDate := model.PayRecord{
		RawDate:    "not-a-date",
		PayType:    model.PayTypeRegular,
		Current:    model.MoneyMap{model.CategoryGross: 500},
		YearToDate: model.MoneyMap{model.CategoryGross: 500},
	}
	badDate.Hash = badDate.GenerateHash()

	_, err := store.SavePayRecords(ctx, []model.PayRecord{
		testRecord(1, 2000), testRecord(15, 4000), otherYear, badDate,
	})
	require.NoError(t, err)

	records, err := store.GetPayRecordsByYear(ctx, 2021)
	require.NoError(t, err)

	// Two in-year records plus the undated one; the 2020 record stays out.
	require.Len(t, records, 3)

	var dated, undated int
	for _, r := range records {
		if r.DateValid {
			dated++
			assert.Equal(t, 2021, r.PayDate.Year())
			assert.Equal(t, 2000.0, r.CurrentGross())
		} else {
			undated++
			assert.Equal(t, "not-a-date", r.RawDate)
		}
	}
	assert.Equal(t, 2, dated)
	assert.Equal(t, 1, undated)
}

func TestPartyTotals_RoundTrip(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	wages := 95000.0
	withheld := 12000.0
	totals := model.RawPartyTotals{
		FITTaxableWages: &wages,
		Taxes:           model.RawTaxes{FederalIncomeTaxWithheld: &withheld},
	}

	require.NoError(t, store.SavePartyTotals(ctx, "primary", totals))

	got, err := store.GetPartyTotals(ctx, "primary")
	require.NoError(t, err)
	assert.Equal(t, 95000.0, model.OrZero(got.FITTaxableWages))
	assert.Equal(t, 12000.0, model.OrZero(got.Taxes.FederalIncomeTaxWithheld))
	assert.Nil(t, got.Earnings.TotalGross, "absent fields survive the round trip as absent")

	// Upsert replaces the stored payload.
	wages = 99000.0
	require.NoError(t, store.SavePartyTotals(ctx, "primary", totals))
	got, err = store.GetPartyTotals(ctx, "primary")
	require.NoError(t, err)
	assert.Equal(t, 99000.0, model.OrZero(got.FITTaxableWages))
}

func TestGetPartyTotals_MissingPartyIsNotFound(t *testing.T) {
	store := testutil.SetupTestDB(t)

	_, err := store.GetPartyTotals(context.Background(), "spouse")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
