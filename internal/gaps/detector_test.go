package gaps

import (
	"testing"
	"time"

	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(payDate time.Time, current, ytd float64) model.PayRecord {
	return model.PayRecord{
		PayDate:    payDate,
		RawDate:    payDate.Format("2006-01-02"),
		PayType:    model.PayTypeRegular,
		DateValid:  true,
		Current:    model.MoneyMap{model.CategoryGross: current},
		YearToDate: model.MoneyMap{model.CategoryGross: ytd},
	}
}

func badDateRecord(raw string) model.PayRecord {
	return model.PayRecord{
		RawDate: raw,
		PayType: model.PayTypeRegular,
	}
}

func TestDetect_CanonicalScenario(t *testing.T) {
	// Biweekly stubs through Jan, then nothing until Mar 15, then nothing
	// for the rest of the year.
	records := []model.PayRecord{
		record(date(2021, time.January, 3), 2000, 2000),
		record(date(2021, time.January, 17), 2000, 4000),
		record(date(2021, time.January, 31), 2000, 6000),
		record(date(2021, time.March, 15), 2000, 8000),
	}
	today := date(2021, time.December, 1)

	report := Detect(records, 2021, today, DefaultConfig())

	if report.RecordCount != 4 {
		t.Fatalf("RecordCount = %d, want 4", report.RecordCount)
	}
	if len(report.Gaps) != 2 {
		t.Fatalf("got %d gaps, want 2: %+v", len(report.Gaps), report.Gaps)
	}

	middle := report.Gaps[0]
	if middle.Kind != model.GapMiddle {
		t.Errorf("first gap kind = %s, want middle", middle.Kind)
	}
	if middle.SpanDays != 43 {
		t.Errorf("middle gap span = %d, want 43", middle.SpanDays)
	}
	if middle.BeforeDate == nil || !middle.BeforeDate.Equal(date(2021, time.January, 31)) {
		t.Errorf("middle gap before = %v, want Jan 31", middle.BeforeDate)
	}
	if middle.AfterDate == nil || !middle.AfterDate.Equal(date(2021, time.March, 15)) {
		t.Errorf("middle gap after = %v, want Mar 15", middle.AfterDate)
	}

	end := report.Gaps[1]
	if end.Kind != model.GapEnd {
		t.Errorf("second gap kind = %s, want end", end.Kind)
	}
	if end.AfterDate != nil {
		t.Errorf("end gap after = %v, want nil at sequence boundary", end.AfterDate)
	}

	// start/middle are errors, end is a warning.
	if n := len(report.Errors()); n != 1 {
		t.Errorf("Errors() = %d gaps, want 1", n)
	}
	if n := len(report.Warnings()); n != 1 {
		t.Errorf("Warnings() = %d gaps, want 1", n)
	}
}

func TestDetect_StartGap(t *testing.T) {
	records := []model.PayRecord{
		record(date(2021, time.February, 15), 2000, 2000),
		record(date(2021, time.March, 1), 2000, 4000),
	}
	today := date(2021, time.March, 10)

	report := Detect(records, 2021, today, DefaultConfig())

	if len(report.Gaps) != 1 {
		t.Fatalf("got %d gaps, want 1 start gap: %+v", len(report.Gaps), report.Gaps)
	}
	gap := report.Gaps[0]
	if gap.Kind != model.GapStart {
		t.Fatalf("gap kind = %s, want start", gap.Kind)
	}
	if gap.SpanDays != 45 {
		t.Errorf("start gap span = %d, want 45", gap.SpanDays)
	}
	if gap.BeforeDate == nil || !gap.BeforeDate.Equal(date(2021, time.February, 15)) {
		t.Errorf("start gap before = %v, want first record date", gap.BeforeDate)
	}
	if gap.AfterDate != nil {
		t.Errorf("start gap after = %v, want nil at sequence boundary", gap.AfterDate)
	}
}

func TestDetect_EmployerTransitionSuppressed(t *testing.T) {
	// 30-day span with a YTD reset from 45000 to 3000: a new employer, not
	// missing data.
	records := []model.PayRecord{
		record(date(2021, time.June, 1), 3000, 45000),
		record(date(2021, time.July, 1), 3000, 3000),
	}
	today := date(2021, time.July, 10)

	report := Detect(records, 2021, today, DefaultConfig())

	for _, g := range report.Gaps {
		if g.Kind == model.GapMiddle {
			t.Errorf("employer transition must not produce a middle gap: %+v", g)
		}
	}
}

func TestDetect_NoSpuriousGapAtBiweeklySpacing(t *testing.T) {
	records := []model.PayRecord{
		record(date(2021, time.January, 3), 2000, 2000),
		record(date(2021, time.January, 17), 2000, 4000),
		record(date(2021, time.January, 31), 2000, 6000),
	}
	today := date(2021, time.February, 5)

	report := Detect(records, 2021, today, DefaultConfig())

	if len(report.Gaps) != 0 {
		t.Errorf("got %d gaps at regular spacing, want none: %+v", len(report.Gaps), report.Gaps)
	}
}

func TestDetect_EndGapUsesEarlierOfTodayAndYearEnd(t *testing.T) {
	records := []model.PayRecord{
		record(date(2021, time.June, 1), 2000, 2000),
	}

	// Mid-year analysis shortly after the last record: no end gap even
	// though year-end is far away.
	report := Detect(records, 2021, date(2021, time.June, 10), DefaultConfig())
	if len(report.Warnings()) != 0 {
		t.Errorf("mid-year analysis flagged an end gap: %+v", report.Warnings())
	}

	// Analysis long after year-end measures against Dec 31, not today.
	report = Detect(records, 2021, date(2022, time.June, 1), DefaultConfig())
	warnings := report.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("got %d end gaps, want 1", len(warnings))
	}
	if want := daysBetween(date(2021, time.June, 1), date(2021, time.December, 31)); warnings[0].SpanDays != want {
		t.Errorf("end gap span = %d, want %d (measured to year-end)", warnings[0].SpanDays, want)
	}
}

func TestDetect_UnparsableDatesDoNotCorruptScan(t *testing.T) {
	// The bad record sits between two records 14 days apart; skipping it
	// must not make its neighbors look non-adjacent, nor fabricate a gap.
	records := []model.PayRecord{
		record(date(2021, time.January, 3), 2000, 2000),
		badDateRecord("not-a-date"),
		record(date(2021, time.January, 17), 2000, 4000),
	}
	today := date(2021, time.January, 20)

	report := Detect(records, 2021, today, DefaultConfig())

	if report.RecordCount != 2 {
		t.Errorf("RecordCount = %d, want 2 date-valid records", report.RecordCount)
	}
	if report.SkippedRecords != 1 {
		t.Errorf("SkippedRecords = %d, want 1", report.SkippedRecords)
	}
	if len(report.Gaps) != 0 {
		t.Errorf("got %d gaps, want none: %+v", len(report.Gaps), report.Gaps)
	}
}

func TestDetect_EmptyInput(t *testing.T) {
	report := Detect(nil, 2021, date(2021, time.December, 31), DefaultConfig())

	if report.RecordCount != 0 || len(report.Gaps) != 0 {
		t.Errorf("empty input: RecordCount = %d, gaps = %d, want 0/0", report.RecordCount, len(report.Gaps))
	}
	if report.FirstDate != nil || report.LastDate != nil {
		t.Errorf("empty input: dates must be nil, got %v/%v", report.FirstDate, report.LastDate)
	}
}

func TestEstimateMissedPeriods(t *testing.T) {
	tests := []struct {
		spanDays int
		want     int
	}{
		{21, 1},
		{28, 1},
		{35, 2},
		{43, 2},
		{63, 4},
	}
	for _, tt := range tests {
		if got := estimateMissedPeriods(tt.spanDays); got != tt.want {
			t.Errorf("estimateMissedPeriods(%d) = %d, want %d", tt.spanDays, got, tt.want)
		}
	}
}

func TestCheckFirstPeriod(t *testing.T) {
	t.Run("consistent first record", func(t *testing.T) {
		records := []model.PayRecord{
			record(date(2021, time.January, 3), 2000, 2000),
			record(date(2021, time.January, 17), 2000, 4000),
		}
		ok, msg := CheckFirstPeriod(records)
		if !ok || msg != "" {
			t.Errorf("CheckFirstPeriod = (%v, %q), want consistent", ok, msg)
		}
	})

	t.Run("missing first record", func(t *testing.T) {
		// YTD already ahead of the current period: an earlier record was
		// never supplied even though no date gap exists.
		records := []model.PayRecord{
			record(date(2021, time.January, 17), 2000, 4000),
			record(date(2021, time.January, 31), 2000, 6000),
		}
		ok, msg := CheckFirstPeriod(records)
		if ok || msg == "" {
			t.Errorf("CheckFirstPeriod = (%v, %q), want inconsistency reported", ok, msg)
		}
	})

	t.Run("bonus records ignored", func(t *testing.T) {
		bonus := record(date(2021, time.January, 2), 5000, 5000)
		bonus.PayType = model.PayTypeBonus
		records := []model.PayRecord{
			bonus,
			record(date(2021, time.January, 10), 2000, 7000),
		}
		// The earliest regular record's YTD includes the bonus, so the
		// check must flag it; the bonus itself is not a regular record.
		ok, _ := CheckFirstPeriod(records)
		if ok {
			t.Error("CheckFirstPeriod ignored the regular-record filter")
		}
	})

	t.Run("within a cent", func(t *testing.T) {
		r := record(date(2021, time.January, 3), 2000.00, 2000.009)
		ok, _ := CheckFirstPeriod([]model.PayRecord{r})
		if !ok {
			t.Error("difference under a cent should be consistent")
		}
	})
}
