// Package gaps analyzes a chronological pay-record sequence for missing
// periods, distinguishing genuine data gaps from employer transitions.
package gaps

import (
	"fmt"
	"sort"
	"time"

	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

// Config carries the detection thresholds. These are external configuration
// so other pay cadences can be supported.
type Config struct {
	// MaxIntervalDays is the longest span between consecutive records that
	// is not considered a gap. Roughly 1.5x a biweekly cycle.
	MaxIntervalDays int
	// TransitionMateriality is the minimum prior YTD gross for an employer
	// transition to be recognized.
	TransitionMateriality float64
	// TransitionDropRatio is the YTD-gross drop (next/prior) below which a
	// reset indicates a new employer rather than missing data.
	TransitionDropRatio float64
}

// DefaultConfig returns the standard biweekly-cycle thresholds.
func DefaultConfig() Config {
	return Config{
		MaxIntervalDays:       20,
		TransitionMateriality: 10000,
		TransitionDropRatio:   0.5,
	}
}

// scanState is the accumulator threaded through the left-to-right scan.
// It only advances on records with a successfully parsed date, so a skipped
// record never lets its predecessor appear adjacent across an arbitrary span.
type scanState struct {
	prevDate time.Time
	prevYTD  float64
	seen     bool
}

// Detect scans the records for the given year and reports start, middle and
// end gaps. Records without a parseable date are excluded from interval math
// and counted in SkippedRecords. The end-gap reference is the earlier of
// today and December 31, so a mid-year analysis does not flag periods that
// have not happened yet.
func Detect(records []model.PayRecord, year int, today time.Time, cfg Config) model.GapReport {
	valid := make([]model.PayRecord, 0, len(records))
	skipped := 0
	for _, r := range records {
		if r.DateValid {
			valid = append(valid, r)
		} else {
			skipped++
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].PayDate.Before(valid[j].PayDate)
	})

	report := model.GapReport{
		RecordCount:    len(valid),
		SkippedRecords: skipped,
	}
	if len(valid) == 0 {
		return report
	}

	first := valid[0].PayDate
	last := valid[len(valid)-1].PayDate
	report.FirstDate = &first
	report.LastDate = &last

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	if span := daysBetween(yearStart, first); span > cfg.MaxIntervalDays {
		before := first
		report.Gaps = append(report.Gaps, model.Gap{
			Kind:       model.GapStart,
			SpanDays:   span,
			BeforeDate: &before,
			Message: fmt.Sprintf("first record on %s is %d days into the year; earlier records appear to be missing",
				first.Format("2006-01-02"), span),
		})
	}

	state := scanState{}
	for _, r := range valid {
		if state.seen {
			span := daysBetween(state.prevDate, r.PayDate)
			if span > cfg.MaxIntervalDays && !isEmployerTransition(state.prevYTD, r.YTDGross(), cfg) {
				before := state.prevDate
				after := r.PayDate
				missed := estimateMissedPeriods(span)
				report.Gaps = append(report.Gaps, model.Gap{
					Kind:       model.GapMiddle,
					SpanDays:   span,
					BeforeDate: &before,
					AfterDate:  &after,
					Message: fmt.Sprintf("%d days between %s and %s; about %d pay period(s) missing",
						span, before.Format("2006-01-02"), after.Format("2006-01-02"), missed),
				})
			}
		}
		state = scanState{prevDate: r.PayDate, prevYTD: r.YTDGross(), seen: true}
	}

	reference := yearEnd
	if today.Before(reference) {
		reference = today
	}
	if span := daysBetween(last, reference); span > cfg.MaxIntervalDays {
		before := last
		report.Gaps = append(report.Gaps, model.Gap{
			Kind:       model.GapEnd,
			SpanDays:   span,
			BeforeDate: &before,
			Message: fmt.Sprintf("last record on %s is %d days before %s; later records may be missing",
				last.Format("2006-01-02"), span, reference.Format("2006-01-02")),
		})
	}

	return report
}

// isEmployerTransition reports whether a long span between records reflects a
// YTD reset at a new employer rather than missing data.
func isEmployerTransition(prevYTD, nextYTD float64, cfg Config) bool {
	return prevYTD > cfg.TransitionMateriality && nextYTD < prevYTD*cfg.TransitionDropRatio
}

// estimateMissedPeriods estimates missed biweekly pay periods in a gap.
func estimateMissedPeriods(spanDays int) int {
	n := (spanDays - 7) / 14
	if n < 1 {
		return 1
	}
	return n
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
