package model

import "time"

// GapKind places a detected gap within the record sequence.
type GapKind string

// Gap kind constants.
const (
	GapStart  GapKind = "start"
	GapMiddle GapKind = "middle"
	GapEnd    GapKind = "end"
)

// Gap is a detected discontinuity in a chronological pay-record sequence.
// BeforeDate and AfterDate are nil exactly when the kind places the gap at a
// sequence boundary.
type Gap struct {
	BeforeDate *time.Time
	AfterDate  *time.Time
	Message    string
	Kind       GapKind
	SpanDays   int
}

// IsError reports whether the gap indicates genuinely missing data.
// Start and middle gaps are errors; end gaps are warnings only, since the
// year may simply be incomplete so far.
func (g Gap) IsError() bool {
	return g.Kind != GapEnd
}

// GapReport aggregates the gaps found in one analysis run.
// If RecordCount is zero the gap list is empty and both dates are nil.
type GapReport struct {
	FirstDate      *time.Time
	LastDate       *time.Time
	Gaps           []Gap
	RecordCount    int
	SkippedRecords int // records excluded from interval math for unparsable dates
}

// Errors returns the gaps that indicate missing data.
func (r GapReport) Errors() []Gap {
	var out []Gap
	for _, g := range r.Gaps {
		if g.IsError() {
			out = append(out, g)
		}
	}
	return out
}

// Warnings returns the gaps that may only reflect an incomplete year.
func (r GapReport) Warnings() []Gap {
	var out []Gap
	for _, g := range r.Gaps {
		if !g.IsError() {
			out = append(out, g)
		}
	}
	return out
}
