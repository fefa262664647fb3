package gaps

import (
	"fmt"
	"math"
	"sort"

	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

// firstPeriodTolerance is the cent-level tolerance when comparing the first
// regular record's YTD gross against its current-period gross.
const firstPeriodTolerance = 0.01

// CheckFirstPeriod verifies that the earliest regular pay record starts the
// year: its YTD gross should equal its current-period gross. A mismatch
// means the true first record was never supplied, even when no date gap was
// detected. The returned message is empty when the check passes or when no
// regular record with a valid date exists.
func CheckFirstPeriod(records []model.PayRecord) (bool, string) {
	regular := make([]model.PayRecord, 0, len(records))
	for _, r := range records {
		if r.DateValid && r.PayType == model.PayTypeRegular {
			regular = append(regular, r)
		}
	}
	if len(regular) == 0 {
		return true, ""
	}
	sort.SliceStable(regular, func(i, j int) bool {
		return regular[i].PayDate.Before(regular[j].PayDate)
	})

	first := regular[0]
	ytd := first.YTDGross()
	current := first.CurrentGross()
	if math.Abs(ytd-current) <= firstPeriodTolerance {
		return true, ""
	}
	return false, fmt.Sprintf(
		"first regular record on %s has YTD gross %.2f but current gross %.2f; the year's first record appears to be missing",
		first.PayDate.Format("2006-01-02"), ytd, current)
}
