package tax

// SSOverpayment returns the excess of SS tax withheld over the statutory
// single-employer maximum (wage base x SS rate), or zero when there is none.
// The result is never negative. Combined withholding can exceed the maximum
// when a party changed employers mid-year, since each employer independently
// withholds up to the per-employer cap.
func SSOverpayment(withheld, statutoryMax float64) float64 {
	if withheld > statutoryMax {
		return withheld - statutoryMax
	}
	return 0
}
