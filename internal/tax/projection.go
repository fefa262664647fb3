package tax

import (
	"fmt"

	"github.com/krisrowe/pay-calc-sub001/internal/common"
	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

// OverpaymentScope selects which parties the SS overpayment check applies to.
// The check only matters for a party who changed employers mid-year; which
// party that is cannot be inferred from the totals alone, so it is explicit
// configuration.
type OverpaymentScope int

// Overpayment scope constants.
const (
	// OverpaymentSpouseOnly applies the check to the spouse only.
	OverpaymentSpouseOnly OverpaymentScope = iota
	// OverpaymentPrimaryOnly applies the check to the primary party only.
	OverpaymentPrimaryOnly
	// OverpaymentBoth applies the check to both parties.
	OverpaymentBoth
	// OverpaymentNone disables the check.
	OverpaymentNone
)

// Config carries the external tax-year parameters a projection needs.
// None of these are hardcoded in the engine, so other years and
// jurisdictions can be supplied.
type Config struct {
	Schedule          model.TaxBracketSchedule
	StandardDeduction float64
	SSWageBase        float64
	SSRate            float64
	Overpayment       OverpaymentScope

	// ZeroFillMissing opts into projecting a missing party as all zeros.
	// Without it a missing party is a hard stop, distinct from a real $0
	// income.
	ZeroFillMissing bool
}

// Party labels used in projection output.
const (
	PartyPrimary = "primary"
	PartySpouse  = "spouse"
)

// Project computes a combined two-party projection. A nil party means that
// party's annual totals were entirely absent from the source; unless
// cfg.ZeroFillMissing is set this returns common.ErrMissingPartyData rather
// than silently projecting a zero income.
func Project(primary, spouse *model.RawPartyTotals, cfg Config) (model.ProjectionResult, error) {
	if err := cfg.Schedule.Validate(); err != nil {
		return model.ProjectionResult{}, fmt.Errorf("%w: %v", common.ErrInvalidSchedule, err)
	}

	resolve := func(raw *model.RawPartyTotals, label string) (model.PartyAggregate, error) {
		if raw == nil {
			if !cfg.ZeroFillMissing {
				return model.PartyAggregate{}, fmt.Errorf("%w: %s", common.ErrMissingPartyData, label)
			}
			return model.PartyAggregate{}, nil
		}
		return AggregateParty(*raw, cfg.SSWageBase), nil
	}

	p, err := resolve(primary, PartyPrimary)
	if err != nil {
		return model.ProjectionResult{}, err
	}
	s, err := resolve(spouse, PartySpouse)
	if err != nil {
		return model.ProjectionResult{}, err
	}

	return project(p, s, cfg), nil
}

// project is the purely arithmetic composition over two aggregates.
func project(primary, spouse model.PartyAggregate, cfg Config) model.ProjectionResult {
	// Negative taxable income is not an error; the bracket calculator
	// treats it as zero tax.
	taxable := primary.FITTaxableWages + spouse.FITTaxableWages - cfg.StandardDeduction
	liability := Tax(taxable, cfg.Schedule)

	totalWithheld := primary.FederalWithheld + spouse.FederalWithheld

	statutoryMax := cfg.SSWageBase * cfg.SSRate
	var overpayment float64
	switch cfg.Overpayment {
	case OverpaymentPrimaryOnly:
		overpayment = SSOverpayment(primary.SSWithheld, statutoryMax)
	case OverpaymentSpouseOnly:
		overpayment = SSOverpayment(spouse.SSWithheld, statutoryMax)
	case OverpaymentBoth:
		overpayment = SSOverpayment(primary.SSWithheld, statutoryMax) +
			SSOverpayment(spouse.SSWithheld, statutoryMax)
	case OverpaymentNone:
	}

	return model.ProjectionResult{
		TaxableIncome: taxable,
		TaxAssessed:   liability,
		Breakdown:     Breakdown(taxable, cfg.Schedule),
		Withholding: []model.PartyWithholding{
			{Party: PartyPrimary, Amount: primary.FederalWithheld},
			{Party: PartySpouse, Amount: spouse.FederalWithheld},
		},
		TotalWithheld: totalWithheld,
		SSOverpayment: overpayment,
		Net:           totalWithheld + overpayment - liability,
	}
}
