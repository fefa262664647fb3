package tax

import (
	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

// AggregateParty normalizes a party's raw annual totals. Every missing field
// resolves to zero; absence of data is never an error at this layer.
// SS-taxable wages are capped at the annual wage base, Medicare wages are not.
func AggregateParty(raw model.RawPartyTotals, ssWageBase float64) model.PartyAggregate {
	gross := model.OrZero(raw.Earnings.TotalGross)

	ssWages := gross
	if ssWages > ssWageBase {
		ssWages = ssWageBase
	}

	return model.PartyAggregate{
		TotalGross:       gross,
		FITTaxableWages:  model.OrZero(raw.FITTaxableWages),
		SSTaxableWages:   ssWages,
		MedicareWages:    gross,
		FederalWithheld:  model.OrZero(raw.Taxes.FederalIncomeTaxWithheld),
		SSWithheld:       model.OrZero(raw.Taxes.SocialSecurityWithheld),
		MedicareWithheld: model.OrZero(raw.Taxes.MedicareWithheld),
		TotalDeductions:  model.OrZero(raw.Deductions.TotalDeductions),
	}
}
