package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/krisrowe/pay-calc-sub001/internal/common"
	"github.com/krisrowe/pay-calc-sub001/internal/config"
	"github.com/krisrowe/pay-calc-sub001/internal/model"
	"github.com/krisrowe/pay-calc-sub001/internal/service"
	"github.com/krisrowe/pay-calc-sub001/internal/storage"
	"github.com/krisrowe/pay-calc-sub001/internal/tax"
)

// openStorage opens the configured database and brings the schema current.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return nil, common.NewUserError("failed to open database", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, common.NewUserError("failed to migrate database", err)
	}
	return store, nil
}

// loadParty fetches one party's stored totals, mapping "never imported" to a
// nil pointer so the projection engine can apply its missing-source policy.
func loadParty(ctx context.Context, store service.Storage, party string) (*model.RawPartyTotals, error) {
	totals, err := store.GetPartyTotals(ctx, party)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// runProjection loads both parties and the tax-year config and projects.
func runProjection(ctx context.Context, store service.Storage, scope tax.OverpaymentScope, zeroFill bool) (model.ProjectionResult, error) {
	year, err := config.LoadTaxYear()
	if err != nil {
		return model.ProjectionResult{}, err
	}

	primary, err := loadParty(ctx, store, tax.PartyPrimary)
	if err != nil {
		return model.ProjectionResult{}, err
	}
	spouse, err := loadParty(ctx, store, tax.PartySpouse)
	if err != nil {
		return model.ProjectionResult{}, err
	}

	return tax.Project(primary, spouse, tax.Config{
		Schedule:          year.Brackets,
		StandardDeduction: year.StandardDeduction,
		SSWageBase:        year.SSWageBase,
		SSRate:            year.SSRate,
		Overpayment:       scope,
		ZeroFillMissing:   zeroFill,
	})
}

// parseOverpaymentScope maps the flag value onto an engine scope.
func parseOverpaymentScope(value string) (tax.OverpaymentScope, error) {
	switch value {
	case "spouse":
		return tax.OverpaymentSpouseOnly, nil
	case "primary":
		return tax.OverpaymentPrimaryOnly, nil
	case "both":
		return tax.OverpaymentBoth, nil
	case "none":
		return tax.OverpaymentNone, nil
	default:
		return 0, fmt.Errorf("invalid overpayment scope %q (want primary, spouse, both or none)", value)
	}
}
