// Package service defines the interfaces between the CLI commands and the
// storage layer.
package service

import (
	"context"

	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

// Storage persists imported pay records and party annual totals so analysis
// commands can run against a local database instead of re-reading extracts.
type Storage interface {
	// SavePayRecords inserts records, skipping duplicates by content hash.
	// It returns the number of records actually inserted.
	SavePayRecords(ctx context.Context, records []model.PayRecord) (int, error)

	// GetPayRecordsByYear returns all records whose pay date falls in the
	// year, plus any records with unparsable dates (they carry no year but
	// still count toward the batch).
	GetPayRecordsByYear(ctx context.Context, year int) ([]model.PayRecord, error)

	// SavePartyTotals upserts one party's raw annual totals.
	SavePartyTotals(ctx context.Context, party string, totals model.RawPartyTotals) error

	// GetPartyTotals returns a party's raw annual totals, or
	// common.ErrNotFound when the party has never been imported. A missing
	// party is deliberately distinguishable from zero-valued totals.
	GetPartyTotals(ctx context.Context, party string) (*model.RawPartyTotals, error)

	// Migrate brings the schema up to the expected version.
	Migrate(ctx context.Context) error

	Close() error
}
