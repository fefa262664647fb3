package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/krisrowe/pay-calc-sub001/internal/common"
	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

// SavePartyTotals upserts one party's raw annual totals.
func (s *SQLiteStorage) SavePartyTotals(ctx context.Context, party string, totals model.RawPartyTotals) error {
	if party == "" {
		return fmt.Errorf("party must not be empty")
	}

	payload, err := gojson.Marshal(totals)
	if err != nil {
		return fmt.Errorf("failed to encode party totals: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO party_totals (party, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(party) DO UPDATE SET
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP
	`, party, string(payload))
	if err != nil {
		return fmt.Errorf("failed to save party totals: %w", err)
	}
	return nil
}

// GetPartyTotals returns a party's raw annual totals. A party that was never
// imported yields common.ErrNotFound, which callers treat as the
// missing-data hard stop rather than a zero income.
func (s *SQLiteStorage) GetPartyTotals(ctx context.Context, party string) (*model.RawPartyTotals, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM party_totals WHERE party = ?`, party,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: party %q", common.ErrNotFound, party)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query party totals: %w", err)
	}

	var totals model.RawPartyTotals
	if err := gojson.Unmarshal([]byte(payload), &totals); err != nil {
		return nil, fmt.Errorf("failed to decode party totals: %w", err)
	}
	return &totals, nil
}
