package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	gojson "github.com/goccy/go-json"

	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

const payDateLayout = "2006-01-02"

// SavePayRecords inserts records, skipping duplicates by content hash.
// It returns the number of records actually inserted.
func (s *SQLiteStorage) SavePayRecords(ctx context.Context, records []model.PayRecord) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO pay_records (
			hash, pay_date, date_valid, pay_type, current_totals, ytd_totals, source_file
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for _, r := range records {
		if r.Hash == "" {
			r.Hash = r.GenerateHash()
		}

		currentJSON, err := gojson.Marshal(r.Current)
		if err != nil {
			return inserted, fmt.Errorf("failed to encode current totals: %w", err)
		}
		ytdJSON, err := gojson.Marshal(r.YearToDate)
		if err != nil {
			return inserted, fmt.Errorf("failed to encode ytd totals: %w", err)
		}

		var payDate any
		if r.DateValid {
			payDate = r.PayDate.Format(payDateLayout)
		} else {
			payDate = r.RawDate
		}

		res, err := stmt.ExecContext(ctx,
			r.Hash,
			payDate,
			r.DateValid,
			r.PayType,
			string(currentJSON),
			string(ytdJSON),
			r.SourceFile,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert pay record: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("failed to commit: %w", err)
	}
	return inserted, nil
}

// GetPayRecordsByYear returns records whose pay date falls in the year,
// together with any records whose date never parsed (those stay in the batch
// so callers can count them).
func (s *SQLiteStorage) GetPayRecordsByYear(ctx context.Context, year int) ([]model.PayRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT hash, pay_date, date_valid, pay_type, current_totals, ytd_totals, source_file
		FROM pay_records
		WHERE date_valid = 0 OR (pay_date >= ? AND pay_date <= ?)
		ORDER BY pay_date
	`, fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year))
	if err != nil {
		return nil, fmt.Errorf("failed to query pay records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.PayRecord
	for rows.Next() {
		r, err := scanPayRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pay records: %w", err)
	}
	return records, nil
}

func scanPayRecord(rows *sql.Rows) (model.PayRecord, error) {
	var (
		r           model.PayRecord
		payDate     sql.NullString
		currentJSON string
		ytdJSON     string
		sourceFile  sql.NullString
	)
	if err := rows.Scan(&r.Hash, &payDate, &r.DateValid, &r.PayType,
		&currentJSON, &ytdJSON, &sourceFile); err != nil {
		return model.PayRecord{}, fmt.Errorf("failed to scan pay record: %w", err)
	}

	r.RawDate = payDate.String
	r.SourceFile = sourceFile.String
	if r.DateValid {
		parsed, err := time.Parse(payDateLayout, payDate.String)
		if err != nil {
			// Stored as valid but no longer parseable; degrade rather
			// than fail the whole read.
			r.DateValid = false
		} else {
			r.PayDate = parsed
		}
	}

	if err := gojson.Unmarshal([]byte(currentJSON), &r.Current); err != nil {
		return model.PayRecord{}, fmt.Errorf("failed to decode current totals: %w", err)
	}
	if err := gojson.Unmarshal([]byte(ytdJSON), &r.YearToDate); err != nil {
		return model.PayRecord{}, fmt.Errorf("failed to decode ytd totals: %w", err)
	}
	return r, nil
}
