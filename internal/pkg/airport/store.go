package airport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nordavia/airport-aip-service/internal/app/dto"
)

// ErrNoCachedRecord means no extraction ran for this airport today.
var ErrNoCachedRecord = errors.New("no cached record for today")

// RecordStore persists one extracted record per airport per day. AIP
// publications change on the 28-day AIRAC cycle, so anything extracted
// today is authoritative until midnight; the daily granularity also
// gives a natural audit trail of what the service served when.
type RecordStore struct {
	db *pgxpool.Pool
}

func NewRecordStore(db *pgxpool.Pool) *RecordStore {
	return &RecordStore{
		db: db,
	}
}

// GetForToday returns today's stored record for the airport, or
// ErrNoCachedRecord when the airport has not been extracted yet today.
func (s *RecordStore) GetForToday(ctx context.Context, airportCode string) (dto.AirportRecord, error) {
	row := s.db.QueryRow(ctx,
		`SELECT record FROM airport_records WHERE airport_code = $1 AND day = CURRENT_DATE`,
		airportCode)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.AirportRecord{}, ErrNoCachedRecord
		}

		return dto.AirportRecord{}, fmt.Errorf("failed to query airport record: %w", err)
	}

	var record dto.AirportRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return dto.AirportRecord{}, fmt.Errorf("failed to unmarshal stored record: %w", err)
	}

	return record, nil
}

// Save replaces today's record for the airport. Delete-then-insert keeps
// re-extraction idempotent without an upsert dependency on the schema.
func (s *RecordStore) Save(ctx context.Context, record dto.AirportRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal airport record: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`DELETE FROM airport_records WHERE airport_code = $1 AND day = CURRENT_DATE`,
		record.AirportCode)
	if err != nil {
		return fmt.Errorf("failed to clear today's record: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO airport_records (airport_code, day, record) VALUES ($1, CURRENT_DATE, $2)`,
		record.AirportCode, data)
	if err != nil {
		return fmt.Errorf("failed to insert airport record: %w", err)
	}

	return nil
}

// EnsureSchema creates the daily record table when it does not exist.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS airport_records (
			airport_code TEXT NOT NULL,
			day DATE NOT NULL,
			record JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (airport_code, day)
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure airport_records schema: %w", err)
	}

	return nil
}
