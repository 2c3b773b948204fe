package store

import (
	"context"
	"fmt"

	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/models"
)

// recordRepository is the SQL-backed implementation of [RecordRepository].
// Records are stored ciphertext-only; this layer never sees plaintext.
type recordRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRecord persists an encrypted health record and returns it with
// server-assigned fields (ID, DatePosted).
func (r *recordRepository) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createRecord, record.UserID, string(record.Kind), record.Ciphertext)

	var created models.Record
	if err := row.Scan(&created.ID, &created.UserID, &created.Kind, &created.Ciphertext, &created.DatePosted); err != nil {
		log.Err(err).
			Str("func", "*recordRepository.CreateRecord").
			Int64("user_id", record.UserID).
			Str("kind", record.Kind.String()).
			Msg("error creating record")

		if isCheckViolation(err) {
			return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return models.Record{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetRecordsByOwner returns every record of the given kind owned by ownerID,
// ordered by creation time descending.
func (r *recordRepository) GetRecordsByOwner(ctx context.Context, ownerID int64, kind models.RecordKind) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getRecordsByOwner, ownerID, string(kind))
	if err != nil {
		log.Err(err).
			Str("func", "*recordRepository.GetRecordsByOwner").
			Int64("user_id", ownerID).
			Str("kind", kind.String()).
			Msg("failed to execute records query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 32)

	for rows.Next() {
		var record models.Record
		if err := rows.Scan(&record.ID, &record.UserID, &record.Kind, &record.Ciphertext, &record.DatePosted); err != nil {
			log.Err(err).
				Str("func", "*recordRepository.GetRecordsByOwner").
				Int64("user_id", ownerID).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*recordRepository.GetRecordsByOwner").
			Int64("user_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
