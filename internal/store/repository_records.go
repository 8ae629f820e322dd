// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// localRecordRepository is the SQLite-backed implementation of
// [LocalRecordRepository]. Timestamps are stored as Unix nanoseconds so that
// last-writer-wins comparisons survive a round trip unchanged.
type localRecordRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalRecordRepository constructs a [LocalRecordRepository] over db.
func NewLocalRecordRepository(db *DB, logger *logger.Logger) LocalRecordRepository {
	return &localRecordRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var (
		id       string
		kind     string
		title    sql.NullString
		text     sql.NullString
		modified int64
	)
	if err := row.Scan(&id, &kind, &title, &text, &modified); err != nil {
		return models.Record{}, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return models.Record{}, fmt.Errorf("invalid record id %q: %w", id, err)
	}

	record := models.Record{
		ID:           parsedID,
		Kind:         models.RecordKind(kind),
		LastModified: time.Unix(0, modified).UTC(),
	}
	if title.Valid {
		record.Title = &title.String
	}
	if text.Valid {
		record.Text = &text.String
	}
	return record, nil
}

func (r *localRecordRepository) GetAll(ctx context.Context) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllRecordsQuery()
	if err != nil {
		log.Err(err).Str("func", "localRecordRepository.GetAll").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localRecordRepository.GetAll").Msg("failed to execute query for getting all records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 32)
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "localRecordRepository.GetAll").Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "localRecordRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func (r *localRecordRepository) Get(ctx context.Context, id uuid.UUID) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordQuery(id)
	if err != nil {
		log.Err(err).Str("func", "localRecordRepository.Get").Msg("failed to create query")
		return models.Record{}, err
	}

	record, err := scanRecord(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.Get").
			Str("id", id.String()).
			Msg("failed to scan record row")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (r *localRecordRepository) Upsert(ctx context.Context, record models.Record) error {
	return upsertRecord(ctx, r.DB.DB, record)
}

func (r *localRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteRecord(ctx, r.DB.DB, id)
}

func (r *localRecordRepository) Apply(ctx context.Context, upserts []models.Record, deletes []models.Record) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localRecordRepository.Apply").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	kept := 0
	for _, record := range upserts {
		query, args, err := buildMergeUpsertRecordQuery(record)
		if err != nil {
			return err
		}
		applied, err := execMerge(ctx, tx, query, args, record.ID)
		if err != nil {
			return err
		}
		if !applied {
			kept++
		}
	}
	for _, seen := range deletes {
		query, args, err := buildMergeDeleteRecordQuery(seen)
		if err != nil {
			return err
		}
		applied, err := execMerge(ctx, tx, query, args, seen.ID)
		if err != nil {
			return err
		}
		if !applied {
			kept++
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "localRecordRepository.Apply").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "localRecordRepository.Apply").
		Int("upserts", len(upserts)).
		Int("deletes", len(deletes)).
		Int("kept_local", kept).
		Msg("merge applied")
	return nil
}

// execMerge runs one guarded merge statement and reports whether it changed
// a row. A guard that rejects the write leaves a newer local edit in place.
func execMerge(ctx context.Context, tx *sql.Tx, query string, args []any, id uuid.UUID) (bool, error) {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localRecordRepository.Apply").
			Str("id", id.String()).
			Msg("failed to execute merge statement")
		return false, fmt.Errorf("%w: merge record %s: %w", ErrExecutingStatement, id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return true, nil
	}
	return n > 0, nil
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertRecord(ctx context.Context, db execer, record models.Record) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertRecordQuery(record)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.Upsert").
			Str("id", record.ID.String()).
			Msg("failed to execute upsert for record")
		return fmt.Errorf("%w: upsert record %s: %w", ErrExecutingStatement, record.ID, err)
	}
	return nil
}

func deleteRecord(ctx context.Context, db execer, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(id)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.Delete").
			Str("id", id.String()).
			Msg("failed to execute delete for record")
		return fmt.Errorf("%w: delete record %s: %w", ErrExecutingStatement, id, err)
	}
	return nil
}
