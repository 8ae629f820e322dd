package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/models"
)

const (
	recordsTable  = "records"
	settingsTable = "settings"
)

var (
	recordColumns = []string{"id", "kind", "title", "text", "last_modified"}

	// sqlite uses ? placeholders
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func buildSelectAllRecordsQuery() (string, []any, error) {
	query, args, err := sqlite.
		Select(recordColumns...).
		From(recordsTable).
		OrderBy("last_modified DESC", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectRecordQuery(id uuid.UUID) (string, []any, error) {
	query, args, err := sqlite.
		Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

const upsertRecordSuffix = `ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			title = excluded.title,
			text = excluded.text,
			last_modified = excluded.last_modified`

func insertRecord(record models.Record) sq.InsertBuilder {
	return sqlite.
		Insert(recordsTable).
		Columns(recordColumns...).
		Values(
			record.ID.String(),
			string(record.Kind),
			record.Title,
			record.Text,
			record.LastModified.UnixNano(),
		)
}

func buildUpsertRecordQuery(record models.Record) (string, []any, error) {
	query, args, err := insertRecord(record).
		Suffix(upsertRecordSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildMergeUpsertRecordQuery only replaces a stored row that is older than
// record, so a local edit committed after the merge read its input survives.
func buildMergeUpsertRecordQuery(record models.Record) (string, []any, error) {
	query, args, err := insertRecord(record).
		Suffix(upsertRecordSuffix + " WHERE excluded.last_modified > records.last_modified").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteRecordQuery(id uuid.UUID) (string, []any, error) {
	query, args, err := sqlite.
		Delete(recordsTable).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildMergeDeleteRecordQuery deletes the row only while it is still the
// version the merge saw.
func buildMergeDeleteRecordQuery(seen models.Record) (string, []any, error) {
	query, args, err := sqlite.
		Delete(recordsTable).
		Where(sq.Eq{"id": seen.ID.String()}).
		Where(sq.LtOrEq{"last_modified": seen.LastModified.UnixNano()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetSettingQuery(namespace, key string) (string, []any, error) {
	query, args, err := sqlite.
		Select("value").
		From(settingsTable).
		Where(sq.And{sq.Eq{"namespace": namespace}, sq.Eq{"key": key}}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSetSettingQuery(namespace, key, value string) (string, []any, error) {
	query, args, err := sqlite.
		Insert(settingsTable).
		Columns("namespace", "key", "value").
		Values(namespace, key, value).
		Suffix("ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSettingQuery(namespace, key string) (string, []any, error) {
	query, args, err := sqlite.
		Delete(settingsTable).
		Where(sq.And{sq.Eq{"namespace": namespace}, sq.Eq{"key": key}}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
