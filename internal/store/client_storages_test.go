// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// TestClientStorages_SQLiteRoundTrip runs the repositories against a real
// SQLite file with the embedded migrations applied.
func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "notes.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	records := storages.RecordRepository
	ts := time.Date(2026, 5, 1, 10, 0, 0, 987654321, time.UTC)
	note := models.NewNote(uuid.New(), "shopping", "milk", ts)
	clip := models.NewClipboardEntry(uuid.New(), "copied", ts.Add(time.Second))

	require.NoError(t, records.Upsert(ctx, note))
	require.NoError(t, records.Upsert(ctx, clip))

	all, err := records.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, clip, all[0])
	assert.Equal(t, note, all[1])

	note.Text = ptr("milk, eggs")
	note.LastModified = ts.Add(time.Minute)
	require.NoError(t, records.Apply(ctx, []models.Record{note}, []models.Record{clip}))

	got, err := records.Get(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note, got)

	_, err = records.Get(ctx, clip.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	settings := NewNamespacedSettings(storages.SettingsRepository, "notesync")
	_, err = settings.Get(ctx, "linked")
	assert.ErrorIs(t, err, ErrSettingNotFound)

	require.NoError(t, settings.Set(ctx, "linked", "true"))
	require.NoError(t, settings.Set(ctx, "linked", "false"))
	v, err := settings.Get(ctx, "linked")
	require.NoError(t, err)
	assert.Equal(t, "false", v)

	other := NewNamespacedSettings(storages.SettingsRepository, "other")
	_, err = other.Get(ctx, "linked")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

// TestClientStorages_MergeKeepsNewerLocalRows checks the guarded merge
// statements against SQLite: rows edited after the merge read its input are
// neither overwritten nor deleted.
func TestClientStorages_MergeKeepsNewerLocalRows(t *testing.T) {
	ctx := context.Background()
	storages, err := NewClientStorages(ctx, config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "notes.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	records := storages.RecordRepository
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	edited := models.NewNote(uuid.New(), "t", "seen by merge", base)
	removed := models.NewNote(uuid.New(), "t", "seen by merge", base)
	stale := models.NewNote(uuid.New(), "t", "old", base)
	require.NoError(t, records.Upsert(ctx, edited))
	require.NoError(t, records.Upsert(ctx, removed))
	require.NoError(t, records.Upsert(ctx, stale))

	// user edits land after the merge plan was built
	editedNow := models.NewNote(edited.ID, "t", "user edit", base.Add(time.Hour))
	removedNow := models.NewNote(removed.ID, "t", "user edit", base.Add(time.Hour))
	require.NoError(t, records.Upsert(ctx, editedNow))
	require.NoError(t, records.Upsert(ctx, removedNow))

	remote := models.NewNote(edited.ID, "t", "remote", base.Add(time.Minute))
	fresher := models.NewNote(stale.ID, "t", "remote", base.Add(time.Minute))
	created := models.NewClipboardEntry(uuid.New(), "remote clip", base)

	require.NoError(t, records.Apply(ctx, []models.Record{remote, fresher, created}, []models.Record{removed}))

	got, err := records.Get(ctx, edited.ID)
	require.NoError(t, err)
	assert.Equal(t, editedNow, got)

	got, err = records.Get(ctx, removed.ID)
	require.NoError(t, err)
	assert.Equal(t, removedNow, got)

	got, err = records.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, fresher, got)

	got, err = records.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	require.NoError(t, records.Apply(ctx, nil, []models.Record{fresher}))
	_, err = records.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func ptr(s string) *string { return &s }
