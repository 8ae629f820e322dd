package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/models"
)

func TestMemoryHub_DeviceAndCode(t *testing.T) {
	ctx := context.Background()
	hub := NewMemoryHubRepository()

	require.NoError(t, hub.SaveDevice(ctx, models.HubDevice{ID: "dev-1", SecretHash: []byte("h"), Code: "ABC234"}))

	got, err := hub.GetDevice(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, "ABC234", got.Code)
	assert.False(t, got.Linked())

	owner, err := hub.FindCode(ctx, "ABC234")
	require.NoError(t, err)
	assert.Equal(t, "dev-1", owner)

	deviceID, err := hub.TakeCode(ctx, "ABC234")
	require.NoError(t, err)
	assert.Equal(t, "dev-1", deviceID)

	_, err = hub.FindCode(ctx, "ABC234")
	assert.ErrorIs(t, err, ErrCodeNotFound)

	_, err = hub.TakeCode(ctx, "ABC234")
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestMemoryHub_NewCodeReplacesOld(t *testing.T) {
	ctx := context.Background()
	hub := NewMemoryHubRepository()

	require.NoError(t, hub.SaveDevice(ctx, models.HubDevice{ID: "dev-1", Code: "AAAAAA"}))
	require.NoError(t, hub.SaveDevice(ctx, models.HubDevice{ID: "dev-1", Code: "BBBBBB"}))

	_, err := hub.TakeCode(ctx, "AAAAAA")
	assert.ErrorIs(t, err, ErrCodeNotFound)
	id, err := hub.TakeCode(ctx, "BBBBBB")
	require.NoError(t, err)
	assert.Equal(t, "dev-1", id)
}

func TestMemoryHub_DeleteDevice(t *testing.T) {
	ctx := context.Background()
	hub := NewMemoryHubRepository()

	require.NoError(t, hub.SaveDevice(ctx, models.HubDevice{ID: "dev-1", Code: "CCCCCC"}))
	require.NoError(t, hub.DeleteDevice(ctx, "dev-1"))

	_, err := hub.GetDevice(ctx, "dev-1")
	assert.ErrorIs(t, err, ErrDeviceNotFound)
	_, err = hub.TakeCode(ctx, "CCCCCC")
	assert.ErrorIs(t, err, ErrCodeNotFound)
	assert.ErrorIs(t, hub.DeleteDevice(ctx, "dev-1"), ErrDeviceNotFound)
}

func TestMemoryHub_UpdateCollection(t *testing.T) {
	ctx := context.Background()
	hub := NewMemoryHubRepository()

	accountID, err := hub.CreateAccount(ctx)
	require.NoError(t, err)

	rec := models.NewNote(uuid.New(), "t", "b", time.Unix(100, 0))
	err = hub.UpdateCollection(ctx, accountID, func(c *models.Collection) error {
		c.Records[rec.ID] = rec
		c.Version = 3
		return nil
	})
	require.NoError(t, err)

	c, err := hub.GetCollection(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.Version)
	assert.Equal(t, []models.Record{rec}, c.Snapshot().Records)
}

func TestMemoryHub_UpdateCollection_ErrorDiscardsChanges(t *testing.T) {
	ctx := context.Background()
	hub := NewMemoryHubRepository()
	accountID, err := hub.CreateAccount(ctx)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = hub.UpdateCollection(ctx, accountID, func(c *models.Collection) error {
		c.Version = 99
		return boom
	})
	assert.ErrorIs(t, err, boom)

	c, err := hub.GetCollection(ctx, accountID)
	require.NoError(t, err)
	assert.Zero(t, c.Version)
}

func TestMemoryHub_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	hub := NewMemoryHubRepository()

	_, err := hub.GetCollection(ctx, "nope")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	err = hub.UpdateCollection(ctx, "nope", func(*models.Collection) error { return nil })
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
