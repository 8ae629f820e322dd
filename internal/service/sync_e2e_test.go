package service_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/credential"
	handlerhttp "github.com/MKhiriev/go-note-sync/internal/handler/http"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/workers"
	"github.com/MKhiriev/go-note-sync/models"
)

// device is one client installation talking to the reference server over
// real HTTP. Its timers only fire when the test advances its clock.
type device struct {
	engine  service.SyncEngine
	records service.ClientRecordService
	adapter adapter.ServerAdapter
	clock   *workers.ManualClock
}

func startServer(t *testing.T) string {
	t.Helper()

	cfg := config.ServerConfig{BcryptCost: bcrypt.MinCost, Version: "e2e", PairRateLimit: 1000, PairRateBurst: 1000}
	services, err := service.NewServices(store.NewStorages(), cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handlerhttp.NewHandler(services, cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv.URL
}

func newDevice(t *testing.T, serverURL string, start time.Time) *device {
	t.Helper()
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "notes.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	settings := store.NewNamespacedSettings(storages.SettingsRepository, "notesync")
	clock := workers.NewManualClock(start)
	services := service.NewClientServices(
		storages,
		settings,
		credential.NewStore(settings, logger.Nop()),
		serverAdapter,
		clock,
		config.ClientWorkers{PushConcurrency: 2},
		logger.Nop(),
	)
	t.Cleanup(func() { _ = services.SyncEngine.Close(context.Background()) })

	return &device{
		engine:  services.SyncEngine,
		records: services.RecordService,
		adapter: serverAdapter,
		clock:   clock,
	}
}

// startPairing enables sync and runs the first pairing cycle, which
// registers the code with the server.
func (d *device) startPairing(t *testing.T) string {
	t.Helper()

	require.NoError(t, d.engine.Enable(context.Background()))
	state := d.engine.Status()
	require.Equal(t, models.PhasePairing, state.Phase)

	d.clock.Advance(0)
	require.Equal(t, state, d.engine.Status(), "code must stay pending until claimed")
	return state.Code
}

func (d *device) awaitLink(t *testing.T) {
	t.Helper()
	d.clock.Advance(2 * time.Second)
	require.Equal(t, models.Linked(), d.engine.Status())
}

func (d *device) text(t *testing.T, r models.Record) string {
	t.Helper()
	got, err := d.records.Get(context.Background(), r.ID)
	require.NoError(t, err)
	return got.TextOrEmpty()
}

// linkPair links a to a new account by an anonymous claim and then adds b
// to the same account through a's credential.
func linkPair(t *testing.T, serverURL string) (a, b *device) {
	t.Helper()
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	a = newDevice(t, serverURL, start)
	b = newDevice(t, serverURL, start.Add(5*time.Minute))

	anonymous, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)

	codeA := a.startPairing(t)
	require.NoError(t, anonymous.ClaimCode(ctx, codeA))
	a.awaitLink(t)

	codeB := b.startPairing(t)
	require.NoError(t, a.adapter.ClaimCode(ctx, codeB))
	b.awaitLink(t)

	return a, b
}

func TestSync_EditsTravelBetweenDevices(t *testing.T) {
	ctx := context.Background()
	a, b := linkPair(t, startServer(t))

	n1, err := a.records.CreateNote(ctx, "n1", "written on a")
	require.NoError(t, err)
	require.NoError(t, a.engine.Flush(ctx))

	require.NoError(t, b.engine.Pull(ctx))
	assert.Equal(t, "written on a", b.text(t, n1))

	_, err = b.records.UpdateNote(ctx, n1.ID, "n1", "edited on b")
	require.NoError(t, err)
	require.NoError(t, b.engine.Flush(ctx))

	require.NoError(t, a.engine.Pull(ctx))
	assert.Equal(t, "edited on b", a.text(t, n1))

	require.NoError(t, a.records.Delete(ctx, n1.ID))
	require.NoError(t, a.engine.Flush(ctx))

	require.NoError(t, b.engine.Pull(ctx))
	remaining, err := b.records.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestSync_OlderRemoteCopyDoesNotOverwriteNewerLocalEdit(t *testing.T) {
	ctx := context.Background()
	a, b := linkPair(t, startServer(t))

	clip, err := a.records.AddClipboardEntry(ctx, "copied on a")
	require.NoError(t, err)
	note, err := a.records.CreateNote(ctx, "shared", "original")
	require.NoError(t, err)
	require.NoError(t, a.engine.Flush(ctx))
	require.NoError(t, b.engine.Pull(ctx))

	// Both devices edit the same note before seeing each other's change.
	// b's clock runs five minutes ahead, so its edit is the newer one even
	// though a pushes last.
	_, err = b.records.UpdateNote(ctx, note.ID, "shared", "from b")
	require.NoError(t, err)
	_, err = a.records.UpdateNote(ctx, note.ID, "shared", "from a")
	require.NoError(t, err)
	require.NoError(t, b.engine.Flush(ctx))
	require.NoError(t, a.engine.Flush(ctx))

	require.NoError(t, b.engine.Pull(ctx))
	assert.Equal(t, "from b", b.text(t, note))
	assert.Equal(t, "copied on a", b.text(t, clip))
}

func TestSync_LaterEditFromSlowerClockStillWins(t *testing.T) {
	ctx := context.Background()
	a, b := linkPair(t, startServer(t))

	note, err := b.records.CreateNote(ctx, "shared", "from b")
	require.NoError(t, err)
	require.NoError(t, b.engine.Flush(ctx))
	require.NoError(t, a.engine.Pull(ctx))

	// a's clock is behind b's, but an edit is always stamped after the copy
	// it replaces.
	edited, err := a.records.UpdateNote(ctx, note.ID, "shared", "from a")
	require.NoError(t, err)
	assert.True(t, edited.NewerThan(note))
	require.NoError(t, a.engine.Flush(ctx))

	require.NoError(t, b.engine.Pull(ctx))
	assert.Equal(t, "from a", b.text(t, note))
}

func TestSync_JoiningDeviceKeepsAccountNotes(t *testing.T) {
	ctx := context.Background()
	serverURL := startServer(t)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	anonymous, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)

	a := newDevice(t, serverURL, start)
	require.NoError(t, anonymous.ClaimCode(ctx, a.startPairing(t)))
	a.awaitLink(t)

	n1, err := a.records.CreateNote(ctx, "n1", "synced before b joined")
	require.NoError(t, err)
	require.NoError(t, a.engine.Flush(ctx))

	b := newDevice(t, serverURL, start.Add(5*time.Minute))
	n2, err := b.records.CreateNote(ctx, "n2", "written on b offline")
	require.NoError(t, err)

	codeB := b.startPairing(t)
	require.NoError(t, a.adapter.ClaimCode(ctx, codeB))
	b.awaitLink(t)

	assert.Equal(t, "synced before b joined", b.text(t, n1))
	assert.Equal(t, "written on b offline", b.text(t, n2))

	require.NoError(t, a.engine.Pull(ctx))
	all, err := a.records.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "synced before b joined", a.text(t, n1))
	assert.Equal(t, "written on b offline", a.text(t, n2))
}

func TestSync_DisabledDeviceLeavesAccountLinked(t *testing.T) {
	ctx := context.Background()
	a, b := linkPair(t, startServer(t))

	require.NoError(t, b.engine.Disable(ctx))
	require.NoError(t, b.engine.Close(ctx))
	assert.Equal(t, models.Disabled(), b.engine.Status())

	// b's revoked credential is rejected now.
	_, err := b.adapter.PullAll(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	require.NoError(t, a.engine.Pull(ctx))
	assert.Equal(t, models.Linked(), a.engine.Status())
}
