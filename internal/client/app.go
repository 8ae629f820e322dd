package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/credential"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/internal/workers"
	"github.com/MKhiriev/go-note-sync/models"
)

const closeTimeout = 15 * time.Second

type App struct {
	engine      service.SyncEngine
	records     service.ClientRecordService
	adapter     adapter.ServerAdapter
	credentials service.CredentialProvider
	clipboard   *ClipboardWatcher
	screen      pairingScreen
	buildInfo   models.AppBuildInfo

	out     io.Writer
	release func() error

	logger *logger.Logger
}

// NewApp opens the local store and wires the sync engine, the record service
// and the terminal screens.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	settings := store.NewNamespacedSettings(storages.SettingsRepository, cfg.App.Namespace)
	credentials := credential.NewStore(settings, logger)
	services := service.NewClientServices(storages, settings, credentials, serverAdapter, workers.RealClock(), cfg.Workers, logger)

	app := &App{
		engine:      services.SyncEngine,
		records:     services.RecordService,
		adapter:     serverAdapter,
		credentials: credentials,
		clipboard:   NewClipboardWatcher(services.RecordService, cfg.Workers.ClipboardPollInterval, logger),
		screen:      tui.New(os.Stdin, os.Stdout, logger),
		buildInfo:   buildInfo,
		out:         os.Stdout,
		release:     storages.Close,
		logger:      logger,
	}
	return app, nil
}

func (a *App) Run(ctx context.Context, command string, args []string) error {
	a.logger.Debug().Str("func", "*App.Run").Str("command", command).Strs("args", args).Msg("running command")

	switch command {
	case "run":
		return a.run(ctx)
	case "enable":
		return a.enable(ctx)
	case "disable":
		return a.disable(ctx)
	case "status":
		return a.status(ctx)
	case "note":
		return a.note(ctx, args)
	case "edit":
		return a.edit(ctx, args)
	case "clip":
		return a.clip(ctx, args)
	case "delete":
		return a.delete(ctx, args)
	case "list":
		return a.list(ctx)
	case "claim":
		return a.claim(ctx, args)
	case "version":
		a.println(tui.RenderBuildInfo(a.buildInfo))
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// Close stops the engine, which persists the outstanding queue and waits for
// a pending session revoke, then closes the local store.
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	err := a.engine.Close(ctx)
	if a.release != nil {
		err = errors.Join(err, a.release())
	}
	return err
}

// run restores the sync state left by the previous process and keeps
// syncing and capturing the clipboard until ctx is done.
func (a *App) run(ctx context.Context) error {
	if _, err := a.engine.Restore(ctx); err != nil {
		return fmt.Errorf("restore sync: %w", err)
	}
	return a.serve(ctx)
}

func (a *App) enable(ctx context.Context) error {
	if err := a.engine.Enable(ctx); err != nil {
		return fmt.Errorf("enable sync: %w", err)
	}

	if _, err := a.screen.PairingFlow(ctx, a.engine); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("pairing screen: %w", err)
	}
	return a.serve(ctx)
}

func (a *App) serve(ctx context.Context) error {
	a.println(tui.RenderStatus(a.engine.Status()))

	a.clipboard.Run(ctx)
	<-ctx.Done()
	return nil
}

func (a *App) disable(ctx context.Context) error {
	if err := a.resumeIfLinked(ctx); err != nil {
		return err
	}
	if err := a.engine.Disable(ctx); err != nil {
		return fmt.Errorf("disable sync: %w", err)
	}

	a.println(tui.RenderStatus(a.engine.Status()))
	return nil
}

func (a *App) status(ctx context.Context) error {
	state, err := a.engine.StoredStatus(ctx)
	if err != nil {
		return fmt.Errorf("read sync status: %w", err)
	}

	a.println(tui.RenderStatus(state))
	return nil
}

func (a *App) note(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: note title", ErrMissingArgument)
	}

	return a.mutate(ctx, func() (models.Record, error) {
		return a.records.CreateNote(ctx, args[0], strings.Join(args[1:], " "))
	})
}

func (a *App) edit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: edit <id> <title> [text]", ErrMissingArgument)
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse record id: %w", err)
	}

	return a.mutate(ctx, func() (models.Record, error) {
		return a.records.UpdateNote(ctx, id, args[1], strings.Join(args[2:], " "))
	})
}

func (a *App) clip(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: clipboard text", ErrMissingArgument)
	}

	return a.mutate(ctx, func() (models.Record, error) {
		return a.records.AddClipboardEntry(ctx, strings.Join(args, " "))
	})
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: record id", ErrMissingArgument)
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse record id: %w", err)
	}

	return a.mutate(ctx, func() (models.Record, error) {
		return models.Record{ID: id}, a.records.Delete(ctx, id)
	})
}

func (a *App) list(ctx context.Context) error {
	records, err := a.records.List(ctx)
	if err != nil {
		return err
	}

	a.println(tui.RenderRecords(records))
	return nil
}

// claim links the device that shows code. A linked installation adds it to
// its own account.
func (a *App) claim(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: pairing code", ErrMissingArgument)
	}
	code := strings.ToUpper(strings.TrimSpace(args[0]))
	if !credential.ValidPairingCode(code) {
		return fmt.Errorf("%w: %q", service.ErrInvalidPairingCode, code)
	}

	state, err := a.engine.StoredStatus(ctx)
	if err != nil {
		return fmt.Errorf("read sync status: %w", err)
	}
	if state.Phase == models.PhaseLinked {
		a.adapter.SetToken(a.credentials.BearerToken(ctx))
	}

	if err = a.adapter.ClaimCode(ctx, code); err != nil {
		return fmt.Errorf("claim code: %w", err)
	}

	a.println("code " + code + " claimed")
	return nil
}

// mutate applies one local edit. A linked installation resumes its session
// first so the change is queued and pushed before the process exits; if the
// push fails the queue is persisted by Close and sent by the next run.
func (a *App) mutate(ctx context.Context, fn func() (models.Record, error)) error {
	if err := a.resumeIfLinked(ctx); err != nil {
		return err
	}

	record, err := fn()
	if err != nil {
		return err
	}
	a.println(record.ID.String())

	if a.engine.Status().Phase != models.PhaseLinked {
		return nil
	}
	if err = a.engine.Flush(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.mutate").Msg("push failed, change stays queued")
		a.println("not synced yet: " + err.Error())
	}
	return nil
}

// resumeIfLinked enables the engine only for a linked installation. An
// unlinked one would register a new pairing code as a side effect.
func (a *App) resumeIfLinked(ctx context.Context) error {
	state, err := a.engine.StoredStatus(ctx)
	if err != nil {
		return fmt.Errorf("read sync status: %w", err)
	}
	if state.Phase != models.PhaseLinked {
		return nil
	}
	if err = a.engine.Enable(ctx); err != nil {
		return fmt.Errorf("resume sync: %w", err)
	}
	return nil
}

func (a *App) println(s string) {
	_, _ = fmt.Fprintln(a.out, s)
}
