package client

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
)

// ClipboardWatcher polls the system clipboard and stores every new text as a
// clipboard entry. The content present when watching starts is taken as the
// baseline and not stored.
type ClipboardWatcher struct {
	records  service.ClientRecordService
	interval time.Duration
	read     func() (string, error)

	last   string
	seeded bool

	logger *logger.Logger
}

func NewClipboardWatcher(records service.ClientRecordService, interval time.Duration, logger *logger.Logger) *ClipboardWatcher {
	return &ClipboardWatcher{
		records:  records,
		interval: interval,
		read:     clipboard.ReadAll,
		logger:   logger,
	}
}

// Run polls until ctx is done. It returns at once when the interval is zero
// or the platform has no clipboard support.
func (w *ClipboardWatcher) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Str("func", "*ClipboardWatcher.Run").Msg("clipboard capture disabled")
		return
	}
	if clipboard.Unsupported {
		w.logger.Warn().Str("func", "*ClipboardWatcher.Run").Msg("clipboard is not supported on this platform")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *ClipboardWatcher) poll(ctx context.Context) {
	text, err := w.read()
	if err != nil {
		w.logger.Debug().Err(err).Str("func", "*ClipboardWatcher.poll").Msg("failed to read clipboard")
		return
	}

	if !w.seeded {
		w.seeded = true
		w.last = text
		return
	}
	if text == w.last {
		return
	}
	w.last = text

	if strings.TrimSpace(text) == "" {
		return
	}

	record, err := w.records.AddClipboardEntry(ctx, text)
	if err != nil {
		w.logger.Err(err).Str("func", "*ClipboardWatcher.poll").Msg("failed to store clipboard entry")
		return
	}
	w.logger.Debug().Str("func", "*ClipboardWatcher.poll").Stringer("id", record.ID).Msg("clipboard entry captured")
}
