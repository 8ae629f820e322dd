package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
)

type TUI struct {
	in     io.Reader
	out    io.Writer
	logger *logger.Logger
}

func New(in io.Reader, out io.Writer, logger *logger.Logger) *TUI {
	return &TUI{in: in, out: out, logger: logger}
}

// PairingFlow shows the pairing code until the engine reports a link. It
// returns [ErrUserQuit] when the user leaves the screen first; sync keeps
// waiting for the code in the background in that case.
func (t *TUI) PairingFlow(ctx context.Context, engine service.SyncEngine) (models.PairingState, error) {
	events := engine.Subscribe()

	state := engine.Status()
	if state.Phase != models.PhasePairing {
		return state, nil
	}

	program := tea.NewProgram(
		newPairingModel(state, events),
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)
	finalModel, err := program.Run()
	if err != nil {
		return engine.Status(), err
	}

	result, ok := finalModel.(pairingModel)
	if !ok {
		return engine.Status(), tea.ErrProgramKilled
	}
	if result.quitByUser {
		return result.state, ErrUserQuit
	}

	t.logger.Info().Str("func", "*TUI.PairingFlow").Str("state", result.state.String()).Msg("pairing screen closed")
	return result.state, nil
}
