// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-sync/models"
)

// pairingModel shows the code of the current pairing attempt and quits once
// the engine leaves the pairing phase.
type pairingModel struct {
	spinner spinner.Model
	state   models.PairingState
	events  <-chan models.SyncEvent

	quitByUser bool
}

func newPairingModel(state models.PairingState, events <-chan models.SyncEvent) pairingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = accentStyle
	return pairingModel{spinner: s, state: state, events: events}
}

func (m pairingModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEvent(m.events))
}

func (m pairingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		return m, nil

	case syncEventMsg:
		if msg.Kind == models.EventStatusChanged {
			m.state = msg.State
		}
		if m.state.Phase != models.PhasePairing {
			return m, tea.Quit
		}
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m pairingModel) View() string {
	if m.state.Phase != models.PhasePairing {
		return appStyle.Render(RenderStatus(m.state)) + "\n"
	}

	var b strings.Builder
	b.WriteString("Enter this code on a device that is already linked:\n\n")
	b.WriteString(codeStyle.Render(spacedCode(m.state.Code)))
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View())
	b.WriteString(" waiting for the code to be claimed")

	return appStyle.Render(renderPage(titleStyle.Render("PAIR THIS DEVICE"), b.String(), helpStyle.Render("q: continue in background")))
}

// waitForEvent delivers the next engine event as a message.
func waitForEvent(events <-chan models.SyncEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return syncEventMsg(event)
	}
}

func spacedCode(code string) string {
	return strings.Join(strings.Split(code, ""), " ")
}
