// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PairingPhase is the coarse state of the sync feature on this installation.
type PairingPhase string

const (
	// PhaseDisabled means sync is off. Initial state on first run.
	PhaseDisabled PairingPhase = "disabled"

	// PhasePairing means a pairing code is registered and the client waits
	// for it to be claimed.
	PhasePairing PairingPhase = "pairing"

	// PhaseLinked means the installation is linked to an account and syncs.
	PhaseLinked PairingPhase = "linked"
)

// PairingState is the value reported to the UI. Code is only set while
// Phase is [PhasePairing].
type PairingState struct {
	Phase PairingPhase `json:"phase"`
	Code  string       `json:"code,omitempty"`
}

// Disabled returns the initial state.
func Disabled() PairingState { return PairingState{Phase: PhaseDisabled} }

// Pairing returns the pairing state for code.
func Pairing(code string) PairingState { return PairingState{Phase: PhasePairing, Code: code} }

// Linked returns the linked state.
func Linked() PairingState { return PairingState{Phase: PhaseLinked} }

// String renders the tri-state indicator text.
func (s PairingState) String() string {
	switch s.Phase {
	case PhasePairing:
		return "linking (" + s.Code + ")"
	case PhaseLinked:
		return "linked"
	default:
		return "off"
	}
}
