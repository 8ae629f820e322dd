// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the note-sync client application runtime.
//
// It wires local storage, the sync engine, clipboard capture and the
// terminal screens into one process and dispatches the CLI sub-commands.
package client
