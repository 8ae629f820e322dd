// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// RecordKind defines what a synchronised record holds.
type RecordKind string

const (
	// KindNote is a titled text note.
	KindNote RecordKind = "note"

	// KindClipboard is a captured clipboard entry.
	KindClipboard RecordKind = "clipboard"
)

// Valid reports whether k is one of the known record kinds.
func (k RecordKind) Valid() bool {
	return k == KindNote || k == KindClipboard
}

// Record is a single note or clipboard entry as exchanged with the remote
// store.
//
// Payload fields are pointers: a nil field is "not carried" by this copy of
// the record, which lets a remote copy overwrite only the fields it actually
// transports (see [Record.Overlay]).
type Record struct {
	// ID is the 128-bit identifier assigned when the record was created
	// on whichever device created it.
	ID uuid.UUID `json:"id"`

	// Kind selects the payload interpretation.
	Kind RecordKind `json:"kind"`

	// Title is the note title. Not used by clipboard entries.
	Title *string `json:"title,omitempty"`

	// Text is the note body or the clipboard content.
	Text *string `json:"text,omitempty"`

	// LastModified is the wall-clock time of the last local edit. It is the
	// only input of last-writer-wins conflict resolution.
	LastModified time.Time `json:"lastModified"`
}

// NewNote builds a fully populated note record.
func NewNote(id uuid.UUID, title, text string, modified time.Time) Record {
	return Record{ID: id, Kind: KindNote, Title: &title, Text: &text, LastModified: modified}
}

// NewClipboardEntry builds a fully populated clipboard record.
func NewClipboardEntry(id uuid.UUID, text string, modified time.Time) Record {
	return Record{ID: id, Kind: KindClipboard, Text: &text, LastModified: modified}
}

// Overlay returns a copy of r with every field carried by remote applied on
// top of it. The timestamp always comes from remote.
func (r Record) Overlay(remote Record) Record {
	out := r
	if remote.Kind.Valid() {
		out.Kind = remote.Kind
	}
	if remote.Title != nil {
		t := *remote.Title
		out.Title = &t
	}
	if remote.Text != nil {
		t := *remote.Text
		out.Text = &t
	}
	out.LastModified = remote.LastModified
	return out
}

// NewerThan reports whether r strictly wins over other under
// last-writer-wins. Equal timestamps favour other.
func (r Record) NewerThan(other Record) bool {
	return r.LastModified.After(other.LastModified)
}

// TitleOrEmpty dereferences Title.
func (r Record) TitleOrEmpty() string {
	if r.Title == nil {
		return ""
	}
	return *r.Title
}

// TextOrEmpty dereferences Text.
func (r Record) TextOrEmpty() string {
	if r.Text == nil {
		return ""
	}
	return *r.Text
}
