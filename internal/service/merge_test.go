// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-note-sync/models"
)

func at(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func strPtr(s string) *string { return &s }

func TestBuildMergePlan(t *testing.T) {
	id1, id2, id3 := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name     string
		snapshot models.RemoteSnapshot
		local    []models.Record
		pending  map[uuid.UUID]models.Op
		want     models.MergePlan
	}{
		{
			name:     "remote record unknown locally is created",
			snapshot: models.RemoteSnapshot{Records: []models.Record{models.NewNote(id1, "a", "b", at(100))}},
			want:     models.MergePlan{Create: []models.Record{models.NewNote(id1, "a", "b", at(100))}},
		},
		{
			name:     "strictly newer remote wins",
			snapshot: models.RemoteSnapshot{Records: []models.Record{models.NewNote(id1, "remote", "r", at(200))}},
			local:    []models.Record{models.NewNote(id1, "local", "l", at(100))},
			want:     models.MergePlan{Update: []models.Record{models.NewNote(id1, "remote", "r", at(200))}},
		},
		{
			name:     "equal timestamps keep local",
			snapshot: models.RemoteSnapshot{Records: []models.Record{models.NewNote(id1, "remote", "r", at(100))}},
			local:    []models.Record{models.NewNote(id1, "local", "l", at(100))},
		},
		{
			name:     "older remote keeps local",
			snapshot: models.RemoteSnapshot{Records: []models.Record{models.NewNote(id1, "remote", "r", at(50))}},
			local:    []models.Record{models.NewNote(id1, "local", "l", at(100))},
		},
		{
			name:  "local absent remotely is deleted",
			local: []models.Record{models.NewNote(id1, "a", "b", at(100))},
			want:  models.MergePlan{Delete: []uuid.UUID{id1}},
		},
		{
			name:    "pending upsert absent remotely is kept",
			local:   []models.Record{models.NewNote(id1, "a", "b", at(100)), models.NewNote(id2, "c", "d", at(100))},
			pending: map[uuid.UUID]models.Op{id1: models.OpUpsert},
			want:    models.MergePlan{Delete: []uuid.UUID{id2}},
		},
		{
			name:     "pending delete is not resurrected",
			snapshot: models.RemoteSnapshot{Records: []models.Record{models.NewNote(id1, "a", "b", at(300))}},
			pending:  map[uuid.UUID]models.Op{id1: models.OpDelete},
			want:     models.MergePlan{Skipped: 1},
		},
		{
			name: "mixed",
			snapshot: models.RemoteSnapshot{Records: []models.Record{
				models.NewNote(id1, "new", "n", at(10)),
				models.NewClipboardEntry(id2, "clip2", at(20)),
			}, Version: 7},
			local: []models.Record{
				models.NewClipboardEntry(id2, "clip1", at(5)),
				models.NewNote(id3, "gone", "g", at(1)),
			},
			want: models.MergePlan{
				Create: []models.Record{models.NewNote(id1, "new", "n", at(10))},
				Update: []models.Record{models.NewClipboardEntry(id2, "clip2", at(20))},
				Delete: []uuid.UUID{id3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildMergePlan(tt.snapshot, tt.local, tt.pending)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildMergePlan_OverwritesOnlyCarriedFields(t *testing.T) {
	id := uuid.New()
	local := models.NewNote(id, "title", "old body", at(100))
	remote := models.Record{ID: id, Kind: models.KindNote, Text: strPtr("new body"), LastModified: at(200)}

	plan := BuildMergePlan(models.RemoteSnapshot{Records: []models.Record{remote}}, []models.Record{local}, nil)

	assert.Equal(t, []models.Record{models.NewNote(id, "title", "new body", at(200))}, plan.Update)
}

// applyPlan mimics the local store applying a plan.
func applyPlan(local []models.Record, plan models.MergePlan) []models.Record {
	byID := make(map[uuid.UUID]models.Record, len(local))
	order := make([]uuid.UUID, 0, len(local))
	for _, r := range local {
		byID[r.ID] = r
		order = append(order, r.ID)
	}
	for _, r := range append(plan.Create, plan.Update...) {
		if _, ok := byID[r.ID]; !ok {
			order = append(order, r.ID)
		}
		byID[r.ID] = r
	}
	for _, id := range plan.Delete {
		delete(byID, id)
	}

	out := make([]models.Record, 0, len(byID))
	for _, id := range order {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out
}

func TestBuildMergePlan_Idempotent(t *testing.T) {
	id1, id2, id3 := uuid.New(), uuid.New(), uuid.New()
	snapshot := models.RemoteSnapshot{Records: []models.Record{
		models.NewNote(id1, "a", "1", at(200)),
		models.NewClipboardEntry(id2, "c", at(300)),
	}, Version: 3}
	local := []models.Record{
		models.NewNote(id1, "a", "0", at(100)),
		models.NewNote(id3, "x", "y", at(50)),
	}

	once := applyPlan(local, BuildMergePlan(snapshot, local, nil))
	second := BuildMergePlan(snapshot, once, nil)

	assert.True(t, second.Empty())
	assert.ElementsMatch(t, snapshot.Records, once)
	assert.ElementsMatch(t, once, applyPlan(once, second))
}
