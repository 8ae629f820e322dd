package service

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/models"
)

// BuildMergePlan reconciles a remote snapshot with the local records.
//
// Remote records unknown locally are created, strictly newer remote copies
// are overlaid on the local ones, and local records missing remotely are
// deleted unless a push for them is still pending. A remote record whose id
// has a pending local delete is skipped.
func BuildMergePlan(snapshot models.RemoteSnapshot, local []models.Record, pending map[uuid.UUID]models.Op) models.MergePlan {
	var plan models.MergePlan

	localByID := make(map[uuid.UUID]models.Record, len(local))
	for _, l := range local {
		localByID[l.ID] = l
	}

	remoteIDs := make(map[uuid.UUID]struct{}, len(snapshot.Records))
	for _, r := range snapshot.Records {
		remoteIDs[r.ID] = struct{}{}

		if pending[r.ID] == models.OpDelete {
			plan.Skipped++
			continue
		}

		l, ok := localByID[r.ID]
		if !ok {
			plan.Create = append(plan.Create, r)
			continue
		}
		if r.NewerThan(l) {
			plan.Update = append(plan.Update, l.Overlay(r))
		}
	}

	for _, l := range local {
		if _, ok := remoteIDs[l.ID]; ok {
			continue
		}
		if _, ok := pending[l.ID]; ok {
			continue
		}
		plan.Delete = append(plan.Delete, l.ID)
	}

	return plan
}
