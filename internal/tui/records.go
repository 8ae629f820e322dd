package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
)

const recordPreviewWidth = 48

// RenderRecords lists records newest first, one line each.
func RenderRecords(records []models.Record) string {
	if len(records) == 0 {
		return helpStyle.Render("no notes yet")
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.Record) int {
		return b.LastModified.Compare(a.LastModified)
	})

	var b strings.Builder
	for i, r := range sorted {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %-9s  %s  %s",
			r.ID.String()[:8],
			r.Kind,
			r.LastModified.Local().Format(time.DateTime),
			fitText(recordPreview(r), recordPreviewWidth),
		)
	}
	return b.String()
}

func recordPreview(r models.Record) string {
	text := strings.Join(strings.Fields(r.TextOrEmpty()), " ")
	if r.Kind != models.KindNote {
		return text
	}

	title := valueOrDash(r.Title)
	if text == "" {
		return title
	}
	return title + ": " + text
}
