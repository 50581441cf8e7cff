package services

import (
	"context"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
	"github.com/custodia-labs/chromcmm/internal/logger"
)

// Colorize rewrites the r, g and b attributes of every marker from table.
//
// All markers are resolved before any is modified, so a lookup failure
// (a marker id outside the table) returns a *domain.LookupError and leaves
// the document untouched.
func Colorize(ctx context.Context, doc *domain.Document, table domain.ColorTable) (domain.ColorizeStats, error) {
	markers := doc.Markers()
	stats := domain.ColorizeStats{Markers: len(markers)}

	colors := make([]domain.RGB, len(markers))
	for i, m := range markers {
		c, err := table.At(m.ID)
		if err != nil {
			return stats, err
		}
		colors[i] = c
	}

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	for i, m := range markers {
		m.SetColor(colors[i])
		stats.Updated++
	}

	if unused := table.Len() - stats.Updated; unused > 0 {
		logger.Debug("%d color table entries have no marker", unused)
	}
	return stats, nil
}
