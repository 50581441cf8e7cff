package services

import (
	"github.com/custodia-labs/chromcmm/internal/core/domain"
)

// BuildLinks chains the bins of each chromosome together.
//
// Bins are grouped by label in index order; each group of k bins yields k-1
// links between consecutive members. Chromosomes are emitted in ascending
// label order and every link takes its chromosome's palette colour.
func BuildLinks(labels domain.ChromosomeLabels, palette domain.Palette, radius float64) ([]domain.Link, error) {
	bins := labels.Bins()
	chromosomes := labels.Chromosomes()

	total := 0
	for _, c := range chromosomes {
		total += len(bins[c]) - 1
	}
	links := make([]domain.Link, 0, total)

	for _, c := range chromosomes {
		color, err := palette.Color(c)
		if err != nil {
			return nil, err
		}
		group := bins[c]
		for i := 0; i+1 < len(group); i++ {
			links = append(links, domain.Link{
				ID1:    group[i],
				ID2:    group[i+1],
				Color:  color,
				Radius: radius,
			})
		}
	}
	return links, nil
}
