package domain

import "sort"

// ChromosomeLabels holds one chromosome id per bin. The bin index is the
// marker id.
type ChromosomeLabels []uint8

// Chromosomes returns the distinct labels in ascending order.
func (l ChromosomeLabels) Chromosomes() []int {
	seen := make(map[int]struct{})
	for _, c := range l {
		seen[int(c)] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

// Bins returns the bin indices of each chromosome in ascending index order.
func (l ChromosomeLabels) Bins() map[int][]int {
	bins := make(map[int][]int)
	for i, c := range l {
		bins[int(c)] = append(bins[int(c)], i)
	}
	return bins
}

// Group is a named set of bin indices, in file order.
type Group struct {
	Name    string
	Members []int
}

// Groups is an ordered list of groups. Order decides collisions: a later
// group overrides an earlier one.
type Groups []Group

// MaxIndex returns the largest member index, or -1 when all groups are empty.
func (g Groups) MaxIndex() int {
	maxIdx := -1
	for _, grp := range g {
		for _, idx := range grp.Members {
			if idx > maxIdx {
				maxIdx = idx
			}
		}
	}
	return maxIdx
}
