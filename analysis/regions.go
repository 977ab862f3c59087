// SPDX-License-Identifier: MIT
// Package analysis reports contiguous regions of same-labeled cells in a
// finished (or partially finished) grid — e.g. grouping cells by their
// collapsed model so a caller can tell whether every "path" tile ended up
// in one connected blob or scattered into several.
//
// The flood-fill itself is the corpus's island-finding algorithm (BFS over
// same-valued grid neighbors), generalized from a fixed 2D int array to an
// arbitrary-dimension, possibly-looping grid.Definition.
package analysis

import (
	"github.com/latticeworks/wfc/grid"
)

// Region is one maximal set of mutually-reachable cells sharing Label.
type Region struct {
	Label int
	Cells []int
}

// Labeler returns the label for a fixed cell (commonly an original model
// index) and reports whether the cell has a label at all — an unfixed cell
// has none and is excluded from every region.
type Labeler func(cell int) (label int, ok bool)

// ConnectedRegions flood-fills g cell-by-cell, grouping neighbors that
// share a label into a Region. Cells for which label returns ok=false are
// skipped entirely. Complexity: O(cells * directions).
func ConnectedRegions(g grid.Definition, label Labeler) []Region {
	total := g.CellCount()
	visited := make([]bool, total)
	dirs := g.Geometry().Directions()

	var regions []Region
	for start := 0; start < total; start++ {
		if visited[start] {
			continue
		}
		lbl, ok := label(start)
		if !ok {
			visited[start] = true
			continue
		}
		queue := []int{start}
		visited[start] = true
		var cells []int
		for qi := 0; qi < len(queue); qi++ {
			cur := queue[qi]
			cells = append(cells, cur)
			for _, d := range dirs {
				n, exists := g.Neighbor(cur, d)
				if !exists || visited[n] {
					continue
				}
				nLbl, nOk := label(n)
				if !nOk || nLbl != lbl {
					continue
				}
				visited[n] = true
				queue = append(queue, n)
			}
		}
		regions = append(regions, Region{Label: lbl, Cells: cells})
	}
	return regions
}

// CountsByLabel tallies how many distinct regions exist per label — the
// question "did my 'river' tiles end up as one connected river or three
// disjoint puddles?" reduces to checking this map's value for that label.
func CountsByLabel(regions []Region) map[int]int {
	counts := make(map[int]int, len(regions))
	for _, r := range regions {
		counts[r.Label]++
	}
	return counts
}
