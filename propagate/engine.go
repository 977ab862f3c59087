// SPDX-License-Identifier: MIT
// Package propagate implements the worklist-driven arc-consistency engine
// (§4.3): it drains a domain.State's worklist to fixpoint, removing
// unsupported variants from neighbor domains, using AC-4-style support
// counters so each removal costs O(Σ_d |support[v][d]|) amortized,
// independent of a cell's domain size.
package propagate

import (
	"github.com/latticeworks/wfc/direction"
	"github.com/latticeworks/wfc/domain"
	"github.com/latticeworks/wfc/grid"
	"github.com/latticeworks/wfc/rule"
)

// Engine owns the per-cell, per-variant, per-direction support counters for
// one Generator. It is reinitialized on every restart alongside the Domain
// State it propagates over (§3 Generator State lifecycle).
type Engine struct {
	rules *rule.Rules
	grid  grid.Definition
	dirs  []direction.Direction

	// counters[cell][variant][dirIdx] counts, for a candidate variant at
	// cell in direction dirIdx from some neighbor, how many variants still
	// possible in that neighbor support it. It reaches zero exactly when no
	// remaining neighbor variant supports placing `variant` at `cell` from
	// that direction.
	counters [][][]uint16
}

// New returns an Engine for rules over g. Call ResetCounters before the
// first Propagate and again after every restart.
func New(rules *rule.Rules, g grid.Definition) *Engine {
	return &Engine{rules: rules, grid: g, dirs: rules.Geometry().Directions()}
}

// ResetCounters (re)computes every counter from scratch, assuming every
// cell's domain is currently all-variants-possible (§4.3): the initial
// value of cnt[c'][v'][d] is |support[v'][opposite(d)])|, the same for
// every cell since initial domains are identical.
func (e *Engine) ResetCounters() {
	cellCount := e.grid.CellCount()
	variantCount := e.rules.VariantCount()
	dirCount := len(e.dirs)
	geom := e.rules.Geometry()

	initial := make([]uint16, variantCount*dirCount)
	for v := 0; v < variantCount; v++ {
		for dirIdx, d := range e.dirs {
			oppIdx := geom.Index(d.Opposite())
			initial[v*dirCount+dirIdx] = uint16(len(e.rules.Support(v, oppIdx)))
		}
	}

	e.counters = make([][][]uint16, cellCount)
	for c := 0; c < cellCount; c++ {
		perVariant := make([][]uint16, variantCount)
		for v := 0; v < variantCount; v++ {
			row := make([]uint16, dirCount)
			copy(row, initial[v*dirCount:(v+1)*dirCount])
			perVariant[v] = row
		}
		e.counters[c] = perVariant
	}
}

// Propagate drains state's worklist to fixpoint (§4.3 steps 1-3). It
// returns the contradicted cell index and true if some cell's domain
// became empty during the drain. Without a contradiction the worklist is
// left fully drained; on a contradiction Propagate stops at once and any
// entries not yet popped stay on the worklist.
func (e *Engine) Propagate(state *domain.State) (contradictedCell int, contradicted bool) {
	for {
		entry, ok := state.PopWorklist()
		if !ok {
			return 0, false
		}

		for dirIdx, d := range e.dirs {
			neighbor, exists := e.grid.Neighbor(entry.Cell, d)
			if !exists {
				// Non-looping boundary: a missing neighbor is a trivially
				// satisfied constraint (§9), never propagated across.
				continue
			}

			for _, candidate := range e.rules.Support(entry.Variant, dirIdx) {
				cnt := &e.counters[neighbor][candidate][dirIdx]
				if *cnt == 0 {
					continue
				}
				*cnt--
				if *cnt != 0 {
					continue
				}
				if !state.Has(neighbor, candidate) {
					continue
				}
				state.Remove(neighbor, candidate)
				if state.Contradicted(neighbor) {
					return neighbor, true
				}
			}
		}
	}
}
