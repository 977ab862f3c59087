// SPDX-License-Identifier: MIT
package domain

import (
	"math"
	"math/rand"
)

// WorklistEntry signals that Variant just left Cell's domain and that
// neighbors must be re-examined by the propagation engine (§3).
type WorklistEntry struct {
	Cell    int
	Variant int
}

type cellInfo struct {
	bits     bitset
	sumW     float64
	sumWLogW float64
}

// State owns the per-cell domain bitsets, their cached weight sums, the
// jitter table used to break entropy ties, and the propagation worklist
// (§3 Domain State, §4.2).
//
// State is not safe for concurrent use; a Generator owns exactly one.
type State struct {
	variantCount int
	weights      []float64
	wLogW        []float64
	initSumW     float64
	initSumWLogW float64

	cells  []cellInfo
	jitter []float64

	worklist []WorklistEntry
	head     int
}

// New precomputes the per-variant weight and w*ln(w) tables shared by every
// cell's initial domain. weights must be non-negative; this is validated at
// authoring time (model.ErrNegativeWeight), not here.
func New(weights []float64) *State {
	wLogW := make([]float64, len(weights))
	var sumW, sumWLogW float64
	for i, w := range weights {
		sumW += w
		if w > 0 {
			wLogW[i] = w * math.Log(w)
		}
		sumWLogW += wLogW[i]
	}
	return &State{
		variantCount: len(weights),
		weights:      weights,
		wLogW:        wLogW,
		initSumW:     sumW,
		initSumWLogW: sumWLogW,
	}
}

// VariantCount returns the number of variants domains range over.
func (s *State) VariantCount() int { return s.variantCount }

// Initialize (re)sets every one of cellCount cells' bitsets to all-ones,
// reuses the precomputed initial weight sums (identical for every cell since
// domains start identical), draws one jitter value per cell from rng, and
// clears the worklist. Called both on construction and on every restart
// (§3 Domain State lifecycle, §4.4 step 5).
func (s *State) Initialize(cellCount int, rng *rand.Rand) {
	s.cells = make([]cellInfo, cellCount)
	s.jitter = make([]float64, cellCount)
	for i := 0; i < cellCount; i++ {
		s.cells[i] = cellInfo{
			bits:     newBitset(s.variantCount),
			sumW:     s.initSumW,
			sumWLogW: s.initSumWLogW,
		}
		// A small jitter, drawn fresh every restart, breaks entropy ties
		// deterministically for a given seed without perturbing the
		// entropy proxy's ranking in any non-tied case.
		s.jitter[i] = rng.Float64() * 1e-6
	}
	s.worklist = s.worklist[:0]
	s.head = 0
}

// Remove clears variant from cell's domain if set, adjusts the cached
// weight sums, and pushes a WorklistEntry recording the removal. Returns
// whether the bit had been set.
func (s *State) Remove(cell, variant int) bool {
	c := &s.cells[cell]
	if !c.bits.clear(variant) {
		return false
	}
	c.sumW -= s.weights[variant]
	c.sumWLogW -= s.wLogW[variant]
	s.worklist = append(s.worklist, WorklistEntry{Cell: cell, Variant: variant})
	return true
}

// CollapseTo fixes cell's domain to exactly variant, removing every other
// variant still present (§4.2). This is what seeds the worklist at the
// start of every observation (§4.4 step 3).
func (s *State) CollapseTo(cell, variant int) {
	var others []int
	s.cells[cell].bits.iterSet(func(i int) bool {
		if i != variant {
			others = append(others, i)
		}
		return true
	})
	for _, v := range others {
		s.Remove(cell, v)
	}
}

// Contradicted reports whether cell's domain is empty.
func (s *State) Contradicted(cell int) bool {
	return s.cells[cell].bits.popcount() == 0
}

// PopCount returns the number of variants still possible for cell.
func (s *State) PopCount(cell int) int {
	return s.cells[cell].bits.popcount()
}

// IsFixed reports whether cell's domain has collapsed to a single variant —
// such a cell is never re-examined by the selector (§4.2 invariant ii).
func (s *State) IsFixed(cell int) bool {
	return s.PopCount(cell) == 1
}

// FixedVariant returns the sole remaining variant of a fixed cell. Behavior
// is undefined if the cell is not fixed.
func (s *State) FixedVariant(cell int) int {
	return s.cells[cell].bits.firstSet()
}

// Has reports whether variant is still possible for cell.
func (s *State) Has(cell, variant int) bool {
	return s.cells[cell].bits.has(variant)
}

// IterSet calls fn for every variant still possible for cell, in ascending
// index order; fn returning false stops the iteration early.
func (s *State) IterSet(cell int, fn func(variant int) bool) {
	s.cells[cell].bits.iterSet(fn)
}

// SumWeight returns Σw over variants still possible for cell.
func (s *State) SumWeight(cell int) float64 {
	return s.cells[cell].sumW
}

// Entropy returns the entropy proxy ln(Σw) - (Σ w·ln w)/Σw plus the cell's
// jitter (§3). The second return is false if the cell has one or zero
// variants left, in which case the proxy is undefined.
func (s *State) Entropy(cell int) (float64, bool) {
	c := &s.cells[cell]
	if c.bits.popcount() <= 1 {
		return 0, false
	}
	if c.sumW <= 0 {
		return 0, false
	}
	proxy := math.Log(c.sumW) - c.sumWLogW/c.sumW
	return proxy + s.jitter[cell], true
}

// PopWorklist pops the oldest pending WorklistEntry (FIFO), reporting false
// once the worklist is drained (§4.3).
func (s *State) PopWorklist() (WorklistEntry, bool) {
	if s.head >= len(s.worklist) {
		return WorklistEntry{}, false
	}
	e := s.worklist[s.head]
	s.head++
	return e, true
}

// WorklistEmpty reports whether every pushed entry has been popped.
func (s *State) WorklistEmpty() bool {
	return s.head >= len(s.worklist)
}
