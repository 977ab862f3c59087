// SPDX-License-Identifier: MIT
package generator

import (
	"math/rand"

	"github.com/latticeworks/wfc/analysis"
	"github.com/latticeworks/wfc/domain"
	"github.com/latticeworks/wfc/grid"
	"github.com/latticeworks/wfc/observer"
	"github.com/latticeworks/wfc/propagate"
	"github.com/latticeworks/wfc/rule"
)

// Generator owns one run's mutable state: the Domain State, propagation
// counters, worklist, retry counter, jitter table, and PRNG (§3 Generator
// State, §5 resource ownership). It is not safe for concurrent use by more
// than one goroutine; build one Generator per goroutine that drives it.
type Generator struct {
	rules *rule.Rules
	grid  grid.Definition

	rng  *rand.Rand
	seed uint64

	nodeHeuristic  NodeHeuristic
	modelHeuristic ModelHeuristic
	maxRetries     int
	retryCount     int

	weights []float64
	state   *domain.State
	engine  *propagate.Engine
	log     *observer.Log

	status GenerationStatus
	failed *GeneratorError
}

func newGenerator(
	rules *rule.Rules,
	g grid.Definition,
	r *rand.Rand,
	seed uint64,
	nodeHeuristic NodeHeuristic,
	modelHeuristic ModelHeuristic,
	maxRetries int,
) *Generator {
	weights := make([]float64, rules.VariantCount())
	for i, v := range rules.Variants() {
		weights[i] = v.Weight()
	}
	return &Generator{
		rules:          rules,
		grid:           g,
		rng:            r,
		seed:           seed,
		nodeHeuristic:  nodeHeuristic,
		modelHeuristic: modelHeuristic,
		maxRetries:     maxRetries,
		weights:        weights,
		state:          domain.New(weights),
		engine:         propagate.New(rules, g),
		log:            observer.NewLog(),
	}
}

func (g *Generator) initialize() {
	g.state.Initialize(g.grid.CellCount(), g.rng)
	g.engine.ResetCounters()
	g.status = Ongoing
	g.failed = nil
}

// Seed returns the PRNG seed this run was built with (or derived, under
// RandomSeedMode), so a RandomSeed run can be replayed via SeededMode.
func (g *Generator) Seed() uint64 { return g.seed }

// Grid returns the coordinate space this Generator fills.
func (g *Generator) Grid() grid.Definition { return g.grid }

// Rules returns the compiled adjacency table this Generator was built from.
func (g *Generator) Rules() *rule.Rules { return g.rules }

// Status returns the generator's current status.
func (g *Generator) Status() GenerationStatus { return g.status }

// IsFixed reports whether cell currently holds exactly one variant, safe
// to query by a subscriber at any point after the Generated event for that
// cell has been observed (§4.5 guarantee d).
func (g *Generator) IsFixed(cell int) bool { return g.state.IsFixed(cell) }

// FixedVariant returns the sole remaining variant of a fixed cell.
// Behavior is undefined if the cell is not fixed.
func (g *Generator) FixedVariant(cell int) int { return g.state.FixedVariant(cell) }

// Subscribe returns a handle receiving every event emitted from this point
// forward (§4.5).
func (g *Generator) Subscribe() *observer.Subscription {
	return g.log.Subscribe()
}

// Regions groups every fixed cell by its original model index and reports
// the connected components within each group, letting a caller ask whether
// same-model tiles formed one contiguous area or several disjoint ones.
// Unfixed cells are excluded. Safe to call at any point during or after
// generation.
func (g *Generator) Regions() []analysis.Region {
	return analysis.ConnectedRegions(g.grid, func(cell int) (int, bool) {
		if !g.state.IsFixed(cell) {
			return 0, false
		}
		v := g.rules.Variants()[g.state.FixedVariant(cell)]
		return int(v.OriginalModelIndex()), true
	})
}

// Reset reinitializes domains, counters, retry count and jitter while
// continuing to advance the same PRNG stream (§4.4 PRNG policy, §7: "reset()
// followed by another generate() ... will consume new PRNG output").
func (g *Generator) Reset() {
	g.retryCount = 0
	g.initialize()
}

// Step performs one observation (§4.4): selects a cell and variant,
// collapses, propagates, and on contradiction either reinitializes (within
// the retry ceiling) or fails. Returns the resulting status, or a
// *GeneratorError if the retry ceiling was just exceeded.
func (g *Generator) Step() (GenerationStatus, error) {
	if g.status == Done {
		return Done, nil
	}

	cell, ok := g.selectCell()
	if !ok {
		g.status = Done
		return Done, nil
	}

	variant := g.selectVariant(cell)
	g.state.CollapseTo(cell, variant)
	g.emitGenerated(cell, variant)

	contradicted, contradictedCell := g.propagateAndEmit()
	if !contradicted {
		if g.allFixed() {
			g.status = Done
		}
		return g.status, nil
	}

	g.retryCount++
	if g.retryCount > g.maxRetries {
		err := &GeneratorError{NodeIndex: contradictedCell}
		g.failed = err
		g.log.Emit(observer.Event{Kind: observer.Failed, FailedCellIndex: contradictedCell})
		return Ongoing, err
	}

	g.log.Emit(observer.Event{Kind: observer.Reinitializing, RetryCount: g.retryCount})
	g.state.Initialize(g.grid.CellCount(), g.rng)
	g.engine.ResetCounters()
	return Ongoing, nil
}

// propagateAndEmit runs propagation to fixpoint, emitting a Generated event
// for every cell that transitioned to a singleton as a side effect
// (§4.5: "cells that become fixed as a side-effect of propagation generate
// events too").
func (g *Generator) propagateAndEmit() (contradicted bool, contradictedCell int) {
	cellCount := g.grid.CellCount()
	wasFixed := make([]bool, cellCount)
	for c := 0; c < cellCount; c++ {
		wasFixed[c] = g.state.IsFixed(c)
	}

	contradictedCell, contradicted = g.engine.Propagate(g.state)

	for c := 0; c < cellCount; c++ {
		if !wasFixed[c] && g.state.IsFixed(c) {
			g.emitGenerated(c, g.state.FixedVariant(c))
		}
	}
	return
}

func (g *Generator) emitGenerated(cell, variant int) {
	v := g.rules.Variants()[variant]
	g.log.Emit(observer.Event{
		Kind:               observer.Generated,
		CellIndex:          cell,
		VariantIndex:       variant,
		OriginalModelIndex: int(v.OriginalModelIndex()),
		Rotation:           v.Rotation(),
	})
}

func (g *Generator) allFixed() bool {
	for c := 0; c < g.grid.CellCount(); c++ {
		if !g.state.IsFixed(c) {
			return false
		}
	}
	return true
}

// Generate repeatedly steps until Done or failure, returning the number of
// attempts (reinitializations plus the final, successful one) on success.
func (g *Generator) Generate() (tryCount int, err error) {
	tryCount = 1
	for {
		before := g.retryCount
		status, err := g.Step()
		if err != nil {
			return 0, err
		}
		if g.retryCount != before {
			tryCount++
		}
		if status == Done {
			return tryCount, nil
		}
	}
}

// selectCell implements §4.4 step 1: among cells with more than one
// variant left, MinimumRemainingValue picks the lowest entropy+jitter,
// falling back to Random when no cell offers a usable entropy value;
// Random always picks uniformly. Returns false if every cell is fixed.
func (g *Generator) selectCell() (int, bool) {
	var candidates []int
	for c := 0; c < g.grid.CellCount(); c++ {
		if !g.state.IsFixed(c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}

	if g.nodeHeuristic == Random {
		return candidates[g.rng.Intn(len(candidates))], true
	}

	best := -1
	bestEntropy := 0.0
	for _, c := range candidates {
		e, ok := g.state.Entropy(c)
		if !ok {
			continue
		}
		if best == -1 || e < bestEntropy {
			best = c
			bestEntropy = e
		}
	}
	if best == -1 {
		return candidates[g.rng.Intn(len(candidates))], true
	}
	return best, true
}

// selectVariant implements §4.4 step 2.
func (g *Generator) selectVariant(cell int) int {
	if g.modelHeuristic == Uniform {
		var options []int
		g.state.IterSet(cell, func(v int) bool {
			options = append(options, v)
			return true
		})
		return options[g.rng.Intn(len(options))]
	}

	target := g.rng.Float64() * g.state.SumWeight(cell)
	chosen := -1
	var running float64
	g.state.IterSet(cell, func(v int) bool {
		running += g.weights[v]
		if running > target {
			chosen = v
			return false
		}
		return true
	})
	if chosen == -1 {
		// Floating point rounding can leave target infinitesimally past the
		// last bit's cumulative sum; fall back to it.
		g.state.IterSet(cell, func(v int) bool {
			chosen = v
			return true
		})
	}
	return chosen
}
