// SPDX-License-Identifier: MIT
package generator

import (
	"github.com/latticeworks/wfc/grid"
	"github.com/latticeworks/wfc/rng"
	"github.com/latticeworks/wfc/rule"
)

const defaultMaxRetries = 10

// Builder assembles a Generator from a compiled Rules, a grid definition,
// and optional heuristics (§6 Builder API). Rules and Grid are required;
// everything else has a documented default.
type Builder struct {
	rules          *rule.Rules
	grid           grid.Definition
	gridSet        bool
	rngMode        RNGMode
	nodeHeuristic  NodeHeuristic
	modelHeuristic ModelHeuristic
	maxRetries     int
}

// NewBuilder returns a Builder with the documented defaults: RandomSeedMode,
// MinimumRemainingValue, WeightedProbability, max_retries=10.
func NewBuilder() *Builder {
	return &Builder{
		rngMode:        RandomSeedMode(),
		nodeHeuristic:  MinimumRemainingValue,
		modelHeuristic: WeightedProbability,
		maxRetries:     defaultMaxRetries,
	}
}

// Rules sets the compiled adjacency table to generate against. Required.
func (b *Builder) Rules(r *rule.Rules) *Builder {
	b.rules = r
	return b
}

// Grid sets the coordinate space to fill. Required.
func (b *Builder) Grid(g grid.Definition) *Builder {
	b.grid = g
	b.gridSet = true
	return b
}

// RNG overrides the default RandomSeedMode.
func (b *Builder) RNG(mode RNGMode) *Builder {
	b.rngMode = mode
	return b
}

// SetNodeHeuristic overrides the default MinimumRemainingValue cell
// selection strategy.
func (b *Builder) SetNodeHeuristic(h NodeHeuristic) *Builder {
	b.nodeHeuristic = h
	return b
}

// SetModelHeuristic overrides the default WeightedProbability variant
// selection strategy.
func (b *Builder) SetModelHeuristic(h ModelHeuristic) *Builder {
	b.modelHeuristic = h
	return b
}

// MaxRetries overrides the default retry ceiling of 10.
func (b *Builder) MaxRetries(n int) *Builder {
	b.maxRetries = n
	return b
}

// Build validates the accumulated configuration and constructs a Generator.
// Returns ErrNoRules if Rules was never called, grid.ErrBadSize if Grid was
// never called, and ErrGeometryMismatch if the grid and rules
// were built against different coordinate systems.
func (b *Builder) Build() (*Generator, error) {
	if b.rules == nil {
		return nil, ErrNoRules
	}
	if !b.gridSet {
		return nil, grid.ErrBadSize
	}
	if b.grid.Geometry().Dimensions() != b.rules.Geometry().Dimensions() {
		return nil, ErrGeometryMismatch
	}

	var (
		r    = rng.New(0)
		seed uint64
	)
	if b.rngMode.seeded {
		seed = b.rngMode.seed
		r = rng.New(seed)
	} else {
		r, seed = rng.NewRandom()
	}

	g := newGenerator(b.rules, b.grid, r, seed, b.nodeHeuristic, b.modelHeuristic, b.maxRetries)
	g.initialize()
	return g, nil
}
