// SPDX-License-Identifier: MIT
package model

import "errors"

// ErrNegativeWeight is a programmer error (§7 class 3): a Model was added
// with a negative sampling weight. It is not meant to be recovered from; it
// surfaces during authoring, well before any generator is built.
var ErrNegativeWeight = errors.New("model: negative weight")

// Collection is the author-facing, ordered registry of Models. Declaration
// order is significant: the rule compiler expands variants in Collection
// order (§4.1), which in turn drives variant-index determinism.
type Collection struct {
	models []Model
}

// NewCollection returns an empty model Collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends m to the collection and returns its Index. Returns
// ErrNegativeWeight without mutating the collection if m.Weight() < 0.
//
// Complexity: O(1) amortized.
func (c *Collection) Add(m Model) (Index, error) {
	if m.weight < 0 {
		return -1, ErrNegativeWeight
	}
	c.models = append(c.models, m)
	return Index(len(c.models) - 1), nil
}

// Len returns the number of declared models.
func (c *Collection) Len() int {
	return len(c.models)
}

// At returns the model at idx. Panics if idx is out of range, mirroring
// slice semantics — this is an author-time programmer error, never driven
// by untrusted input.
func (c *Collection) At(idx Index) Model {
	return c.models[idx]
}

// All returns the declared models in declaration order. The returned slice
// must not be mutated.
func (c *Collection) All() []Model {
	return c.models
}
