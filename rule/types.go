// SPDX-License-Identifier: MIT
package rule

import (
	"github.com/latticeworks/wfc/direction"
	"github.com/latticeworks/wfc/model"
	"github.com/latticeworks/wfc/socket"
)

// Variant is an immutable record emitted by the rule compiler: a specific
// rotation of an authored model. Variants are assigned contiguous integer
// indices in the order: for each model in declaration order, for each of
// {0°,90°,180°,270°} in that fixed order, include iff allowed (§3).
type Variant struct {
	index               int
	originalModel       model.Index
	rotation            direction.Rotation
	socketsPerDirection [][]socket.Socket
	weight              float64
	debugName           string
}

// Index returns this variant's position in Rules.Variants().
func (v Variant) Index() int { return v.index }

// OriginalModelIndex returns the model this variant was expanded from.
func (v Variant) OriginalModelIndex() model.Index { return v.originalModel }

// Rotation returns the rotation this variant represents.
func (v Variant) Rotation() direction.Rotation { return v.rotation }

// Weight returns the sampling weight inherited from the original model.
func (v Variant) Weight() float64 { return v.weight }

// DebugName returns the debug name inherited from the original model, or ""
// if none was set.
func (v Variant) DebugName() string { return v.debugName }

// Sockets returns the rotated socket list declared on direction index
// dirIdx (an index into the owning Geometry's Directions()). The returned
// slice must not be mutated.
func (v Variant) Sockets(dirIdx int) []socket.Socket {
	if dirIdx < 0 || dirIdx >= len(v.socketsPerDirection) {
		return nil
	}
	return v.socketsPerDirection[dirIdx]
}

// OrphanWarning records a variant whose support set in a given direction is
// empty — it is simply unreachable as a neighbor in that direction, which is
// legal if the grid boundary or other constraints accommodate it (§4.1).
// Compile never fails because of these; it only reports them.
type OrphanWarning struct {
	VariantIndex int
	Direction    direction.Direction
}

// Rules is the immutable, compiled adjacency table produced by Compile. It
// is safe for concurrent read-only use by any number of Generators (§5).
type Rules struct {
	geometry direction.Geometry
	variants []Variant
	// support[v][dirIdx] is the ordered, deduplicated list of variant
	// indices that may legally sit in direction dirIdx from variant v.
	support [][][]int
	orphans []OrphanWarning
}

// Geometry returns the coordinate system this rule set was compiled for.
func (r *Rules) Geometry() direction.Geometry { return r.geometry }

// Variants returns the compiled variant list in index order. The returned
// slice must not be mutated.
func (r *Rules) Variants() []Variant { return r.variants }

// VariantCount returns len(Variants()).
func (r *Rules) VariantCount() int { return len(r.variants) }

// Support returns the ordered list of variant indices legally supported by
// variant v in direction index dirIdx. The returned slice must not be
// mutated; it aliases internal storage.
func (r *Rules) Support(v, dirIdx int) []int {
	return r.support[v][dirIdx]
}

// Orphans returns every OrphanWarning recorded during compilation.
func (r *Rules) Orphans() []OrphanWarning { return r.orphans }
