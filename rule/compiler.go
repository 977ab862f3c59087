// SPDX-License-Identifier: MIT
package rule

import (
	"fmt"

	"github.com/latticeworks/wfc/direction"
	"github.com/latticeworks/wfc/model"
	"github.com/latticeworks/wfc/socket"
)

// socketFace is the key used to index the inverse socket->variant map built
// during adjacency materialization.
type socketFace struct {
	s      socket.Socket
	dirIdx int
}

// Compile expands models against sockets' compatibility relation under geom
// into a compiled Rules. Models are read in declaration order; the rotation
// expansion and adjacency construction are fully deterministic for a given
// (models, sockets, geom) triple (§9 determinism caveat).
//
// Compile returns ErrEmptyRuleSet if zero variants were produced, or
// ErrMissingSockets (wrapped with the offending model/socket/direction) if a
// model references a socket absent from sockets' compatibility relation.
// Unsupported variants (§4.1 OrphanVariant) are never an error; inspect
// Rules.Orphans() instead.
func Compile(models *model.Collection, sockets *socket.Collection, geom direction.Geometry) (*Rules, error) {
	dirs := geom.Directions()

	variants := expandVariants(models, geom, dirs)
	if len(variants) == 0 {
		return nil, ErrEmptyRuleSet
	}

	if err := validateSockets(variants, sockets, dirs); err != nil {
		return nil, err
	}

	support, orphans := materializeAdjacency(variants, sockets, geom, dirs)

	return &Rules{
		geometry: geom,
		variants: variants,
		support:  support,
		orphans:  orphans,
	}, nil
}

// expandVariants walks models in declaration order and, for each, the
// canonical rotation sequence, including only allowed rotations (§4.1).
func expandVariants(models *model.Collection, geom direction.Geometry, dirs []direction.Direction) []Variant {
	var variants []Variant
	for mi := 0; mi < models.Len(); mi++ {
		idx := model.Index(mi)
		m := models.At(idx)
		for _, r := range direction.AllRotations {
			if !m.AllowsRotation(r) {
				continue
			}
			variants = append(variants, Variant{
				originalModel:       idx,
				rotation:            r,
				socketsPerDirection: rotateModelSockets(m, geom, dirs, r),
				weight:              m.Weight(),
				debugName:           m.DebugName(),
			})
		}
	}
	for i := range variants {
		variants[i].index = i
	}
	return variants
}

// rotateModelSockets computes the rotated per-direction socket lists for m
// at rotation r (§4.1 expansion). The two faces along the rotation axis
// (Up/Down, 3D only) keep their direction index but every socket on them
// has its rotation tag advanced by r. The remaining planar faces are
// reassigned by a right-cyclic shift of the planar basis: the face at basis
// index i receives the sockets originally declared at basis index
// (i-r) mod 4.
func rotateModelSockets(m model.Model, geom direction.Geometry, dirs []direction.Direction, r direction.Rotation) [][]socket.Socket {
	out := make([][]socket.Socket, len(dirs))

	if geom.HasVerticalAxis() {
		for _, axisDir := range [2]direction.Direction{direction.Up, direction.Down} {
			idx := geom.Index(axisDir)
			if idx < 0 {
				continue
			}
			src := m.Sockets(idx)
			rotated := make([]socket.Socket, len(src))
			for i, s := range src {
				rotated[i] = s.Rotated(r)
			}
			out[idx] = rotated
		}
	}

	basis := direction.PlanarBasis()
	rIdx := r.Index()
	for i := 0; i < 4; i++ {
		srcBasisIdx := ((i-rIdx)%4 + 4) % 4
		srcIdx := geom.Index(basis[srcBasisIdx])
		dstIdx := geom.Index(basis[i])
		if srcIdx < 0 || dstIdx < 0 {
			continue
		}
		out[dstIdx] = append([]socket.Socket(nil), m.Sockets(srcIdx)...)
	}

	return out
}

func validateSockets(variants []Variant, sockets *socket.Collection, dirs []direction.Direction) error {
	for _, v := range variants {
		for dirIdx, d := range dirs {
			for _, s := range v.Sockets(dirIdx) {
				if !sockets.Known(s) {
					return fmt.Errorf("%w: model %d socket %d on %s", ErrMissingSockets, v.originalModel, s.ID(), d)
				}
			}
		}
	}
	return nil
}

// materializeAdjacency builds support[v][dirIdx] per §4.1: an inverse map
// sockets_to_variants[socket][direction] is built while walking variants in
// index order and their sockets in declared order; then, for each (v,d),
// we walk v's own sockets in declared order, and for each walk
// compat[s] in its insertion order, appending each candidate iff not
// already present. This produces a stable adjacency list for a given
// (variants, sockets) pair.
func materializeAdjacency(variants []Variant, sockets *socket.Collection, geom direction.Geometry, dirs []direction.Direction) ([][][]int, []OrphanWarning) {
	bySocketFace := make(map[socketFace][]int)
	seenInsert := make(map[socketFace]map[int]struct{})

	for _, v := range variants {
		for dirIdx := range dirs {
			for _, s := range v.Sockets(dirIdx) {
				k := socketFace{s: s, dirIdx: dirIdx}
				seen := seenInsert[k]
				if seen == nil {
					seen = make(map[int]struct{})
					seenInsert[k] = seen
				}
				if _, dup := seen[v.index]; dup {
					continue
				}
				seen[v.index] = struct{}{}
				bySocketFace[k] = append(bySocketFace[k], v.index)
			}
		}
	}

	support := make([][][]int, len(variants))
	var orphans []OrphanWarning

	for _, v := range variants {
		support[v.index] = make([][]int, len(dirs))
		for dirIdx, d := range dirs {
			oppIdx := geom.Index(d.Opposite())
			seenCandidate := make(map[int]struct{})
			for _, s := range v.Sockets(dirIdx) {
				for _, compat := range sockets.Compatible(s) {
					for _, candidate := range bySocketFace[socketFace{s: compat, dirIdx: oppIdx}] {
						if _, dup := seenCandidate[candidate]; dup {
							continue
						}
						seenCandidate[candidate] = struct{}{}
						support[v.index][dirIdx] = append(support[v.index][dirIdx], candidate)
					}
				}
			}
			if len(support[v.index][dirIdx]) == 0 {
				orphans = append(orphans, OrphanWarning{VariantIndex: v.index, Direction: d})
			}
		}
	}

	return support, orphans
}
