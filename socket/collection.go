// SPDX-License-Identifier: MIT
package socket

import (
	"sync"

	"github.com/latticeworks/wfc/direction"
)

// Collection is the author-facing registry of sockets and their symmetric
// compatibility relation. It is mutable during authoring and is meant to be
// handed to the rule compiler once model declarations are complete; nothing
// in this package prevents further mutation afterward, but the compiler
// takes a point-in-time read and later edits have no effect on already
// compiled Rules.
//
// Collection is safe for concurrent use during authoring, mirroring the
// locking discipline of the graph registries this package is modeled on.
type Collection struct {
	mu sync.RWMutex

	nextID uint32

	// compat is the symmetric compatibility list: compat[a] contains b iff
	// a and b may sit across a boundary from each other. Order is
	// author-visible insertion order and affects adjacency-list determinism
	// (§4.1).
	compat map[Socket][]Socket

	// unique deduplicates inserts into compat; it is never read besides that.
	unique map[Socket]map[Socket]struct{}
}

// New returns an empty socket Collection.
func New() *Collection {
	return &Collection{
		compat: make(map[Socket][]Socket),
		unique: make(map[Socket]map[Socket]struct{}),
	}
}

// Create allocates and returns a fresh Socket with a new monotonic ID and
// Rot0 rotation.
//
// Complexity: O(1).
func (c *Collection) Create() Socket {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Socket{id: c.nextID, rot: direction.Rot0}
	c.nextID++

	return s
}

// AddConnection declares that from is compatible with every socket in to,
// symmetrically. Returns c for chaining.
//
// Complexity: O(len(to)).
func (c *Collection) AddConnection(from Socket, to ...Socket) *Collection {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range to {
		c.registerConnection(from, t)
	}

	return c
}

// AddRotatedConnection declares compatibility between every rotation of from
// and every rotation of every socket in to — the 4x4 cross product used to
// author rotation-agnostic connections (e.g. a socket that must always mate
// with another regardless of either tile's orientation).
//
// Complexity: O(16 * len(to)).
func (c *Collection) AddRotatedConnection(from Socket, to []Socket) *Collection {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, toRot := range direction.AllRotations {
		for _, fromRot := range direction.AllRotations {
			rotatedFrom := from.Rotated(fromRot)
			for _, t := range to {
				c.registerConnection(rotatedFrom, t.Rotated(toRot))
			}
		}
	}

	return c
}

// AddConstrainedRotatedConnection declares compatibility between from at
// each rotation listed in deltaRotations (consumed in order, each one
// advancing to the next after being used) and every rotation of every
// socket in to. It is the constrained counterpart of AddRotatedConnection,
// used when only specific relative orientations between two tiles are
// legal (e.g. a ramp that only mates with a floor from one side).
//
// Complexity: O(4 * len(deltaRotations) * len(to)).
func (c *Collection) AddConstrainedRotatedConnection(from Socket, deltaRotations []direction.Rotation, to []Socket) *Collection {
	c.mu.Lock()
	defer c.mu.Unlock()

	rotations := append([]direction.Rotation(nil), deltaRotations...)
	for _, toRot := range direction.AllRotations {
		for i, fromRot := range rotations {
			rotatedFrom := from.Rotated(fromRot)
			for _, t := range to {
				c.registerConnection(rotatedFrom, t.Rotated(toRot))
			}
			rotations[i] = fromRot.Next()
		}
	}

	return c
}

// registerConnection inserts the (from,to) pair symmetrically into compat,
// deduplicating via unique. Callers must hold c.mu.
func (c *Collection) registerConnection(from, to Socket) {
	c.registerConnectionHalf(from, to)
	c.registerConnectionHalf(to, from)
}

func (c *Collection) registerConnectionHalf(from, to Socket) {
	seen, ok := c.unique[from]
	if !ok {
		seen = make(map[Socket]struct{})
		c.unique[from] = seen
	}
	if _, dup := seen[to]; dup {
		return
	}
	seen[to] = struct{}{}
	c.compat[from] = append(c.compat[from], to)
}

// Compatible returns the ordered, author-visible list of sockets compatible
// with s. The returned slice must not be mutated by the caller; it aliases
// internal storage.
//
// Complexity: O(1).
func (c *Collection) Compatible(s Socket) []Socket {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.compat[s]
}

// Known reports whether s has ever been registered in a connection, either
// as the declaring or the target side.
func (c *Collection) Known(s Socket) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.compat[s]
	return ok
}
