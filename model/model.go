// SPDX-License-Identifier: MIT
// Package model implements the author-facing model registry (§3, §4 Model
// Collection): authored tiles with per-direction socket lists, a sampling
// weight, permitted rotations, and an optional debug name.
package model

import (
	"github.com/latticeworks/wfc/direction"
	"github.com/latticeworks/wfc/socket"
)

// Index identifies a Model's position within a Collection's declaration
// order. It is stable for the lifetime of the Collection.
type Index int

// Model is an authored tile: one socket list per direction of the target
// Geometry, a non-negative sampling weight, the set of rotations the rule
// compiler is permitted to expand it into, and an optional debug name.
//
// Model is immutable once constructed by New; use the With* Options to
// configure it at construction time.
type Model struct {
	socketsPerDirection [][]socket.Socket
	weight              float64
	allowedRotations    map[direction.Rotation]struct{}
	debugName           string
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithWeight sets the sampling weight (default 1). Negative weights are a
// programmer error (§7 class 3) and are rejected by Collection.Add rather
// than silently clamped.
func WithWeight(w float64) Option {
	return func(m *Model) { m.weight = w }
}

// WithRotations restricts the allowed rotations to exactly the given set,
// always including Rot0.
func WithRotations(rotations ...direction.Rotation) Option {
	return func(m *Model) {
		m.allowedRotations = make(map[direction.Rotation]struct{}, len(rotations)+1)
		m.allowedRotations[direction.Rot0] = struct{}{}
		for _, r := range rotations {
			m.allowedRotations[r] = struct{}{}
		}
	}
}

// WithAllRotations allows every rotation in direction.AllRotations.
func WithAllRotations() Option {
	return func(m *Model) {
		m.allowedRotations = make(map[direction.Rotation]struct{}, 4)
		for _, r := range direction.AllRotations {
			m.allowedRotations[r] = struct{}{}
		}
	}
}

// WithName attaches a debug name, surfaced in Variant.DebugName().
func WithName(name string) Option {
	return func(m *Model) { m.debugName = name }
}

// New constructs a Model from its per-direction socket lists (indexed by the
// target Geometry's direction order) and applies opts. Defaults: weight 1,
// allowed rotations {Rot0}, no debug name.
//
// socketsPerDirection is copied defensively; the caller's slices may be
// reused afterward.
func New(socketsPerDirection [][]socket.Socket, opts ...Option) Model {
	cp := make([][]socket.Socket, len(socketsPerDirection))
	for i, s := range socketsPerDirection {
		cp[i] = append([]socket.Socket(nil), s...)
	}

	m := Model{
		socketsPerDirection: cp,
		weight:              1,
		allowedRotations:    map[direction.Rotation]struct{}{direction.Rot0: {}},
	}
	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Sockets returns the socket list declared for direction index dirIdx
// (the index into the owning Geometry's Directions()). The returned slice
// must not be mutated.
func (m Model) Sockets(dirIdx int) []socket.Socket {
	if dirIdx < 0 || dirIdx >= len(m.socketsPerDirection) {
		return nil
	}
	return m.socketsPerDirection[dirIdx]
}

// DirectionCount returns the number of per-direction socket slots this model
// was declared with.
func (m Model) DirectionCount() int {
	return len(m.socketsPerDirection)
}

// Weight returns the sampling weight.
func (m Model) Weight() float64 {
	return m.weight
}

// AllowsRotation reports whether r is among the model's permitted rotations.
func (m Model) AllowsRotation(r direction.Rotation) bool {
	_, ok := m.allowedRotations[r]
	return ok
}

// DebugName returns the optional debug name, or "" if none was set.
func (m Model) DebugName() string {
	return m.debugName
}
