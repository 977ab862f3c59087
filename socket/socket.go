// SPDX-License-Identifier: MIT
// Package socket implements the author-facing socket registry (§3, §4
// Socket Collection): opaque socket identifiers, their rotation tags, and
// the symmetric compatibility relation between them.
package socket

import "github.com/latticeworks/wfc/direction"

// Socket is an opaque connection-type identifier drawn from a monotonic
// counter, paired with a rotation tag. Two sockets are "the same socket"
// iff both fields match; the rotation tag lets one declared socket carry
// four rotationally-distinct instances without new identifiers.
//
// Socket is a small, comparable value type: it may be used directly as a
// map key, and equality follows Go's built-in struct comparison.
type Socket struct {
	id  uint32
	rot direction.Rotation
}

// ID returns the socket's declaration-order identifier, ignoring rotation.
func (s Socket) ID() uint32 {
	return s.id
}

// Rotation returns the socket's rotation tag.
func (s Socket) Rotation() direction.Rotation {
	return s.rot
}

// Rotated returns a copy of s with its rotation tag advanced by r.
func (s Socket) Rotated(r direction.Rotation) Socket {
	return Socket{id: s.id, rot: s.rot.Add(r)}
}
