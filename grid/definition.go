// SPDX-License-Identifier: MIT
// Package grid defines the finite, row-major coordinate space a Generator
// fills (§6 grid definition fields): per-axis size, per-axis looping, and
// the index<->position conversions used throughout the engine.
package grid

import (
	"errors"

	"github.com/latticeworks/wfc/direction"
)

// ErrBadSize is returned by New2D and New3D when any axis size is
// non-positive.
var ErrBadSize = errors.New("grid: axis size must be positive")

// Definition is the immutable description of a finite regular grid: size and
// looping per axis, and the coordinate system it was built against. Cell
// indexing is row-major with X the fastest axis, then Y, then Z.
type Definition struct {
	sizeX, sizeY, sizeZ int
	loopX, loopY, loopZ bool
	geometry            direction.Geometry
}

// New2D builds a two-dimensional grid definition of sizeX*sizeY cells.
func New2D(sizeX, sizeY int, loopX, loopY bool) (Definition, error) {
	if sizeX <= 0 || sizeY <= 0 {
		return Definition{}, ErrBadSize
	}
	return Definition{
		sizeX: sizeX, sizeY: sizeY, sizeZ: 1,
		loopX: loopX, loopY: loopY, loopZ: false,
		geometry: direction.NewCartesian2D(),
	}, nil
}

// New3D builds a three-dimensional grid definition of sizeX*sizeY*sizeZ
// cells.
func New3D(sizeX, sizeY, sizeZ int, loopX, loopY, loopZ bool) (Definition, error) {
	if sizeX <= 0 || sizeY <= 0 || sizeZ <= 0 {
		return Definition{}, ErrBadSize
	}
	return Definition{
		sizeX: sizeX, sizeY: sizeY, sizeZ: sizeZ,
		loopX: loopX, loopY: loopY, loopZ: loopZ,
		geometry: direction.NewCartesian3D(),
	}, nil
}

// SizeX, SizeY, SizeZ return the per-axis cell counts (SizeZ is 1 for a 2D
// grid).
func (d Definition) SizeX() int { return d.sizeX }
func (d Definition) SizeY() int { return d.sizeY }
func (d Definition) SizeZ() int { return d.sizeZ }

// LoopX, LoopY, LoopZ report whether the respective axis wraps around.
func (d Definition) LoopX() bool { return d.loopX }
func (d Definition) LoopY() bool { return d.loopY }
func (d Definition) LoopZ() bool { return d.loopZ }

// Geometry returns the coordinate system this grid was built against.
func (d Definition) Geometry() direction.Geometry { return d.geometry }

// CellCount returns the total number of cells: SizeX*SizeY*SizeZ.
func (d Definition) CellCount() int {
	return d.sizeX * d.sizeY * d.sizeZ
}

// IndexFromPos converts a (x,y,z) position into a row-major cell index.
// Behavior is undefined for out-of-range positions.
//
// Complexity: O(1).
func (d Definition) IndexFromPos(x, y, z int) int {
	return (z*d.sizeY+y)*d.sizeX + x
}

// PosFromIndex is the inverse of IndexFromPos.
//
// Complexity: O(1).
func (d Definition) PosFromIndex(idx int) (x, y, z int) {
	x = idx % d.sizeX
	rem := idx / d.sizeX
	y = rem % d.sizeY
	z = rem / d.sizeY
	return x, y, z
}

// InBounds reports whether (x,y,z) lies within the grid.
func (d Definition) InBounds(x, y, z int) bool {
	return x >= 0 && x < d.sizeX && y >= 0 && y < d.sizeY && z >= 0 && z < d.sizeZ
}

// Neighbor returns the cell index adjacent to idx in direction dir, and
// whether such a neighbor exists. A non-looping axis that would step out of
// bounds has no neighbor in that direction — per §9's boundary-treatment
// resolution, a missing neighbor is a trivially satisfied constraint, never
// propagated across.
//
// Complexity: O(1).
func (d Definition) Neighbor(idx int, dir direction.Direction) (int, bool) {
	x, y, z := d.PosFromIndex(idx)

	switch dir {
	case direction.East:
		x, ok := d.step(x, d.sizeX, d.loopX, 1)
		if !ok {
			return 0, false
		}
		return d.IndexFromPos(x, y, z), true
	case direction.West:
		x, ok := d.step(x, d.sizeX, d.loopX, -1)
		if !ok {
			return 0, false
		}
		return d.IndexFromPos(x, y, z), true
	case direction.North:
		y, ok := d.step(y, d.sizeY, d.loopY, 1)
		if !ok {
			return 0, false
		}
		return d.IndexFromPos(x, y, z), true
	case direction.South:
		y, ok := d.step(y, d.sizeY, d.loopY, -1)
		if !ok {
			return 0, false
		}
		return d.IndexFromPos(x, y, z), true
	case direction.Up:
		z, ok := d.step(z, d.sizeZ, d.loopZ, 1)
		if !ok {
			return 0, false
		}
		return d.IndexFromPos(x, y, z), true
	case direction.Down:
		z, ok := d.step(z, d.sizeZ, d.loopZ, -1)
		if !ok {
			return 0, false
		}
		return d.IndexFromPos(x, y, z), true
	default:
		return 0, false
	}
}

// step advances a single coordinate by delta (+-1), wrapping if loop is set
// and reporting false if it would leave the axis otherwise.
func (d Definition) step(v, size int, loop bool, delta int) (int, bool) {
	nv := v + delta
	if nv < 0 {
		if !loop {
			return 0, false
		}
		return size - 1, true
	}
	if nv >= size {
		if !loop {
			return 0, false
		}
		return 0, true
	}
	return nv, true
}
