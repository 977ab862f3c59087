// SPDX-License-Identifier: MIT
package grid_test

import (
	"errors"
	"testing"

	"github.com/latticeworks/wfc/direction"
	"github.com/latticeworks/wfc/grid"
)

func TestIndexPosRoundTrip(t *testing.T) {
	g, err := grid.New3D(4, 3, 2, false, false, false)
	if err != nil {
		t.Fatalf("New3D: %v", err)
	}
	for z := 0; z < 2; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				idx := g.IndexFromPos(x, y, z)
				gx, gy, gz := g.PosFromIndex(idx)
				if gx != x || gy != y || gz != z {
					t.Fatalf("round trip failed for (%d,%d,%d): got (%d,%d,%d)", x, y, z, gx, gy, gz)
				}
			}
		}
	}
}

func TestRejectsNonPositiveSize(t *testing.T) {
	if _, err := grid.New2D(0, 1, false, false); !errors.Is(err, grid.ErrBadSize) {
		t.Fatalf("expected ErrBadSize, got %v", err)
	}
}

func TestNeighborNonLoopingBoundary(t *testing.T) {
	g, err := grid.New2D(3, 1, false, false)
	if err != nil {
		t.Fatalf("New2D: %v", err)
	}
	origin := g.IndexFromPos(0, 0, 0)
	if _, ok := g.Neighbor(origin, direction.West); ok {
		t.Fatalf("expected no West neighbor at a non-looping boundary")
	}
	if n, ok := g.Neighbor(origin, direction.East); !ok || n != g.IndexFromPos(1, 0, 0) {
		t.Fatalf("expected East neighbor to be cell 1, got (%d, %v)", n, ok)
	}
}

func TestNeighborLoopsAcrossBoundary(t *testing.T) {
	g, err := grid.New2D(3, 1, true, false)
	if err != nil {
		t.Fatalf("New2D: %v", err)
	}
	origin := g.IndexFromPos(0, 0, 0)
	n, ok := g.Neighbor(origin, direction.West)
	if !ok {
		t.Fatalf("expected a looping West neighbor")
	}
	if n != g.IndexFromPos(2, 0, 0) {
		t.Fatalf("expected wraparound to cell 2, got %d", n)
	}
}

func TestCellCount(t *testing.T) {
	g, err := grid.New3D(2, 3, 4, false, false, false)
	if err != nil {
		t.Fatalf("New3D: %v", err)
	}
	if g.CellCount() != 24 {
		t.Fatalf("expected 24 cells, got %d", g.CellCount())
	}
}
