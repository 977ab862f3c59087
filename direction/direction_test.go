// SPDX-License-Identifier: MIT
package direction_test

import (
	"testing"

	"github.com/latticeworks/wfc/direction"
)

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range []direction.Direction{direction.East, direction.North, direction.West, direction.South, direction.Up, direction.Down} {
		if got := d.Opposite().Opposite(); got != d {
			t.Fatalf("Opposite is not an involution for %s: got %s", d, got)
		}
	}
}

func TestOppositePairs(t *testing.T) {
	cases := []struct{ a, want direction.Direction }{
		{direction.East, direction.West},
		{direction.West, direction.East},
		{direction.North, direction.South},
		{direction.South, direction.North},
		{direction.Up, direction.Down},
		{direction.Down, direction.Up},
	}
	for _, c := range cases {
		if got := c.a.Opposite(); got != c.want {
			t.Errorf("%s.Opposite() = %s, want %s", c.a, got, c.want)
		}
	}
}

func TestCartesian2DHasNoVerticalAxis(t *testing.T) {
	g := direction.NewCartesian2D()
	if g.HasVerticalAxis() {
		t.Fatalf("2D geometry must not have a vertical axis")
	}
	if len(g.Directions()) != 4 {
		t.Fatalf("expected 4 directions, got %d", len(g.Directions()))
	}
	if g.Index(direction.Up) != -1 {
		t.Fatalf("expected Up to be absent from a 2D geometry")
	}
}

func TestCartesian3DHasVerticalAxis(t *testing.T) {
	g := direction.NewCartesian3D()
	if !g.HasVerticalAxis() {
		t.Fatalf("3D geometry must have a vertical axis")
	}
	if len(g.Directions()) != 6 {
		t.Fatalf("expected 6 directions, got %d", len(g.Directions()))
	}
	if idx := g.Index(direction.Up); idx < 0 {
		t.Fatalf("expected Up present in a 3D geometry")
	}
}

func TestRotationIdempotence(t *testing.T) {
	r := direction.Rot0
	for i := 0; i < 4; i++ {
		r = r.Next()
	}
	if r != direction.Rot0 {
		t.Fatalf("composing Rot90 four times must be the identity, got %s", r)
	}
}

func TestRotationAdd(t *testing.T) {
	if got := direction.Rot90.Add(direction.Rot270); got != direction.Rot0 {
		t.Fatalf("Rot90.Add(Rot270) = %s, want Rot0", got)
	}
}
