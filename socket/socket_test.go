// SPDX-License-Identifier: MIT
package socket_test

import (
	"testing"

	"github.com/latticeworks/wfc/direction"
	"github.com/latticeworks/wfc/socket"
)

func TestConnectionIsSymmetric(t *testing.T) {
	c := socket.New()
	a := c.Create()
	b := c.Create()
	c.AddConnection(a, b)

	if got := c.Compatible(a); len(got) != 1 || got[0] != b {
		t.Fatalf("expected a compatible with [b], got %v", got)
	}
	if got := c.Compatible(b); len(got) != 1 || got[0] != a {
		t.Fatalf("expected b compatible with [a], got %v", got)
	}
}

func TestConnectionDedupes(t *testing.T) {
	c := socket.New()
	a := c.Create()
	b := c.Create()
	c.AddConnection(a, b)
	c.AddConnection(a, b)

	if got := len(c.Compatible(a)); got != 1 {
		t.Fatalf("expected a duplicate connection to be a no-op, got %d entries", got)
	}
}

func TestKnownReflectsEitherSide(t *testing.T) {
	c := socket.New()
	a := c.Create()
	b := c.Create()
	unregistered := c.Create()

	c.AddConnection(a, b)

	if !c.Known(a) || !c.Known(b) {
		t.Fatalf("expected both sides of a connection to be known")
	}
	if c.Known(unregistered) {
		t.Fatalf("expected an unconnected socket to be unknown")
	}
}

func TestRotatedSocketsAreDistinctIdentities(t *testing.T) {
	c := socket.New()
	a := c.Create()

	r90 := a.Rotated(direction.Rot90)
	if a == r90 {
		t.Fatalf("a socket and its Rot90 rotation must not compare equal")
	}
	if a.ID() != r90.ID() {
		t.Fatalf("rotation must not change the underlying socket ID")
	}
}

func TestAddRotatedConnectionCoversAllCombinations(t *testing.T) {
	c := socket.New()
	a := c.Create()
	b := c.Create()
	c.AddRotatedConnection(a, []socket.Socket{b})

	if got := len(c.Compatible(a)); got != 4 {
		t.Fatalf("expected a (at Rot0) compatible with all 4 rotations of b, got %d", got)
	}
}
