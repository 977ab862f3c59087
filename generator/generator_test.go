// SPDX-License-Identifier: MIT
package generator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeworks/wfc/direction"
	"github.com/latticeworks/wfc/generator"
	"github.com/latticeworks/wfc/grid"
	"github.com/latticeworks/wfc/model"
	"github.com/latticeworks/wfc/observer"
	"github.com/latticeworks/wfc/rule"
	"github.com/latticeworks/wfc/socket"
)

// build1DBeach compiles variants A-E with chain compatibility A-B, B-C,
// C-D, D-E (plus each socket's identity via its own declared compat), over
// a 1D-style geometry expressed as a non-looping east/west strip (§8
// scenario 1).
func build1DBeach(t *testing.T) *rule.Rules {
	t.Helper()
	sockets := socket.New()
	faceA := sockets.Create()
	faceB := sockets.Create()
	faceC := sockets.Create()
	faceD := sockets.Create()
	faceE := sockets.Create()

	sockets.AddConnection(faceA, faceB)
	sockets.AddConnection(faceB, faceC)
	sockets.AddConnection(faceC, faceD)
	sockets.AddConnection(faceD, faceE)
	for _, s := range []socket.Socket{faceA, faceB, faceC, faceD, faceE} {
		sockets.AddConnection(s, s)
	}

	geom := direction.NewCartesian2D()
	dirs := geom.Directions()

	// Every model exposes its own letter-socket on every face; north/south
	// are left free (socket compatible with nothing declared is fine, it
	// simply never touches a neighbor there since the grid is 1xN).
	mkFaces := func(s socket.Socket) [][]socket.Socket {
		out := make([][]socket.Socket, len(dirs))
		for i := range dirs {
			out[i] = []socket.Socket{s}
		}
		return out
	}

	models := model.NewCollection()
	for _, s := range []socket.Socket{faceA, faceB, faceC, faceD, faceE} {
		_, err := models.Add(model.New(mkFaces(s)))
		require.NoError(t, err)
	}

	rules, err := rule.Compile(models, sockets, geom)
	require.NoError(t, err)
	return rules
}

func TestGenerate1DBeachCompletesWithoutContradiction(t *testing.T) {
	rules := build1DBeach(t)

	g5x1, err := grid.New2D(5, 1, false, false)
	require.NoError(t, err)

	gen, err := generator.NewBuilder().
		Rules(rules).
		Grid(g5x1).
		RNG(generator.SeededMode(0)).
		Build()
	require.NoError(t, err)

	sub := gen.Subscribe()
	tryCount, err := gen.Generate()
	require.NoError(t, err)
	require.Equal(t, 1, tryCount, "expected the 1D beach to complete without any retry")
	require.Equal(t, generator.Done, gen.Status())

	generated := 0
	for _, e := range sub.Drain() {
		if e.Kind == observer.Generated {
			generated++
		}
	}
	require.Equal(t, 5, generated, "expected exactly 5 Generated events for 5 cells")

	for c := 0; c < g5x1.CellCount(); c++ {
		require.Truef(t, gen.IsFixed(c), "expected cell %d fixed on completion", c)
	}
}

func TestGenerateDeterministicUnderSeed(t *testing.T) {
	rules := build1DBeach(t)
	g5x1, err := grid.New2D(5, 1, false, false)
	require.NoError(t, err)

	run := func() []observer.Event {
		gen, err := generator.NewBuilder().
			Rules(rules).Grid(g5x1).RNG(generator.SeededMode(42)).Build()
		require.NoError(t, err)
		sub := gen.Subscribe()
		_, err = gen.Generate()
		require.NoError(t, err)
		return sub.Drain()
	}

	a := run()
	b := run()
	require.Equal(t, a, b, "expected identical event streams for the same seed")
}

func TestSubscriberJoiningMidRunSeesOnlyLaterEvents(t *testing.T) {
	rules := build1DBeach(t)
	g5x1, err := grid.New2D(5, 1, false, false)
	require.NoError(t, err)
	gen, err := generator.NewBuilder().
		Rules(rules).Grid(g5x1).RNG(generator.SeededMode(7)).Build()
	require.NoError(t, err)

	early := gen.Subscribe()
	_, err = gen.Step()
	require.NoError(t, err)
	_, err = gen.Step()
	require.NoError(t, err)

	late := gen.Subscribe()
	for gen.Status() != generator.Done {
		_, err := gen.Step()
		require.NoError(t, err)
	}

	earlyEvents := early.Drain()
	lateEvents := late.Drain()
	require.Lessf(t, len(lateEvents), len(earlyEvents),
		"expected the late subscriber to see fewer events, early=%d late=%d", len(earlyEvents), len(lateEvents))
}
