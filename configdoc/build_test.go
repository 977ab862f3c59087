// SPDX-License-Identifier: MIT
package configdoc_test

import (
	"testing"

	"github.com/latticeworks/wfc/configdoc"
	"github.com/latticeworks/wfc/rule"
)

func checkerboardDoc() *configdoc.Document {
	weight := 1.0
	return &configdoc.Document{
		Sockets: []configdoc.SocketDoc{{Name: "black-face"}, {Name: "white-face"}},
		Connections: []configdoc.ConnectionDoc{
			{From: "black-face", To: []string{"white-face"}},
		},
		Models: []configdoc.ModelDoc{
			{
				Name: "black",
				Faces: map[string][]string{
					"east": {"black-face"}, "north": {"black-face"},
					"west": {"black-face"}, "south": {"black-face"},
				},
				Weight: &weight,
			},
			{
				Name: "white",
				Faces: map[string][]string{
					"east": {"white-face"}, "north": {"white-face"},
					"west": {"white-face"}, "south": {"white-face"},
				},
				Weight: &weight,
			},
		},
		Grid: configdoc.GridDoc{Dimensions: "2d", SizeX: 4, SizeY: 4},
	}
}

func TestBuildProducesCompilableRules(t *testing.T) {
	doc := checkerboardDoc()
	sockets, models, gridDef, err := doc.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if models.Len() != 2 {
		t.Fatalf("expected 2 models, got %d", models.Len())
	}
	if gridDef.CellCount() != 16 {
		t.Fatalf("expected 16 cells, got %d", gridDef.CellCount())
	}

	rules, err := rule.Compile(models, sockets, gridDef.Geometry())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if rules.VariantCount() != 2 {
		t.Fatalf("expected 2 variants (no rotations declared), got %d", rules.VariantCount())
	}
}

func TestBuildRejectsUnknownSocketRef(t *testing.T) {
	doc := checkerboardDoc()
	doc.Connections[0].To = []string{"nonexistent"}

	if _, _, _, err := doc.Build(); err == nil {
		t.Fatalf("expected an error for an unknown socket reference")
	}
}

func TestBuildRejectsBadGridSize(t *testing.T) {
	doc := checkerboardDoc()
	doc.Grid.SizeX = 0

	if _, _, _, err := doc.Build(); err != configdoc.ErrBadGridSize {
		t.Fatalf("expected ErrBadGridSize, got %v", err)
	}
}
