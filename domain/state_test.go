// SPDX-License-Identifier: MIT
package domain_test

import (
	"math/rand"
	"testing"

	"github.com/latticeworks/wfc/domain"
)

func TestInitializeAllOnes(t *testing.T) {
	s := domain.New([]float64{1, 1, 1})
	s.Initialize(2, rand.New(rand.NewSource(1)))

	if s.PopCount(0) != 3 || s.PopCount(1) != 3 {
		t.Fatalf("expected every cell to start with all 3 variants possible")
	}
	if s.Contradicted(0) {
		t.Fatalf("freshly initialized cell must not be contradicted")
	}
}

func TestRemoveUpdatesWeightSums(t *testing.T) {
	s := domain.New([]float64{1, 2, 3})
	s.Initialize(1, rand.New(rand.NewSource(1)))

	if got := s.SumWeight(0); got != 6 {
		t.Fatalf("expected initial sum weight 6, got %v", got)
	}
	if !s.Remove(0, 1) {
		t.Fatalf("expected Remove to report the bit was set")
	}
	if got := s.SumWeight(0); got != 4 {
		t.Fatalf("expected sum weight 4 after removing weight-2 variant, got %v", got)
	}
	if s.Remove(0, 1) {
		t.Fatalf("expected a second Remove of the same variant to report false")
	}
}

func TestRemovePushesWorklistEntry(t *testing.T) {
	s := domain.New([]float64{1, 1})
	s.Initialize(1, rand.New(rand.NewSource(1)))

	s.Remove(0, 0)
	entry, ok := s.PopWorklist()
	if !ok {
		t.Fatalf("expected a worklist entry after Remove")
	}
	if entry.Cell != 0 || entry.Variant != 0 {
		t.Fatalf("unexpected worklist entry: %+v", entry)
	}
	if !s.WorklistEmpty() {
		t.Fatalf("expected worklist drained after popping the only entry")
	}
}

func TestCollapseToLeavesOnlyChosenVariant(t *testing.T) {
	s := domain.New([]float64{1, 1, 1})
	s.Initialize(1, rand.New(rand.NewSource(1)))

	s.CollapseTo(0, 1)
	if !s.IsFixed(0) {
		t.Fatalf("expected cell to be fixed after CollapseTo")
	}
	if s.FixedVariant(0) != 1 {
		t.Fatalf("expected fixed variant 1, got %d", s.FixedVariant(0))
	}
}

func TestContradictedWhenEmpty(t *testing.T) {
	s := domain.New([]float64{1, 1})
	s.Initialize(1, rand.New(rand.NewSource(1)))

	s.Remove(0, 0)
	s.Remove(0, 1)
	if !s.Contradicted(0) {
		t.Fatalf("expected an empty domain to be contradicted")
	}
}

func TestEntropyUndefinedWhenFixedOrEmpty(t *testing.T) {
	s := domain.New([]float64{1, 1})
	s.Initialize(1, rand.New(rand.NewSource(1)))

	s.CollapseTo(0, 0)
	if _, ok := s.Entropy(0); ok {
		t.Fatalf("expected Entropy to be undefined for a fixed cell")
	}
}

func TestEntropyDefinedWhileMultipleVariantsRemain(t *testing.T) {
	s := domain.New([]float64{1, 2, 3})
	s.Initialize(1, rand.New(rand.NewSource(1)))

	if _, ok := s.Entropy(0); !ok {
		t.Fatalf("expected Entropy defined while 3 variants remain")
	}
}

func TestInitializeResetsWorklist(t *testing.T) {
	s := domain.New([]float64{1, 1})
	s.Initialize(2, rand.New(rand.NewSource(1)))
	s.Remove(0, 0)

	s.Initialize(2, rand.New(rand.NewSource(2)))
	if !s.WorklistEmpty() {
		t.Fatalf("expected Initialize (restart) to clear the worklist")
	}
	if s.PopCount(0) != 2 {
		t.Fatalf("expected restart to restore all variants")
	}
}
