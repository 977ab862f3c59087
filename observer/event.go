// SPDX-License-Identifier: MIT
// Package observer implements the generator's event stream (§4.5): an
// append-only log of Generated/Reinitializing/Failed events with one
// independent read cursor per subscriber, so slow or idle subscribers never
// block the generator or each other.
package observer

import "github.com/latticeworks/wfc/direction"

// Kind distinguishes the three event shapes.
type Kind int

const (
	// Generated is emitted once for every cell whose domain transitions to
	// a singleton, whether by direct collapse or as a side effect of
	// propagation.
	Generated Kind = iota
	// Reinitializing is emitted before a domain reset following a
	// contradiction that has not yet exceeded the retry ceiling.
	Reinitializing
	// Failed is emitted once the retry ceiling is exceeded.
	Failed
)

// String implements fmt.Stringer for debug output.
func (k Kind) String() string {
	switch k {
	case Generated:
		return "Generated"
	case Reinitializing:
		return "Reinitializing"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Event is one entry in the observer log. Only the fields relevant to Kind
// are meaningful.
type Event struct {
	Kind Kind

	// Generated
	CellIndex          int
	VariantIndex       int
	OriginalModelIndex int
	Rotation           direction.Rotation

	// Reinitializing
	RetryCount int

	// Failed
	FailedCellIndex int
}
