// SPDX-License-Identifier: MIT
package observer

import "github.com/latticeworks/wfc/direction"

// CellStatus is the last-known state of one cell, as tracked by a
// StatefulObserver.
type CellStatus struct {
	Fixed              bool
	VariantIndex       int
	OriginalModelIndex int
	Rotation           direction.Rotation
}

// StatefulObserver is the "stateful" consumer style (§4.5): it drains a
// Subscription and maintains its own shadow copy of every cell's
// last-known fixed variant, rather than handing the caller the raw event
// stream.
type StatefulObserver struct {
	sub   *Subscription
	cells []CellStatus

	retryCount int
	failed     bool
	failedCell int
}

// NewStatefulObserver returns a StatefulObserver tracking cellCount cells,
// draining sub.
func NewStatefulObserver(sub *Subscription, cellCount int) *StatefulObserver {
	return &StatefulObserver{sub: sub, cells: make([]CellStatus, cellCount)}
}

// Sync drains every pending event from the underlying Subscription,
// applying it to the shadow state. Call before reading Cell/RetryCount/
// Failed to see the latest generator state.
func (o *StatefulObserver) Sync() {
	for {
		e, ok := o.sub.Next()
		if !ok {
			return
		}
		switch e.Kind {
		case Generated:
			o.cells[e.CellIndex] = CellStatus{
				Fixed:              true,
				VariantIndex:       e.VariantIndex,
				OriginalModelIndex: e.OriginalModelIndex,
				Rotation:           e.Rotation,
			}
		case Reinitializing:
			for i := range o.cells {
				o.cells[i] = CellStatus{}
			}
			o.retryCount = e.RetryCount
		case Failed:
			o.failed = true
			o.failedCell = e.FailedCellIndex
		}
	}
}

// Cell returns the last-known status of cell, as of the last Sync.
func (o *StatefulObserver) Cell(cell int) CellStatus {
	return o.cells[cell]
}

// RetryCount returns the number of reinitializations observed so far.
func (o *StatefulObserver) RetryCount() int {
	return o.retryCount
}

// Failed reports whether a Failed event has been observed, and the cell
// index it carried.
func (o *StatefulObserver) Failed() (int, bool) {
	return o.failedCell, o.failed
}
