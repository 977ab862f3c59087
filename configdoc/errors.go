// SPDX-License-Identifier: MIT
package configdoc

import (
	"errors"
	"fmt"
)

// ErrUnknownSocketRef is wrapped with the offending name when a connection
// or model face references a socket name never declared in Sockets.
var ErrUnknownSocketRef = errors.New("configdoc: unknown socket reference")

// ErrBadGridSize is returned when the grid block has a non-positive axis
// size.
var ErrBadGridSize = errors.New("configdoc: grid axis size must be positive")

// ErrUnknownDirection is wrapped with the offending name when a model's
// faces map uses a direction name outside {east,north,west,south,up,down}.
var ErrUnknownDirection = errors.New("configdoc: unknown direction name")

// ErrUnknownDimensions is wrapped with the offending value when the grid
// block's dimensions field is not "2d" or "3d".
var ErrUnknownDimensions = errors.New("configdoc: grid dimensions must be \"2d\" or \"3d\"")

// ErrUnknownRotation is wrapped with the offending name when a model's
// rotations list uses a value outside {0,90,180,270,all}.
var ErrUnknownRotation = errors.New("configdoc: unknown rotation")

func unknownSocketRef(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownSocketRef, name)
}

func unknownDirection(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

func unknownRotation(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownRotation, name)
}

func unknownDimensions(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownDimensions, name)
}
