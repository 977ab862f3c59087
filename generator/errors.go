// SPDX-License-Identifier: MIT
package generator

import (
	"errors"
	"fmt"
)

// ErrNoRules is returned by Builder.Build when no Rules were supplied.
var ErrNoRules = errors.New("generator: rules are required")

// ErrGeometryMismatch is returned by Builder.Build when the grid's geometry
// does not match the geometry the Rules were compiled against.
var ErrGeometryMismatch = errors.New("generator: grid geometry does not match compiled rules")

// GeneratorError reports that generation failed: the retry ceiling was
// exceeded while NodeIndex last held a contradiction (§6, §7 class 2).
type GeneratorError struct {
	NodeIndex int
}

func (e *GeneratorError) Error() string {
	return fmt.Sprintf("generator: retry ceiling exceeded at cell %d", e.NodeIndex)
}
