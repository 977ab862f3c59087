// SPDX-License-Identifier: MIT
// Package rule implements the rule compiler (§4.1): it expands authored
// models and their permitted rotations into a flat list of model variants,
// and materializes the compiled adjacency table those variants support.
package rule

import "errors"

// ErrEmptyRuleSet is returned by Compile when zero variants were produced —
// either the model collection was empty, or no model allowed any rotation.
var ErrEmptyRuleSet = errors.New("rule: no variants produced")

// ErrMissingSockets is returned by Compile when a model references a socket
// that has no entry in the socket collection's compatibility relation.
var ErrMissingSockets = errors.New("rule: socket has no declared compatibility")
