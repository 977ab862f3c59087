// SPDX-License-Identifier: MIT
// Package configdoc loads a YAML authoring document into the same
// Socket/Model/Grid constructors an author would call by hand (§4.6), so
// the file format cannot express anything the programmatic API forbids.
package configdoc

// SocketDoc declares one socket by name. Sockets are created in document
// order, so their monotonic IDs match declaration order (determinism, per
// §4.1's adjacency-list construction).
type SocketDoc struct {
	Name string `mapstructure:"name"`
}

// ConnectionDoc declares that From is compatible with every name in To.
type ConnectionDoc struct {
	From string   `mapstructure:"from"`
	To   []string `mapstructure:"to"`
}

// ModelDoc declares one model. Faces is keyed by direction name (east,
// north, west, south, up, down) and lists the socket names on that face, in
// declared order (a "multi-socket side", §3).
type ModelDoc struct {
	Name      string              `mapstructure:"name"`
	Faces     map[string][]string `mapstructure:"faces"`
	Weight    *float64            `mapstructure:"weight"`
	Rotations []string            `mapstructure:"rotations"`
}

// GridDoc declares the coordinate space to fill.
type GridDoc struct {
	Dimensions string `mapstructure:"dimensions"`
	SizeX      int    `mapstructure:"sizeX"`
	SizeY      int    `mapstructure:"sizeY"`
	SizeZ      int    `mapstructure:"sizeZ"`
	LoopX      bool   `mapstructure:"loopX"`
	LoopY      bool   `mapstructure:"loopY"`
	LoopZ      bool   `mapstructure:"loopZ"`
}

// Document is the parsed shape of an authoring YAML file, prior to Build
// turning it into the collections the rule compiler consumes.
type Document struct {
	Sockets     []SocketDoc     `mapstructure:"sockets"`
	Connections []ConnectionDoc `mapstructure:"connections"`
	Models      []ModelDoc      `mapstructure:"models"`
	Grid        GridDoc         `mapstructure:"grid"`
}
