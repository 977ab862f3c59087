// SPDX-License-Identifier: MIT
package configdoc

import (
	"github.com/latticeworks/wfc/direction"
	"github.com/latticeworks/wfc/grid"
	"github.com/latticeworks/wfc/model"
	"github.com/latticeworks/wfc/socket"
)

var directionNames = map[string]direction.Direction{
	"east":  direction.East,
	"north": direction.North,
	"west":  direction.West,
	"south": direction.South,
	"up":    direction.Up,
	"down":  direction.Down,
}

var rotationNames = map[string]direction.Rotation{
	"0":   direction.Rot0,
	"90":  direction.Rot90,
	"180": direction.Rot180,
	"270": direction.Rot270,
}

// Build deterministically turns d into the same Socket/Model collections
// and GridDefinition a hand-written authoring program would produce:
// sockets are created in document order (so monotonic IDs match
// declaration order), models likewise.
func (d *Document) Build() (*socket.Collection, *model.Collection, grid.Definition, error) {
	geom, err := d.buildGeometry()
	if err != nil {
		return nil, nil, grid.Definition{}, err
	}

	sockets := socket.New()
	byName := make(map[string]socket.Socket, len(d.Sockets))
	for _, s := range d.Sockets {
		byName[s.Name] = sockets.Create()
	}

	for _, c := range d.Connections {
		from, ok := byName[c.From]
		if !ok {
			return nil, nil, grid.Definition{}, unknownSocketRef(c.From)
		}
		to := make([]socket.Socket, len(c.To))
		for i, name := range c.To {
			s, ok := byName[name]
			if !ok {
				return nil, nil, grid.Definition{}, unknownSocketRef(name)
			}
			to[i] = s
		}
		sockets.AddConnection(from, to...)
	}

	models := model.NewCollection()
	dirs := geom.Directions()
	for _, md := range d.Models {
		for name := range md.Faces {
			if _, ok := directionNames[name]; !ok {
				return nil, nil, grid.Definition{}, unknownDirection(name)
			}
		}
		socketsPerDirection := make([][]socket.Socket, len(dirs))
		for i, dir := range dirs {
			names := md.Faces[directionName(dir)]
			face := make([]socket.Socket, len(names))
			for j, name := range names {
				s, ok := byName[name]
				if !ok {
					return nil, nil, grid.Definition{}, unknownSocketRef(name)
				}
				face[j] = s
			}
			socketsPerDirection[i] = face
		}

		opts, err := modelOptions(md)
		if err != nil {
			return nil, nil, grid.Definition{}, err
		}
		if _, err := models.Add(model.New(socketsPerDirection, opts...)); err != nil {
			return nil, nil, grid.Definition{}, err
		}
	}

	return sockets, models, geom.gridDef, nil
}

// geometryAndGrid bundles the Geometry a Document's models are read
// against with the concrete grid.Definition it builds, since both derive
// from the same "2d"/"3d" choice.
type geometryAndGrid struct {
	direction.Geometry
	gridDef grid.Definition
}

func (d *Document) buildGeometry() (geometryAndGrid, error) {
	var geom direction.Geometry
	switch d.Grid.Dimensions {
	case "2d", "":
		geom = direction.NewCartesian2D()
	case "3d":
		geom = direction.NewCartesian3D()
	default:
		return geometryAndGrid{}, unknownDimensions(d.Grid.Dimensions)
	}

	sizeZ := d.Grid.SizeZ
	if geom.Dimensions() == direction.Cartesian2D {
		if sizeZ == 0 {
			sizeZ = 1
		}
	}

	var (
		def grid.Definition
		err error
	)
	if geom.Dimensions() == direction.Cartesian2D {
		def, err = grid.New2D(d.Grid.SizeX, d.Grid.SizeY, d.Grid.LoopX, d.Grid.LoopY)
	} else {
		def, err = grid.New3D(d.Grid.SizeX, d.Grid.SizeY, sizeZ, d.Grid.LoopX, d.Grid.LoopY, d.Grid.LoopZ)
	}
	if err != nil {
		return geometryAndGrid{}, ErrBadGridSize
	}
	return geometryAndGrid{Geometry: geom, gridDef: def}, nil
}

func directionName(d direction.Direction) string {
	for name, dd := range directionNames {
		if dd == d {
			return name
		}
	}
	return ""
}

func modelOptions(md ModelDoc) ([]model.Option, error) {
	var opts []model.Option
	if md.Name != "" {
		opts = append(opts, model.WithName(md.Name))
	}
	if md.Weight != nil {
		opts = append(opts, model.WithWeight(*md.Weight))
	}

	if len(md.Rotations) == 0 {
		return opts, nil
	}
	if len(md.Rotations) == 1 && md.Rotations[0] == "all" {
		return append(opts, model.WithAllRotations()), nil
	}
	rotations := make([]direction.Rotation, 0, len(md.Rotations))
	for _, name := range md.Rotations {
		r, ok := rotationNames[name]
		if !ok {
			return nil, unknownRotation(name)
		}
		rotations = append(rotations, r)
	}
	return append(opts, model.WithRotations(rotations...)), nil
}
