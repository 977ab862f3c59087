// SPDX-License-Identifier: MIT
package direction

// Rotation is one of the four counter-clockwise rotations a model variant
// may be expanded into, viewed from the positive rotation-axis direction.
type Rotation int

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

// AllRotations enumerates the canonical rotation sequence used by the rule
// compiler's expansion loop (§4.1): [0°, 90°, 180°, 270°], in this order.
var AllRotations = [4]Rotation{Rot0, Rot90, Rot180, Rot270}

// Index returns the rotation's position in AllRotations (0..3).
func (r Rotation) Index() int {
	return int(r)
}

// Degrees returns the rotation amount in degrees.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// Add composes two rotations modularly: Rot90.Add(Rot270) == Rot0. This is
// the rotation-idempotence law of §8 — composing four Rot90s is the identity.
func (r Rotation) Add(delta Rotation) Rotation {
	return Rotation((int(r) + int(delta)) % 4)
}

// Next returns the rotation one step further counter-clockwise.
func (r Rotation) Next() Rotation {
	return r.Add(Rot90)
}

// String implements fmt.Stringer.
func (r Rotation) String() string {
	switch r {
	case Rot0:
		return "Rot0"
	case Rot90:
		return "Rot90"
	case Rot180:
		return "Rot180"
	case Rot270:
		return "Rot270"
	default:
		return "Rotation(invalid)"
	}
}
