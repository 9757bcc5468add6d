package geometry

import (
	"gioui.org/f32"

	"fieldsim/server/internal/wire"
)

// Conversions to and from the two external 2D representations: the gio UI
// coordinate used by debug overlays, and the wire payload used by the
// websocket protocol. Both are plain field-wise mappings with no unit or
// scale change, and neither can fail.

// FromF32 builds a Point from a gio UI coordinate.
func FromF32(p f32.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// F32 returns the point as a gio UI coordinate.
func (p Point) F32() f32.Point {
	return f32.Point{X: p.X, Y: p.Y}
}

// FromWire builds a Point from its wire payload.
func FromWire(p wire.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// Wire returns the point as its wire payload.
func (p Point) Wire() wire.Point {
	return wire.Point{X: p.X, Y: p.Y}
}
