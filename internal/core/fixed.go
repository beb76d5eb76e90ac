package core

import "math"

// Coord is a signed screen coordinate, velocity component or dimension.
// The simulation works in whole pixels, so a narrow fixed-width type is enough.
// All arithmetic on Coord goes through the helpers below, which saturate at the
// int16 limits instead of wrapping.
type Coord int16

// Coord limits.
const (
	MinCoord Coord = math.MinInt16
	MaxCoord Coord = math.MaxInt16
)

// saturate narrows a widened result back to the Coord range.
func saturate(v int32) Coord {
	if v > int32(MaxCoord) {
		return MaxCoord
	}
	if v < int32(MinCoord) {
		return MinCoord
	}
	return Coord(v)
}

// Add returns a+b, saturated.
func Add(a, b Coord) Coord {
	return saturate(int32(a) + int32(b))
}

// Sub returns a-b, saturated.
func Sub(a, b Coord) Coord {
	return saturate(int32(a) - int32(b))
}

// Neg returns -v. Neg(MinCoord) saturates to MaxCoord.
func Neg(v Coord) Coord {
	return saturate(-int32(v))
}

// Half returns v/2 truncated toward zero.
func Half(v Coord) Coord {
	return v / 2
}

// Reflect mirrors v across the line at, i.e. 2*at - v.
// Used to push an object that overshot a boundary back by the same distance.
func Reflect(v, at Coord) Coord {
	return saturate(2*int32(at) - int32(v))
}

// Side selects one end of an axis spanning [0, max].
type Side uint8

const (
	Near Side = iota // the zero end (top, left)
	Far              // the max end (bottom, right)
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == Far {
		return "far"
	}
	return "near"
}

// ToNear maps v into a frame where this side's edge sits at zero.
// For the far side that is max - v; the near side is the identity.
func (s Side) ToNear(v, max Coord) Coord {
	if s == Far {
		return Sub(max, v)
	}
	return v
}

// FromNear undoes ToNear. The flip is its own inverse.
func (s Side) FromNear(v, max Coord) Coord {
	return s.ToNear(v, max)
}

// SideOf returns the side a velocity is heading toward.
// Zero velocity counts as heading to the near side.
func SideOf(vel Coord) Side {
	if vel > 0 {
		return Far
	}
	return Near
}
