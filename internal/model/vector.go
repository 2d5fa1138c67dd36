package model

import "math"

// Vector is a 3D point in hunting-field coordinates.
// Value type, passed by value (immutable).
type Vector struct {
	X float64
	Y float64
	Z float64
}

// NewVector creates a Vector with the given coordinates.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// DistanceTo returns the Euclidean distance to another point.
func (v Vector) DistanceTo(other Vector) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// MoveToward returns a new Vector moved toward target by at most step.
// Displacement is clamped so it never overshoots the target.
func (v Vector) MoveToward(target Vector, step float64) Vector {
	dist := v.DistanceTo(target)
	if dist == 0 || step <= 0 {
		return v
	}

	ratio := step / dist
	if ratio > 1.0 {
		ratio = 1.0
	}

	return Vector{
		X: v.X + (target.X-v.X)*ratio,
		Y: v.Y + (target.Y-v.Y)*ratio,
		Z: v.Z + (target.Z-v.Z)*ratio,
	}
}
