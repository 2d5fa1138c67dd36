package model

import (
	"math"
	"testing"
)

func TestVector_DistanceTo(t *testing.T) {
	a := NewVector(0, 0, 0)
	b := NewVector(3, 4, 0)

	if got := a.DistanceTo(b); got != 5.0 {
		t.Errorf("DistanceTo() = %v, want 5.0", got)
	}
	if got := a.DistanceTo(a); got != 0.0 {
		t.Errorf("DistanceTo(self) = %v, want 0", got)
	}
}

func TestVector_MoveToward(t *testing.T) {
	a := NewVector(0, 0, 0)
	target := NewVector(10, 0, 0)

	moved := a.MoveToward(target, 4.0)
	if moved.X != 4.0 || moved.Y != 0 || moved.Z != 0 {
		t.Errorf("MoveToward() = %+v, want {4 0 0}", moved)
	}
	if got := moved.DistanceTo(target); math.Abs(got-6.0) > 1e-9 {
		t.Errorf("remaining distance = %v, want 6.0", got)
	}
}

func TestVector_MoveToward_NeverOvershoots(t *testing.T) {
	a := NewVector(0, 0, 0)
	target := NewVector(1, 0, 0)

	moved := a.MoveToward(target, 100.0)
	if moved != target {
		t.Errorf("MoveToward() with large step = %+v, want target %+v", moved, target)
	}
}

func TestVector_MoveToward_ZeroDistance(t *testing.T) {
	a := NewVector(2, 2, 2)

	if moved := a.MoveToward(a, 5.0); moved != a {
		t.Errorf("MoveToward(self) = %+v, want unchanged %+v", moved, a)
	}
}

func TestVector_MoveToward_Diagonal(t *testing.T) {
	a := NewVector(0, 0, 0)
	target := NewVector(3, 0, 4)

	moved := a.MoveToward(target, 2.5)
	if got := a.DistanceTo(moved); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("step length = %v, want 2.5", got)
	}
}
