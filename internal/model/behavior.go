package model

// BehaviorState is the coarse behavior state of a monster agent.
// BehaviorDead is terminal: no transition ever leaves it.
type BehaviorState int

const (
	BehaviorIdle BehaviorState = iota
	BehaviorPatrol
	BehaviorChase
	BehaviorAttack
	BehaviorFlee
	BehaviorDead
)

// String returns the state name for logs and snapshots.
func (s BehaviorState) String() string {
	switch s {
	case BehaviorIdle:
		return "idle"
	case BehaviorPatrol:
		return "patrol"
	case BehaviorChase:
		return "chase"
	case BehaviorAttack:
		return "attack"
	case BehaviorFlee:
		return "flee"
	case BehaviorDead:
		return "dead"
	default:
		return "unknown"
	}
}

// SizeClass is the broad physical size category of a species.
type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
)

// String returns the size name used in data files.
func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// ParseSizeClass parses a size name from data files.
// Unknown values default to SizeMedium.
func ParseSizeClass(s string) SizeClass {
	switch s {
	case "small":
		return SizeSmall
	case "large":
		return SizeLarge
	default:
		return SizeMedium
	}
}
