package model

// Action is the per-tick or per-damage-event outcome reported by an agent.
// Exactly one variant per outcome; each variant carries only the fields
// relevant to it. Consumers switch on the concrete type.
type Action interface {
	// Kind returns the stable action name used in telemetry and logs.
	Kind() string
}

// IdleAction reports an agent holding position with nothing to do.
type IdleAction struct {
	Position Vector
}

func (IdleAction) Kind() string { return "idle" }

// PatrolAction reports idle wandering toward a patrol destination.
type PatrolAction struct {
	Position Vector // position after the patrol step
}

func (PatrolAction) Kind() string { return "patrol" }

// ChaseAction reports movement toward a target player.
type ChaseAction struct {
	TargetID     string
	Position     Vector  // position after the chase step
	Displacement float64 // distance actually covered this tick
}

func (ChaseAction) Kind() string { return "chase" }

// AttackAction reports a landed attack on a target player.
type AttackAction struct {
	PatternName     string
	Damage          int32 // final damage after enrage and target defense
	TargetID        string
	Element         Element
	InflictedStatus StatusKind // StatusNone when the pattern carries no status
}

func (AttackAction) Kind() string { return "attack" }

// MissAction reports an attack attempt whose pattern could not reach the target.
type MissAction struct {
	PatternName string
}

func (MissAction) Kind() string { return "miss" }

// CooldownAction reports an attack attempt blocked by the attack cooldown.
type CooldownAction struct{}

func (CooldownAction) Kind() string { return "cooldown" }

// StunnedAction reports a tick lost to stun, paralysis, or a trap.
type StunnedAction struct{}

func (StunnedAction) Kind() string { return "stunned" }

// SleepingAction reports a tick spent asleep.
type SleepingAction struct{}

func (SleepingAction) Kind() string { return "sleeping" }

// FleeAction reports the agent breaking off after heavy damage.
type FleeAction struct {
	Health float64
}

func (FleeAction) Kind() string { return "flee" }

// DamagedAction reports damage taken that left the agent alive.
type DamagedAction struct {
	Damage int32
	Health float64
}

func (DamagedAction) Kind() string { return "damaged" }

// DefeatedAction reports the agent's death. Emitted exactly once per agent.
type DefeatedAction struct {
	FinalDamage int32
}

func (DefeatedAction) Kind() string { return "defeated" }
