package model

// AttackPattern is one named attack in a species' move list.
type AttackPattern struct {
	name     string
	damage   int32
	reach    float64    // max distance at which the attack lands
	cooldown float64    // pacing data from the move tables; not a gate (see agent cooldown)
	element  Element
	inflicts StatusKind // status applied to the target on hit, StatusNone if none
}

// NewAttackPattern creates an attack pattern.
func NewAttackPattern(name string, damage int32, reach, cooldown float64, element Element, inflicts StatusKind) AttackPattern {
	return AttackPattern{
		name:     name,
		damage:   damage,
		reach:    reach,
		cooldown: cooldown,
		element:  element,
		inflicts: inflicts,
	}
}

// Name returns the attack name.
func (p AttackPattern) Name() string {
	return p.name
}

// Damage returns base damage before enrage and target defense.
func (p AttackPattern) Damage() int32 {
	return p.damage
}

// Reach returns the maximum distance at which the attack lands.
func (p AttackPattern) Reach() float64 {
	return p.reach
}

// Cooldown returns the per-pattern pacing value from the move tables.
func (p AttackPattern) Cooldown() float64 {
	return p.cooldown
}

// Element returns the attack element.
func (p AttackPattern) Element() Element {
	return p.element
}

// Inflicts returns the status applied to the target on hit.
func (p AttackPattern) Inflicts() StatusKind {
	return p.inflicts
}

// PatternSelector cycles through a species' move list in strict round-robin.
// Advance is called once per attack attempt that passed the cooldown gate,
// whether the attack hit or missed.
type PatternSelector struct {
	patterns []AttackPattern
	index    int
}

// NewPatternSelector creates a selector over the given move list.
// The slice is copied; an empty list falls back to a single basic attack.
func NewPatternSelector(patterns []AttackPattern) *PatternSelector {
	if len(patterns) == 0 {
		patterns = []AttackPattern{
			NewAttackPattern("Basic Attack", 20, 2.0, 1.5, ElementPhysical, StatusNone),
		}
	}
	copied := make([]AttackPattern, len(patterns))
	copy(copied, patterns)
	return &PatternSelector{patterns: copied}
}

// Current returns the pattern at the current slot.
func (s *PatternSelector) Current() AttackPattern {
	return s.patterns[s.index]
}

// Advance moves the selector one slot forward, wrapping around.
func (s *PatternSelector) Advance() {
	s.index = (s.index + 1) % len(s.patterns)
}

// Index returns the current slot index.
func (s *PatternSelector) Index() int {
	return s.index
}

// Len returns the number of patterns in the move list.
func (s *PatternSelector) Len() int {
	return len(s.patterns)
}
