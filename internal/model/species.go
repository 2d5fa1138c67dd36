package model

// SpeciesTemplate holds the static stats and behavior data for one monster
// species. Built once at startup and shared read-only by every agent of
// that species.
type SpeciesTemplate struct {
	id        string
	name      string
	size      SizeClass
	maxHealth float64
	attack    int32
	defense   int32
	speed     float64

	elementalWeaknesses  map[Element]struct{}
	elementalResistances map[Element]struct{}
	statusWeaknesses     map[StatusKind]struct{}
	statusResistances    map[StatusKind]struct{}

	rageThreshold    float64 // health fraction below which the species enrages
	enrageMultiplier float64 // damage multiplier while enraged, > 1

	patterns []AttackPattern
}

// NewSpeciesTemplate creates an immutable species template.
// Slices are copied; callers keep no write access to the stored data.
func NewSpeciesTemplate(
	id, name string,
	size SizeClass,
	maxHealth float64,
	attack, defense int32,
	speed float64,
	elementalWeaknesses, elementalResistances []Element,
	statusWeaknesses, statusResistances []StatusKind,
	rageThreshold, enrageMultiplier float64,
	patterns []AttackPattern,
) *SpeciesTemplate {
	t := &SpeciesTemplate{
		id:                   id,
		name:                 name,
		size:                 size,
		maxHealth:            maxHealth,
		attack:               attack,
		defense:              defense,
		speed:                speed,
		elementalWeaknesses:  make(map[Element]struct{}, len(elementalWeaknesses)),
		elementalResistances: make(map[Element]struct{}, len(elementalResistances)),
		statusWeaknesses:     make(map[StatusKind]struct{}, len(statusWeaknesses)),
		statusResistances:    make(map[StatusKind]struct{}, len(statusResistances)),
		rageThreshold:        rageThreshold,
		enrageMultiplier:     enrageMultiplier,
		patterns:             make([]AttackPattern, len(patterns)),
	}

	for _, el := range elementalWeaknesses {
		t.elementalWeaknesses[el] = struct{}{}
	}
	for _, el := range elementalResistances {
		t.elementalResistances[el] = struct{}{}
	}
	for _, k := range statusWeaknesses {
		t.statusWeaknesses[k] = struct{}{}
	}
	for _, k := range statusResistances {
		t.statusResistances[k] = struct{}{}
	}
	copy(t.patterns, patterns)

	return t
}

// ID returns the species identifier (e.g. "great_jaggi").
func (t *SpeciesTemplate) ID() string {
	return t.id
}

// Name returns the display name.
func (t *SpeciesTemplate) Name() string {
	return t.name
}

// Size returns the size class.
func (t *SpeciesTemplate) Size() SizeClass {
	return t.size
}

// MaxHealth returns maximum health.
func (t *SpeciesTemplate) MaxHealth() float64 {
	return t.maxHealth
}

// Attack returns the base attack stat.
func (t *SpeciesTemplate) Attack() int32 {
	return t.attack
}

// Defense returns the base defense stat.
func (t *SpeciesTemplate) Defense() int32 {
	return t.defense
}

// Speed returns movement speed in units per second.
func (t *SpeciesTemplate) Speed() float64 {
	return t.speed
}

// IsWeakTo reports whether el is an elemental weakness.
func (t *SpeciesTemplate) IsWeakTo(el Element) bool {
	_, ok := t.elementalWeaknesses[el]
	return ok
}

// Resists reports whether el is an elemental resistance.
func (t *SpeciesTemplate) Resists(el Element) bool {
	_, ok := t.elementalResistances[el]
	return ok
}

// IsWeakToStatus reports whether k is a status weakness.
func (t *SpeciesTemplate) IsWeakToStatus(k StatusKind) bool {
	_, ok := t.statusWeaknesses[k]
	return ok
}

// ResistsStatus reports whether k is a status resistance.
func (t *SpeciesTemplate) ResistsStatus(k StatusKind) bool {
	_, ok := t.statusResistances[k]
	return ok
}

// RageThreshold returns the health fraction below which the species enrages.
func (t *SpeciesTemplate) RageThreshold() float64 {
	return t.rageThreshold
}

// EnrageMultiplier returns the enraged damage multiplier.
func (t *SpeciesTemplate) EnrageMultiplier() float64 {
	return t.enrageMultiplier
}

// Patterns returns a copy of the species move list.
func (t *SpeciesTemplate) Patterns() []AttackPattern {
	patterns := make([]AttackPattern, len(t.patterns))
	copy(patterns, t.patterns)
	return patterns
}
