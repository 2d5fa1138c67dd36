// Package agent implements the per-monster behavior state machine.
package agent

import (
	"log/slog"
	"math"
	"sync"

	"github.com/hexvane/mhfgo/internal/model"
	"github.com/hexvane/mhfgo/internal/status"
)

// Behavior constants from the Frontier field data.
const (
	attackRange        = 2.0  // max distance for attack attempts
	chaseRange         = 15.0 // max distance at which a player is pursued
	baseAttackCooldown = 2.0  // seconds between attack attempts
	enrageCooldownCut  = 0.7  // attack cooldown factor applied once on enrage
	enrageChaseBoost   = 1.3  // chase speed factor while enraged
	idleSpeedFactor    = 0.3  // patrol speed relative to species speed
	patrolArriveRadius = 0.5  // distance at which a patrol destination counts as reached
	patrolOffsetMax    = 5.0  // max patrol destination offset on X/Z
	patrolRepickMin    = 3.0  // seconds before picking a new patrol destination
	patrolRepickMax    = 8.0

	weaknessMultiplier   = 1.5
	resistanceMultiplier = 0.7
	fleeHealthFraction   = 0.2 // health fraction below which flee rolls start
	fleeChance           = 0.3 // per-damage-event flee probability
)

// Temperament roll ranges. Rolled once at spawn, observable in snapshots.
const (
	aggressionMin   = 0.7
	aggressionMax   = 1.3
	intelligenceMin = 0.8
	intelligenceMax = 1.2
	patienceMin     = 0.6
	patienceMax     = 1.4
)

// MonsterAgent is one live monster instance. It owns its position, health,
// status tracker, and pattern selector, and advances one step per Update.
//
// All exported methods lock the agent, so a tick update and an external
// damage call on the same agent never interleave.
type MonsterAgent struct {
	mu sync.Mutex

	id       string
	template *model.SpeciesTemplate // shared, never written

	position     model.Vector
	patrolTarget model.Vector
	health       float64
	enraged      bool // monotone false→true, never reset
	state        model.BehaviorState

	stunned bool
	asleep  bool
	trapped bool
	mounted bool

	attackCooldown float64
	lastAttackAt   float64 // simulation clock of the last landed attack
	clock          float64 // accumulated simulation time from dt
	nextPatrolAt   float64 // clock value at which to pick a new patrol destination

	targetID string

	selector *model.PatternSelector
	tracker  *status.Tracker
	rng      Rand

	aggression   float64
	intelligence float64
	patience     float64
}

// Snapshot is a read-only view of agent state for presentation layers.
type Snapshot struct {
	ID             string
	SpeciesID      string
	Name           string
	Health         float64
	MaxHealth      float64
	Position       model.Vector
	Enraged        bool
	Stunned        bool
	Asleep         bool
	Trapped        bool
	Mounted        bool
	State          model.BehaviorState
	ActiveStatuses []model.StatusKind
	TargetID       string
	Aggression     float64
	Intelligence   float64
	Patience       float64
}

// NewMonsterAgent creates an agent of the given species at position.
// rng must be non-nil; it drives patrol timing, flee rolls, and the
// one-time temperament rolls.
func NewMonsterAgent(id string, template *model.SpeciesTemplate, position model.Vector, rng Rand) *MonsterAgent {
	a := &MonsterAgent{
		id:             id,
		template:       template,
		position:       position,
		patrolTarget:   position,
		health:         template.MaxHealth(),
		state:          model.BehaviorIdle,
		attackCooldown: baseAttackCooldown,
		selector:       model.NewPatternSelector(template.Patterns()),
		tracker:        status.NewTracker(),
		rng:            rng,
	}

	// First attack attempt is not cooldown-gated.
	a.lastAttackAt = -baseAttackCooldown
	a.nextPatrolAt = rollRange(rng, patrolRepickMin, patrolRepickMax)

	a.aggression = rollRange(rng, aggressionMin, aggressionMax)
	a.intelligence = rollRange(rng, intelligenceMin, intelligenceMax)
	a.patience = rollRange(rng, patienceMin, patienceMax)

	return a
}

func rollRange(rng Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// ID returns the agent identity.
func (a *MonsterAgent) ID() string {
	return a.id
}

// Template returns the shared species template.
func (a *MonsterAgent) Template() *model.SpeciesTemplate {
	return a.template
}

// IsDead reports whether the agent reached its terminal state.
func (a *MonsterAgent) IsDead() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state == model.BehaviorDead
}

// Update advances the agent by dt seconds against the supplied player
// snapshot and returns the resulting action. Returns nil once the agent
// is dead; Defeated is reported exactly once, by whichever of Update or
// TakeDamage first observes health reaching zero.
func (a *MonsterAgent) Update(dt float64, players []model.PlayerSnapshot) model.Action {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == model.BehaviorDead {
		return nil
	}

	a.clock += dt

	effects := a.tracker.Tick(dt)
	a.stunned = effects.Stunned
	a.asleep = effects.Asleep
	a.trapped = effects.Trapped
	a.mounted = effects.Mounted
	if effects.PoisonDamage > 0 {
		a.health -= effects.PoisonDamage
		if a.health < 0 {
			a.health = 0
		}
	}

	if a.health <= 0 {
		a.state = model.BehaviorDead
		slog.Info("monster succumbed",
			"agentID", a.id,
			"species", a.template.ID())
		return model.DefeatedAction{FinalDamage: int32(math.Round(effects.PoisonDamage))}
	}

	a.checkEnrage()

	nearest, dist, found := nearestPlayer(a.position, players)
	if !found || dist > chaseRange {
		return a.patrolStep(dt)
	}

	a.targetID = nearest.ID

	if dist <= attackRange {
		if a.stunned {
			return model.StunnedAction{}
		}
		if a.asleep {
			return model.SleepingAction{}
		}
		return a.attackStep(nearest, dist)
	}

	if a.stunned || a.trapped {
		return model.StunnedAction{}
	}
	if a.asleep {
		return model.SleepingAction{}
	}
	return a.chaseStep(nearest, dist, dt)
}

// checkEnrage applies the permanent rage transition exactly once.
func (a *MonsterAgent) checkEnrage() {
	if a.enraged {
		return
	}
	if a.health/a.template.MaxHealth() > a.template.RageThreshold() {
		return
	}

	a.enraged = true
	a.attackCooldown *= enrageCooldownCut

	slog.Info("monster enraged",
		"agentID", a.id,
		"species", a.template.ID(),
		"health", a.health)
}

// nearestPlayer selects the closest player by Euclidean distance.
// Ties are broken by input order.
func nearestPlayer(pos model.Vector, players []model.PlayerSnapshot) (model.PlayerSnapshot, float64, bool) {
	var nearest model.PlayerSnapshot
	minDist := math.Inf(1)
	found := false

	for _, p := range players {
		d := pos.DistanceTo(p.Position)
		if d < minDist {
			minDist = d
			nearest = p
			found = true
		}
	}
	return nearest, minDist, found
}

// attackStep attempts an attack on the target player.
// The agent-wide cooldown timer is the sole gate; the per-pattern cooldown
// field is pacing data only. The pattern index advances on every attempt
// that passed the gate, hit or miss.
func (a *MonsterAgent) attackStep(target model.PlayerSnapshot, dist float64) model.Action {
	a.state = model.BehaviorAttack

	if a.clock-a.lastAttackAt < a.attackCooldown {
		return model.CooldownAction{}
	}

	pattern := a.selector.Current()
	a.selector.Advance()

	if dist > pattern.Reach() {
		if IsDebugEnabled() {
			slog.Debug("attack missed",
				"agentID", a.id,
				"pattern", pattern.Name(),
				"reach", pattern.Reach(),
				"distance", dist)
		}
		return model.MissAction{PatternName: pattern.Name()}
	}

	multiplier := 1.0
	if a.enraged {
		multiplier = a.template.EnrageMultiplier()
	}
	damage := int32(math.Round(float64(pattern.Damage())*multiplier)) - target.Defense
	if damage < 1 {
		damage = 1
	}

	a.lastAttackAt = a.clock

	slog.Info("monster attacks",
		"agentID", a.id,
		"species", a.template.ID(),
		"pattern", pattern.Name(),
		"target", target.ID,
		"damage", damage)

	return model.AttackAction{
		PatternName:     pattern.Name(),
		Damage:          damage,
		TargetID:        target.ID,
		Element:         pattern.Element(),
		InflictedStatus: pattern.Inflicts(),
	}
}

// chaseStep moves directly toward the target, clamped so displacement
// never exceeds the remaining distance.
func (a *MonsterAgent) chaseStep(target model.PlayerSnapshot, dist, dt float64) model.Action {
	a.state = model.BehaviorChase

	speed := a.template.Speed()
	if a.enraged {
		speed *= enrageChaseBoost
	}
	step := speed * dt
	if step > dist {
		step = dist
	}
	a.position = a.position.MoveToward(target.Position, step)

	if IsDebugEnabled() {
		slog.Debug("monster chasing",
			"agentID", a.id,
			"target", target.ID,
			"displacement", step)
	}

	return model.ChaseAction{
		TargetID:     target.ID,
		Position:     a.position,
		Displacement: step,
	}
}

// patrolStep wanders around the current position when no player is in
// range. A new destination within patrolOffsetMax on X/Z is picked every
// 3–8 seconds; otherwise the agent drifts toward the current destination
// at idle speed, or holds position once it has arrived.
func (a *MonsterAgent) patrolStep(dt float64) model.Action {
	if a.asleep {
		return model.SleepingAction{}
	}

	if a.clock >= a.nextPatrolAt {
		a.patrolTarget = model.Vector{
			X: a.position.X + (a.rng.Float64()*2-1)*patrolOffsetMax,
			Y: a.position.Y,
			Z: a.position.Z + (a.rng.Float64()*2-1)*patrolOffsetMax,
		}
		a.nextPatrolAt = a.clock + rollRange(a.rng, patrolRepickMin, patrolRepickMax)
	}

	if a.position.DistanceTo(a.patrolTarget) > patrolArriveRadius {
		step := a.template.Speed() * idleSpeedFactor * dt
		a.position = a.position.MoveToward(a.patrolTarget, step)
		a.state = model.BehaviorPatrol
		return model.PatrolAction{Position: a.position}
	}

	a.state = model.BehaviorIdle
	return model.IdleAction{Position: a.position}
}

// TakeDamage applies a damage event from the combat resolver. Callable at
// any point between sweeps. Returns nil once the agent is dead.
func (a *MonsterAgent) TakeDamage(amount int32, element model.Element, statusKind model.StatusKind, statusDuration float64) model.Action {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == model.BehaviorDead {
		return nil
	}

	multiplier := 1.0
	switch {
	case a.template.IsWeakTo(element):
		multiplier = weaknessMultiplier
	case a.template.Resists(element):
		multiplier = resistanceMultiplier
	}

	finalDamage := int32(math.Round(float64(amount) * multiplier))
	a.health -= float64(finalDamage)
	if a.health < 0 {
		a.health = 0
	}

	if statusKind != model.StatusNone && statusDuration > 0 {
		a.tracker.Apply(statusKind, statusDuration, 1.0, a.template.ResistsStatus(statusKind))
	}

	if a.health == 0 {
		a.state = model.BehaviorDead
		slog.Info("monster defeated",
			"agentID", a.id,
			"species", a.template.ID(),
			"finalDamage", finalDamage)
		return model.DefeatedAction{FinalDamage: finalDamage}
	}

	if a.health < fleeHealthFraction*a.template.MaxHealth() && a.rng.Float64() < fleeChance {
		a.state = model.BehaviorFlee
		slog.Info("monster fleeing",
			"agentID", a.id,
			"species", a.template.ID(),
			"health", a.health)
		return model.FleeAction{Health: a.health}
	}

	return model.DamagedAction{Damage: finalDamage, Health: a.health}
}

// Snapshot returns a read-only view of the agent for presentation layers.
func (a *MonsterAgent) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Snapshot{
		ID:             a.id,
		SpeciesID:      a.template.ID(),
		Name:           a.template.Name(),
		Health:         a.health,
		MaxHealth:      a.template.MaxHealth(),
		Position:       a.position,
		Enraged:        a.enraged,
		Stunned:        a.stunned,
		Asleep:         a.asleep,
		Trapped:        a.trapped,
		Mounted:        a.mounted,
		State:          a.state,
		ActiveStatuses: a.tracker.ActiveKinds(),
		TargetID:       a.targetID,
		Aggression:     a.aggression,
		Intelligence:   a.intelligence,
		Patience:       a.patience,
	}
}
