// Package status tracks timed status effects on a single monster agent.
package status

import (
	"github.com/hexvane/mhfgo/internal/model"
)

// Instance is one active status effect with its own independent timer.
// Instances of the same kind stack as separate timers and are never merged.
type Instance struct {
	kind      model.StatusKind
	duration  float64 // total lifetime in seconds
	intensity float64
	elapsed   float64 // simulation time since application
}

// Kind returns the effect kind.
func (i *Instance) Kind() model.StatusKind {
	return i.kind
}

// Remaining returns the remaining lifetime in seconds.
func (i *Instance) Remaining() float64 {
	r := i.duration - i.elapsed
	if r < 0 {
		return 0
	}
	return r
}

// TickResult summarizes the effects applied during one tick.
type TickResult struct {
	PoisonDamage float64 // health to subtract from the owner this tick
	Stunned      bool    // paralysis active
	Asleep       bool    // sleep active
	Trapped      bool    // trap active
	Mounted      bool    // mount active
}

// Tracker holds the active status effect instances of one agent.
// Not safe for concurrent use; the owning agent serializes access.
type Tracker struct {
	instances []*Instance
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Apply appends a new independent effect instance. If the owning species
// resists this kind, the duration is halved before storing. Stacking with
// existing instances of the same kind is allowed.
func (t *Tracker) Apply(kind model.StatusKind, duration, intensity float64, resisted bool) {
	if kind == model.StatusNone || duration <= 0 {
		return
	}
	if resisted {
		duration *= 0.5
	}
	t.instances = append(t.instances, &Instance{
		kind:      kind,
		duration:  duration,
		intensity: intensity,
	})
}

// Tick advances every instance by dt and returns the combined effects.
// An instance contributes while elapsed < duration; once elapsed reaches
// duration it stops contributing in that same tick and is dropped, so the
// owner's control flags clear exactly at expiry, never before.
func (t *Tracker) Tick(dt float64) TickResult {
	var result TickResult

	active := t.instances[:0]
	for _, inst := range t.instances {
		if inst.elapsed < inst.duration {
			switch inst.kind {
			case model.StatusPoison:
				result.PoisonDamage += inst.intensity * dt
			case model.StatusParalysis, model.StatusStun:
				result.Stunned = true
			case model.StatusSleep:
				result.Asleep = true
			case model.StatusTrap:
				result.Trapped = true
			case model.StatusMount:
				result.Mounted = true
			}
			inst.elapsed += dt
			active = append(active, inst)
		}
	}
	// Drop references past the new length so expired instances can be collected.
	for i := len(active); i < len(t.instances); i++ {
		t.instances[i] = nil
	}
	t.instances = active

	return result
}

// ActiveKinds returns the kinds of all unexpired instances in application
// order. Duplicate kinds appear once per instance.
func (t *Tracker) ActiveKinds() []model.StatusKind {
	kinds := make([]model.StatusKind, 0, len(t.instances))
	for _, inst := range t.instances {
		if inst.elapsed < inst.duration {
			kinds = append(kinds, inst.kind)
		}
	}
	return kinds
}

// Len returns the number of active instances.
func (t *Tracker) Len() int {
	return len(t.instances)
}
