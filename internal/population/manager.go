// Package population owns the bounded set of live monster agents and
// drives the per-tick sweep.
package population

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/hexvane/mhfgo/internal/agent"
	"github.com/hexvane/mhfgo/internal/data"
	"github.com/hexvane/mhfgo/internal/model"
)

// Defaults for the field population.
const (
	DefaultMaxPopulation = 10
	DefaultSpawnInterval = 30.0 // seconds between automatic spawns
)

// AgentAction pairs an agent id with its per-tick action for telemetry
// and presentation layers.
type AgentAction struct {
	AgentID string
	Action  model.Action
}

// Manager owns the live agents, enforces the population cap and spawn
// cadence, and sweeps every agent once per tick.
//
// The manager mutex serializes structural mutation (spawn, removal)
// against the sweep. Agent state itself is guarded per agent, so damage
// calls arriving between sweeps contend only on the targeted agent.
type Manager struct {
	mu sync.Mutex

	catalog *data.Catalog
	rng     agent.Rand

	agents map[string]*agent.MonsterAgent
	order  []string // insertion order, fixed deterministic sweep order

	spawnPoints   []model.Vector
	maxPopulation int
	spawnInterval float64
	spawnTimer    float64
}

// NewManager creates a population manager over the given catalog.
// rng drives spawn choices and is handed to every spawned agent.
func NewManager(catalog *data.Catalog, rng agent.Rand, maxPopulation int, spawnInterval float64) *Manager {
	if maxPopulation <= 0 {
		maxPopulation = DefaultMaxPopulation
	}
	if spawnInterval <= 0 {
		spawnInterval = DefaultSpawnInterval
	}
	return &Manager{
		catalog:       catalog,
		rng:           rng,
		agents:        make(map[string]*agent.MonsterAgent),
		maxPopulation: maxPopulation,
		spawnInterval: spawnInterval,
	}
}

// AddSpawnPoint registers a spawn location for automatic spawns.
func (m *Manager) AddSpawnPoint(pos model.Vector) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spawnPoints = append(m.spawnPoints, pos)
}

// Count returns the number of live agents.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.agents)
}

// Spawn creates an agent of the given species at position. Returns the
// new agent id, or ok=false as a declined operation when the species is
// unknown or the population is already at the cap.
func (m *Manager) Spawn(speciesID string, pos model.Vector) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.spawnLocked(speciesID, pos)
}

func (m *Manager) spawnLocked(speciesID string, pos model.Vector) (string, bool) {
	if len(m.agents) >= m.maxPopulation {
		slog.Info("spawn declined: population at cap",
			"species", speciesID,
			"population", len(m.agents),
			"cap", m.maxPopulation)
		return "", false
	}

	template, ok := m.catalog.Get(speciesID)
	if !ok {
		slog.Info("spawn declined: unknown species", "species", speciesID)
		return "", false
	}

	id := uuid.NewString()
	m.agents[id] = agent.NewMonsterAgent(id, template, pos, m.rng)
	m.order = append(m.order, id)

	slog.Info("monster spawned",
		"agentID", id,
		"species", speciesID,
		"position", pos,
		"population", len(m.agents))

	return id, true
}

// UpdateAll sweeps every live agent once in insertion order against the
// supplied player snapshot, removes agents defeated during the sweep,
// and advances the spawn cadence.
//
// A panic while updating one agent is isolated: it is logged with the
// offending agent id and the agent is removed, without aborting the
// sweep for the others.
func (m *Manager) UpdateAll(dt float64, players []model.PlayerSnapshot) []AgentAction {
	m.mu.Lock()
	defer m.mu.Unlock()

	results := make([]AgentAction, 0, len(m.agents))
	var remove []string

	for _, id := range m.order {
		a, ok := m.agents[id]
		if !ok {
			continue
		}

		action, failed := m.updateAgent(a, dt, players)
		if failed {
			remove = append(remove, id)
			continue
		}
		if action == nil {
			// Already dead; defeat was reported by an earlier damage event.
			remove = append(remove, id)
			continue
		}

		results = append(results, AgentAction{AgentID: id, Action: action})
		if _, defeated := action.(model.DefeatedAction); defeated {
			remove = append(remove, id)
		}
	}

	for _, id := range remove {
		m.removeLocked(id)
	}

	m.advanceSpawnTimerLocked(dt)

	return results
}

// updateAgent runs one agent update with panic isolation.
func (m *Manager) updateAgent(a *agent.MonsterAgent, dt float64, players []model.PlayerSnapshot) (action model.Action, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("agent update panicked, removing agent",
				"agentID", a.ID(),
				"panic", r)
			failed = true
		}
	}()
	return a.Update(dt, players), false
}

func (m *Manager) removeLocked(id string) {
	if _, ok := m.agents[id]; !ok {
		return
	}
	delete(m.agents, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// advanceSpawnTimerLocked advances the spawn cadence. When the timer
// reaches the interval and the population is below the cap, one agent of
// a uniformly-random known species is spawned at a uniformly-random
// registered spawn point. The timer resets even when the spawn point
// list is empty (a no-op spawn still resets the cadence); at cap the
// timer keeps running so the next sweep below cap spawns immediately.
func (m *Manager) advanceSpawnTimerLocked(dt float64) {
	m.spawnTimer += dt
	if m.spawnTimer < m.spawnInterval {
		return
	}
	if len(m.agents) >= m.maxPopulation {
		return
	}

	if len(m.spawnPoints) > 0 && m.catalog.Len() > 0 {
		ids := m.catalog.IDs()
		speciesID := ids[m.rng.IntN(len(ids))]
		pos := m.spawnPoints[m.rng.IntN(len(m.spawnPoints))]
		m.spawnLocked(speciesID, pos)
	}

	m.spawnTimer = 0
}

// GetState returns a read-only snapshot of one agent.
// Unknown ids return ok=false, never an error.
func (m *Manager) GetState(id string) (agent.Snapshot, bool) {
	m.mu.Lock()
	a, ok := m.agents[id]
	m.mu.Unlock()
	if !ok {
		return agent.Snapshot{}, false
	}
	return a.Snapshot(), true
}

// Damage applies a damage event to one agent. Unknown ids return nil,
// never an error. The call locks only the targeted agent, so it may be
// invoked by the combat resolver at any point between sweeps.
func (m *Manager) Damage(id string, amount int32, element model.Element, statusKind model.StatusKind, statusDuration float64) model.Action {
	m.mu.Lock()
	a, ok := m.agents[id]
	m.mu.Unlock()
	if !ok {
		return nil
	}
	return a.TakeDamage(amount, element, statusKind, statusDuration)
}

// Snapshots returns read-only snapshots of every live agent in sweep order.
func (m *Manager) Snapshots() []agent.Snapshot {
	m.mu.Lock()
	agents := make([]*agent.MonsterAgent, 0, len(m.order))
	for _, id := range m.order {
		if a, ok := m.agents[id]; ok {
			agents = append(agents, a)
		}
	}
	m.mu.Unlock()

	snapshots := make([]agent.Snapshot, 0, len(agents))
	for _, a := range agents {
		snapshots = append(snapshots, a.Snapshot())
	}
	return snapshots
}
