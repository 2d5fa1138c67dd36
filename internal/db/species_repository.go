package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hexvane/mhfgo/internal/model"
)

// SpeciesRepository handles species template persistence.
type SpeciesRepository struct {
	pool *pgxpool.Pool
}

// NewSpeciesRepository creates a new species repository.
func NewSpeciesRepository(pool *pgxpool.Pool) *SpeciesRepository {
	return &SpeciesRepository{pool: pool}
}

// rawSpecies carries one species_templates row before enum parsing.
type rawSpecies struct {
	id, name, size       string
	maxHealth            float64
	attack, defense      int32
	speed                float64
	elemWeak, elemResist []string
	statWeak, statResist []string
	rageThreshold        float64
	enrageMultiplier     float64
}

// LoadAll loads every species template with its attack patterns,
// ordered by species id.
func (r *SpeciesRepository) LoadAll(ctx context.Context) ([]*model.SpeciesTemplate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, size, max_health, attack, defense, speed,
		       elemental_weaknesses, elemental_resistances,
		       status_weaknesses, status_resistances,
		       rage_threshold, enrage_multiplier
		FROM species_templates
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("loading species templates: %w", err)
	}
	defer rows.Close()

	var raws []rawSpecies
	for rows.Next() {
		var raw rawSpecies
		if err := rows.Scan(
			&raw.id, &raw.name, &raw.size, &raw.maxHealth,
			&raw.attack, &raw.defense, &raw.speed,
			&raw.elemWeak, &raw.elemResist,
			&raw.statWeak, &raw.statResist,
			&raw.rageThreshold, &raw.enrageMultiplier,
		); err != nil {
			return nil, fmt.Errorf("scanning species template: %w", err)
		}
		raws = append(raws, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating species templates: %w", err)
	}

	patterns, err := r.loadPatterns(ctx)
	if err != nil {
		return nil, err
	}

	templates := make([]*model.SpeciesTemplate, 0, len(raws))
	for _, raw := range raws {
		t, err := raw.toTemplate(patterns[raw.id])
		if err != nil {
			return nil, fmt.Errorf("species %q: %w", raw.id, err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// loadPatterns loads all attack patterns grouped by species id, in slot order.
func (r *SpeciesRepository) loadPatterns(ctx context.Context) (map[string][]model.AttackPattern, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT species_id, name, damage, reach, cooldown, element, inflicts
		FROM attack_patterns
		ORDER BY species_id, slot
	`)
	if err != nil {
		return nil, fmt.Errorf("loading attack patterns: %w", err)
	}
	defer rows.Close()

	patterns := make(map[string][]model.AttackPattern)
	for rows.Next() {
		var (
			speciesID, name   string
			damage            int32
			reach, cooldown   float64
			element, inflicts string
		)
		if err := rows.Scan(&speciesID, &name, &damage, &reach, &cooldown, &element, &inflicts); err != nil {
			return nil, fmt.Errorf("scanning attack pattern: %w", err)
		}

		el, err := model.ParseElement(element)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", name, err)
		}
		status := model.StatusNone
		if inflicts != "" {
			status, err = model.ParseStatusKind(inflicts)
			if err != nil {
				return nil, fmt.Errorf("pattern %q: %w", name, err)
			}
		}

		patterns[speciesID] = append(patterns[speciesID],
			model.NewAttackPattern(name, damage, reach, cooldown, el, status))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attack patterns: %w", err)
	}
	return patterns, nil
}

func (raw rawSpecies) toTemplate(patterns []model.AttackPattern) (*model.SpeciesTemplate, error) {
	elemWeak, err := parseElementNames(raw.elemWeak)
	if err != nil {
		return nil, err
	}
	elemResist, err := parseElementNames(raw.elemResist)
	if err != nil {
		return nil, err
	}
	statWeak, err := parseStatusNames(raw.statWeak)
	if err != nil {
		return nil, err
	}
	statResist, err := parseStatusNames(raw.statResist)
	if err != nil {
		return nil, err
	}

	return model.NewSpeciesTemplate(
		raw.id, raw.name,
		model.ParseSizeClass(raw.size),
		raw.maxHealth, raw.attack, raw.defense, raw.speed,
		elemWeak, elemResist, statWeak, statResist,
		raw.rageThreshold, raw.enrageMultiplier,
		patterns,
	), nil
}

// Create inserts a species template with its attack patterns in one
// transaction. An existing species with the same id is replaced.
func (r *SpeciesRepository) Create(ctx context.Context, t *model.SpeciesTemplate) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.insertTemplate(ctx, tx, t); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing species %q: %w", t.ID(), err)
	}
	return nil
}

func (r *SpeciesRepository) insertTemplate(ctx context.Context, tx pgx.Tx, t *model.SpeciesTemplate) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO species_templates
			(id, name, size, max_health, attack, defense, speed,
			 elemental_weaknesses, elemental_resistances,
			 status_weaknesses, status_resistances,
			 rage_threshold, enrage_multiplier)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			size = EXCLUDED.size,
			max_health = EXCLUDED.max_health,
			attack = EXCLUDED.attack,
			defense = EXCLUDED.defense,
			speed = EXCLUDED.speed,
			elemental_weaknesses = EXCLUDED.elemental_weaknesses,
			elemental_resistances = EXCLUDED.elemental_resistances,
			status_weaknesses = EXCLUDED.status_weaknesses,
			status_resistances = EXCLUDED.status_resistances,
			rage_threshold = EXCLUDED.rage_threshold,
			enrage_multiplier = EXCLUDED.enrage_multiplier
	`,
		t.ID(), t.Name(), t.Size().String(), t.MaxHealth(),
		t.Attack(), t.Defense(), t.Speed(),
		elementNames(t, true), elementNames(t, false),
		statusNames(t, true), statusNames(t, false),
		t.RageThreshold(), t.EnrageMultiplier(),
	)
	if err != nil {
		return fmt.Errorf("inserting species %q: %w", t.ID(), err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM attack_patterns WHERE species_id = $1`, t.ID()); err != nil {
		return fmt.Errorf("clearing patterns for species %q: %w", t.ID(), err)
	}

	for slot, p := range t.Patterns() {
		inflicts := ""
		if p.Inflicts() != model.StatusNone {
			inflicts = p.Inflicts().String()
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO attack_patterns
				(species_id, slot, name, damage, reach, cooldown, element, inflicts)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, t.ID(), slot, p.Name(), p.Damage(), p.Reach(), p.Cooldown(), p.Element().String(), inflicts)
		if err != nil {
			return fmt.Errorf("inserting pattern %q for species %q: %w", p.Name(), t.ID(), err)
		}
	}
	return nil
}

// allElements and allStatusKinds enumerate the enum values for set export.
var allElements = []model.Element{
	model.ElementPhysical, model.ElementFire, model.ElementIce,
	model.ElementThunder, model.ElementWater, model.ElementDragon,
	model.ElementPoison,
}

var allStatusKinds = []model.StatusKind{
	model.StatusPoison, model.StatusParalysis, model.StatusSleep,
	model.StatusStun, model.StatusMount, model.StatusTrap,
}

func elementNames(t *model.SpeciesTemplate, weaknesses bool) []string {
	names := []string{} // non-nil so pgx encodes an empty text[], not NULL
	for _, el := range allElements {
		if (weaknesses && t.IsWeakTo(el)) || (!weaknesses && t.Resists(el)) {
			names = append(names, el.String())
		}
	}
	return names
}

func statusNames(t *model.SpeciesTemplate, weaknesses bool) []string {
	names := []string{}
	for _, k := range allStatusKinds {
		if (weaknesses && t.IsWeakToStatus(k)) || (!weaknesses && t.ResistsStatus(k)) {
			names = append(names, k.String())
		}
	}
	return names
}

func parseElementNames(names []string) ([]model.Element, error) {
	elements := make([]model.Element, 0, len(names))
	for _, name := range names {
		el, err := model.ParseElement(name)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return elements, nil
}

func parseStatusNames(names []string) ([]model.StatusKind, error) {
	kinds := make([]model.StatusKind, 0, len(names))
	for _, name := range names {
		k, err := model.ParseStatusKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
