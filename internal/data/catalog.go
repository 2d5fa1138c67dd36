// Package data holds the immutable species catalog and its loaders.
package data

import (
	"fmt"
	"sort"

	"github.com/hexvane/mhfgo/internal/model"
)

// Catalog is the immutable table of species templates. Built once at
// startup and shared read-only by reference across all agents; there is
// no write access after construction.
type Catalog struct {
	templates map[string]*model.SpeciesTemplate
	ids       []string // sorted, for deterministic random species picks
}

// NewCatalog builds a catalog from the given templates.
// Duplicate species ids are an error.
func NewCatalog(templates []*model.SpeciesTemplate) (*Catalog, error) {
	c := &Catalog{
		templates: make(map[string]*model.SpeciesTemplate, len(templates)),
		ids:       make([]string, 0, len(templates)),
	}

	for _, t := range templates {
		if _, exists := c.templates[t.ID()]; exists {
			return nil, fmt.Errorf("duplicate species id %q", t.ID())
		}
		c.templates[t.ID()] = t
		c.ids = append(c.ids, t.ID())
	}
	sort.Strings(c.ids)

	return c, nil
}

// Get returns the template for a species id.
func (c *Catalog) Get(id string) (*model.SpeciesTemplate, bool) {
	t, ok := c.templates[id]
	return t, ok
}

// IDs returns a copy of all species ids in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.ids))
	copy(ids, c.ids)
	return ids
}

// Len returns the number of species in the catalog.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// BuiltIn returns the catalog of built-in Frontier species, matching the
// shipped data/species.yaml. Used when no data file or database is
// configured.
func BuiltIn() *Catalog {
	catalog, err := NewCatalog([]*model.SpeciesTemplate{
		model.NewSpeciesTemplate(
			"great_jaggi", "Great Jaggi",
			model.SizeMedium,
			800, 45, 20, 3.0,
			[]model.Element{model.ElementFire},
			[]model.Element{model.ElementWater},
			[]model.StatusKind{model.StatusParalysis},
			[]model.StatusKind{model.StatusPoison},
			0.3, 1.5,
			[]model.AttackPattern{
				model.NewAttackPattern("Tail Swipe", 15, 3.0, 1.5, model.ElementPhysical, model.StatusNone),
				model.NewAttackPattern("Charge", 25, 5.0, 2.0, model.ElementPhysical, model.StatusNone),
				model.NewAttackPattern("Bite", 20, 2.0, 1.0, model.ElementPhysical, model.StatusNone),
			},
		),
		model.NewSpeciesTemplate(
			"rathian", "Rathian",
			model.SizeLarge,
			2000, 80, 35, 4.0,
			[]model.Element{model.ElementThunder},
			[]model.Element{model.ElementFire},
			[]model.StatusKind{model.StatusStun},
			[]model.StatusKind{model.StatusPoison},
			0.4, 1.8,
			[]model.AttackPattern{
				model.NewAttackPattern("Fire Breath", 30, 4.0, 3.0, model.ElementFire, model.StatusNone),
				model.NewAttackPattern("Tail Flip", 35, 3.5, 2.5, model.ElementPhysical, model.StatusPoison),
				model.NewAttackPattern("Charge", 25, 6.0, 2.0, model.ElementPhysical, model.StatusNone),
			},
		),
		model.NewSpeciesTemplate(
			"tigrex", "Tigrex",
			model.SizeLarge,
			3000, 120, 50, 5.0,
			[]model.Element{model.ElementThunder},
			[]model.Element{model.ElementFire, model.ElementIce},
			[]model.StatusKind{model.StatusStun},
			[]model.StatusKind{model.StatusParalysis},
			0.5, 2.0,
			[]model.AttackPattern{
				model.NewAttackPattern("Roar", 10, 8.0, 4.0, model.ElementPhysical, model.StatusStun),
				model.NewAttackPattern("Claw Swipe", 40, 3.0, 1.5, model.ElementPhysical, model.StatusNone),
				model.NewAttackPattern("Rush Attack", 50, 7.0, 3.0, model.ElementPhysical, model.StatusNone),
			},
		),
	})
	if err != nil {
		// Built-in data is static; a duplicate id here is a programming error.
		panic(err)
	}
	return catalog
}
