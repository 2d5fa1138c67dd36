package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hexvane/mhfgo/internal/model"
)

// speciesFile is the yaml shape of a species data file.
type speciesFile struct {
	Species []speciesEntry `yaml:"species"`
}

type speciesEntry struct {
	ID                   string         `yaml:"id"`
	Name                 string         `yaml:"name"`
	Size                 string         `yaml:"size"`
	MaxHealth            float64        `yaml:"max_health"`
	Attack               int32          `yaml:"attack"`
	Defense              int32          `yaml:"defense"`
	Speed                float64        `yaml:"speed"`
	ElementalWeaknesses  []string       `yaml:"elemental_weaknesses"`
	ElementalResistances []string       `yaml:"elemental_resistances"`
	StatusWeaknesses     []string       `yaml:"status_weaknesses"`
	StatusResistances    []string       `yaml:"status_resistances"`
	RageThreshold        float64        `yaml:"rage_threshold"`
	EnrageMultiplier     float64        `yaml:"enrage_multiplier"`
	Patterns             []patternEntry `yaml:"patterns"`
}

type patternEntry struct {
	Name     string  `yaml:"name"`
	Damage   int32   `yaml:"damage"`
	Reach    float64 `yaml:"reach"`
	Cooldown float64 `yaml:"cooldown"`
	Element  string  `yaml:"element"`  // empty means physical
	Inflicts string  `yaml:"inflicts"` // empty means no status
}

// LoadFile loads a species catalog from a yaml data file.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading species file %s: %w", path, err)
	}

	var file speciesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing species file %s: %w", path, err)
	}

	templates := make([]*model.SpeciesTemplate, 0, len(file.Species))
	for _, entry := range file.Species {
		t, err := entry.toTemplate()
		if err != nil {
			return nil, fmt.Errorf("species %q: %w", entry.ID, err)
		}
		templates = append(templates, t)
	}

	return NewCatalog(templates)
}

func (e speciesEntry) toTemplate() (*model.SpeciesTemplate, error) {
	if e.ID == "" {
		return nil, fmt.Errorf("missing species id")
	}
	if e.MaxHealth <= 0 {
		return nil, fmt.Errorf("max_health must be positive, got %v", e.MaxHealth)
	}
	if e.RageThreshold < 0 || e.RageThreshold > 1 {
		return nil, fmt.Errorf("rage_threshold must be in [0,1], got %v", e.RageThreshold)
	}
	if e.EnrageMultiplier <= 1 {
		return nil, fmt.Errorf("enrage_multiplier must be > 1, got %v", e.EnrageMultiplier)
	}

	elemWeak, err := parseElements(e.ElementalWeaknesses)
	if err != nil {
		return nil, err
	}
	elemResist, err := parseElements(e.ElementalResistances)
	if err != nil {
		return nil, err
	}
	statusWeak, err := parseStatuses(e.StatusWeaknesses)
	if err != nil {
		return nil, err
	}
	statusResist, err := parseStatuses(e.StatusResistances)
	if err != nil {
		return nil, err
	}

	patterns := make([]model.AttackPattern, 0, len(e.Patterns))
	for _, p := range e.Patterns {
		pattern, err := p.toPattern()
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, pattern)
	}

	return model.NewSpeciesTemplate(
		e.ID, e.Name,
		model.ParseSizeClass(e.Size),
		e.MaxHealth, e.Attack, e.Defense, e.Speed,
		elemWeak, elemResist,
		statusWeak, statusResist,
		e.RageThreshold, e.EnrageMultiplier,
		patterns,
	), nil
}

func (p patternEntry) toPattern() (model.AttackPattern, error) {
	element := model.ElementPhysical
	if p.Element != "" {
		var err error
		element, err = model.ParseElement(p.Element)
		if err != nil {
			return model.AttackPattern{}, fmt.Errorf("pattern %q: %w", p.Name, err)
		}
	}

	inflicts := model.StatusNone
	if p.Inflicts != "" {
		var err error
		inflicts, err = model.ParseStatusKind(p.Inflicts)
		if err != nil {
			return model.AttackPattern{}, fmt.Errorf("pattern %q: %w", p.Name, err)
		}
	}

	return model.NewAttackPattern(p.Name, p.Damage, p.Reach, p.Cooldown, element, inflicts), nil
}

func parseElements(names []string) ([]model.Element, error) {
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

func parseStatuses(names []string) ([]model.StatusKind, error) {
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
