package model

import "testing"

func TestSpeciesTemplate_Lookups(t *testing.T) {
	template := NewSpeciesTemplate(
		"great_jaggi", "Great Jaggi",
		SizeMedium,
		800, 45, 20, 3.0,
		[]Element{ElementFire},
		[]Element{ElementWater},
		[]StatusKind{StatusParalysis},
		[]StatusKind{StatusPoison},
		0.3, 1.5,
		testPatterns(),
	)

	if !template.IsWeakTo(ElementFire) {
		t.Error("IsWeakTo(fire) = false, want true")
	}
	if template.IsWeakTo(ElementThunder) {
		t.Error("IsWeakTo(thunder) = true, want false")
	}
	if !template.Resists(ElementWater) {
		t.Error("Resists(water) = false, want true")
	}
	if !template.ResistsStatus(StatusPoison) {
		t.Error("ResistsStatus(poison) = false, want true")
	}
	if !template.IsWeakToStatus(StatusParalysis) {
		t.Error("IsWeakToStatus(paralysis) = false, want true")
	}
	if template.ResistsStatus(StatusSleep) {
		t.Error("ResistsStatus(sleep) = true, want false")
	}
}

func TestSpeciesTemplate_PatternsAreCopied(t *testing.T) {
	template := NewSpeciesTemplate(
		"tigrex", "Tigrex", SizeLarge,
		3000, 120, 50, 5.0,
		nil, nil, nil, nil,
		0.5, 2.0,
		testPatterns(),
	)

	patterns := template.Patterns()
	patterns[0] = NewAttackPattern("Overwritten", 1, 1, 1, ElementPhysical, StatusNone)

	if got := template.Patterns()[0].Name(); got != "Tail Swipe" {
		t.Errorf("Patterns()[0] = %q, want Tail Swipe (template must stay immutable)", got)
	}
}
