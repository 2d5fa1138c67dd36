package model

import "fmt"

// Element is the damage element of an attack.
type Element int

const (
	ElementPhysical Element = iota
	ElementFire
	ElementIce
	ElementThunder
	ElementWater
	ElementDragon
	ElementPoison
)

var elementNames = map[Element]string{
	ElementPhysical: "physical",
	ElementFire:     "fire",
	ElementIce:      "ice",
	ElementThunder:  "thunder",
	ElementWater:    "water",
	ElementDragon:   "dragon",
	ElementPoison:   "poison",
}

// String returns the element name used in data files and logs.
func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Element(%d)", int(e))
}

// ParseElement parses an element name from data files.
func ParseElement(s string) (Element, error) {
	for el, name := range elementNames {
		if name == s {
			return el, nil
		}
	}
	return ElementPhysical, fmt.Errorf("unknown element %q", s)
}
