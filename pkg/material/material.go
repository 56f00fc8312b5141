// Package material describes the custom materials of the scene and writes
// them in the engine's material database format.
package material

import (
	"fmt"
	"strings"
)

// NISTPrefix marks materials the engine already knows.
const NISTPrefix = "G4_"

// AutoElement in a component means the element named like the material.
const AutoElement = "auto"

// StateOfMatter ...
type StateOfMatter string

// States of matter.
const (
	Solid  StateOfMatter = "solid"
	Liquid StateOfMatter = "liquid"
	Gas    StateOfMatter = "gas"
)

// Element is a chemical element. A is the molar mass in g/mole.
type Element struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Z      int64   `json:"z"`
	A      float64 `json:"a"`
}

// Component is N atoms of Element per molecule.
type Component struct {
	Element string `json:"element"`
	N       int64  `json:"n"`
}

// Material is a compound defined by atom counts. Density is in g/cm3.
type Material struct {
	Name       string        `json:"name"`
	Density    float64       `json:"density"`
	State      StateOfMatter `json:"state"`
	Components []Component   `json:"components"`
}

// Database holds elements and the materials built from them.
type Database struct {
	Elements  []Element  `json:"elements"`
	Materials []Material `json:"materials"`
}

var materialError = func(name string, message string, formatedValues ...interface{}) error {
	header := fmt.Sprintf("[material] Material{Name: %q}: ", name)
	return fmt.Errorf(header+message, formatedValues...)
}

// IsNIST reports whether name is a built-in engine material.
func IsNIST(name string) bool {
	return strings.HasPrefix(name, NISTPrefix)
}

// Element returns the element with the given name.
func (d Database) Element(name string) (Element, bool) {
	for _, e := range d.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return Element{}, false
}

// Material returns the material with the given name.
func (d Database) Material(name string) (Material, bool) {
	for _, m := range d.Materials {
		if m.Name == name {
			return m, true
		}
	}
	return Material{}, false
}

// Provides reports whether a volume made of name can be built, either from
// this database or from the engine's NIST set.
func (d Database) Provides(name string) bool {
	if IsNIST(name) {
		return true
	}
	_, ok := d.Material(name)
	return ok
}

// Validate checks that names are unique, densities and counts positive and
// every component refers to a known element.
func (d Database) Validate() error {
	elements := map[string]bool{}
	for _, e := range d.Elements {
		if elements[e.Name] {
			return fmt.Errorf("[material] Element{Name: %q}: defined twice", e.Name)
		}
		if e.Z <= 0 || e.A <= 0 {
			return fmt.Errorf("[material] Element{Name: %q}: z and a should be positive", e.Name)
		}
		elements[e.Name] = true
	}

	materials := map[string]bool{}
	for _, m := range d.Materials {
		if materials[m.Name] {
			return materialError(m.Name, "defined twice")
		}
		materials[m.Name] = true
		if IsNIST(m.Name) {
			return materialError(m.Name, "%q prefix is reserved", NISTPrefix)
		}
		if m.Density <= 0 {
			return materialError(m.Name, "density should be positive value")
		}
		if len(m.Components) == 0 {
			return materialError(m.Name, "at least one component is required")
		}
		for _, c := range m.Components {
			if c.N <= 0 {
				return materialError(m.Name, "component %q count should be positive value", c.Element)
			}
			if !elements[elementName(m, c)] {
				return materialError(m.Name, "unknown element %q", c.Element)
			}
		}
	}
	return nil
}

func elementName(m Material, c Component) string {
	if c.Element == AutoElement {
		return m.Name
	}
	return c.Element
}
