package model

import "fmt"

// Material is one of the fixed decomposition targets of a device.
type Material string

// Material categories.
const (
	MaterialFerrousMetal           Material = "ferrous_metal"
	MaterialAluminum               Material = "aluminum"
	MaterialCopper                 Material = "copper"
	MaterialOtherMetals            Material = "other_metals"
	MaterialPlastic                Material = "plastic"
	MaterialBattery                Material = "battery"
	MaterialPCB                    Material = "pcb"
	MaterialFlatPanelDisplayModule Material = "flat_panel_display_module"
	MaterialCRTGlassAndLead        Material = "crt_glass_and_lead"
)

// Materials lists every material category in display order.
var Materials = []Material{
	MaterialFerrousMetal,
	MaterialAluminum,
	MaterialCopper,
	MaterialOtherMetals,
	MaterialPlastic,
	MaterialBattery,
	MaterialPCB,
	MaterialFlatPanelDisplayModule,
	MaterialCRTGlassAndLead,
}

// Valid reports whether m is one of the known material categories.
func (m Material) Valid() bool {
	for _, known := range Materials {
		if m == known {
			return true
		}
	}
	return false
}

// Label returns a human-readable name for the material.
func (m Material) Label() string {
	switch m {
	case MaterialFerrousMetal:
		return "Ferrous Metals"
	case MaterialAluminum:
		return "Aluminum"
	case MaterialCopper:
		return "Copper"
	case MaterialOtherMetals:
		return "Other Metals"
	case MaterialPlastic:
		return "Plastic"
	case MaterialBattery:
		return "Batteries"
	case MaterialPCB:
		return "PCB"
	case MaterialFlatPanelDisplayModule:
		return "Flat Panel Display Module"
	case MaterialCRTGlassAndLead:
		return "CRT Glass and Lead"
	default:
		return fmt.Sprintf("Material(%s)", string(m))
	}
}

// MaterialComposition holds one value per material category. Depending on
// context the values are pounds (a decomposed device) or fractions of total
// weight (a policy table row).
type MaterialComposition struct {
	FerrousMetal           float64 `yaml:"ferrous_metal" json:"ferrous_metal"`
	Aluminum               float64 `yaml:"aluminum" json:"aluminum"`
	Copper                 float64 `yaml:"copper" json:"copper"`
	OtherMetals            float64 `yaml:"other_metals" json:"other_metals"`
	Plastic                float64 `yaml:"plastic" json:"plastic"`
	Battery                float64 `yaml:"battery" json:"battery"`
	PCB                    float64 `yaml:"pcb" json:"pcb"`
	FlatPanelDisplayModule float64 `yaml:"flat_panel_display_module" json:"flat_panel_display_module"`
	CRTGlassAndLead        float64 `yaml:"crt_glass_and_lead" json:"crt_glass_and_lead"`
}

// Get returns the value for a single material.
func (c MaterialComposition) Get(m Material) float64 {
	switch m {
	case MaterialFerrousMetal:
		return c.FerrousMetal
	case MaterialAluminum:
		return c.Aluminum
	case MaterialCopper:
		return c.Copper
	case MaterialOtherMetals:
		return c.OtherMetals
	case MaterialPlastic:
		return c.Plastic
	case MaterialBattery:
		return c.Battery
	case MaterialPCB:
		return c.PCB
	case MaterialFlatPanelDisplayModule:
		return c.FlatPanelDisplayModule
	case MaterialCRTGlassAndLead:
		return c.CRTGlassAndLead
	default:
		return 0
	}
}

// Set assigns the value for a single material. Unknown materials are ignored.
func (c *MaterialComposition) Set(m Material, v float64) {
	switch m {
	case MaterialFerrousMetal:
		c.FerrousMetal = v
	case MaterialAluminum:
		c.Aluminum = v
	case MaterialCopper:
		c.Copper = v
	case MaterialOtherMetals:
		c.OtherMetals = v
	case MaterialPlastic:
		c.Plastic = v
	case MaterialBattery:
		c.Battery = v
	case MaterialPCB:
		c.PCB = v
	case MaterialFlatPanelDisplayModule:
		c.FlatPanelDisplayModule = v
	case MaterialCRTGlassAndLead:
		c.CRTGlassAndLead = v
	}
}

// Map returns the composition keyed by material.
func (c MaterialComposition) Map() map[Material]float64 {
	out := make(map[Material]float64, len(Materials))
	for _, m := range Materials {
		out[m] = c.Get(m)
	}
	return out
}

// Metals returns ferrous + aluminum + copper + other metals.
func (c MaterialComposition) Metals() float64 {
	return c.FerrousMetal + c.Aluminum + c.Copper + c.OtherMetals
}

// Total returns the sum over all nine categories.
func (c MaterialComposition) Total() float64 {
	return c.Metals() + c.Plastic + c.Battery + c.PCB + c.FlatPanelDisplayModule + c.CRTGlassAndLead
}

// Add returns the category-wise sum of c and o.
func (c MaterialComposition) Add(o MaterialComposition) MaterialComposition {
	return MaterialComposition{
		FerrousMetal:           c.FerrousMetal + o.FerrousMetal,
		Aluminum:               c.Aluminum + o.Aluminum,
		Copper:                 c.Copper + o.Copper,
		OtherMetals:            c.OtherMetals + o.OtherMetals,
		Plastic:                c.Plastic + o.Plastic,
		Battery:                c.Battery + o.Battery,
		PCB:                    c.PCB + o.PCB,
		FlatPanelDisplayModule: c.FlatPanelDisplayModule + o.FlatPanelDisplayModule,
		CRTGlassAndLead:        c.CRTGlassAndLead + o.CRTGlassAndLead,
	}
}
