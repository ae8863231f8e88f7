package model

import "testing"

func TestMaterialComposition_Sums(t *testing.T) {
	c := MaterialComposition{
		FerrousMetal:           1,
		Aluminum:               2,
		Copper:                 3,
		OtherMetals:            4,
		Plastic:                5,
		Battery:                6,
		PCB:                    7,
		FlatPanelDisplayModule: 8,
		CRTGlassAndLead:        9,
	}

	if got := c.Metals(); got != 10 {
		t.Errorf("Metals() = %v, want 10", got)
	}
	if got := c.Total(); got != 45 {
		t.Errorf("Total() = %v, want 45", got)
	}

	var fromMap float64
	for _, m := range Materials {
		fromMap += c.Get(m)
	}
	if fromMap != c.Total() {
		t.Errorf("sum over Get() = %v, want %v", fromMap, c.Total())
	}
	if len(c.Map()) != len(Materials) {
		t.Errorf("Map() has %d entries, want %d", len(c.Map()), len(Materials))
	}
}

func TestMaterialComposition_Add(t *testing.T) {
	a := MaterialComposition{FerrousMetal: 1.5, Plastic: 2}
	b := MaterialComposition{FerrousMetal: 0.5, Battery: 1}

	got := a.Add(b)
	want := MaterialComposition{FerrousMetal: 2, Plastic: 2, Battery: 1}
	if got != want {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
	if a.Add(MaterialComposition{}) != a {
		t.Error("adding zero composition changed the value")
	}
}

func TestMaterial_Label(t *testing.T) {
	if MaterialPCB.Label() != "PCB" {
		t.Errorf("unexpected label %q", MaterialPCB.Label())
	}
	if Material("unobtainium").Label() != "Material(unobtainium)" {
		t.Errorf("unexpected fallback label %q", Material("unobtainium").Label())
	}
}

func TestMaterialComposition_SetGet(t *testing.T) {
	var c MaterialComposition
	for i, m := range Materials {
		c.Set(m, float64(i+1))
	}
	for i, m := range Materials {
		if got := c.Get(m); got != float64(i+1) {
			t.Errorf("Get(%s) = %v, want %v", m, got, i+1)
		}
	}

	before := c
	c.Set(Material("unobtainium"), 42)
	if c != before {
		t.Error("setting an unknown material changed the composition")
	}
}
