package policy

import "github.com/Veraticus/ewaste-impact/internal/model"

// DefaultVersion is the version stamped on the built-in tables.
const DefaultVersion = "1.0.0"

// Default returns the built-in coefficient tables. Each call returns a fresh
// copy, so callers may modify the result freely.
func Default() *Policy {
	return &Policy{
		Version: DefaultVersion,
		Materials: map[model.DeviceType]model.MaterialComposition{
			model.DeviceLaptop: {
				FerrousMetal: 0.3, Aluminum: 0.1, Plastic: 0.4, PCB: 0.1, Battery: 0.1,
			},
			model.DeviceDesktop: {
				FerrousMetal: 0.55, Aluminum: 0.05, Copper: 0.03, OtherMetals: 0.02,
				Plastic: 0.2, PCB: 0.1,
			},
			model.DeviceFlatPanelMonitor: {
				FerrousMetal: 0.2, Aluminum: 0.05, Copper: 0.02, Plastic: 0.3,
				PCB: 0.08, FlatPanelDisplayModule: 0.35,
			},
			model.DeviceCRTMonitor: {
				FerrousMetal: 0.1, Copper: 0.05, Plastic: 0.2, PCB: 0.05, CRTGlassAndLead: 0.6,
			},
			model.DeviceCRTTelevision: {
				FerrousMetal: 0.08, Copper: 0.06, Plastic: 0.18, PCB: 0.04, CRTGlassAndLead: 0.62,
			},
			model.DeviceFlatPanelTelevision: {
				FerrousMetal: 0.22, Aluminum: 0.04, Copper: 0.02, Plastic: 0.28,
				PCB: 0.07, FlatPanelDisplayModule: 0.37,
			},
			model.DeviceSmartphone: {
				Aluminum: 0.12, Copper: 0.08, OtherMetals: 0.09, Plastic: 0.25,
				PCB: 0.18, Battery: 0.17, FlatPanelDisplayModule: 0.1,
			},
			model.DeviceTablet: {
				Aluminum: 0.2, Copper: 0.05, OtherMetals: 0.05, Plastic: 0.15,
				PCB: 0.12, Battery: 0.23, FlatPanelDisplayModule: 0.2,
			},
			model.DevicePrinter: {
				FerrousMetal: 0.3, Aluminum: 0.02, Copper: 0.03, OtherMetals: 0.02,
				Plastic: 0.5, PCB: 0.05,
			},
			model.DevicePeripheral: {
				FerrousMetal: 0.05, Copper: 0.05, Plastic: 0.7, PCB: 0.1,
			},
		},
		// Partially working devices are harvested for parts before recycling,
		// so less of their battery and board mass reaches recovery.
		Recovery: map[model.Condition]map[model.Material]float64{
			model.ConditionWorking: {},
			model.ConditionPartiallyWorking: {
				model.MaterialBattery: 0.85,
				model.MaterialPCB:     0.85,
			},
			model.ConditionNotWorking: {},
		},
		EmissionFactors: map[model.DeviceType]float64{
			model.DeviceLaptop:              1.4,
			model.DeviceDesktop:             1.1,
			model.DeviceFlatPanelMonitor:    1.2,
			model.DeviceCRTMonitor:          0.8,
			model.DeviceCRTTelevision:       0.8,
			model.DeviceFlatPanelTelevision: 1.2,
			model.DeviceSmartphone:          2.0,
			model.DeviceTablet:              1.8,
			model.DevicePrinter:             0.9,
			model.DevicePeripheral:          0.6,
		},
		EmissionMultipliers: map[model.Condition]float64{
			model.ConditionWorking:          0.2,
			model.ConditionPartiallyWorking: 0.6,
			model.ConditionNotWorking:       1.0,
		},
	}
}
