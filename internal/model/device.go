package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrUnknownDeviceType indicates a device type outside the supported enumeration.
	ErrUnknownDeviceType = errors.New("unknown device type")
	// ErrUnknownCondition indicates a device condition outside the supported enumeration.
	ErrUnknownCondition = errors.New("unknown device condition")
)

// DeviceType is the category of a donated device.
type DeviceType string

// Supported device types.
const (
	DeviceLaptop              DeviceType = "Laptop"
	DeviceDesktop             DeviceType = "Desktop"
	DeviceFlatPanelMonitor    DeviceType = "Flat Panel Monitor"
	DeviceCRTMonitor          DeviceType = "CRT Monitor"
	DeviceCRTTelevision       DeviceType = "CRT Television"
	DeviceFlatPanelTelevision DeviceType = "Flat Panel Television"
	DeviceSmartphone          DeviceType = "Smartphone"
	DeviceTablet              DeviceType = "Tablet"
	DevicePrinter             DeviceType = "Printer"
	DevicePeripheral          DeviceType = "Peripheral"
)

// DeviceTypes lists every supported device type in display order.
var DeviceTypes = []DeviceType{
	DeviceLaptop,
	DeviceDesktop,
	DeviceFlatPanelMonitor,
	DeviceCRTMonitor,
	DeviceCRTTelevision,
	DeviceFlatPanelTelevision,
	DeviceSmartphone,
	DeviceTablet,
	DevicePrinter,
	DevicePeripheral,
}

// ParseDeviceType resolves a device type name, ignoring case and surrounding space.
func ParseDeviceType(s string) (DeviceType, error) {
	s = strings.TrimSpace(s)
	for _, dt := range DeviceTypes {
		if strings.EqualFold(s, string(dt)) {
			return dt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDeviceType, s)
}

// Valid reports whether the device type is a member of the enumeration.
func (d DeviceType) Valid() bool {
	for _, dt := range DeviceTypes {
		if d == dt {
			return true
		}
	}
	return false
}

// Condition describes the working state of a donated device.
type Condition string

// Supported device conditions.
const (
	ConditionWorking          Condition = "Working"
	ConditionPartiallyWorking Condition = "Partially Working"
	ConditionNotWorking       Condition = "Not Working"
)

// Conditions lists every supported condition.
var Conditions = []Condition{
	ConditionWorking,
	ConditionPartiallyWorking,
	ConditionNotWorking,
}

// ParseCondition resolves a condition name, ignoring case and surrounding space.
func ParseCondition(s string) (Condition, error) {
	s = strings.TrimSpace(s)
	for _, c := range Conditions {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCondition, s)
}

// Valid reports whether the condition is a member of the enumeration.
func (c Condition) Valid() bool {
	for _, known := range Conditions {
		if c == known {
			return true
		}
	}
	return false
}

// Device is a single donated (or about to be donated) piece of equipment.
type Device struct {
	DateDonated  time.Time // zero until the donation is persisted
	ID           string
	DonorID      string
	Type         DeviceType
	Model        string
	Manufacturer string // informational only
	SerialNumber string
	Condition    Condition
	Weight       float64 // pounds
	Verified     bool
}

// Donated reports whether the device has been assigned a donation date.
func (d *Device) Donated() bool {
	return !d.DateDonated.IsZero()
}
