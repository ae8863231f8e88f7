package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
)

// ParseDeviceSpec parses a comma-separated key=value device description such
// as "type=Laptop,condition=Working,weight=5,manufacturer=Dell". type,
// condition and weight are required; model, serial and date are optional.
// The device is left undated unless date is given.
func ParseDeviceSpec(spec string, loc *time.Location) (model.Device, error) {
	var device model.Device
	seen := make(map[string]bool)

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return model.Device{}, fmt.Errorf("%w: %q is not key=value", ErrMalformedRecord, part)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if seen[key] {
			return model.Device{}, fmt.Errorf("%w: duplicate key %q", ErrMalformedRecord, key)
		}
		seen[key] = true

		var err error
		switch key {
		case "type":
			device.Type, err = model.ParseDeviceType(value)
		case "condition":
			device.Condition, err = model.ParseCondition(value)
		case "weight":
			device.Weight, err = parseWeight(value)
		case "manufacturer":
			device.Manufacturer = value
		case "model":
			device.Model = value
		case "serial":
			device.SerialNumber = value
		case "date":
			device.DateDonated, err = ParseDate(value, loc)
		default:
			err = fmt.Errorf("%w: unknown key %q", ErrMalformedRecord, key)
		}
		if err != nil {
			return model.Device{}, err
		}
	}

	for _, required := range []string{"type", "condition", "weight"} {
		if !seen[required] {
			return model.Device{}, fmt.Errorf("%w: missing %s", ErrMalformedRecord, required)
		}
	}
	return device, nil
}
