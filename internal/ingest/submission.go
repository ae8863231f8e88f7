package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
	"gopkg.in/yaml.v3"
)

// Submission is a batch of devices handed in together.
type Submission struct {
	DonorID string
	Devices []model.Device
}

type submissionFile struct {
	Donor   string          `yaml:"donor"`
	Devices []submittedItem `yaml:"devices"`
}

type submittedItem struct {
	Type         string  `yaml:"type"`
	Condition    string  `yaml:"condition"`
	Manufacturer string  `yaml:"manufacturer"`
	Model        string  `yaml:"model"`
	Serial       string  `yaml:"serial"`
	Date         string  `yaml:"date"`
	Weight       float64 `yaml:"weight"`
}

// ReadSubmissionFile reads a YAML submission:
//
//	donor: 01J8ZQ...
//	devices:
//	  - type: Laptop
//	    condition: Working
//	    weight: 5
//	    manufacturer: Dell
func ReadSubmissionFile(path string, loc *time.Location) (*Submission, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read submission: %w", err)
	}
	return ParseSubmission(data, loc)
}

// ParseSubmission parses YAML submission content.
func ParseSubmission(data []byte, loc *time.Location) (*Submission, error) {
	var file submissionFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if len(file.Devices) == 0 {
		return nil, fmt.Errorf("%w: submission lists no devices", ErrMalformedRecord)
	}

	sub := &Submission{DonorID: file.Donor, Devices: make([]model.Device, 0, len(file.Devices))}
	for i, item := range file.Devices {
		device, err := item.device(loc)
		if err != nil {
			return nil, fmt.Errorf("device %d: %w", i+1, err)
		}
		sub.Devices = append(sub.Devices, device)
	}
	return sub, nil
}

func (it submittedItem) device(loc *time.Location) (model.Device, error) {
	dt, err := model.ParseDeviceType(it.Type)
	if err != nil {
		return model.Device{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	cond, err := model.ParseCondition(it.Condition)
	if err != nil {
		return model.Device{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if it.Weight <= 0 {
		return model.Device{}, fmt.Errorf("%w: weight must be positive, got %v", ErrMalformedRecord, it.Weight)
	}

	device := model.Device{
		Type:         dt,
		Condition:    cond,
		Weight:       it.Weight,
		Manufacturer: it.Manufacturer,
		Model:        it.Model,
		SerialNumber: it.Serial,
	}
	if it.Date != "" {
		if device.DateDonated, err = ParseDate(it.Date, loc); err != nil {
			return model.Device{}, err
		}
	}
	return device, nil
}
