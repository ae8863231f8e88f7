package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
)

// CSV column names.
const (
	ColumnDateDonated  = "date_donated"
	ColumnDeviceType   = "device_type"
	ColumnManufacturer = "manufacturer"
	ColumnCondition    = "condition"
	ColumnWeight       = "weight"
	ColumnModel        = "model"
	ColumnSerialNumber = "serial_number"
)

var requiredColumns = []string{
	ColumnDateDonated, ColumnDeviceType, ColumnManufacturer, ColumnCondition, ColumnWeight,
}

// ReadCSV parses a donation history. The first row is a header naming the
// columns in any order; model and serial_number are optional. Dates without
// a zone are read in loc. The first malformed row aborts the read with an
// error naming its line.
func ReadCSV(r io.Reader, loc *time.Location) ([]model.Device, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var devices []model.Device
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}

		device, err := parseRecord(record, index, loc)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		devices = append(devices, device)
	}
	return devices, nil
}

func parseRecord(record []string, index map[string]int, loc *time.Location) (model.Device, error) {
	field := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	dt, err := model.ParseDeviceType(field(ColumnDeviceType))
	if err != nil {
		return model.Device{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	cond, err := model.ParseCondition(field(ColumnCondition))
	if err != nil {
		return model.Device{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	weight, err := parseWeight(field(ColumnWeight))
	if err != nil {
		return model.Device{}, err
	}
	donated, err := ParseDate(field(ColumnDateDonated), loc)
	if err != nil {
		return model.Device{}, err
	}

	return model.Device{
		DateDonated:  donated,
		Type:         dt,
		Condition:    cond,
		Weight:       weight,
		Manufacturer: field(ColumnManufacturer),
		Model:        field(ColumnModel),
		SerialNumber: field(ColumnSerialNumber),
	}, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
