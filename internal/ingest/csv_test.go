package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := `date_donated,device_type,manufacturer,condition,weight,model,serial_number
2023-02-01,Laptop,Dell,Working,5,Latitude 5490,ABC123
2024-02-01, flat panel television ,Samsung,Not Working,40.5,,

2024-03-15T10:30:00Z,Smartphone,Apple,Partially Working,0.4,,
`
	devices, err := ReadCSV(strings.NewReader(input), time.UTC)
	require.NoError(t, err)
	require.Len(t, devices, 3)

	assert.Equal(t, model.Device{
		DateDonated:  time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		Type:         model.DeviceLaptop,
		Condition:    model.ConditionWorking,
		Weight:       5,
		Manufacturer: "Dell",
		Model:        "Latitude 5490",
		SerialNumber: "ABC123",
	}, devices[0])

	assert.Equal(t, model.DeviceFlatPanelTelevision, devices[1].Type)
	assert.Equal(t, model.ConditionNotWorking, devices[1].Condition)
	assert.InDelta(t, 40.5, devices[1].Weight, 1e-12)
	assert.Empty(t, devices[1].Model)

	assert.Equal(t, model.ConditionPartiallyWorking, devices[2].Condition)
	assert.True(t, devices[2].DateDonated.Equal(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)))
}

func TestReadCSV_ColumnOrderAndOptionalColumns(t *testing.T) {
	input := "weight,condition,device_type,manufacturer,date_donated\n12,Working,Printer,HP,2022-07-04\n"
	loc := time.FixedZone("PDT", -7*60*60)

	devices, err := ReadCSV(strings.NewReader(input), loc)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, model.DevicePrinter, devices[0].Type)
	assert.Equal(t, loc, devices[0].DateDonated.Location())
}

func TestReadCSV_Errors(t *testing.T) {
	header := "date_donated,device_type,manufacturer,condition,weight\n"

	tests := []struct {
		wantErr error
		name    string
		input   string
		errMsg  string
	}{
		{name: "empty", input: "", wantErr: ErrMissingColumn},
		{name: "missing column", input: "date_donated,device_type,condition,weight\n", wantErr: ErrMissingColumn, errMsg: "manufacturer"},
		{name: "unknown device", input: header + "2024-01-01,Laptop,Dell,Working,5\n2024-01-02,Toaster,Acme,Working,2\n", wantErr: model.ErrUnknownDeviceType, errMsg: "line 3"},
		{name: "unknown condition", input: header + "2024-01-01,Laptop,Dell,Mint,5\n", wantErr: model.ErrUnknownCondition, errMsg: "line 2"},
		{name: "bad weight", input: header + "2024-01-01,Laptop,Dell,Working,heavy\n", wantErr: ErrMalformedRecord, errMsg: "line 2"},
		{name: "zero weight", input: header + "2024-01-01,Laptop,Dell,Working,0\n", wantErr: ErrMalformedRecord},
		{name: "bad date", input: header + "yesterday,Laptop,Dell,Working,5\n", wantErr: ErrMalformedRecord, errMsg: "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			devices, err := ReadCSV(strings.NewReader(tt.input), time.UTC)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, devices)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{"2024-02-29", "2024-02-29T00:00:00Z", "2024-02-29 00:00:00", "02/29/2024"} {
		got, err := ParseDate(s, time.UTC)
		require.NoError(t, err, s)
		assert.True(t, got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)), s)
	}

	_, err := ParseDate("2023-02-29", time.UTC)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}
