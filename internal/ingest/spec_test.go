package ingest

import (
	"testing"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeviceSpec(t *testing.T) {
	device, err := ParseDeviceSpec("type=Laptop,condition=Working,weight=5,manufacturer=Dell", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, model.Device{
		Type:         model.DeviceLaptop,
		Condition:    model.ConditionWorking,
		Weight:       5,
		Manufacturer: "Dell",
	}, device)
	assert.False(t, device.Donated())
}

func TestParseDeviceSpec_AllKeys(t *testing.T) {
	device, err := ParseDeviceSpec(" type = CRT Monitor , condition=not working, weight=31.5, model=Trinitron, serial=X1, date=2021-05-06 ", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, model.DeviceCRTMonitor, device.Type)
	assert.Equal(t, model.ConditionNotWorking, device.Condition)
	assert.Equal(t, "Trinitron", device.Model)
	assert.Equal(t, "X1", device.SerialNumber)
	assert.Equal(t, time.Date(2021, 5, 6, 0, 0, 0, 0, time.UTC), device.DateDonated)
}

func TestParseDeviceSpec_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		spec    string
	}{
		{name: "empty", spec: "", wantErr: ErrMalformedRecord},
		{name: "not key value", spec: "Laptop", wantErr: ErrMalformedRecord},
		{name: "missing weight", spec: "type=Laptop,condition=Working", wantErr: ErrMalformedRecord},
		{name: "duplicate key", spec: "type=Laptop,type=Tablet,condition=Working,weight=1", wantErr: ErrMalformedRecord},
		{name: "unknown key", spec: "type=Laptop,condition=Working,weight=1,color=red", wantErr: ErrMalformedRecord},
		{name: "unknown type", spec: "type=Toaster,condition=Working,weight=1", wantErr: model.ErrUnknownDeviceType},
		{name: "negative weight", spec: "type=Laptop,condition=Working,weight=-1", wantErr: ErrMalformedRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDeviceSpec(tt.spec, time.UTC)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
