package ingest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSubmissionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submission.yaml")
	content := `donor: donor-1
devices:
  - type: Laptop
    condition: Working
    weight: 5
    manufacturer: Dell
  - type: Desktop
    condition: Partially Working
    weight: 22.5
    serial: D-9
    date: 2024-06-01
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	sub, err := ReadSubmissionFile(path, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "donor-1", sub.DonorID)
	require.Len(t, sub.Devices, 2)
	assert.Equal(t, model.DeviceLaptop, sub.Devices[0].Type)
	assert.Equal(t, "Dell", sub.Devices[0].Manufacturer)
	assert.False(t, sub.Devices[0].Donated())
	assert.Equal(t, model.ConditionPartiallyWorking, sub.Devices[1].Condition)
	assert.Equal(t, "D-9", sub.Devices[1].SerialNumber)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), sub.Devices[1].DateDonated)
}

func TestParseSubmission_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		content string
		errMsg  string
	}{
		{name: "empty", content: "", wantErr: ErrMalformedRecord},
		{name: "no devices", content: "donor: x\ndevices: []\n", wantErr: ErrMalformedRecord},
		{name: "unknown field", content: "devices:\n  - type: Laptop\n    colour: red\n", wantErr: ErrMalformedRecord},
		{
			name:    "second device invalid",
			content: "devices:\n  - {type: Laptop, condition: Working, weight: 5}\n  - {type: Laptop, condition: Working, weight: 0}\n",
			wantErr: ErrMalformedRecord,
			errMsg:  "device 2",
		},
		{
			name:    "unknown condition",
			content: "devices:\n  - {type: Laptop, condition: Mint, weight: 5}\n",
			wantErr: model.ErrUnknownCondition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSubmission([]byte(tt.content), time.UTC)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestReadSubmissionFile_Missing(t *testing.T) {
	_, err := ReadSubmissionFile(filepath.Join(t.TempDir(), "nope.yaml"), time.UTC)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
