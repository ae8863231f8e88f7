package policy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalPolicy = `version: 1.2.0
materials:
  Laptop:
    ferrous_metal: 0.3
    aluminum: 0.1
    plastic: 0.4
    pcb: 0.1
    battery: 0.1
recovery:
  Working: {}
  Not Working:
    battery: 0.9
emission_factors:
  Laptop: 1.5
emission_multipliers:
  Working: 0.25
  Not Working: 1
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(minimalPolicy))
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", p.Version)
	row, err := p.Fractions(model.DeviceLaptop)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, row.Plastic, 1e-12)
	assert.InDelta(t, 0, row.Copper, 0)

	f, err := p.RecoveryFactor(model.ConditionNotWorking, model.MaterialBattery)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, f, 1e-12)

	_, err = p.Fractions(model.DeviceDesktop)
	assert.ErrorIs(t, err, model.ErrUnknownDeviceType)
	_, err = p.EmissionMultiplier(model.ConditionPartiallyWorking)
	assert.ErrorIs(t, err, model.ErrUnknownCondition)
}

func TestParse_VersionGate(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{name: "same major", version: "1.9.3"},
		{name: "next major", version: "2.0.0", wantErr: true},
		{name: "not semver", version: "latest", wantErr: true},
		{name: "missing", version: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Default()
			doc.Version = tt.version
			data, err := Marshal(doc)
			require.NoError(t, err)

			_, err = Parse(data)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPolicy)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParse_RejectsInvalidTables(t *testing.T) {
	doc := `version: 1.0.0
materials:
  Laptop:
    plastic: 0.8
    ferrous_metal: 0.5
recovery:
  Working: {}
emission_factors:
  Laptop: 1
emission_multipliers:
  Working: 0.2
`
	_, err := Parse([]byte(doc))
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestParse_RejectsMisspelledMaterials(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		to     string
		errMsg string
	}{
		{
			name:   "recovery row key",
			from:   "    battery: 0.9",
			to:     "    batery: 0.9",
			errMsg: `unknown material "batery"`,
		},
		{
			name:   "materials row field",
			from:   "    plastic: 0.4",
			to:     "    plastik: 0.4",
			errMsg: "plastik",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(minimalPolicy, tt.from, tt.to, 1)
			require.NotEqual(t, minimalPolicy, doc)

			_, err := Parse([]byte(doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPolicy)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("materials: [unclosed"))
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestMarshal_RoundTripsDefault(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	p, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalPolicy), 0600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", p.Version)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading policy file")
}

func TestLoadOrDefault(t *testing.T) {
	p, err := LoadOrDefault("  ")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}
