package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, yaml.Unmarshal(defaultBusJamYAML, &cfg))
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPathKeepsMissingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busjam.yaml")
	data := "movement:\n  step_interval: 120ms\n  motion: linear\ncollision:\n  mask: []\ntimer:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 120*time.Millisecond, cfg.Movement.StepInterval)
	assert.Equal(t, "linear", cfg.Movement.Motion)
	assert.Empty(t, cfg.Collision.Mask)
	assert.False(t, cfg.Timer.Enabled)

	def := DefaultConfig()
	assert.Equal(t, def.Movement.SmoothingRate, cfg.Movement.SmoothingRate)
	assert.Equal(t, def.Boarding, cfg.Boarding)
	assert.Equal(t, def.Disappear, cfg.Disappear)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("movement: [1, 2"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("movement:\n  motion: teleport\ncollision:\n  mask: [lava]\n"), 0o644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "movement.motion")
	assert.ErrorContains(t, err, "lava")
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		scale   float64
	}{
		{DifficultyEasy, true, 1.5},
		{DifficultyNormal, true, 1.0},
		{DifficultyHard, true, 0.75},
		{DifficultyZen, false, 1.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tt.preset)
			assert.Equal(t, tt.enabled, cfg.Timer.Enabled)
			assert.Equal(t, tt.scale, cfg.Timer.Scale)
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	p, err := ParseDifficulty("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParseDifficulty("zen")
	require.NoError(t, err)
	assert.Equal(t, DifficultyZen, p)

	_, err = ParseDifficulty("nightmare")
	assert.Error(t, err)
}
