package equity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matadorhq/matador/config"
)

func TestLoadWeightsDefaultWhenUnset(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.StrategyPreset = ""
	assert.Equal(t, DefaultWeights(), LoadWeights(cfg))
}

func TestLoadWeightsFromPreset(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "aggressive.yaml"),
		[]byte("double_bonus: 9.5\nwin_bonus: 5000\n"), 0644))

	cfg := config.DefaultConfig()
	cfg.StrategyParamsPath = dir
	cfg.StrategyPreset = "aggressive"

	w := LoadWeights(cfg)
	assert.Equal(t, 9.5, w.DoubleBonus)
	assert.Equal(t, 5000.0, w.WinBonus)
	// Unset fields keep their defaults.
	assert.Equal(t, DefaultWeights().ShedWeight, w.ShedWeight)
}

func TestLoadWeightsMissingFileFallsBack(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.StrategyParamsPath = t.TempDir()
	cfg.StrategyPreset = "no-such-preset"
	assert.Equal(t, DefaultWeights(), LoadWeights(cfg))
}
