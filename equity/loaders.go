package equity

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/matadorhq/matador/cache"
	"github.com/matadorhq/matador/config"
)

// WeightsCacheLoadFunc reads a weight preset from the strategy params
// directory. Presets are plain YAML files named <preset>.yaml.
func WeightsCacheLoadFunc(cfg *config.Config, key string) (interface{}, error) {
	path := filepath.Join(cfg.StrategyParamsPath, key+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	w := DefaultWeights()
	if err = yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("bad strategy file %s: %w", path, err)
	}
	return w, nil
}

// LoadWeights returns the weights for the configured preset, falling back
// to the built-in defaults when no preset is named or the file is missing.
func LoadWeights(cfg *config.Config) Weights {
	if cfg.StrategyPreset == "" {
		return DefaultWeights()
	}
	obj, err := cache.Load(cfg, "weights:"+cfg.StrategyPreset, WeightsCacheLoadFunc)
	if err != nil {
		log.Err(err).Str("preset", cfg.StrategyPreset).
			Msg("loading-weights; using defaults")
		return DefaultWeights()
	}
	w, ok := obj.(Weights)
	if !ok {
		log.Info().Msg("no weights found, will use default strategy")
		return DefaultWeights()
	}
	return w
}
