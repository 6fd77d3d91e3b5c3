package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/lgbarn/chesstree/internal/errors"
)

// EnvPrefix prefixes environment overrides, e.g. CHESSTREE_LOG_LEVEL.
const EnvPrefix = "CHESSTREE"

// Load builds a Config from defaults, an optional file (YAML, TOML or
// JSON by extension) and CHESSTREE_* environment variables, in increasing
// priority. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, NewConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "decoding config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so that environment variables can
// override keys absent from the file.
func setDefaults(v *viper.Viper, cfg *Config) {
	o := cfg.Output
	v.SetDefault("output.max_line_length", o.MaxLineLength)
	v.SetDefault("output.json", o.JSONFormat)
	v.SetDefault("output.keep_move_numbers", o.KeepMoveNumbers)
	v.SetDefault("output.keep_results", o.KeepResults)
	v.SetDefault("output.keep_nags", o.KeepNAGs)
	v.SetDefault("output.keep_comments", o.KeepComments)
	v.SetDefault("output.keep_variations", o.KeepVariations)
	v.SetDefault("output.keep_clocks", o.KeepClocks)
	v.SetDefault("output.tags", string(o.TagFormat))
	v.SetDefault("output.tag_line_ending", o.TagLineEnding)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("workers", cfg.Workers)
}
