package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts a builder from a copy of an existing config, so that
// command-line flags can override loaded values.
func From(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithComments sets whether comments are kept.
func (b *ConfigBuilder) WithComments(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepComments = keep
	return b
}

// WithNAGs sets whether NAGs are kept.
func (b *ConfigBuilder) WithNAGs(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepNAGs = keep
	return b
}

// WithVariations sets whether variations are kept.
func (b *ConfigBuilder) WithVariations(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepVariations = keep
	return b
}

// WithClocks sets whether [%clk] commands are kept.
func (b *ConfigBuilder) WithClocks(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepClocks = keep
	return b
}

// WithResults sets whether the result token ends the movetext.
func (b *ConfigBuilder) WithResults(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepResults = keep
	return b
}

// WithTagFormat sets which tags are written.
func (b *ConfigBuilder) WithTagFormat(form TagOutputForm) *ConfigBuilder {
	b.cfg.Output.TagFormat = form
	return b
}

// WithWorkers sets the number of parallel parsers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}
