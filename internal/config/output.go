package config

// TagOutputForm specifies which tags to output.
type TagOutputForm string

const (
	AllTags        TagOutputForm = "all"
	SevenTagRoster TagOutputForm = "roster"
	NoTags         TagOutputForm = "none"
)

// OutputConfig holds settings related to PGN output formatting.
type OutputConfig struct {
	// MaxLineLength is the maximum movetext line length; 0 disables wrapping.
	MaxLineLength int `mapstructure:"max_line_length"`

	// JSONFormat writes a JSON tree export instead of PGN.
	JSONFormat bool `mapstructure:"json"`

	// KeepMoveNumbers controls whether move numbers are included.
	KeepMoveNumbers bool `mapstructure:"keep_move_numbers"`

	// KeepResults controls whether the result token is included.
	KeepResults bool `mapstructure:"keep_results"`

	// KeepNAGs controls whether Numeric Annotation Glyphs are kept.
	KeepNAGs bool `mapstructure:"keep_nags"`

	// KeepComments controls whether comment text and display commands
	// ([%csl], [%cal], [%eval]) are kept.
	KeepComments bool `mapstructure:"keep_comments"`

	// KeepVariations controls whether side variations are kept.
	KeepVariations bool `mapstructure:"keep_variations"`

	// KeepClocks controls whether [%clk] commands are kept.
	KeepClocks bool `mapstructure:"keep_clocks"`

	// TagFormat specifies which tags to output.
	TagFormat TagOutputForm `mapstructure:"tags"`

	// TagLineEnding terminates each tag pair line.
	TagLineEnding string `mapstructure:"tag_line_ending"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResults:     true,
		KeepNAGs:        true,
		KeepComments:    true,
		KeepVariations:  true,
		KeepClocks:      true,
		TagFormat:       AllTags,
		TagLineEnding:   "\r\n",
	}
}
