package types

// OutputFormat selects the export rendering.
type OutputFormat string

const (
	// FormatFormatted is the styled plain-text layout with section bars.
	FormatFormatted OutputFormat = "formatted"
	// FormatPlain is stripped prose: no bars, rules, or bullets.
	FormatPlain OutputFormat = "plain"
	// FormatPDF is the paginated letter-size document.
	FormatPDF OutputFormat = "pdf"
)

// Valid reports whether f names a known output format.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatFormatted, FormatPlain, FormatPDF:
		return true
	}
	return false
}

// Extension returns the output filename extension for the format.
func (f OutputFormat) Extension() string {
	if f == FormatPDF {
		return ".pdf"
	}
	return ".txt"
}

// OutputConfig holds settings for the export stage.
type OutputConfig struct {
	// Format selects the rendering: formatted, plain, or pdf.
	Format OutputFormat `json:"format" yaml:"format"`

	// Dir is the directory for output files when --out is not given
	// (default ".").
	Dir string `json:"dir" yaml:"dir"`

	// Condensed enables the reduced-field rendering by default.
	Condensed bool `json:"condensed" yaml:"condensed"`
}

// PromptConfig holds settings for interactive field selection.
type PromptConfig struct {
	// PageSize is the number of options shown per page in the field
	// multi-select (default 12).
	PageSize int `json:"page_size" yaml:"page_size"`
}

// Config groups all tool configuration. Every field has a working default;
// the tool runs with no config file present.
type Config struct {
	Output OutputConfig `json:"output" yaml:"output"`
	Prompt PromptConfig `json:"prompt" yaml:"prompt"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Format: FormatFormatted,
			Dir:    ".",
		},
		Prompt: PromptConfig{PageSize: 12},
	}
}
