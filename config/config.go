// Package config loads lerpgen settings.
//
// Precedence (lowest to highest): defaults < lerpgen.toml < LERPGEN_* env vars < flags.
// The project file is found by walking up from the package directory, so one
// lerpgen.toml at the module root covers every go:generate line below it.
package config

// Config represents the lerpgen configuration
type Config struct {
	// Param is the type of the interpolation parameter t in generated methods
	Param string `mapstructure:"param" toml:"param"`
	// Method is the name of the generated method and of the method called on nested fields
	Method string `mapstructure:"method" toml:"method"`
	// Tag is the struct tag key holding field directives
	Tag string `mapstructure:"tag" toml:"tag"`
	// Runtime is the import path of the package providing Lerp, Cast and Ref
	Runtime string `mapstructure:"runtime" toml:"runtime"`
	// Fallback writes a panicking method for structs that fail to generate
	Fallback bool `mapstructure:"fallback" toml:"fallback"`
	// Output overrides the generated file name
	Output string `mapstructure:"output" toml:"output"`
	// LogJSON switches log output to JSON
	LogJSON bool `mapstructure:"log_json" toml:"log_json"`
}

// Configuration keys
const (
	KeyParam    = "param"
	KeyMethod   = "method"
	KeyTag      = "tag"
	KeyRuntime  = "runtime"
	KeyFallback = "fallback"
	KeyOutput   = "output"
	KeyLogJSON  = "log_json"
)

// FileName is the project configuration file searched for by Load
const FileName = "lerpgen.toml"
