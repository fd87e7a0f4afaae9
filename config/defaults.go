package config

import "github.com/spf13/viper"

// Default values
const (
	DefaultParam   = "float64"
	DefaultMethod  = "Lerp"
	DefaultTag     = "lerp"
	DefaultRuntime = "github.com/teranos/lerp"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyParam, DefaultParam)
	v.SetDefault(KeyMethod, DefaultMethod)
	v.SetDefault(KeyTag, DefaultTag)
	v.SetDefault(KeyRuntime, DefaultRuntime)
	v.SetDefault(KeyFallback, true)
	v.SetDefault(KeyOutput, "")
	v.SetDefault(KeyLogJSON, false)
}
