package config

// Config is the top-level libraryctl configuration.
type Config struct {
	Library LibraryConfig `mapstructure:"library" yaml:"library"`
	Loans   LoansConfig   `mapstructure:"loans" yaml:"loans"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// LibraryConfig selects the library to build.
type LibraryConfig struct {
	Name string `mapstructure:"name" yaml:"name,omitempty"` // overrides the seed's name when set
	Seed string `mapstructure:"seed" yaml:"seed,omitempty"` // empty uses the built-in demo
}

// LoansConfig holds lending defaults.
type LoansConfig struct {
	DefaultDays uint64 `mapstructure:"default_days" yaml:"default_days"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // text, yaml or json
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Default returns the configuration Load produces with no file and no
// environment overrides.
func Default() *Config {
	return &Config{
		Loans:  LoansConfig{DefaultDays: 14},
		Output: OutputConfig{Format: "text"},
		Log:    LogConfig{Level: "warn"},
	}
}

// EffectiveDays returns days if positive, else the configured default, else 14.
func (l LoansConfig) EffectiveDays(days uint64) uint64 {
	if days > 0 {
		return days
	}
	if l.DefaultDays > 0 {
		return l.DefaultDays
	}
	return 14
}

// SeedPath returns the seed file with ~ expanded.
func (c *Config) SeedPath() string {
	return ExpandHome(c.Library.Seed)
}
