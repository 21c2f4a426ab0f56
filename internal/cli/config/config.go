package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Fuzzier/constexpr-type-name/typename"
)

// Config represents the typename CLI configuration
type Config struct {
	Format   string          `mapstructure:"format"`
	NoColor  bool            `mapstructure:"no_color"`
	Debug    bool            `mapstructure:"debug"`
	Dialects []DialectConfig `mapstructure:"dialects"`
}

// DialectConfig declares a custom dialect in the configuration file
type DialectConfig struct {
	Name      string   `mapstructure:"name"`
	Keywords  []string `mapstructure:"keywords"`
	Separator string   `mapstructure:"separator"`
}

// Load loads the configuration from typename.yml or typename.yaml in the
// working directory, with TYPENAME_* environment variables overriding the
// file and defaults filling the rest.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("format", "table")
	v.SetDefault("no_color", false)
	v.SetDefault("debug", false)

	// Set config name and paths
	v.SetConfigName("typename")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support
	v.SetEnvPrefix("TYPENAME")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DialectNames returns every dialect name this configuration can resolve,
// built-ins first.
func (c *Config) DialectNames() []string {
	names := []string{typename.GoDialect.Name, typename.MSVCDialect.Name}
	for _, d := range c.Dialects {
		names = append(names, d.Name)
	}
	return names
}

// ResolveDialect returns the dialect with the given name, checking the
// built-ins before the configured custom dialects.
func (c *Config) ResolveDialect(name string) (typename.Dialect, error) {
	switch name {
	case typename.GoDialect.Name:
		return typename.GoDialect, nil
	case typename.MSVCDialect.Name:
		return typename.MSVCDialect, nil
	}
	for _, d := range c.Dialects {
		if d.Name == name {
			return d.Dialect()
		}
	}
	return typename.Dialect{}, fmt.Errorf("unknown dialect: %s", name)
}

// Dialect converts the configuration entry into a usable dialect.
func (d DialectConfig) Dialect() (typename.Dialect, error) {
	if err := validateDialect(d); err != nil {
		return typename.Dialect{}, err
	}
	return typename.Dialect{
		Name:      d.Name,
		Keywords:  d.Keywords,
		Separator: d.Separator[0],
	}, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Format != "table" && cfg.Format != "json" {
		return fmt.Errorf("format must be 'table' or 'json', got: %s", cfg.Format)
	}
	for _, d := range cfg.Dialects {
		if err := validateDialect(d); err != nil {
			return err
		}
	}
	return nil
}

// validateDialect checks one dialect declaration. Keywords must be
// identifier-shaped tokens, or the whole-token matching rules would never
// find them, and the separator must be a single byte.
func validateDialect(d DialectConfig) error {
	if d.Name == "" {
		return fmt.Errorf("dialect name must not be empty")
	}
	if len(d.Separator) != 1 {
		return fmt.Errorf("dialect %s: separator must be a single byte, got: %q", d.Name, d.Separator)
	}
	for _, kw := range d.Keywords {
		if kw == "" {
			return fmt.Errorf("dialect %s: keywords must not be empty", d.Name)
		}
		for i := 0; i < len(kw); i++ {
			if !isKeywordByte(kw[i]) {
				return fmt.Errorf("dialect %s: keyword %q is not an identifier token", d.Name, kw)
			}
		}
	}
	return nil
}

// isKeywordByte mirrors the identifier alphabet used by the stripping
// engine, without the multibyte range: configured keywords stay ASCII.
func isKeywordByte(b byte) bool {
	return b == '_' ||
		'0' <= b && b <= '9' ||
		'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z'
}
