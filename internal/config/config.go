package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/toolrental/tool-rental/internal/rental"
)

// EnvPrefix prefixes environment overrides, e.g. TOOL_RENTAL_LOG_LEVEL
const EnvPrefix = "TOOL_RENTAL"

// Config represents application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	Tools  []ToolConfig `mapstructure:"tools"`

	// source is the config file that was read, empty when running on defaults
	source string
}

// LogConfig represents logger configuration
type LogConfig struct {
	File  string `mapstructure:"file"`  // Empty logs to console
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// OutputConfig represents agreement rendering configuration
type OutputConfig struct {
	Format string `mapstructure:"format"` // "text" or "json"
	Locale string `mapstructure:"locale"` // BCP-47 tag used for currency grouping
}

// ToolConfig adds a tool to the catalog or replaces one with the same code
type ToolConfig struct {
	Code          string `mapstructure:"code"`
	Type          string `mapstructure:"type"`
	Brand         string `mapstructure:"brand"`
	DailyCharge   string `mapstructure:"daily_charge"`
	WeekendCharge bool   `mapstructure:"weekend_charge"`
	HolidayCharge bool   `mapstructure:"holiday_charge"`
}

// Load loads configuration from file, .env and environment.
// With an empty configPath the usual locations are searched and a missing
// file falls back to defaults; an explicit path must exist.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.locale", "en-US")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.tool-rental")
		v.AddConfigPath("/etc/tool-rental")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.source = v.ConfigFileUsed()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be 'text' or 'json', got '%s'", c.Output.Format)
	}

	if _, err := language.Parse(c.Output.Locale); err != nil {
		return fmt.Errorf("output.locale '%s' is not a valid language tag: %w", c.Output.Locale, err)
	}

	if _, err := c.ToolSpecs(); err != nil {
		return err
	}

	return nil
}

// Source returns the config file that was read, empty if none was found
func (c *Config) Source() string {
	return c.source
}

// GetLocale returns the output locale, defaulting to American English
func (c *OutputConfig) GetLocale() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// ToolSpecs converts the tools block into catalog entries
func (c *Config) ToolSpecs() ([]rental.ToolSpec, error) {
	specs := make([]rental.ToolSpec, 0, len(c.Tools))
	seen := make(map[string]bool, len(c.Tools))

	for i, tool := range c.Tools {
		code := strings.ToUpper(strings.TrimSpace(tool.Code))
		if code == "" {
			return nil, fmt.Errorf("tools[%d].code is required", i)
		}
		if seen[code] {
			return nil, fmt.Errorf("tools[%d].code %s is duplicated", i, code)
		}
		seen[code] = true

		charge, err := decimal.NewFromString(strings.TrimSpace(tool.DailyCharge))
		if err != nil {
			return nil, fmt.Errorf("tools[%d].daily_charge '%s' is not a number", i, tool.DailyCharge)
		}
		if charge.IsNegative() {
			return nil, fmt.Errorf("tools[%d].daily_charge must not be negative", i)
		}

		specs = append(specs, rental.ToolSpec{
			Code:          code,
			Type:          tool.Type,
			Brand:         tool.Brand,
			DailyCharge:   charge,
			WeekendCharge: tool.WeekendCharge,
			HolidayCharge: tool.HolidayCharge,
		})
	}

	return specs, nil
}

// Catalog returns the default catalog with the configured tools applied
func (c *Config) Catalog() (*rental.Catalog, error) {
	specs, err := c.ToolSpecs()
	if err != nil {
		return nil, err
	}
	return rental.DefaultCatalog().WithOverrides(specs...)
}
