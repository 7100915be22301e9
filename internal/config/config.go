package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vertextoedge/freespace/internal/domain"
)

// EnvPrefix is prepended to every environment override, e.g. FREESPACE_SESSION_STRICT_INPUT
const EnvPrefix = "FREESPACE"

// Config represents the entire application configuration
type Config struct {
	Session SessionConfig `mapstructure:"session"`
	Journal JournalConfig `mapstructure:"journal"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SessionConfig contains probe session settings
type SessionConfig struct {
	ProbePath    string `mapstructure:"probe_path"`
	ArtifactPath string `mapstructure:"artifact_path"`
	WriteSize    int    `mapstructure:"write_size"`
	StrictInput  bool   `mapstructure:"strict_input"`
}

// JournalConfig contains artifact journal settings.
// An empty Path disables the journal.
type JournalConfig struct {
	Path string `mapstructure:"path"`
}

// Enabled reports whether a journal database is configured
func (c *JournalConfig) Enabled() bool {
	return c.Path != ""
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command line flags onto configuration keys
var flagKeys = map[string]string{
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"path":       "session.probe_path",
	"artifact":   "session.artifact_path",
	"write-size": "session.write_size",
	"strict":     "session.strict_input",
	"journal":    "journal.path",
}

// RegisterFlags adds the configuration flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML configuration file")
	fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	fs.String("log-format", "text", "log format (text, json)")
	fs.String("path", ".", "location whose volume is probed")
	fs.String("artifact", "temp_test_file", "transient file created by each iteration")
	fs.Int("write-size", 256, "number of zero bytes written into the middle of the artifact")
	fs.Bool("strict", false, "re-prompt on input that is not a non-negative integer")
	fs.String("journal", "", "SQLite journal used to clean up artifacts left by a killed run")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
	v.SetDefault("session.probe_path", ".")
	v.SetDefault("session.artifact_path", "temp_test_file")
	v.SetDefault("session.write_size", 256)
	v.SetDefault("session.strict_input", false)
	v.SetDefault("journal.path", "")
}

// Load builds the configuration from defaults, an optional YAML file,
// FREESPACE_* environment variables and flags, in increasing precedence.
// flags may be nil; when it carries a non-empty --config that file must exist.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}

		if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			v.SetConfigType("yaml")

			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("%w: failed to read config file: %v", domain.ErrInvalidConfig, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal config: %v", domain.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Session.ProbePath == "" {
		return invalid("session.probe_path is required")
	}
	if c.Session.ArtifactPath == "" {
		return invalid("session.artifact_path is required")
	}
	if c.Session.WriteSize <= 0 {
		return invalid("session.write_size must be positive")
	}

	// Validate logging config
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// Valid levels
	default:
		return invalid("invalid logging.level: " + c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
		// Valid formats
	default:
		return invalid("invalid logging.format: " + c.Logging.Format)
	}

	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, msg)
}
