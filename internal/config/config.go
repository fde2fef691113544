package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"

	verrors "github.com/opendap-go/varselect/internal/errors"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "VARSELECT"

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Guard   GuardConfig   `mapstructure:"guard"`

	// Root is the directory tree that is served.
	Root string `mapstructure:"root"`

	// Catalog is the file name answered with an XML listing of its directory.
	Catalog string `mapstructure:"catalog"`

	// FileFilterRegex hides matching file and directory names from listings.
	FileFilterRegex string `mapstructure:"file_filter_regex"`

	// RestrictWithFilter also refuses direct requests for filtered paths.
	// Read it with Restrict; "False", "false", "0" and "" mean false.
	RestrictWithFilter string `mapstructure:"restrict_with_filter"`

	// Extensions are file extensions marked as supported in listings.
	Extensions []string `mapstructure:"extensions"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig holds Prometheus endpoint configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// GuardConfig holds the element ids the submission guard binds to.
type GuardConfig struct {
	ContainerID string `mapstructure:"container_id"`
	ButtonID    string `mapstructure:"button_id"`
}

// Load loads configuration from the file at path (optional) and the
// environment. A path that does not exist is an error; an empty path
// means defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, verrors.New("E203").WithDetailf("reading %s", path).Wrap(err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, verrors.New("E203").WithDetail("decoding configuration").Wrap(err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8001)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("root", ".")
	v.SetDefault("catalog", "catalog.xml")
	v.SetDefault("file_filter_regex", "")
	v.SetDefault("restrict_with_filter", "false")
	v.SetDefault("extensions", []string{".nc", ".nc4", ".hdf", ".h5", ".csv"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("guard.container_id", "tabs")
	v.SetDefault("guard.button_id", "submit")
}

// Restrict reports whether filtered paths are refused on direct requests.
func (c *Config) Restrict() bool {
	return ParseFlag(c.RestrictWithFilter)
}

// ParseFlag interprets a loosely written boolean: "", "False", "false" and
// "0" are false, anything else is true.
func ParseFlag(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "False", "false", "0":
		return false
	default:
		return true
	}
}

// Filter compiles FileFilterRegex. It returns nil when no filter is set.
func (c *Config) Filter() (*regexp.Regexp, error) {
	if c.FileFilterRegex == "" {
		return nil, nil
	}
	re, err := regexp.Compile(c.FileFilterRegex)
	if err != nil {
		return nil, verrors.New("E201").
			WithDetailf("file_filter_regex %q does not compile", c.FileFilterRegex).
			Wrap(err)
	}
	return re, nil
}

// Validate checks the filter and the root directory.
func (c *Config) Validate() error {
	if _, err := c.Filter(); err != nil {
		return err
	}
	info, err := os.Stat(c.Root)
	if err != nil {
		return verrors.New("E202").WithDetailf("root %q", c.Root).Wrap(err)
	}
	if !info.IsDir() {
		return verrors.New("E202").
			WithDetailf("root %q is not a directory", c.Root).
			Wrap(errors.New("not a directory"))
	}
	return nil
}
