package configs

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/cargo-apk/apklinker/common"
)

// Keys looked up in a ConfigSource. The environment source reads them
// with EnvPrefix, e.g. APKLINKER_LOG_LEVEL.
const (
	// KeyConfigPath names the yaml config file to load.
	KeyConfigPath = "CONFIG"

	KeyLogLevel          = "LOG_LEVEL"
	KeyLogFormat         = "LOG_FORMAT"
	KeyRecursiveArgFiles = "RECURSIVE_ARGFILES"
	KeyMaxArgFileDepth   = "MAX_ARGFILE_DEPTH"
	KeyDryRun            = "DRY_RUN"
	KeyOutputFormat      = "OUTPUT_FORMAT"

	defaultLogLevel        = "warn"
	defaultLogFormat       = "console"
	defaultMaxArgFileDepth = 32
)

// Config stores apklinker config items.
type Config struct {
	// config file path, empty when running on defaults
	ConfigPath string `yaml:"-"`

	LogLevel  string `yaml:"LogLevel"`
	LogFormat string `yaml:"LogFormat"`
	// expand `@file` lines found inside argument files
	RecursiveArgFiles bool `yaml:"RecursiveArgFiles"`
	MaxArgFileDepth   int  `yaml:"MaxArgFileDepth"`
	// print the classification instead of linking
	DryRun       bool   `yaml:"DryRun"`
	OutputFormat string `yaml:"OutputFormat"`
}

// Default returns a Config holding default values.
func Default() *Config {
	return &Config{
		LogLevel:        defaultLogLevel,
		LogFormat:       defaultLogFormat,
		MaxArgFileDepth: defaultMaxArgFileDepth,
	}
}

func (c *Config) load() error {
	bs, err := os.ReadFile(c.ConfigPath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(bs, c)
}

// applySource overrides config items with values found in src.
func (c *Config) applySource(src ConfigSource) error {
	for key, target := range map[string]*string{
		KeyLogLevel:     &c.LogLevel,
		KeyLogFormat:    &c.LogFormat,
		KeyOutputFormat: &c.OutputFormat,
	} {
		if v, err := src.Get(key); err == nil {
			*target = v
		}
	}

	for key, target := range map[string]*bool{
		KeyRecursiveArgFiles: &c.RecursiveArgFiles,
		KeyDryRun:            &c.DryRun,
	} {
		v, err := src.Get(key)
		if err != nil {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s: invalid %s value %q", src.Name(), key, v)
		}
		*target = b
	}

	if v, err := src.Get(KeyMaxArgFileDepth); err == nil {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s: invalid %s value %q", src.Name(), KeyMaxArgFileDepth, v)
		}
		c.MaxArgFileDepth = depth
	}
	return nil
}

func (c *Config) validate() error {
	if c.MaxArgFileDepth < 1 {
		return errors.Newf("MaxArgFileDepth shall be positive, got %d", c.MaxArgFileDepth)
	}
	return nil
}

// NewConfig builds the config from defaults, the yaml file named by
// APKLINKER_CONFIG if any, and the environment, in this order.
func NewConfig() (*Config, error) {
	return newConfig(newEnvConfigSource())
}

func newConfig(src ConfigSource) (*Config, error) {
	config := Default()

	if p, err := src.Get(KeyConfigPath); err == nil && p != "" {
		expanded, err := homedir.Expand(p)
		if err != nil {
			return nil, common.NewConfigurationError("failed to expand config path %s: %v", p, err)
		}
		config.ConfigPath = expanded
		if err := config.load(); err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "failed to load config file %s", expanded), common.ErrConfiguration)
		}
	}

	if err := config.applySource(src); err != nil {
		return nil, errors.Mark(err, common.ErrConfiguration)
	}
	if err := config.validate(); err != nil {
		return nil, errors.Mark(err, common.ErrConfiguration)
	}
	return config, nil
}
