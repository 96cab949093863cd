package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargo-apk/apklinker/common"
	"github.com/cargo-apk/apklinker/framework"
)

type mapConfigSource map[string]string

func (m mapConfigSource) Name() string { return "map" }

func (m mapConfigSource) Get(key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", ErrConfigNotFound
	}
	return v, nil
}

func (m mapConfigSource) Set(key, value string) error {
	m[key] = value
	return nil
}

func TestNewConfig_Defaults(t *testing.T) {
	config, err := newConfig(mapConfigSource{})
	require.NoError(t, err)

	assert.Equal(t, Default(), config)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, "console", config.LogFormat)
	assert.False(t, config.RecursiveArgFiles)
	assert.Equal(t, 32, config.MaxArgFileDepth)
	assert.False(t, config.DryRun)
}

func TestNewConfig_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "apklinker.yaml")
	require.NoError(t, os.WriteFile(p, []byte("LogLevel: debug\nRecursiveArgFiles: true\nMaxArgFileDepth: 4\nOutputFormat: json\n"), 0o644))

	config, err := newConfig(mapConfigSource{KeyConfigPath: p})
	require.NoError(t, err)

	assert.Equal(t, p, config.ConfigPath)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "console", config.LogFormat)
	assert.True(t, config.RecursiveArgFiles)
	assert.Equal(t, 4, config.MaxArgFileDepth)
	assert.Equal(t, "json", config.OutputFormat)
}

func TestNewConfig_EnvOverridesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "apklinker.yaml")
	require.NoError(t, os.WriteFile(p, []byte("LogLevel: debug\nDryRun: false\n"), 0o644))

	config, err := newConfig(mapConfigSource{
		KeyConfigPath:        p,
		KeyLogLevel:          "error",
		KeyLogFormat:         "json",
		KeyDryRun:            "true",
		KeyRecursiveArgFiles: "1",
		KeyMaxArgFileDepth:   "8",
	})
	require.NoError(t, err)

	assert.Equal(t, "error", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
	assert.True(t, config.DryRun)
	assert.True(t, config.RecursiveArgFiles)
	assert.Equal(t, 8, config.MaxArgFileDepth)
}

func TestNewConfig_Errors(t *testing.T) {
	testCases := []struct {
		name string
		src  mapConfigSource
	}{
		{"missing file", mapConfigSource{KeyConfigPath: filepath.Join(t.TempDir(), "none.yaml")}},
		{"bad bool", mapConfigSource{KeyDryRun: "sure"}},
		{"bad depth", mapConfigSource{KeyMaxArgFileDepth: "deep"}},
		{"zero depth", mapConfigSource{KeyMaxArgFileDepth: "0"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newConfig(tc.src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrConfiguration))
		})
	}
}

func TestNewConfig_Env(t *testing.T) {
	t.Setenv(EnvPrefix+KeyConfigPath, "")
	t.Setenv(EnvPrefix+KeyLogLevel, "info")
	t.Setenv(EnvPrefix+KeyOutputFormat, "table")

	config, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", config.LogLevel)
	assert.Empty(t, config.ConfigPath)
	assert.Equal(t, framework.FormatTable, config.ReportFormat())
}

func TestReportFormat(t *testing.T) {
	var nilConfig *Config
	assert.Equal(t, framework.FormatDefault, nilConfig.ReportFormat())

	config := Default()
	assert.Equal(t, framework.FormatDefault, config.ReportFormat())

	config.OutputFormat = "json"
	assert.Equal(t, framework.FormatJSON, config.ReportFormat())

	src := mapConfigSource{KeyOutputFormat: "plain"}
	config, err := newConfig(src)
	require.NoError(t, err)
	assert.Equal(t, framework.FormatPlain, config.ReportFormat())
}

func TestEnvConfigSource(t *testing.T) {
	src := newEnvConfigSource()
	require.NoError(t, src.Set("TEST_KEY", "v"))
	defer os.Unsetenv(EnvPrefix + "TEST_KEY")

	v, err := src.Get("TEST_KEY")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
	assert.Equal(t, "v", os.Getenv("APKLINKER_TEST_KEY"))

	_, err = src.Get("NOT_SET_ANYWHERE")
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}
