package configs

import "os"

// EnvPrefix prefixes every environment variable apklinker reads.
const EnvPrefix = "APKLINKER_"

var _ ConfigSource = (*envConfigSource)(nil)

// envConfigSource reads keys from prefixed environment variables.
type envConfigSource struct {
	prefix string
}

func newEnvConfigSource() *envConfigSource {
	return &envConfigSource{prefix: EnvPrefix}
}

func (e *envConfigSource) Name() string {
	return "env(" + e.prefix + "*)"
}

func (e *envConfigSource) Get(key string) (string, error) {
	value, ok := os.LookupEnv(e.prefix + key)
	if !ok {
		return "", ErrConfigNotFound
	}
	return value, nil
}

func (e *envConfigSource) Set(key, value string) error {
	return os.Setenv(e.prefix+key, value)
}
