package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/totegamma/unifedi/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  traceEndpoint: localhost:4318
  enableTrace: true
  metricsAddr: ":9090"
  timeout: 3s
instance:
  flavor: Akkoma
  baseURL: https://fedi.example/
  strict: true
  appName: example
  redirectURI: https://app.example/cb
  scopes:
    - read
    - write
`)

	var config Config
	require.NoError(t, config.Load(path))

	assert.Equal(t, "localhost:4318", config.Server.TraceEndpoint)
	assert.True(t, config.Server.EnableTrace)
	assert.Equal(t, 3*time.Second, config.Server.Timeout)
	assert.Equal(t, "https://fedi.example", config.Instance.BaseURL)
	assert.Equal(t, []string{"read", "write"}, config.Instance.Scopes)

	flavor, err := config.Instance.ParseFlavor()
	require.NoError(t, err)
	assert.Equal(t, core.FlavorPleroma, flavor)
	assert.True(t, core.NewOptions(config.Instance.Options()...).Strict())
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
instance:
  flavor: firefish
  baseURL: https://fedi.example
`)

	var config Config
	require.NoError(t, config.Load(path))

	assert.Equal(t, defaultTimeout, config.Server.Timeout)
	assert.Equal(t, "unifedi", config.Instance.AppName)
	assert.Empty(t, config.Instance.Options())
}

func TestLoadErrors(t *testing.T) {
	var config Config
	assert.Error(t, config.Load(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, config.Load(writeConfig(t, "server: [")))
	assert.Error(t, config.Load(writeConfig(t, "instance:\n  flavor: gotosocial\n")))
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
	assert.LessOrEqual(t, len(GetGitShortHash()), 7)
	assert.Contains(t, UserAgent(), "unifedi/")
}
