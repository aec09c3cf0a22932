// pkg/config/source_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSource_Load(t *testing.T) {
	src := &DefaultSource{}
	assert.Equal(t, 10, src.Priority())
	assert.Equal(t, "defaults", src.Name())

	k := koanf.New(".")
	require.NoError(t, src.Load(k))

	assert.Equal(t, "error", k.String("log.level"))
	assert.Equal(t, "table", k.String("output.format"))
	assert.Equal(t, "", k.String("catalog.path"))
}

func TestFileSource_Load_MissingFileSkipped(t *testing.T) {
	k := koanf.New(".")

	require.NoError(t, (&FileSource{Path: ""}).Load(k), "empty path should skip silently")
	require.NoError(t, (&FileSource{Path: "/nonexistent/config.yaml"}).Load(k), "missing file should skip silently")
}

func TestFileSource_Load_ValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
log:
  level: warn
catalog:
  path: /etc/osid/os_catalog.yaml
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	k := koanf.New(".")
	require.NoError(t, (&FileSource{Path: configPath}).Load(k))

	assert.Equal(t, "warn", k.String("log.level"))
	assert.Equal(t, "/etc/osid/os_catalog.yaml", k.String("catalog.path"))
}

func TestEnvSource_Load(t *testing.T) {
	t.Setenv("OSID_LOG_LEVEL", "debug")
	t.Setenv("OSID_CATALOG_PATH", "/tmp/catalog.yaml")

	k := koanf.New(".")
	require.NoError(t, (&EnvSource{}).Load(k))

	assert.Equal(t, "debug", k.String("log.level"))
	assert.Equal(t, "/tmp/catalog.yaml", k.String("catalog.path"))
}

func TestFlagSource_Load(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(flags)
	require.NoError(t, flags.Parse([]string{"--output.format=json", "--output.quiet"}))

	k := koanf.New(".")
	require.NoError(t, (&FlagSource{Flags: flags}).Load(k))

	assert.Equal(t, "json", k.String("output.format"))
	assert.True(t, k.Bool("output.quiet"))
}

func TestFlagSource_DebugOverride(t *testing.T) {
	k := koanf.New(".")
	require.NoError(t, (&FlagSource{Debug: true}).Load(k))
	assert.Equal(t, "debug", k.String("log.level"))
}

func TestManagerLoad_Precedence(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log:\n  level: warn\n"), 0o644))

	t.Setenv("OSID_LOG_FORMAT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(flags)
	require.NoError(t, flags.Parse([]string{"--output.format=json"}))

	m := NewManager()
	require.NoError(t, m.Load(DefaultSources(configPath, flags, false)))

	cfg := m.Get()
	assert.Equal(t, "warn", cfg.Log.Level, "file overrides default")
	assert.Equal(t, "json", cfg.Log.Format, "env overrides default")
	assert.Equal(t, "json", cfg.Output.Format, "flag overrides default")
	assert.Equal(t, "", cfg.Catalog.Path, "untouched keys keep defaults")
}
