package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtforge/osid/pkg/osinfo"
)

func TestParse_FullBundle(t *testing.T) {
	facts, err := Parse([]byte(`
type: windows
distro: windows
major_version: 10
minor_version: 0
product_name: Windows 10 Pro
product_variant: Client
build_id: "19045"
`))
	require.NoError(t, err)

	osType, ok := facts.OSType()
	require.True(t, ok)
	assert.Equal(t, "windows", osType)

	name, ok := facts.ProductName()
	require.True(t, ok)
	assert.Equal(t, "Windows 10 Pro", name)

	build, ok := facts.BuildID()
	require.True(t, ok)
	assert.Equal(t, "19045", build)

	id, err := osinfo.Resolve(facts)
	require.NoError(t, err)
	assert.Equal(t, "win10", id)
}

func TestParse_AbsentVersusEmpty(t *testing.T) {
	facts, err := Parse([]byte(`
type: windows
distro: windows
major_version: 5
minor_version: 2
product_name: Windows Server 2003 R2 Standard
product_variant: ""
`))
	require.NoError(t, err)

	variant, ok := facts.ProductVariant()
	assert.True(t, ok, "empty but present variant must report presence")
	assert.Equal(t, "", variant)

	_, ok = facts.BuildID()
	assert.False(t, ok, "absent build id must not report presence")

	id, err := osinfo.Resolve(facts)
	require.NoError(t, err)
	assert.Equal(t, "win2k3r2", id)
}

func TestParse_NumericBuildID(t *testing.T) {
	// Inspection tools tend to write the build number unquoted.
	facts, err := Parse([]byte(`
type: windows
distro: windows
major_version: 10
minor_version: 0
product_name: Windows 11 Pro
product_variant: Client
build_id: 26100
`))
	require.NoError(t, err)

	build, ok := facts.BuildID()
	require.True(t, ok)
	assert.Equal(t, "26100", build)

	id, err := osinfo.Resolve(facts)
	require.NoError(t, err)
	assert.Equal(t, "win11", id)
}

func TestParse_CombinedVersionString(t *testing.T) {
	facts, err := Parse([]byte(`
type: linux
distro: ubuntu
version: "22.04"
`))
	require.NoError(t, err)
	assert.Equal(t, 22, facts.MajorVersion())
	assert.Equal(t, 4, facts.MinorVersion())

	id, err := osinfo.Resolve(facts)
	require.NoError(t, err)
	assert.Equal(t, "ubuntu22.04", id)
}

func TestParse_ExplicitVersionWinsOverCombined(t *testing.T) {
	facts, err := Parse([]byte(`
type: linux
distro: fedora
version: "37"
major_version: 38
`))
	require.NoError(t, err)
	assert.Equal(t, 38, facts.MajorVersion())
	assert.Equal(t, 0, facts.MinorVersion())
}

func TestParse_UnparsableVersionLeftUnknown(t *testing.T) {
	facts, err := Parse([]byte(`
type: linux
distro: gentoo
version: rolling
`))
	require.NoError(t, err)
	assert.Equal(t, 0, facts.MajorVersion())
	assert.Equal(t, 0, facts.MinorVersion())
}

func TestParse_MissingFactsStayAbsent(t *testing.T) {
	facts, err := Parse([]byte(`
major_version: 3
`))
	require.NoError(t, err)

	_, ok := facts.OSType()
	assert.False(t, ok)

	_, err = osinfo.Resolve(facts)
	assert.ErrorIs(t, err, osinfo.ErrMissingFacts)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("type: [unterminated"))
	require.ErrorIs(t, err, osinfo.ErrFactsInvalid)
	assert.Equal(t, 2, osinfo.ExitCode(err), "bad bundles map to the invalid input exit code")

	_, err = Parse([]byte("type: linux\nmajor_version: -4\n"))
	require.ErrorIs(t, err, osinfo.ErrFactsInvalid, "negative versions fail validation")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "facts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: linux\ndistro: fedora\nmajor_version: 38\n"), 0o644))

	facts, err := LoadFile(path)
	require.NoError(t, err)

	id, err := osinfo.Resolve(facts)
	require.NoError(t, err)
	assert.Equal(t, "fedora38", id)

	_, err = LoadFile(filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)
}
