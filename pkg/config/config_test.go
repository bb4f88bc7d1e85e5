package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/distroforge/distroforge/pkg/distro"
)

func TestFromYAML(t *testing.T) {
	cfg, err := FromYAML([]byte(`
distros:
  - debian-12
  - alpine-3.20
arches:
  - x86_64
versions:
  - "3.12.4"
crunch: false
maintainer: infra@example.com
user: forge
output:
  mode: git
  path: ./out
`))
	require.NoError(t, err)

	gen, err := cfg.Generator()
	require.NoError(t, err)
	require.Equal(t, []distro.Distro{distro.DebianBookworm, distro.Alpine320}, gen.Distros)
	require.Equal(t, []distro.Arch{distro.X8664}, gen.Arches)
	require.Len(t, gen.Releases, 1)
	require.False(t, gen.Crunch)
	require.Equal(t, "infra@example.com", gen.Maintainer)
	require.Equal(t, "forge", gen.User)
}

func TestDefaults(t *testing.T) {
	cfg, err := FromYAML([]byte("{}"))
	require.NoError(t, err)
	gen, err := cfg.Generator()
	require.NoError(t, err)
	require.Empty(t, gen.Distros)
	require.True(t, gen.Crunch)
	require.Equal(t, "build", gen.User)
}

func TestUnknownFieldRejected(t *testing.T) {
	_, err := FromYAML([]byte("distroes: [debian-12]"))
	require.Error(t, err)
}

func TestBadSelections(t *testing.T) {
	cfg, err := FromYAML([]byte("distros: [slackware-1.0]"))
	require.NoError(t, err)
	_, err = cfg.Generator()
	require.Error(t, err)

	cfg, err = FromYAML([]byte("arches: [sparc64]"))
	require.NoError(t, err)
	_, err = cfg.Generator()
	require.Error(t, err)

	cfg, err = FromYAML([]byte(`versions: ["2.7.18"]`))
	require.NoError(t, err)
	_, err = cfg.Generator()
	require.Error(t, err)
}

func TestBadOutputMode(t *testing.T) {
	_, err := FromYAML([]byte("output: {mode: ftp}"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)
	require.NoError(t, os.WriteFile(path, []byte("distros: [debian-12]"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"debian-12"}, cfg.Distros)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
