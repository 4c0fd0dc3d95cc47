package resolver_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gw-detchar/omicron-env/pkg/errors"
	"github.com/gw-detchar/omicron-env/pkg/resolver"
)

func TestPlatform(t *testing.T) {
	p := resolver.Platform()

	parts := strings.SplitN(p, "-", 2)
	require.Len(t, parts, 2)
	// OS segment is capitalized per the install tree convention
	// (Linux-x86_64, Darwin-aarch64, ...)
	assert.Equal(t, strings.ToUpper(parts[0][:1]), parts[0][:1])
	assert.NotEmpty(t, parts[1])
}

func TestExecutableFromRoot(t *testing.T) {
	root := "/opt/virgosoft/Omicron/v2r1"
	r := env(map[string]string{resolver.EnvRoot: root})

	path, err := r.Executable()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, resolver.Platform(), resolver.ExecutableName), path)
}

func TestExecutableWithoutRoot(t *testing.T) {
	path, err := env(nil).Executable()

	// omicron is normally not installed on test machines; accept a PATH
	// hit if it is.
	if err != nil {
		assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
		return
	}
	assert.NotEmpty(t, path)
}

func TestInstalled(t *testing.T) {
	tree := t.TempDir()
	for _, name := range []string{"v1r2", "v2r1", "v10r0", "Linux-x86_64"} {
		require.NoError(t, os.Mkdir(filepath.Join(tree, name), 0o755))
	}
	// Plain files never count as installed versions.
	require.NoError(t, os.WriteFile(filepath.Join(tree, "v9r9"), []byte{}, 0o644))

	installed, err := env(nil).Installed(tree)
	require.NoError(t, err)

	got := make([]string, 0, len(installed))
	for _, v := range installed {
		got = append(got, v.String())
	}
	// Sorted numerically: v10r0 follows v2r1 despite string ordering.
	assert.Equal(t, []string{"v1r2", "v2r1", "v10r0"}, got)
}

func TestInstalledDefaultsToRootParent(t *testing.T) {
	tree := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tree, "v2r1"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(tree, "v3r0"), 0o755))

	r := env(map[string]string{
		resolver.EnvRoot: filepath.Join(tree, "v2r1"),
	})

	installed, err := r.Installed("")
	require.NoError(t, err)
	require.Len(t, installed, 2)
	assert.Equal(t, "v2r1", installed[0].String())
	assert.Equal(t, "v3r0", installed[1].String())
}

func TestInstalledNoTree(t *testing.T) {
	_, err := env(nil).Installed("")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNoVersionSource))
}

func TestInstalledMissingDir(t *testing.T) {
	_, err := env(nil).Installed(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}
