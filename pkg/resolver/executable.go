package resolver

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/gw-detchar/omicron-env/pkg/errors"
	"github.com/gw-detchar/omicron-env/pkg/version"
)

// ExecutableName is the binary name Omicron uses inside its install tree.
const ExecutableName = "omicron.exe"

// archNames maps Go architecture names to the names Omicron's install
// tree uses for its platform directories.
var archNames = map[string]string{
	"amd64": "x86_64",
	"386":   "i686",
	"arm64": "aarch64",
}

// Platform returns the platform directory segment of the Omicron install
// tree for the current system, e.g. "Linux-x86_64".
func Platform() string {
	goos := runtime.GOOS
	if goos != "" {
		goos = strings.ToUpper(goos[:1]) + goos[1:]
	}
	arch := runtime.GOARCH
	if mapped, ok := archNames[arch]; ok {
		arch = mapped
	}
	return goos + "-" + arch
}

// Executable returns the path to the Omicron executable.
// When OMICRONROOT is set the conventional tree layout
// <root>/<platform>/omicron.exe is used without checking for existence,
// matching how the resolver treats the rest of the environment as
// authoritative. Otherwise PATH is searched for omicron.exe, then omicron.
func (r *Resolver) Executable() (string, error) {
	if root, ok := r.lookup(EnvRoot); ok && root != "" {
		return filepath.Join(root, Platform(), ExecutableName), nil
	}

	for _, name := range []string{ExecutableName, "omicron"} {
		if p, err := exec.LookPath(name); err == nil {
			return p, nil
		}
	}

	return "", errors.NewWithContext(
		errors.ErrCodeNotFound,
		"omicron executable not found",
		map[string]any{"checked": []string{EnvRoot, "PATH"}},
	)
}

// Installed lists the Omicron versions installed under dir, the directory
// holding one subdirectory per release (the parent of OMICRONROOT).
// An empty dir falls back to the parent of OMICRONROOT. Non-version
// entries are skipped. The result is sorted ascending.
func (r *Resolver) Installed(dir string) ([]version.Version, error) {
	if dir == "" {
		root, ok := r.lookup(EnvRoot)
		if !ok || root == "" {
			return nil, errors.New(
				errors.ErrCodeNoVersionSource,
				"no install tree: directory not given and OMICRONROOT unset",
			)
		}
		dir = filepath.Dir(root)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapWithContext(
			errors.ErrCodeNotFound,
			"failed to read install tree",
			err,
			map[string]any{"dir": dir},
		)
	}

	var installed []version.Version
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		v, err := version.Parse(entry.Name())
		if err != nil {
			continue
		}
		installed = append(installed, v)
	}

	sort.Slice(installed, func(i, j int) bool {
		return installed[i].Compare(installed[j]) < 0
	})
	return installed, nil
}
