// Package python is the toolchain catalogue consumed by the matrix
// generator: the set of interpreter releases images are built for, the
// per-distribution builtin versions, the support predicate filtering the
// distro/arch/version product space, and the pyenv repository URLs used to
// seed version management inside the generated images.
package python

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-version"

	"github.com/distroforge/distroforge/pkg/distro"
)

// Release is one interpreter version images can be built for.
type Release struct {
	Version *version.Version
}

// MustRelease parses a version string or panics. Intended for the static
// catalogue and tests.
func MustRelease(s string) Release {
	return Release{Version: version.Must(version.NewVersion(s))}
}

func (r Release) String() string {
	return r.Version.Original()
}

// SourceURL returns the upstream source tarball for the release.
func (r Release) SourceURL() string {
	v := r.Version.Original()
	return fmt.Sprintf("https://www.python.org/ftp/python/%s/Python-%s.tar.xz", v, v)
}

// Prefix returns the installation prefix the release is built into when
// compiled from source.
func (r Release) Prefix() string {
	return "/usr/local/python-" + r.Version.Original()
}

var releaseVersions = []string{
	"3.9.19",
	"3.10.14",
	"3.11.9",
	"3.12.4",
	"3.13.0",
}

// Releases returns the supported release set, oldest first.
func Releases() []Release {
	out := make([]Release, len(releaseVersions))
	for i, v := range releaseVersions {
		out[i] = MustRelease(v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Version.LessThan(out[j].Version)
	})
	return out
}

// ParseRelease returns the catalogue release matching s, or an error when
// s is not in the catalogue.
func ParseRelease(s string) (Release, error) {
	want, err := version.NewVersion(s)
	if err != nil {
		return Release{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	for _, r := range Releases() {
		if r.Version.Equal(want) {
			return r, nil
		}
	}
	return Release{}, fmt.Errorf("version %q is not in the release set", s)
}

// builtin maps distributions to the interpreter version their package
// repositories ship. Absent entries ship none (or one too old to matter).
var builtin = map[distro.Distro]string{
	distro.DebianBullseye: "3.9.2",
	distro.DebianBookworm: "3.11.9",
	distro.Ubuntu2004:     "3.8.10",
	distro.Ubuntu2204:     "3.10.12",
	distro.Ubuntu2404:     "3.12.4",
	distro.Alpine318:      "3.11.9",
	distro.Alpine319:      "3.11.9",
	distro.Alpine320:      "3.12.4",
	distro.Fedora39:       "3.12.4",
	distro.Fedora40:       "3.12.4",
	distro.OracleLinux9:   "3.9.18",
	distro.OpenSUSE156:    "3.11.9",
	distro.ArchLinux:      "3.12.4",
}

// Builtin returns the interpreter version d ships natively, if any.
func Builtin(d distro.Distro) (*version.Version, bool) {
	s, ok := builtin[d.ResolveAlias()]
	if !ok {
		return nil, false
	}
	return version.Must(version.NewVersion(s)), true
}

// HasBuiltin reports whether d natively ships exactly the requested
// release, letting the generator skip the source build.
func HasBuiltin(d distro.Distro, r Release) bool {
	v, ok := Builtin(d)
	return ok && v.Equal(r.Version)
}

// DistroPackage returns the package name the family's repositories use
// for the interpreter, for cells that rely on the builtin toolchain.
func DistroPackage(f distro.Family) string {
	if f == distro.FamilyPacman {
		return "python"
	}
	return "python3"
}

// RepositoryURL returns the pyenv repository cloned into generated images
// to manage interpreter versions, keyed by OS family since Windows uses
// the pyenv-win fork.
func RepositoryURL(f distro.Family) string {
	if f == distro.FamilyCygwin {
		return "https://github.com/pyenv-win/pyenv-win.git"
	}
	return "https://github.com/pyenv/pyenv.git"
}
