// Package distro enumerates the operating-system distributions and
// processor architectures the image matrix is generated for, and derives
// the per-distribution facts (package-manager family, base image, tag)
// the generator needs.
package distro

import (
	"fmt"
	"sort"
)

// Family identifies a package-manager family. Each family has exactly one
// provisioning strategy; dispatch happens once, in the matrix generator.
type Family int

const (
	FamilyApt Family = iota
	FamilyRpm
	FamilyApk
	FamilyZypper
	FamilyPacman
	FamilyCygwin
)

var familyNames = map[Family]string{
	FamilyApt:    "apt",
	FamilyRpm:    "rpm",
	FamilyApk:    "apk",
	FamilyZypper: "zypper",
	FamilyPacman: "pacman",
	FamilyCygwin: "cygwin",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// Distro identifies an OS family plus a specific release. The string value
// doubles as the canonical tag fragment, so it only contains characters
// valid in an image tag.
type Distro string

const (
	DebianBullseye Distro = "debian-11"
	DebianBookworm Distro = "debian-12"
	DebianStable   Distro = "debian-stable"
	DebianTesting  Distro = "debian-testing"
	DebianUnstable Distro = "debian-unstable"

	Ubuntu2004 Distro = "ubuntu-20.04"
	Ubuntu2204 Distro = "ubuntu-22.04"
	Ubuntu2404 Distro = "ubuntu-24.04"

	Alpine318 Distro = "alpine-3.18"
	Alpine319 Distro = "alpine-3.19"
	Alpine320 Distro = "alpine-3.20"

	CentOS7 Distro = "centos-7"
	CentOS8 Distro = "centos-8"

	Fedora39 Distro = "fedora-39"
	Fedora40 Distro = "fedora-40"

	OracleLinux9 Distro = "oraclelinux-9"

	OpenSUSE156 Distro = "opensuse-15.6"

	ArchLinux Distro = "archlinux"

	Cygwin Distro = "cygwin"
)

type facts struct {
	family Family
	image  string
	tag    string
}

var distros = map[Distro]facts{
	DebianBullseye: {FamilyApt, "debian", "bullseye"},
	DebianBookworm: {FamilyApt, "debian", "bookworm"},
	DebianStable:   {FamilyApt, "debian", "stable"},
	DebianTesting:  {FamilyApt, "debian", "testing"},
	DebianUnstable: {FamilyApt, "debian", "unstable"},
	Ubuntu2004:     {FamilyApt, "ubuntu", "20.04"},
	Ubuntu2204:     {FamilyApt, "ubuntu", "22.04"},
	Ubuntu2404:     {FamilyApt, "ubuntu", "24.04"},
	Alpine318:      {FamilyApk, "alpine", "3.18"},
	Alpine319:      {FamilyApk, "alpine", "3.19"},
	Alpine320:      {FamilyApk, "alpine", "3.20"},
	CentOS7:        {FamilyRpm, "centos", "7"},
	CentOS8:        {FamilyRpm, "centos", "8"},
	Fedora39:       {FamilyRpm, "fedora", "39"},
	Fedora40:       {FamilyRpm, "fedora", "40"},
	OracleLinux9:   {FamilyRpm, "oraclelinux", "9"},
	OpenSUSE156:    {FamilyZypper, "opensuse/leap", "15.6"},
	ArchLinux:      {FamilyPacman, "archlinux", "latest"},
	Cygwin:         {FamilyCygwin, "mcr.microsoft.com/windows/servercore", "ltsc2022"},
}

// All returns every known distribution, sorted by tag for deterministic
// iteration.
func All() []Distro {
	out := make([]Distro, 0, len(distros))
	for d := range distros {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Parse returns the distribution for a tag string, or an error for an
// unknown one.
func Parse(s string) (Distro, error) {
	d := Distro(s)
	if _, ok := distros[d]; !ok {
		return "", fmt.Errorf("unknown distribution %q", s)
	}
	return d, nil
}

// Known reports whether d is a recognized distribution.
func (d Distro) Known() bool {
	_, ok := distros[d]
	return ok
}

// Family returns the distribution's package-manager family.
func (d Distro) Family() Family {
	return distros[d].family
}

// BaseImage returns the registry image and tag the distribution's stage
// builds from.
func (d Distro) BaseImage() (image, tag string) {
	f := distros[d]
	return f.image, f.tag
}

// Tag returns the canonical tag fragment identifying the distribution.
func (d Distro) Tag() string {
	return string(d)
}

// ResolveAlias maps moving aliases (Debian stable/testing/unstable) to the
// concrete release they currently point at. Non-alias distributions map to
// themselves.
func (d Distro) ResolveAlias() Distro {
	switch d {
	case DebianStable:
		return DebianBookworm
	default:
		return d
	}
}
