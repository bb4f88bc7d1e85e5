// Package provision implements the per-family provisioning strategies.
// Every package-manager family exposes the same operation set over its
// native command syntax; the matrix generator depends only on the Manager
// interface and dispatches once via ForFamily.
package provision

import (
	"fmt"
	"strings"

	"github.com/distroforge/distroforge/pkg/distro"
	"github.com/distroforge/distroforge/pkg/dockerfile"
	"github.com/distroforge/distroforge/pkg/python"
)

// Manager is the shared provisioning operation set. Each method returns a
// Dockerfile fragment; fragments are pure data and compose with Join.
type Manager interface {
	// Update refreshes the package indices and applies pending upgrades.
	Update() dockerfile.Dockerfile

	// Install refreshes indices, installs the given packages with the
	// family's non-interactive flags, and cleans package caches.
	Install(pkgs ...string) dockerfile.Dockerfile

	// DevPackages installs the family's baseline development package set
	// plus any extras.
	DevPackages(extra ...string) dockerfile.Dockerfile

	// AddUser creates an unprivileged account per opts, switches USER to
	// it and sets its home as the working directory.
	AddUser(name string, opts UserOpts) dockerfile.Dockerfile

	// InstallToolchain emits the fragment that builds and installs the
	// requested interpreter release from source.
	InstallToolchain(rel python.Release, opts ToolchainOpts) dockerfile.Dockerfile
}

// UserOpts controls AddUser. Zero UID/GID leave numbering to the distro.
type UserOpts struct {
	UID  int
	GID  int
	// Sudo grants passwordless elevation via a sudoers drop-in installed
	// with mode 440.
	Sudo bool
}

// ToolchainOpts controls InstallToolchain.
type ToolchainOpts struct {
	// Optimize enables PGO/LTO configure flags. The matrix generator
	// turns it off for emulated 32-bit cells, where the profiling run is
	// prohibitively slow.
	Optimize bool
}

// Options carries the per-family quirk flags computed by the matrix
// generator from the distribution identifier. Strategies never inspect
// releases themselves; the coupling stays in one place.
type Options struct {
	// RpmRebuildDB works around rpmdb corruption on overlayfs observed on
	// legacy RedHat-family releases.
	RpmRebuildDB bool
	// RpmEnableExtras enables the extras repository (PowerTools/CRB)
	// required for development headers on RedHat-family releases 8+.
	RpmEnableExtras bool
}

// ForFamily returns the strategy for a package-manager family. This is
// the single dispatch point; callers must not branch on families
// elsewhere.
func ForFamily(f distro.Family, opts Options) (Manager, error) {
	switch f {
	case distro.FamilyApt:
		return Apt{}, nil
	case distro.FamilyRpm:
		return Rpm{RebuildDB: opts.RpmRebuildDB, EnableExtras: opts.RpmEnableExtras}, nil
	case distro.FamilyApk:
		return Apk{}, nil
	case distro.FamilyZypper:
		return Zypper{}, nil
	case distro.FamilyPacman:
		return Pacman{}, nil
	case distro.FamilyCygwin:
		return Cygwin{}, nil
	}
	return nil, fmt.Errorf("no provisioning strategy for family %s", f)
}

// sourceBuild is the family-independent download/configure/make/install
// sequence shared by the Linux strategies. Build dependencies are the
// caller's responsibility.
func sourceBuild(rel python.Release, opts ToolchainOpts) dockerfile.Dockerfile {
	v := rel.Version.Original()
	configure := fmt.Sprintf("./configure --prefix=%s --with-ensurepip=install", rel.Prefix())
	if opts.Optimize {
		configure += " --enable-optimizations --with-lto"
	}
	return dockerfile.RunShells(
		fmt.Sprintf("curl -fsSL %s -o /tmp/python.tar.xz", rel.SourceURL()),
		"tar -C /tmp -xf /tmp/python.tar.xz",
		fmt.Sprintf("cd /tmp/Python-%s && %s", v, configure),
		fmt.Sprintf("make -C /tmp/Python-%s -j\"$(nproc)\"", v),
		fmt.Sprintf("make -C /tmp/Python-%s install", v),
		fmt.Sprintf("ln -s %s/bin/python3 %s/bin/python", rel.Prefix(), rel.Prefix()),
		"rm -rf /tmp/python.tar.xz /tmp/Python-*",
	)
}

// sudoers writes the passwordless elevation drop-in: owned by root, mode
// 440, one file per account.
func sudoers(name string) dockerfile.Dockerfile {
	return dockerfile.Join(
		dockerfile.Runf("echo '%s ALL=(ALL:ALL) NOPASSWD:ALL' > /etc/sudoers.d/%s", name, name),
		dockerfile.Runf("chown root:root /etc/sudoers.d/%s", name),
		dockerfile.Runf("chmod 440 /etc/sudoers.d/%s", name),
	)
}

// sshDir creates the account's SSH config directory with mode 700.
func sshDir(name string) dockerfile.Dockerfile {
	return dockerfile.Join(
		dockerfile.Runf("mkdir /home/%s/.ssh", name),
		dockerfile.Runf("chown %s:%s /home/%s/.ssh", name, name, name),
		dockerfile.Runf("chmod 700 /home/%s/.ssh", name),
	)
}

// enterHome switches to the account and its home directory.
func enterHome(name string) dockerfile.Dockerfile {
	return dockerfile.Join(
		dockerfile.UserName(name),
		dockerfile.WorkdirPath("/home/%s", name),
	)
}

func joinPkgs(pkgs []string) string {
	return strings.Join(pkgs, " ")
}
