package provision

import (
	"fmt"

	"github.com/distroforge/distroforge/pkg/dockerfile"
	"github.com/distroforge/distroforge/pkg/python"
)

// Zypper provisions SUSE-family images.
type Zypper struct{}

func (Zypper) Update() dockerfile.Dockerfile {
	return dockerfile.Join(
		dockerfile.Runf("zypper --non-interactive refresh"),
		dockerfile.Runf("zypper --non-interactive update"),
	)
}

func (z Zypper) Install(pkgs ...string) dockerfile.Dockerfile {
	return dockerfile.Join(
		z.Update(),
		dockerfile.Runf("zypper --non-interactive install %s", joinPkgs(pkgs)),
		dockerfile.Runf("zypper clean --all"),
	)
}

func (z Zypper) DevPackages(extra ...string) dockerfile.Dockerfile {
	pkgs := []string{"gcc", "gcc-c++", "make", "sudo", "git", "curl", "rsync", "gzip", "tar"}
	return z.Install(append(pkgs, extra...)...)
}

func (z Zypper) AddUser(name string, opts UserOpts) dockerfile.Dockerfile {
	cmd := fmt.Sprintf("useradd -m -d /home/%s -s /bin/bash", name)
	if opts.UID > 0 {
		cmd += fmt.Sprintf(" -u %d", opts.UID)
	}
	if opts.GID > 0 {
		cmd += fmt.Sprintf(" -g %d", opts.GID)
	}
	frag := dockerfile.Join(
		dockerfile.Runf("%s %s", cmd, name),
		dockerfile.Runf("passwd -l %s", name),
	)
	if opts.Sudo {
		frag = dockerfile.Join(frag, sudoers(name))
	}
	return dockerfile.Join(frag, sshDir(name), enterHome(name))
}

func (z Zypper) InstallToolchain(rel python.Release, opts ToolchainOpts) dockerfile.Dockerfile {
	deps := []string{
		"gcc", "gcc-c++", "make", "curl",
		"libopenssl-devel", "zlib-devel", "libbz2-devel", "readline-devel",
		"sqlite3-devel", "libffi-devel", "xz-devel",
	}
	return dockerfile.Join(z.Install(deps...), sourceBuild(rel, opts))
}
