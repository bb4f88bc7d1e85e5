package provision

import (
	"fmt"

	"github.com/distroforge/distroforge/pkg/dockerfile"
	"github.com/distroforge/distroforge/pkg/python"
)

// Apt provisions Debian-family images.
type Apt struct{}

const aptNonInteractive = "DEBIAN_FRONTEND=noninteractive"

func (Apt) Update() dockerfile.Dockerfile {
	return dockerfile.Join(
		dockerfile.Runf("apt-get -y update"),
		dockerfile.Runf("%s apt-get -y upgrade", aptNonInteractive),
	)
}

func (a Apt) Install(pkgs ...string) dockerfile.Dockerfile {
	return dockerfile.Join(
		a.Update(),
		dockerfile.Runf("%s apt-get -y install --no-install-recommends %s", aptNonInteractive, joinPkgs(pkgs)),
		dockerfile.Runf("rm -rf /var/lib/apt/lists/*"),
	)
}

func (a Apt) DevPackages(extra ...string) dockerfile.Dockerfile {
	pkgs := []string{"build-essential", "ca-certificates", "curl", "git", "rsync", "sudo", "unzip"}
	return a.Install(append(pkgs, extra...)...)
}

func (a Apt) AddUser(name string, opts UserOpts) dockerfile.Dockerfile {
	cmd := "adduser --disabled-password --gecos ''"
	if opts.UID > 0 {
		cmd += fmt.Sprintf(" --uid %d", opts.UID)
	}
	if opts.GID > 0 {
		cmd += fmt.Sprintf(" --gid %d", opts.GID)
	}
	frag := dockerfile.Runf("%s %s", cmd, name)
	if opts.Sudo {
		frag = dockerfile.Join(frag, sudoers(name))
	}
	return dockerfile.Join(frag, sshDir(name), enterHome(name))
}

func (a Apt) InstallToolchain(rel python.Release, opts ToolchainOpts) dockerfile.Dockerfile {
	deps := []string{
		"build-essential", "curl", "ca-certificates",
		"libssl-dev", "zlib1g-dev", "libbz2-dev", "libreadline-dev",
		"libsqlite3-dev", "libffi-dev", "liblzma-dev", "xz-utils",
	}
	return dockerfile.Join(a.Install(deps...), sourceBuild(rel, opts))
}
