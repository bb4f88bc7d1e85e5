package provision

import (
	"fmt"

	"github.com/distroforge/distroforge/pkg/dockerfile"
	"github.com/distroforge/distroforge/pkg/python"
)

// Pacman provisions Arch images.
type Pacman struct{}

func (Pacman) Update() dockerfile.Dockerfile {
	return dockerfile.Runf("pacman -Syu --noconfirm")
}

func (p Pacman) Install(pkgs ...string) dockerfile.Dockerfile {
	return dockerfile.Join(
		p.Update(),
		dockerfile.Runf("pacman -S --noconfirm --needed %s", joinPkgs(pkgs)),
		dockerfile.Runf("rm -rf /var/cache/pacman/pkg/*"),
	)
}

func (p Pacman) DevPackages(extra ...string) dockerfile.Dockerfile {
	pkgs := []string{"base-devel", "sudo", "git", "curl", "rsync", "unzip"}
	return p.Install(append(pkgs, extra...)...)
}

func (p Pacman) AddUser(name string, opts UserOpts) dockerfile.Dockerfile {
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

func (p Pacman) InstallToolchain(rel python.Release, opts ToolchainOpts) dockerfile.Dockerfile {
	deps := []string{
		"base-devel", "curl",
		"openssl", "zlib", "bzip2", "readline", "sqlite", "libffi", "xz",
	}
	return dockerfile.Join(p.Install(deps...), sourceBuild(rel, opts))
}
