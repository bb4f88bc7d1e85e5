package provision

import (
	"fmt"

	"github.com/distroforge/distroforge/pkg/dockerfile"
	"github.com/distroforge/distroforge/pkg/python"
)

// Apk provisions Alpine images.
type Apk struct{}

func (Apk) Update() dockerfile.Dockerfile {
	return dockerfile.Join(
		dockerfile.Runf("apk update"),
		dockerfile.Runf("apk upgrade"),
	)
}

func (a Apk) Install(pkgs ...string) dockerfile.Dockerfile {
	return dockerfile.Join(
		a.Update(),
		dockerfile.Runf("apk add %s", joinPkgs(pkgs)),
		dockerfile.Runf("rm -rf /var/cache/apk/*"),
	)
}

func (a Apk) DevPackages(extra ...string) dockerfile.Dockerfile {
	pkgs := []string{"build-base", "ca-certificates", "curl", "git", "rsync", "sudo", "bash"}
	return a.Install(append(pkgs, extra...)...)
}

func (a Apk) AddUser(name string, opts UserOpts) dockerfile.Dockerfile {
	cmd := "adduser -D -s /bin/sh"
	if opts.UID > 0 {
		cmd += fmt.Sprintf(" -u %d", opts.UID)
	}
	if opts.GID > 0 {
		cmd += fmt.Sprintf(" -g %d", opts.GID)
	}
	frag := dockerfile.Runf("%s %s", cmd, name)
	if opts.Sudo {
		frag = dockerfile.Join(frag, sudoers(name))
	}
	return dockerfile.Join(frag, sshDir(name), enterHome(name))
}

func (a Apk) InstallToolchain(rel python.Release, opts ToolchainOpts) dockerfile.Dockerfile {
	deps := []string{
		"build-base", "linux-headers", "curl",
		"openssl-dev", "zlib-dev", "bzip2-dev", "readline-dev",
		"sqlite-dev", "libffi-dev", "xz-dev",
	}
	return dockerfile.Join(a.Install(deps...), sourceBuild(rel, opts))
}
