package provision

import (
	"fmt"

	"github.com/distroforge/distroforge/pkg/dockerfile"
	"github.com/distroforge/distroforge/pkg/python"
)

// Rpm provisions RedHat-family images (CentOS, Fedora, Oracle Linux). The
// quirk flags are computed by the matrix generator; Rpm itself never
// special-cases releases.
type Rpm struct {
	RebuildDB    bool
	EnableExtras bool
}

func (r Rpm) Update() dockerfile.Dockerfile {
	frag := dockerfile.Empty()
	if r.RebuildDB {
		// rpmdb written by the base-image build can be corrupt on
		// overlayfs; rebuild before the first yum transaction.
		frag = dockerfile.Runf("rpm --rebuilddb")
	}
	frag = dockerfile.Join(frag, dockerfile.Runf("yum -y update"))
	if r.EnableExtras {
		frag = dockerfile.Join(frag,
			dockerfile.Runf("yum -y install dnf-plugins-core"),
			dockerfile.Runf("yum config-manager --set-enabled crb"),
		)
	}
	return frag
}

func (r Rpm) Install(pkgs ...string) dockerfile.Dockerfile {
	return dockerfile.Join(
		r.Update(),
		dockerfile.Runf("yum -y install %s", joinPkgs(pkgs)),
		dockerfile.Runf("yum clean all"),
	)
}

func (r Rpm) DevPackages(extra ...string) dockerfile.Dockerfile {
	pkgs := []string{
		"sudo", "passwd", "bzip2", "patch", "gcc-c++", "git", "tar",
		"curl", "xz", "which", "m4", "diffutils", "findutils",
	}
	return r.Install(append(pkgs, extra...)...)
}

func (r Rpm) AddUser(name string, opts UserOpts) dockerfile.Dockerfile {
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

func (r Rpm) InstallToolchain(rel python.Release, opts ToolchainOpts) dockerfile.Dockerfile {
	deps := []string{
		"gcc", "gcc-c++", "make", "curl",
		"openssl-devel", "zlib-devel", "bzip2-devel", "readline-devel",
		"sqlite-devel", "libffi-devel", "xz-devel",
	}
	return dockerfile.Join(r.Install(deps...), sourceBuild(rel, opts))
}
