package provision

import (
	"fmt"
	"strings"

	"github.com/distroforge/distroforge/pkg/dockerfile"
	"github.com/distroforge/distroforge/pkg/python"
)

// Cygwin provisions Windows images via the Cygwin setup installer plus
// native net/powershell commands. Only the matrix generator's Windows path
// may reach this strategy.
type Cygwin struct{}

const cygwinSetup = `C:\cygwin64\setup-x86_64.exe --quiet-mode --no-shortcuts --no-desktop`

func (Cygwin) Update() dockerfile.Dockerfile {
	return dockerfile.Runf("%s --upgrade-also", cygwinSetup)
}

func (c Cygwin) Install(pkgs ...string) dockerfile.Dockerfile {
	return dockerfile.Join(
		c.Update(),
		dockerfile.Runf("%s --packages %s", cygwinSetup, strings.Join(pkgs, ",")),
	)
}

func (c Cygwin) DevPackages(extra ...string) dockerfile.Dockerfile {
	pkgs := []string{"git", "curl", "make", "patch", "rsync", "unzip"}
	return c.Install(append(pkgs, extra...)...)
}

func (c Cygwin) AddUser(name string, opts UserOpts) dockerfile.Dockerfile {
	// UID/GID numbering is not applicable on Windows accounts; Sudo maps
	// to local administrator membership.
	frag := dockerfile.Runf("net user %s /add /passwordreq:no", name)
	if opts.Sudo {
		frag = dockerfile.Join(frag, dockerfile.Runf("net localgroup administrators %s /add", name))
	}
	return dockerfile.Join(frag,
		dockerfile.Runf(`powershell -Command "New-Item -ItemType Directory -Path C:\Users\%s\.ssh"`, name),
		dockerfile.UserName(name),
		dockerfile.WorkdirPath(`C:\Users\%s`, name),
	)
}

func (c Cygwin) InstallToolchain(rel python.Release, opts ToolchainOpts) dockerfile.Dockerfile {
	v := rel.Version.Original()
	url := fmt.Sprintf("https://www.python.org/ftp/python/%s/python-%s-amd64.exe", v, v)
	return dockerfile.Join(
		dockerfile.Runf(`powershell -Command "Invoke-WebRequest -Uri %s -OutFile C:\python-setup.exe"`, url),
		dockerfile.Runf(`C:\python-setup.exe /quiet InstallAllUsers=1 PrependPath=1`),
		dockerfile.Runf(`del C:\python-setup.exe`),
	)
}
