// Package matrix generates complete Dockerfiles for the cross product of
// distributions, architectures and interpreter releases. Generation is
// pure: each cell is derived from in-memory catalogue data and rendered by
// the caller; independent cells may be computed in any order.
package matrix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/distroforge/distroforge/pkg/distro"
	"github.com/distroforge/distroforge/pkg/dockerfile"
	"github.com/distroforge/distroforge/pkg/provision"
	"github.com/distroforge/distroforge/pkg/python"
)

// ErrUnsupported is returned by Generate for cells the support predicate
// rejects. Bulk generation filters such cells out up front and never sees
// this error.
var ErrUnsupported = errors.New("unsupported distribution/architecture/version combination")

// errWindowsRecipe flags a matrix-definition bug: the Windows recipe path
// was reached with a non-Windows distribution. The cell is abandoned.
var errWindowsRecipe = errors.New("windows recipe invoked for a non-Windows distribution")

// Cell is one point of the product space.
type Cell struct {
	Distro  distro.Distro
	Arch    distro.Arch
	Release python.Release
}

func (c Cell) String() string {
	return Tag(c)
}

// Tag returns the canonical collision-free tag for a cell. Characters
// disallowed in image tags (notably "+") are substituted.
func Tag(c Cell) string {
	tag := fmt.Sprintf("%s-%s-%s", c.Distro.Tag(), c.Arch, c.Release.Version.Original())
	return strings.NewReplacer("+", "-", "~", "-").Replace(tag)
}

// Generator assembles Dockerfiles for matrix cells. The zero value is not
// usable; call New.
type Generator struct {
	// Distros, Arches and Releases bound the product space. Empty slices
	// mean "all known".
	Distros  []distro.Distro
	Arches   []distro.Arch
	Releases []python.Release

	// Crunch merges adjacent RUN layers in the output.
	Crunch bool
	// Maintainer is emitted as a MAINTAINER line when non-empty.
	Maintainer string
	// User is the unprivileged account created in every image.
	User string
	// UID is the numeric id given to User.
	UID int
}

// New returns a Generator over the full catalogue with layer crunching
// enabled.
func New() *Generator {
	return &Generator{
		Crunch: true,
		User:   "build",
		UID:    1000,
	}
}

func (g *Generator) distros() []distro.Distro {
	if len(g.Distros) > 0 {
		return g.Distros
	}
	return distro.All()
}

func (g *Generator) arches() []distro.Arch {
	if len(g.Arches) > 0 {
		return g.Arches
	}
	return distro.Arches()
}

func (g *Generator) releases() []python.Release {
	if len(g.Releases) > 0 {
		return g.Releases
	}
	return python.Releases()
}

// Cells returns the supported cells of the bounded product space, in
// deterministic order. The support predicate filters cells here, before
// any generation is attempted.
func (g *Generator) Cells() []Cell {
	var cells []Cell
	for _, d := range g.distros() {
		for _, a := range g.arches() {
			for _, r := range g.releases() {
				if python.Supported(d, a, r) {
					cells = append(cells, Cell{Distro: d, Arch: a, Release: r})
				}
			}
		}
	}
	return cells
}

// Generate produces the tag and complete Dockerfile for one cell.
func (g *Generator) Generate(c Cell) (string, dockerfile.Dockerfile, error) {
	if !python.Supported(c.Distro, c.Arch, c.Release) {
		return "", nil, fmt.Errorf("%w: %s/%s/%s", ErrUnsupported, c.Distro, c.Arch, c.Release)
	}

	var df dockerfile.Dockerfile
	var err error
	if c.Distro.Family() == distro.FamilyCygwin {
		df, err = g.generateWindows(c)
	} else {
		df, err = g.generateLinux(c)
	}
	if err != nil {
		return "", nil, err
	}
	if g.Crunch {
		df = dockerfile.Crunch(df)
	}
	return Tag(c), df, nil
}

// GenerateAll produces the full matrix as a tag-to-Dockerfile mapping.
func (g *Generator) GenerateAll() (map[string]dockerfile.Dockerfile, error) {
	out := make(map[string]dockerfile.Dockerfile)
	for _, c := range g.Cells() {
		tag, df, err := g.Generate(c)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", c, err)
		}
		if _, dup := out[tag]; dup {
			return nil, fmt.Errorf("duplicate tag %s in matrix", tag)
		}
		out[tag] = df
	}
	return out, nil
}

// quirks computes the per-family flag set for a distribution. This is the
// only place release identities map to strategy behavior.
func quirks(d distro.Distro) provision.Options {
	switch d.ResolveAlias() {
	case distro.CentOS7:
		return provision.Options{RpmRebuildDB: true}
	case distro.CentOS8, distro.OracleLinux9:
		return provision.Options{RpmEnableExtras: true}
	}
	return provision.Options{}
}

func (g *Generator) header(c Cell) dockerfile.Dockerfile {
	frag := dockerfile.Commentf("%s: generated by distroforge, do not edit", Tag(c))
	if g.Maintainer != "" {
		frag = dockerfile.Join(frag, dockerfile.Maintainerf("%s", g.Maintainer))
	}
	return frag
}

// baseFrom opens a stage on the cell's base image. 32-bit cells pull the
// arch-prefixed variant of the official image.
func baseFrom(c Cell) dockerfile.Dockerfile {
	image, tag := c.Distro.BaseImage()
	if c.Arch.Is32Bit() {
		image = string(c.Arch) + "/" + image
	}
	return dockerfile.FromImage(image, tag)
}

// archShell emits the personality shell override for emulated 32-bit
// cells, or nothing.
func archShell(c Cell) dockerfile.Dockerfile {
	p := c.Arch.Personality()
	if p == "" {
		return dockerfile.Empty()
	}
	return dockerfile.ShellOverride(p, "/bin/sh", "-c")
}

func (g *Generator) generateLinux(c Cell) (dockerfile.Dockerfile, error) {
	if c.Distro.Family() == distro.FamilyCygwin {
		return nil, errWindowsRecipe
	}
	mgr, err := provision.ForFamily(c.Distro.Family(), quirks(c.Distro))
	if err != nil {
		return nil, err
	}

	if python.HasBuiltin(c.Distro, c.Release) {
		return g.linuxBuiltin(c, mgr), nil
	}
	return g.linuxSourceBuild(c, mgr), nil
}

// linuxBuiltin relies on the interpreter the distribution already ships;
// no source build stage is emitted.
func (g *Generator) linuxBuiltin(c Cell, mgr provision.Manager) dockerfile.Dockerfile {
	return dockerfile.Join(
		g.header(c),
		baseFrom(c),
		archShell(c),
		mgr.DevPackages(python.DistroPackage(c.Distro.Family())),
		g.userSetup(c, mgr),
		dockerfile.EntrypointExec("python3"),
	)
}

// linuxSourceBuild builds the requested release from source in a
// throwaway first stage and copies only the installed prefix into a fresh
// base-image stage.
func (g *Generator) linuxSourceBuild(c Cell, mgr provision.Manager) dockerfile.Dockerfile {
	opts := provision.ToolchainOpts{
		// PGO under 32-bit emulation is too slow to be worth the layers.
		Optimize: !c.Arch.Is32Bit(),
	}
	prefix := c.Release.Prefix()

	buildStage := dockerfile.Join(
		g.header(c),
		baseFrom(c),
		archShell(c),
		mgr.InstallToolchain(c.Release, opts),
	)

	runStage := dockerfile.Join(
		baseFrom(c),
		archShell(c),
		mgr.DevPackages(),
		dockerfile.CopyFromStage("0", prefix, prefix),
		dockerfile.EnvPair("PATH", prefix+"/bin:$PATH"),
		g.userSetup(c, mgr),
		dockerfile.EntrypointExec(prefix+"/bin/python3"),
	)

	return dockerfile.Join(buildStage, runStage)
}

// userSetup creates the unprivileged account and seeds its pyenv clone.
func (g *Generator) userSetup(c Cell, mgr provision.Manager) dockerfile.Dockerfile {
	return dockerfile.Join(
		mgr.AddUser(g.User, provision.UserOpts{UID: g.UID, Sudo: true}),
		dockerfile.Runf("git clone %s /home/%s/.pyenv", python.RepositoryURL(c.Distro.Family()), g.User),
	)
}

func (g *Generator) generateWindows(c Cell) (dockerfile.Dockerfile, error) {
	if c.Distro.Family() != distro.FamilyCygwin {
		return nil, fmt.Errorf("%w: %s", errWindowsRecipe, c.Distro)
	}
	mgr, err := provision.ForFamily(c.Distro.Family(), provision.Options{})
	if err != nil {
		return nil, err
	}

	bootstrap := dockerfile.Join(
		dockerfile.ShellOverride("cmd", "/S", "/C"),
		dockerfile.Runf(`powershell -Command "New-Item -ItemType Directory -Path C:\cygwin64"`),
		dockerfile.Runf(`powershell -Command "Invoke-WebRequest -Uri https://cygwin.com/setup-x86_64.exe -OutFile C:\cygwin64\setup-x86_64.exe"`),
	)

	return dockerfile.Join(
		g.header(c),
		baseFrom(c),
		bootstrap,
		mgr.DevPackages(),
		mgr.InstallToolchain(c.Release, provision.ToolchainOpts{}),
		mgr.AddUser(g.User, provision.UserOpts{Sudo: true}),
		dockerfile.Runf(`git clone %s C:\Users\%s\.pyenv`, python.RepositoryURL(c.Distro.Family()), g.User),
		dockerfile.EntrypointExec("python"),
	), nil
}
