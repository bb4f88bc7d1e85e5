package python

import (
	"github.com/hashicorp/go-version"

	"github.com/distroforge/distroforge/pkg/distro"
)

var (
	v310 = version.Must(version.NewVersion("3.10"))
	v311 = version.Must(version.NewVersion("3.11"))
	v313 = version.Must(version.NewVersion("3.13"))
)

// distroArches lists the architectures each distribution publishes base
// images for. Distributions not listed get the default 64-bit pair.
var distroArches = map[distro.Distro][]distro.Arch{
	distro.DebianBullseye: {distro.X8664, distro.Aarch64, distro.Arm32v7, distro.I386, distro.Ppc64le},
	distro.DebianBookworm: {distro.X8664, distro.Aarch64, distro.Arm32v7, distro.I386, distro.Ppc64le},
	distro.DebianUnstable: {distro.X8664, distro.Aarch64, distro.Arm32v7, distro.I386, distro.Ppc64le, distro.Riscv64},
	distro.Ubuntu2004:     {distro.X8664, distro.Aarch64, distro.Arm32v7, distro.Ppc64le},
	distro.Ubuntu2204:     {distro.X8664, distro.Aarch64, distro.Arm32v7, distro.Ppc64le},
	distro.Ubuntu2404:     {distro.X8664, distro.Aarch64, distro.Arm32v7, distro.Ppc64le, distro.Riscv64},
	distro.Alpine318:      {distro.X8664, distro.Aarch64, distro.Arm32v7, distro.I386},
	distro.Alpine319:      {distro.X8664, distro.Aarch64, distro.Arm32v7, distro.I386},
	distro.Alpine320:      {distro.X8664, distro.Aarch64, distro.Arm32v7, distro.I386, distro.Riscv64},
	distro.CentOS7:        {distro.X8664},
	distro.Fedora39:       {distro.X8664, distro.Aarch64, distro.Ppc64le},
	distro.Fedora40:       {distro.X8664, distro.Aarch64, distro.Ppc64le},
	distro.Cygwin:         {distro.X8664},
}

func archSupported(d distro.Distro, a distro.Arch) bool {
	if list, ok := distroArches[d.ResolveAlias()]; ok {
		for _, sa := range list {
			if sa == a {
				return true
			}
		}
		return false
	}
	return a == distro.X8664 || a == distro.Aarch64
}

// Supported reports whether a complete image can be generated for the
// given cell. Unsupported cells are filtered out before generation; the
// generator never attempts them.
func Supported(d distro.Distro, a distro.Arch, r Release) bool {
	if !d.Known() || r.Version == nil {
		return false
	}
	if !archSupported(d, a) {
		return false
	}
	// riscv64 toolchain support landed in 3.11.
	if a == distro.Riscv64 && r.Version.LessThan(v311) {
		return false
	}
	// Upstream dropped 32-bit wheels and CI coverage with 3.13.
	if a.Is32Bit() && r.Version.GreaterThanOrEqual(v313) {
		return false
	}
	// 3.10+ needs OpenSSL 1.1.1, newer than CentOS 7 ships.
	if d.ResolveAlias() == distro.CentOS7 && r.Version.GreaterThanOrEqual(v310) {
		return false
	}
	// pyenv-win tracks only currently maintained releases.
	if d.Family() == distro.FamilyCygwin && r.Version.LessThan(v311) {
		return false
	}
	return true
}
