package distro

import "fmt"

// Arch is a processor architecture the matrix fans out over. The string
// value is the tag fragment.
type Arch string

const (
	X8664   Arch = "x86_64"
	Aarch64 Arch = "aarch64"
	Arm32v7 Arch = "arm32v7"
	I386    Arch = "i386"
	Ppc64le Arch = "ppc64le"
	Riscv64 Arch = "riscv64"
)

var arches = []Arch{X8664, Aarch64, Arm32v7, I386, Ppc64le, Riscv64}

// Arches returns every known architecture in declaration order.
func Arches() []Arch {
	out := make([]Arch, len(arches))
	copy(out, arches)
	return out
}

// ParseArch returns the architecture for a tag string.
func ParseArch(s string) (Arch, error) {
	for _, a := range arches {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown architecture %q", s)
}

// Is32Bit reports whether the architecture is a 32-bit personality of a
// 64-bit host.
func (a Arch) Is32Bit() bool {
	return a == Arm32v7 || a == I386
}

// Personality returns the setarch binary used as a shell prefix when the
// image runs a 32-bit userland under emulation, or "" when the default
// shell suffices.
func (a Arch) Personality() string {
	if a.Is32Bit() {
		return "/usr/bin/linux32"
	}
	return ""
}
