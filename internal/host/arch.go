package host

import (
	"fmt"
	"strconv"
	"strings"

	pshost "github.com/shirou/gopsutil/v3/host"
)

// Arch is a display name for a machine architecture plus its native word
// size in bits. Bits is 0 when unknown.
type Arch struct {
	Name string
	Bits int
}

var archNames = map[string]Arch{
	"x86_64":  {"AMD64 (x86-64)", 64},
	"amd64":   {"AMD64 (x86-64)", 64},
	"x64":     {"AMD64 (x86-64)", 64},
	"i386":    {"IA-32 (x86)", 32},
	"i486":    {"IA-32 (x86)", 32},
	"i586":    {"IA-32 (x86)", 32},
	"i686":    {"IA-32 (x86)", 32},
	"x86":     {"IA-32 (x86)", 32},
	"386":     {"IA-32 (x86)", 32},
	"aarch64": {"ARM64", 64},
	"arm64":   {"ARM64", 64},
	"ia64":    {"IA-64 (Itanium-based)", 64},
}

// DescribeArch maps a kernel machine string such as "x86_64" or "armv7l"
// to its display form. Unknown machines keep their name with Bits 0.
func DescribeArch(machine string) Arch {
	m := strings.ToLower(strings.TrimSpace(machine))
	if a, ok := archNames[m]; ok {
		return a
	}
	if strings.HasPrefix(m, "arm") {
		return Arch{"ARM", 32}
	}
	return Arch{Name: strings.TrimSpace(machine)}
}

// CPUArch returns the display name of the native machine architecture.
func (Host) CPUArch() (string, error) {
	a, err := nativeArch()
	return a.Name, err
}

// CPUType returns "64-Bit" or "32-Bit" for the native OS word size.
func (Host) CPUType() string {
	bits := nativeBits()
	if bits == 0 {
		if a, err := nativeArch(); err == nil {
			bits = a.Bits
		}
	}
	if bits == 0 {
		bits = strconv.IntSize
	}
	return BitnessLabel(bits)
}

// BitnessLabel formats a word size as "<n>-Bit".
func BitnessLabel(bits int) string {
	return strconv.Itoa(bits) + "-Bit"
}

func nativeArch() (Arch, error) {
	machine, err := pshost.KernelArch()
	if err != nil {
		return Arch{}, fmt.Errorf("kernel arch: %w", err)
	}
	return DescribeArch(machine), nil
}
