// Package host answers the platform-specific questions behind an
// information query: OS identity, toolchain, architecture, clock speed and
// memory. Processor identification and topology are delegated to the cpuid
// and topology packages.
package host

import (
	"fmt"
	"runtime"

	"github.com/go-tangra/go-tangra-sysindicator/internal/cpuid"
	"github.com/go-tangra/go-tangra-sysindicator/internal/topology"
)

// OS family identifiers.
const (
	FamilyWindows = "WIN32"
	FamilyLinux   = "LINUX"
	FamilyMacOS   = "MACOS"
)

const bytesPerMB = 1024 * 1024

// Host queries the running machine.
type Host struct{}

// Native returns the platform of the running process.
func Native() Host { return Host{} }

// OSFamily returns the build-time OS family, or "" on unlisted systems.
func (Host) OSFamily() string { return osFamily }

// OSName returns a human-readable OS name and version.
func (Host) OSName() (string, error) { return osName() }

// Compiler identifies the toolchain this binary was built with.
func (Host) Compiler() string { return Compiler() }

// Compiler returns e.g. "Go gc (go1.24.0)".
func Compiler() string {
	return fmt.Sprintf("Go %s (%s)", runtime.Compiler, runtime.Version())
}

// Identification returns the raw processor identification source.
func (Host) Identification() cpuid.Source { return cpuid.Native() }

// Topology returns the processor relationship source.
func (Host) Topology() topology.Source { return topology.Native() }
