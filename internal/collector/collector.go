// Package collector assembles one information Map from the processor
// identification, the logical processor topology and the host platform.
package collector

import (
	"github.com/go-tangra/go-tangra-sysindicator/internal/cpuid"
	"github.com/go-tangra/go-tangra-sysindicator/internal/host"
	"github.com/go-tangra/go-tangra-sysindicator/internal/topology"
)

// Platform answers the host-specific parts of a query. Methods returning
// an error may still return a usable value.
type Platform interface {
	OSFamily() string
	OSName() (string, error)
	Compiler() string
	CPUType() string
	CPUArch() (string, error)
	ProcessorSpeed() (uint32, error)
	Memory() (total, free uint64, err error)
	Identification() cpuid.Source
	Topology() topology.Source
}

// Collector runs information queries against a Platform.
type Collector struct {
	platform Platform
}

// New returns a Collector for p.
func New(p Platform) *Collector {
	return &Collector{platform: p}
}

// QueryInformation queries the running host.
func QueryInformation() Map {
	return New(host.Native()).Query()
}

// Query gathers a fresh Map. It attempts every probe and keeps whatever
// succeeded; failed probes leave their keys absent.
func (c *Collector) Query() Map {
	m := make(Map, len(Keys))

	c.collectSystem(m)
	c.collectCPU(m)
	c.collectTopology(m)
	c.collectMemory(m)

	return m
}
