package collector

import (
	"github.com/rs/zerolog/log"

	"github.com/go-tangra/go-tangra-sysindicator/internal/cpuid"
	"github.com/go-tangra/go-tangra-sysindicator/internal/topology"
)

// collectCPU fills the processor identity, architecture and speed keys.
func (c *Collector) collectCPU(m Map) {
	p := c.platform

	id := cpuid.Identify(p.Identification())
	if id.Known {
		log.Debug().
			Str("vendor", id.Vendor).
			Uint("family", id.DisplayFamily()).
			Uint("model", id.DisplayModel()).
			Uint8("stepping", id.Stepping).
			Msg("processor identified")
	} else {
		log.Debug().Str("probe", "cpuid").Msg("processor identification unavailable")
	}

	m.setString(CPUName, id.Name)
	m.setString(CPUVendor, id.VendorName())
	m.setString(CPUType, p.CPUType())

	arch, err := p.CPUArch()
	if err != nil {
		log.Debug().Err(err).Str("probe", "cpu_arch").Msg("architecture query degraded")
	}
	m.setString(CPUArch, arch)

	if id.Known {
		m.setString(CPUExt, id.ExtensionList())
	}

	speed, err := p.ProcessorSpeed()
	if err != nil {
		log.Debug().Err(err).Str("probe", "processor_speed").Msg("speed query degraded")
	}
	m.setUint(ProcessorSpeed, uint64(speed))
}

// collectTopology fills the core and cache keys. A level with no caches
// contributes no keys.
func (c *Collector) collectTopology(m Map) {
	s, err := topology.Probe(c.platform.Topology())
	if err != nil {
		log.Debug().Err(err).Str("probe", "topology").Msg("topology unavailable")
	}

	m.setUint(Processors, uint64(s.PhysicalCores))
	m.setUint(LogicalProcessors, uint64(s.LogicalCores))

	for i, keys := range cacheKeys {
		lvl := s.Caches[i]
		if lvl.Count == 0 {
			continue
		}
		m.setUint(keys[0], uint64(lvl.Count))
		m.setUint(keys[1], uint64(lvl.Size))
		m.setUint(keys[2], uint64(lvl.LineSize))
	}
}
