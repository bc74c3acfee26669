package collector

import "github.com/rs/zerolog/log"

// collectMemory fills the physical memory keys, in MB.
func (c *Collector) collectMemory(m Map) {
	total, free, err := c.platform.Memory()
	if err != nil {
		log.Debug().Err(err).Str("probe", "memory").Msg("memory query degraded")
		return
	}
	m.setUint(TotalMemory, total)
	m.setUint(FreeMemory, free)
}
