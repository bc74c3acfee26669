package collector

import "github.com/rs/zerolog/log"

// collectSystem fills the OS and toolchain keys.
func (c *Collector) collectSystem(m Map) {
	p := c.platform

	m.setString(OSFamily, p.OSFamily())

	name, err := p.OSName()
	if err != nil {
		log.Debug().Err(err).Str("probe", "os_name").Msg("os name query degraded")
	}
	m.setString(OSName, name)

	m.setString(Compiler, p.Compiler())
}
