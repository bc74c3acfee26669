//go:build darwin

package topology

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/unix"
)

type darwinSource struct{}

// Native returns the topology source of the running host.
func Native() Source { return darwinSource{} }

// Relations synthesizes relation records from the hw.* sysctls. Logical
// processors are spread over the physical cores in order; cache instances
// per level are derived from hw.cacheconfig, which holds the number of
// logical processors sharing each level.
func (darwinSource) Relations() ([]Relation, error) {
	physical, err := unix.SysctlUint32("hw.physicalcpu")
	if err != nil {
		return nil, fmt.Errorf("sysctl hw.physicalcpu: %w", err)
	}
	logical, err := unix.SysctlUint32("hw.logicalcpu")
	if err != nil {
		return nil, fmt.Errorf("sysctl hw.logicalcpu: %w", err)
	}

	rels := coreRelations(int(physical), int(logical))

	config, err := sysctlUint64s("hw.cacheconfig")
	if err != nil {
		return rels, nil
	}
	sizes, err := sysctlUint64s("hw.cachesize")
	if err != nil {
		return rels, nil
	}
	line, _ := unix.SysctlUint64("hw.cachelinesize")

	for level := 1; level <= 3 && level < len(config) && level < len(sizes); level++ {
		sharers, size := config[level], sizes[level]
		if sharers == 0 || size == 0 {
			continue
		}
		for n, count := uint64(0), uint64(logical)/sharers; n < count; n++ {
			rels = append(rels, Relation{
				Kind: RelationCache,
				Cache: CacheDescriptor{
					Level:    uint8(level),
					LineSize: uint16(line),
					Size:     uint32(size),
				},
			})
		}
	}
	return rels, nil
}

func sysctlUint64s(name string) ([]uint64, error) {
	raw, err := unix.SysctlRaw(name)
	if err != nil {
		return nil, fmt.Errorf("sysctl %s: %w", name, err)
	}
	vals := make([]uint64, len(raw)/8)
	for i := range vals {
		vals[i] = binary.LittleEndian.Uint64(raw[i*8:])
	}
	return vals, nil
}
