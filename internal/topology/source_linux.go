//go:build linux

package topology

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/klauspost/cpuid/v2"
)

const sysCPUCacheDir = "/sys/devices/system/cpu/cpu0/cache"

type linuxSource struct {
	cacheDir string
}

// Native returns the topology source of the running host.
func Native() Source { return linuxSource{cacheDir: sysCPUCacheDir} }

// Relations converts the ghw topology into relation records: one core
// relation per physical core and one cache relation per distinct cache
// instance on every NUMA node.
func (s linuxSource) Relations() ([]Relation, error) {
	info, err := ghw.Topology()
	if err != nil {
		return nil, fmt.Errorf("read topology: %w", err)
	}

	lineSizes := readLineSizes(s.cacheDir)

	var rels []Relation
	for _, node := range info.Nodes {
		for _, core := range node.Cores {
			rels = append(rels, Relation{
				Kind: RelationProcessorCore,
				Mask: MaskOf(core.LogicalProcessors...),
			})
		}
		for _, c := range node.Caches {
			ls := lineSizes[c.Level]
			if ls == 0 {
				ls = uint16(cpuid.CPU.CacheLine)
			}
			rels = append(rels, Relation{
				Kind: RelationCache,
				Cache: CacheDescriptor{
					Level:    c.Level,
					LineSize: ls,
					Size:     uint32(c.SizeBytes),
				},
			})
		}
	}
	return rels, nil
}

// readLineSizes maps cache level to coherency line size using the cache
// index directories of one processor.
func readLineSizes(dir string) map[uint8]uint16 {
	sizes := make(map[uint8]uint16)
	indexes, err := filepath.Glob(filepath.Join(dir, "index*"))
	if err != nil {
		return sizes
	}
	for _, idx := range indexes {
		level, err := readUint(filepath.Join(idx, "level"), 8)
		if err != nil {
			continue
		}
		line, err := readUint(filepath.Join(idx, "coherency_line_size"), 16)
		if err != nil || line == 0 {
			continue
		}
		sizes[uint8(level)] = uint16(line)
	}
	return sizes
}

func readUint(path string, bitSize int) (uint64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(strings.TrimSpace(string(b)), 10, bitSize)
}
