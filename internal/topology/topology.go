// Package topology folds hardware relationship records into core, thread
// and cache counts.
package topology

import (
	"errors"
	"math/bits"
)

// ErrUnsupported is returned by a Source on platforms without a topology
// enumeration API.
var ErrUnsupported = errors.New("topology: enumeration not supported on this platform")

// RelationKind classifies a Relation. The values match the Windows
// LOGICAL_PROCESSOR_RELATIONSHIP enumeration.
type RelationKind uint32

const (
	RelationProcessorCore RelationKind = iota
	RelationNumaNode
	RelationCache
	RelationProcessorPackage
	RelationGroup
)

// CacheType classifies a cache descriptor.
type CacheType uint32

const (
	CacheUnified CacheType = iota
	CacheInstruction
	CacheData
	CacheTrace
)

// CacheDescriptor describes one cache instance.
type CacheDescriptor struct {
	Level         uint8
	Associativity uint8
	LineSize      uint16 // bytes
	Size          uint32 // bytes
	Type          CacheType
}

// Relation is one hardware relationship record. Cache is only meaningful
// for RelationCache.
type Relation struct {
	Kind  RelationKind
	Mask  AffinityMask
	Cache CacheDescriptor
}

// AffinityMask is a logical processor bitmap, 64 processors per word.
type AffinityMask []uint64

// MaskOf returns the mask with the given logical processor bits set.
// Negative ids are ignored.
func MaskOf(ids ...int) AffinityMask {
	var m AffinityMask
	for _, id := range ids {
		if id < 0 {
			continue
		}
		w := id / 64
		for len(m) <= w {
			m = append(m, 0)
		}
		m[w] |= 1 << uint(id%64)
	}
	return m
}

// Count returns the number of set bits.
func (m AffinityMask) Count() uint32 {
	var n int
	for _, w := range m {
		n += bits.OnesCount64(w)
	}
	return uint32(n)
}

// CacheLevel aggregates every cache of one level.
type CacheLevel struct {
	Count    uint32
	Size     uint32 // KB
	LineSize uint32 // bytes
}

// Summary is the folded view of a relation enumeration. The zero Summary
// means the topology is unavailable.
type Summary struct {
	PhysicalCores uint32
	LogicalCores  uint32
	Caches        [3]CacheLevel
}

// Cache returns the slot for level 1-3, or the zero CacheLevel.
func (s Summary) Cache(level int) CacheLevel {
	if level < 1 || level > len(s.Caches) {
		return CacheLevel{}
	}
	return s.Caches[level-1]
}

// Source enumerates the relation records of the host.
type Source interface {
	Relations() ([]Relation, error)
}

// Aggregate folds rels into a Summary in a single pass. Core relations add
// one physical core and the popcount of their mask as logical cores. Cache
// relations of level 1-3 bump the level count and overwrite its size (KB,
// see kilobytes) and line size. Everything else is ignored.
func Aggregate(rels []Relation) Summary {
	var s Summary
	for _, r := range rels {
		switch r.Kind {
		case RelationProcessorCore:
			s.PhysicalCores++
			s.LogicalCores += r.Mask.Count()

		case RelationCache:
			lvl := int(r.Cache.Level)
			if lvl < 1 || lvl > len(s.Caches) {
				continue
			}
			c := &s.Caches[lvl-1]
			c.Count++
			c.Size = kilobytes(r.Cache.Size)
			c.LineSize = uint32(r.Cache.LineSize)
		}
	}
	return s
}

// kilobytes truncates to KB, except that a non-empty cache below 1 KB
// reports 1 so a counted level always carries a size.
func kilobytes(b uint32) uint32 {
	if b > 0 && b < 1024 {
		return 1
	}
	return b / 1024
}

// Probe enumerates src and aggregates the result. A failed enumeration
// yields the zero Summary along with the error.
func Probe(src Source) (Summary, error) {
	if src == nil {
		return Summary{}, ErrUnsupported
	}
	rels, err := src.Relations()
	if err != nil {
		return Summary{}, err
	}
	return Aggregate(rels), nil
}
