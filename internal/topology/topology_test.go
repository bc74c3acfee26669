package topology

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	rels []Relation
	err  error
}

func (f fakeSource) Relations() ([]Relation, error) { return f.rels, f.err }

func cacheRel(level uint8, sizeKB uint32, line uint16) Relation {
	return Relation{
		Kind:  RelationCache,
		Cache: CacheDescriptor{Level: level, Size: sizeKB * 1024, LineSize: line},
	}
}

func TestAggregateCores(t *testing.T) {
	s := Aggregate([]Relation{
		{Kind: RelationProcessorCore, Mask: AffinityMask{0b0011}},
		{Kind: RelationProcessorCore, Mask: AffinityMask{0b0101}},
	})

	assert.Equal(t, uint32(2), s.PhysicalCores)
	assert.Equal(t, uint32(4), s.LogicalCores)
	assert.Equal(t, [3]CacheLevel{}, s.Caches)
}

func TestAggregateCachesWithoutL3(t *testing.T) {
	s := Aggregate([]Relation{
		cacheRel(1, 32, 64),
		cacheRel(2, 256, 64),
	})

	assert.Equal(t, CacheLevel{Count: 1, Size: 32, LineSize: 64}, s.Cache(1))
	assert.Equal(t, CacheLevel{Count: 1, Size: 256, LineSize: 64}, s.Cache(2))
	assert.Equal(t, CacheLevel{}, s.Cache(3))
	assert.Zero(t, s.PhysicalCores)
}

func TestAggregateLastWriteWins(t *testing.T) {
	s := Aggregate([]Relation{
		cacheRel(2, 256, 64),
		cacheRel(2, 512, 128),
		cacheRel(2, 1024, 64),
	})

	assert.Equal(t, CacheLevel{Count: 3, Size: 1024, LineSize: 64}, s.Cache(2))
}

func TestAggregateSubKilobyteCache(t *testing.T) {
	tests := []struct {
		name  string
		bytes uint32
		want  uint32
	}{
		{"empty", 0, 0},
		{"tiny", 512, 1},
		{"just under", 1023, 1},
		{"exact", 1024, 1},
		{"truncated", 1536, 1},
		{"large", 48 * 1024, 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Aggregate([]Relation{{
				Kind:  RelationCache,
				Cache: CacheDescriptor{Level: 1, Size: tt.bytes, LineSize: 32},
			}})
			assert.Equal(t, CacheLevel{Count: 1, Size: tt.want, LineSize: 32}, s.Cache(1))
		})
	}
}

func TestAggregateIgnoresOtherRecords(t *testing.T) {
	s := Aggregate([]Relation{
		{Kind: RelationNumaNode, Mask: AffinityMask{0xff}},
		{Kind: RelationProcessorPackage, Mask: AffinityMask{0xff}},
		{Kind: RelationGroup},
		{Kind: RelationKind(42), Mask: AffinityMask{0xff}},
		cacheRel(0, 32, 64),
		cacheRel(4, 32, 64),
	})

	assert.Equal(t, Summary{}, s)
}

func TestAggregateDesktop(t *testing.T) {
	// Four cores with two threads each, split L1 per core, L2 per core and
	// one shared L3.
	var rels []Relation
	for core := 0; core < 4; core++ {
		rels = append(rels, Relation{Kind: RelationProcessorCore, Mask: MaskOf(2*core, 2*core+1)})
		rels = append(rels, cacheRel(1, 32, 64), cacheRel(1, 32, 64), cacheRel(2, 256, 64))
	}
	rels = append(rels, cacheRel(3, 8192, 64))

	assert.Equal(t, Summary{
		PhysicalCores: 4,
		LogicalCores:  8,
		Caches: [3]CacheLevel{
			{Count: 8, Size: 32, LineSize: 64},
			{Count: 4, Size: 256, LineSize: 64},
			{Count: 1, Size: 8192, LineSize: 64},
		},
	}, Aggregate(rels))
}

func TestProbe(t *testing.T) {
	rels := []Relation{{Kind: RelationProcessorCore, Mask: AffinityMask{1}}}

	s, err := Probe(fakeSource{rels: rels})
	require.NoError(t, err)
	assert.Equal(t, Aggregate(rels), s)

	errBuffer := errors.New("buffer query failed")
	tests := []struct {
		name    string
		src     Source
		wantErr error
	}{
		{"failed enumeration drops partial records", fakeSource{rels: rels, err: errBuffer}, errBuffer},
		{"unsupported", fakeSource{err: ErrUnsupported}, ErrUnsupported},
		{"nil source", nil, ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Probe(tt.src)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Summary{}, s)
		})
	}
}

func TestSummaryCacheOutOfRange(t *testing.T) {
	s := Summary{Caches: [3]CacheLevel{{Count: 1}, {Count: 2}, {Count: 3}}}
	assert.Equal(t, CacheLevel{}, s.Cache(0))
	assert.Equal(t, CacheLevel{}, s.Cache(4))
	assert.Equal(t, uint32(3), s.Cache(3).Count)
}

func TestMaskOf(t *testing.T) {
	tests := []struct {
		name  string
		ids   []int
		want  AffinityMask
		count uint32
	}{
		{"empty", nil, nil, 0},
		{"low bits", []int{0, 2}, AffinityMask{0b101}, 2},
		{"second word", []int{1, 64, 127}, AffinityMask{0b10, 1 | 1<<63}, 3},
		{"duplicates", []int{3, 3}, AffinityMask{0b1000}, 1},
		{"negative ignored", []int{-1, 0}, AffinityMask{1}, 1},
		{"sparse", []int{200}, AffinityMask{0, 0, 0, 1 << 8}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MaskOf(tt.ids...)
			assert.Equal(t, tt.want, m)
			assert.Equal(t, tt.count, m.Count())
		})
	}
}

func TestCoreRelations(t *testing.T) {
	tests := []struct {
		name              string
		physical, logical int
		wantMasks         []AffinityMask
	}{
		{"no smt", 2, 2, []AffinityMask{{0b01}, {0b10}}},
		{"smt2", 2, 4, []AffinityMask{{0b0011}, {0b1100}}},
		{"uneven", 3, 4, []AffinityMask{{0b0011}, {0b0100}, {0b1000}}},
		{"invalid", 0, 4, nil},
		{"fewer logical", 4, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rels := coreRelations(tt.physical, tt.logical)
			var masks []AffinityMask
			for _, r := range rels {
				assert.Equal(t, RelationProcessorCore, r.Kind)
				masks = append(masks, r.Mask)
			}
			assert.Equal(t, tt.wantMasks, masks)

			s := Aggregate(rels)
			if tt.wantMasks != nil {
				assert.Equal(t, uint32(tt.physical), s.PhysicalCores)
				assert.Equal(t, uint32(tt.logical), s.LogicalCores)
			}
		})
	}
}
