package topology

import "encoding/binary"

// slpiUnionSize is the size of the SYSTEM_LOGICAL_PROCESSOR_INFORMATION
// union (two ULONGLONGs).
const slpiUnionSize = 16

// SLPIEntrySize returns the size of one SYSTEM_LOGICAL_PROCESSOR_INFORMATION
// entry for the given pointer size: the ULONG_PTR mask, the relationship
// DWORD padded to pointer alignment, and the 8-byte aligned union.
func SLPIEntrySize(ptrSize int) int {
	return 2*ptrSize + slpiUnionSize
}

// ParseLogicalProcessorInformation decodes a buffer filled by
// GetLogicalProcessorInformation. ptrSize is 4 or 8. A trailing partial
// entry is ignored.
//
// Entry layout (little endian):
//
//	[0, ptrSize)            ProcessorMask
//	[ptrSize, ptrSize+4)    Relationship
//	[2*ptrSize, +16)        union; for caches:
//	    +0 Level (BYTE), +1 Associativity (BYTE), +2 LineSize (WORD),
//	    +4 Size (DWORD), +8 Type (DWORD)
func ParseLogicalProcessorInformation(buf []byte, ptrSize int) []Relation {
	if ptrSize != 4 && ptrSize != 8 {
		return nil
	}
	le := binary.LittleEndian
	size := SLPIEntrySize(ptrSize)

	rels := make([]Relation, 0, len(buf)/size)
	for off := 0; off+size <= len(buf); off += size {
		e := buf[off : off+size]

		var mask uint64
		if ptrSize == 8 {
			mask = le.Uint64(e)
		} else {
			mask = uint64(le.Uint32(e))
		}

		r := Relation{
			Kind: RelationKind(le.Uint32(e[ptrSize:])),
			Mask: AffinityMask{mask},
		}
		if r.Kind == RelationCache {
			u := e[2*ptrSize:]
			r.Cache = CacheDescriptor{
				Level:         u[0],
				Associativity: u[1],
				LineSize:      le.Uint16(u[2:]),
				Size:          le.Uint32(u[4:]),
				Type:          CacheType(le.Uint32(u[8:])),
			}
		}
		rels = append(rels, r)
	}
	return rels
}
