//go:build (386 || amd64) && gc

package cpuid

import "encoding/binary"

// cpuid executes the CPUID instruction. Implemented in cpuid_x86.s.
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)

const (
	leafExtMax      = 0x80000000
	leafExtFeatures = 0x80000001
	leafBrandFirst  = 0x80000002
	leafBrandLast   = 0x80000004
)

type nativeSource struct{}

// Native returns the identification source of the running processor.
func Native() Source { return nativeSource{} }

func (nativeSource) Read() (Record, error) {
	var rec Record

	maxStd, ebx, ecx, edx := cpuid(0, 0)
	putRegs(rec.Vendor[:], ebx, edx, ecx)
	if maxStd == 0 {
		return rec, nil
	}

	rec.Signature, _, rec.StdECX, rec.StdEDX = cpuid(1, 0)

	maxExt, _, _, _ := cpuid(leafExtMax, 0)
	if maxExt < leafExtFeatures {
		return rec, nil
	}
	if maxExt >= leafBrandLast {
		for i := uint32(0); i < 3; i++ {
			a, b, c, d := cpuid(leafBrandFirst+i, 0)
			putRegs(rec.Name[i*16:], a, b, c, d)
		}
	}
	_, _, _, rec.ExtEDX = cpuid(leafExtFeatures, 0)

	return rec, nil
}

// putRegs stores the registers little-endian, back to back, into dst.
func putRegs(dst []byte, regs ...uint32) {
	for i, r := range regs {
		binary.LittleEndian.PutUint32(dst[i*4:], r)
	}
}
