package cpuid

import "strings"

// Feature is a single decoded processor capability.
type Feature uint16

// Features in canonical report order.
const (
	SSE Feature = 1 << iota
	SSE2
	SSE3
	SSSE3
	SSE41
	SSE42
	MMX
	ExtMMX
	AMD3DNow
	AMD3DNowExt
	HTT
)

// FeatureSet is a bit set of Feature values.
type FeatureSet uint16

// Has reports whether every feature in f is present.
func (s FeatureSet) Has(f Feature) bool {
	return FeatureSet(f)&s == FeatureSet(f)
}

type featureBit struct {
	feature Feature
	name    string
	word    int // 0 = standard EDX, 1 = standard ECX, 2 = extended EDX
	bit     uint
}

// featureBits lists every decoded feature in canonical order.
var featureBits = []featureBit{
	{SSE, "SSE", 0, 25},
	{SSE2, "SSE2", 0, 26},
	{SSE3, "SSE3", 1, 0},
	{SSSE3, "SSSE3", 1, 9},
	{SSE41, "SSE4.1", 1, 19},
	{SSE42, "SSE4.2", 1, 20},
	{MMX, "MMX", 0, 23},
	{ExtMMX, "Ext. MMX", 2, 22},
	{AMD3DNow, "3DNow!", 2, 31},
	{AMD3DNowExt, "Ext. 3DNow!", 2, 30},
	{HTT, "HTT", 0, 28},
}

// NoExtensions is reported when no feature flag is set.
const NoExtensions = "<none>"

func decodeFeatures(stdEDX, stdECX, extEDX uint32) FeatureSet {
	words := [3]uint32{stdEDX, stdECX, extEDX}
	var s FeatureSet
	for _, fb := range featureBits {
		if (words[fb.word]>>fb.bit)&1 != 0 {
			s |= FeatureSet(fb.feature)
		}
	}
	return s
}

// String returns the display name of f.
func (f Feature) String() string {
	for _, fb := range featureBits {
		if fb.feature == f {
			return fb.name
		}
	}
	return ""
}

// Extensions returns the names of the detected features in canonical order.
func (id Identity) Extensions() []string {
	var names []string
	for _, fb := range featureBits {
		if id.Features.Has(fb.feature) {
			names = append(names, fb.name)
		}
	}
	return names
}

// ExtensionList joins Extensions with ", ", or returns NoExtensions.
func (id Identity) ExtensionList() string {
	names := id.Extensions()
	if len(names) == 0 {
		return NoExtensions
	}
	return strings.Join(names, ", ")
}
