package collector

import "strconv"

// Key names one entry of an information Map.
type Key string

// Information keys. The string values are stable and used verbatim by the
// CLI and the structured output formats.
const (
	OSFamily          Key = "OS_FAMILY"
	OSName            Key = "OS_NAME"
	Compiler          Key = "COMPILER"
	CPUName           Key = "CPU_NAME"
	CPUVendor         Key = "CPU_VENDOR"
	CPUType           Key = "CPU_TYPE"
	CPUArch           Key = "CPU_ARCH"
	CPUExt            Key = "CPU_EXT"
	Processors        Key = "PROCESSORS"
	LogicalProcessors Key = "LOGICAL_PROCESSORS"
	ProcessorSpeed    Key = "PROCESSOR_SPEED"
	L1Caches          Key = "L1CACHES"
	L1CacheSize       Key = "L1CACHE_SIZE"
	L1CacheLineSize   Key = "L1CACHE_LINE_SIZE"
	L2Caches          Key = "L2CACHES"
	L2CacheSize       Key = "L2CACHE_SIZE"
	L2CacheLineSize   Key = "L2CACHE_LINE_SIZE"
	L3Caches          Key = "L3CACHES"
	L3CacheSize       Key = "L3CACHE_SIZE"
	L3CacheLineSize   Key = "L3CACHE_LINE_SIZE"
	TotalMemory       Key = "TOTAL_MEMORY"
	FreeMemory        Key = "FREE_MEMORY"
)

// Keys lists every key in declaration order.
var Keys = []Key{
	OSFamily, OSName, Compiler,
	CPUName, CPUVendor, CPUType, CPUArch, CPUExt,
	Processors, LogicalProcessors, ProcessorSpeed,
	L1Caches, L1CacheSize, L1CacheLineSize,
	L2Caches, L2CacheSize, L2CacheLineSize,
	L3Caches, L3CacheSize, L3CacheLineSize,
	TotalMemory, FreeMemory,
}

// cacheKeys holds the count, size and line size keys per cache level.
var cacheKeys = [3][3]Key{
	{L1Caches, L1CacheSize, L1CacheLineSize},
	{L2Caches, L2CacheSize, L2CacheLineSize},
	{L3Caches, L3CacheSize, L3CacheLineSize},
}

// ParseKey returns the Key whose string form is s.
func ParseKey(s string) (Key, bool) {
	for _, k := range Keys {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Map holds the result of one information query. Keys without a value are
// absent, never empty.
type Map map[Key]string

// Get returns the value stored under k.
func (m Map) Get(k Key) (string, bool) {
	v, ok := m[k]
	return v, ok
}

// Present returns the keys of m in declaration order.
func (m Map) Present() []Key {
	keys := make([]Key, 0, len(m))
	for _, k := range Keys {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func (m Map) setString(k Key, v string) {
	if v != "" {
		m[k] = v
	}
}

func (m Map) setUint(k Key, v uint64) {
	if v != 0 {
		m[k] = strconv.FormatUint(v, 10)
	}
}
