//go:build !((386 || amd64) && gc)

package cpuid

type unsupportedSource struct{}

// Native returns a source that always reports ErrUnsupported, since the
// identification instruction only exists on x86.
func Native() Source { return unsupportedSource{} }

func (unsupportedSource) Read() (Record, error) {
	return Record{}, ErrUnsupported
}
