//go:build !windows && !linux && !darwin

package topology

type unsupportedSource struct{}

// Native returns a source that always reports ErrUnsupported.
func Native() Source { return unsupportedSource{} }

func (unsupportedSource) Relations() ([]Relation, error) {
	return nil, ErrUnsupported
}
