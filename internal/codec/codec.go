// Package codec registers the output formats of an information query with
// the kratos encoding registry: "text", "json" and "yaml".
package codec

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-kratos/kratos/v2/encoding"
	"github.com/go-kratos/kratos/v2/encoding/yaml"

	"github.com/go-tangra/go-tangra-sysindicator/internal/collector"
)

// YAML is the name of the YAML codec.
const YAML = yaml.Name

// ErrUnknownFormat is returned for a format with no registered codec.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported output formats.
func Formats() []string {
	f := []string{Text, JSON, YAML}
	sort.Strings(f)
	return f
}

// Lookup returns the codec registered under format.
func Lookup(format string) (encoding.Codec, error) {
	c := encoding.GetCodec(format)
	if c == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return c, nil
}

// ForOutput returns the codec for format. For the text format, color
// selects the report variant with highlighted labels.
func ForOutput(format string, color bool) (encoding.Codec, error) {
	if format == Text {
		return textCodec{color: color}, nil
	}
	return Lookup(format)
}

// Marshal encodes m in the given format. color only affects the text
// format.
func Marshal(format string, m collector.Map, color bool) ([]byte, error) {
	c, err := ForOutput(format, color)
	if err != nil {
		return nil, err
	}
	data, err := c.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return data, nil
}

func asMap(v interface{}) (collector.Map, bool) {
	switch m := v.(type) {
	case collector.Map:
		return m, true
	case *collector.Map:
		if m == nil {
			return nil, false
		}
		return *m, true
	}
	return nil, false
}
