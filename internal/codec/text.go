package codec

import (
	"errors"
	"fmt"

	"github.com/go-kratos/kratos/v2/encoding"

	"github.com/go-tangra/go-tangra-sysindicator/internal/report"
)

// Text is the name of the report codec.
const Text = "text"

func init() {
	encoding.RegisterCodec(textCodec{})
}

// textCodec renders the report. The registered instance is uncoloured.
type textCodec struct {
	color bool
}

// Marshal renders an information map as the text report.
func (c textCodec) Marshal(v interface{}) ([]byte, error) {
	m, ok := asMap(v)
	if !ok {
		return nil, fmt.Errorf("text: cannot encode %T", v)
	}
	return report.Format(m, report.Options{Color: c.color}), nil
}

func (textCodec) Unmarshal([]byte, interface{}) error {
	return errors.New("text: decoding is not supported")
}

func (textCodec) Name() string { return Text }
