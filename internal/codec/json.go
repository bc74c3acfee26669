package codec

import (
	"encoding/json"
	"fmt"

	"github.com/go-kratos/kratos/v2/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/go-tangra/go-tangra-sysindicator/internal/collector"
)

// JSON is the name of the JSON codec.
const JSON = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

// Marshal encodes information maps as a flat JSON object keyed by the key
// names. Proto messages go through protojson; anything else through
// encoding/json.
func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	if m, ok := asMap(v); ok {
		s, err := toStruct(m)
		if err != nil {
			return nil, err
		}
		v = s
	}

	msg, ok := v.(proto.Message)
	if !ok {
		return json.MarshalIndent(v, "", "  ")
	}

	data, err := protojson.Marshal(msg)
	if err != nil {
		return nil, err
	}

	// protojson randomizes whitespace; re-encode with sorted keys and
	// fixed indentation.
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return json.MarshalIndent(raw, "", "  ")
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	if dst, ok := v.(*collector.Map); ok {
		var s structpb.Struct
		if err := protojson.Unmarshal(data, &s); err != nil {
			return err
		}
		m, err := fromStruct(&s)
		if err != nil {
			return err
		}
		*dst = m
		return nil
	}

	msg, ok := v.(proto.Message)
	if !ok {
		return json.Unmarshal(data, v)
	}
	return protojson.Unmarshal(data, msg)
}

func (jsonCodec) Name() string { return JSON }

func toStruct(m collector.Map) (*structpb.Struct, error) {
	fields := make(map[string]interface{}, len(m))
	for k, v := range m {
		fields[string(k)] = v
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("build struct: %w", err)
	}
	return s, nil
}

func fromStruct(s *structpb.Struct) (collector.Map, error) {
	m := make(collector.Map, len(s.GetFields()))
	for name, val := range s.GetFields() {
		k, ok := collector.ParseKey(name)
		if !ok {
			continue
		}
		str, ok := val.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("%s: expected string value", name)
		}
		if str.StringValue != "" {
			m[k] = str.StringValue
		}
	}
	return m, nil
}
