package alarmv1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName is the gRPC content subtype of the service.
const CodecName = "json"

// Codec encodes protobuf messages with protojson and everything else with
// encoding/json.
type Codec struct{}

//nolint:gochecknoinits // Codecs must be registered before any connection is made.
func init() {
	encoding.RegisterCodec(Codec{})
}

// Marshal encodes v.
func (Codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		data, err := protojson.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("marshal %T: %w", v, err)
		}

		return data, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", v, err)
	}

	return data, nil
}

// Unmarshal decodes data into v.
func (Codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		if err := protojson.Unmarshal(data, m); err != nil {
			return fmt.Errorf("unmarshal %T: %w", v, err)
		}

		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %T: %w", v, err)
	}

	return nil
}

// Name returns the content subtype.
func (Codec) Name() string {
	return CodecName
}
