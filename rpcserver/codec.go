package rpcserver

import (
	"encoding/json"
	"fmt"
)

// jsonCodec implements google.golang.org/grpc/encoding.Codec. No
// protoc-generated message types exist for this service, so requests
// and responses are marshaled as JSON rather than protobuf wire
// format; grpc-go supports swapping the wire codec for exactly this
// reason.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("rpcserver: marshal: %w", err)
	}
	return b, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("rpcserver: unmarshal: %w", err)
	}
	return nil
}
