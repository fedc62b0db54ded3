// Package api defines the wire messages of the shopping list service.
//
// Messages are plain JSON structs; JSONCodec lets Connect carry them without
// generated protobuf code. Use it on both handlers and clients:
//
//	connect.WithCodec(api.JSONCodec{})
package api

import (
	"encoding/json"
	"fmt"
)

// JSONCodec is a connect.Codec for plain Go structs using encoding/json.
// Its name is "json", so requests are sent as application/json.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string {
	return "json"
}

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec. An empty body leaves msg unchanged.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}
