package decode

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeMap decodes a loosely-typed map (e.g. the `data` object of a live
// frame) into a typed payload T. Field names follow the `json` tag. Weak
// typing is enabled so "123" -> int and 1.0 -> int64 survive JSON round
// trips.
func DecodeMap[T any](m map[string]any) (*T, error) {
	if m == nil {
		return nil, fmt.Errorf("map is nil")
	}

	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("new decoder: %w", err)
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &out, nil
}
