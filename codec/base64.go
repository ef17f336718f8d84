package codec

import "encoding/base64"

// Base64 makes a binary codec safe for text-only stores by encoding Inner's
// output with standard padded base64.
type Base64[V any] struct {
	Inner Codec[V]
}

func (c Base64[V]) Encode(v V) ([]byte, error) {
	raw, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(out, raw)
	return out, nil
}

func (c Base64[V]) Decode(b []byte) (V, error) {
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(b)))
	n, err := base64.StdEncoding.Decode(raw, b)
	if err != nil {
		var zero V
		return zero, err
	}
	return c.Inner.Decode(raw[:n])
}
