package codec

import "encoding/json"

// JSON is the default codec. With V=any, Decode yields the generic JSON value
// model: map[string]any, []any, float64, string, bool or nil.
type JSON[V any] struct{}

var _ Codec[any] = JSON[any]{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
