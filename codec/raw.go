package codec

// String stores Go strings verbatim. Decode never fails, so a provider using
// it reads back exactly what is in the store.
type String struct{}

var _ Codec[string] = String{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
