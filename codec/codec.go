// Package codec converts values to and from the byte form written to a backend.
//
// Web storage only holds text. JSON and String produce text directly; the
// binary codecs (CBOR, Msgpack, Protobuf) should be wrapped in Base64 before
// being used with a browser-backed provider.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
