package codec

import "google.golang.org/protobuf/proto"

// Protobuf encodes proto messages in the binary wire format.
// Construct with NewProtobuf; wrap in Base64 for web storage.
type Protobuf[T proto.Message] struct {
	new func() T // e.g. func() *pb.Settings { return &pb.Settings{} }
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}
func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
