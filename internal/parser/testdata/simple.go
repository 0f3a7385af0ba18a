package testdata

// @varstruct
type SimpleStruct struct {
	Foo int32  `varstruct:"scalar"`
	Bar []byte `varstruct:"array"`
	Baz []byte `varstruct:"array"`
}

// @varstruct name=Header
type PacketHeader struct {
	Version  uint8    `varstruct:"scalar"`
	Flags    uint16   `varstruct:"scalar"`
	Payload  []byte   `varstruct:"array"`
	Counters []uint64 `varstruct:"array"`
}

// No annotation, must be skipped.
type Plain struct {
	A int32 `varstruct:"scalar"`
}
