package example

// Source declarations for the generated accessors in packet_varstruct.go.
// Regenerate with:
//
//	varstruct-gen --pkg example --out packet_varstruct.go packet.go

// @varstruct
type SimpleStruct struct {
	Foo int32  `varstruct:"scalar"`
	Bar []byte `varstruct:"array"`
	Baz []byte `varstruct:"array"`
}

// @varstruct
type NonstandardAlignment struct {
	First  uint8  `varstruct:"scalar"`
	Second uint32 `varstruct:"scalar"`
}
