package varstruct

import "fmt"

// Kind distinguishes the two member categories of a layout.
type Kind int

const (
	// Scalar is a fixed-size field whose byte size is known at definition time.
	Scalar Kind = iota
	// Array is a variable-length field whose element count is supplied per
	// binding, at Bind time.
	Array
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Array:
		return "array"
	default:
		return "unknown"
	}
}

// Member describes one declared field of a Layout. For Scalar members Size is
// the byte size of the whole field; for Array members it is the byte size of
// one element.
type Member struct {
	Name string
	Kind Kind
	Size int
}

func (m Member) String() string {
	return fmt.Sprintf("%s %s(%d)", m.Name, m.Kind, m.Size)
}
