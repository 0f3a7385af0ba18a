package parser

import (
	"fmt"
	"strings"
)

// MemberKind is the declared category of a varstruct member.
type MemberKind int

const (
	Scalar MemberKind = iota // fixed-size field
	Array                    // variable-length field, count supplied at bind time
)

func (k MemberKind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Array:
		return "array"
	default:
		return "unknown"
	}
}

// ParseTag parses varstruct struct tags.
//
// Semantics:
//   - "scalar" : fixed-size member; the field's Go type fixes the byte size
//   - "array"  : variable-length member; the field must be a slice and the
//     element type fixes the per-element byte size
//
// Examples:
//
//	Foo int32  `varstruct:"scalar"`
//	Bar []byte `varstruct:"array"`
func ParseTag(tag string) (MemberKind, error) {
	if tag == "" {
		return 0, fmt.Errorf("empty varstruct tag")
	}

	parts := strings.Split(tag, ",")
	if len(parts) > 1 {
		return 0, fmt.Errorf("unknown parameter: %s", parts[1])
	}

	switch parts[0] {
	case "scalar":
		return Scalar, nil
	case "array":
		return Array, nil
	default:
		return 0, fmt.Errorf("invalid kind: %s (expected scalar or array)", parts[0])
	}
}
