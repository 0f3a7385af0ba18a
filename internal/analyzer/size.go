package analyzer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SizeOf returns the size in bytes of a Go type.
// Returns -1 for dynamic-sized types (slices).
// Returns an error for unsupported types.
func SizeOf(goType string) (int, error) {
	// Primitive types
	switch goType {
	case "uint8", "int8", "byte", "bool":
		return 1, nil
	case "uint16", "int16":
		return 2, nil
	case "uint32", "int32", "float32":
		return 4, nil
	case "uint64", "int64", "float64":
		return 8, nil
	}

	// Slice: []T (dynamic) - check before array
	if strings.HasPrefix(goType, "[]") {
		return -1, nil
	}

	// Array: [N]T
	if strings.HasPrefix(goType, "[") && strings.Contains(goType, "]") {
		return arraySize(goType)
	}

	// Pointer (no binary layout)
	if strings.HasPrefix(goType, "*") {
		return 0, fmt.Errorf("pointer types not supported: %s", goType)
	}

	// Unknown/struct type - needs type registry
	return 0, fmt.Errorf("unknown type: %s (use type registry for structs)", goType)
}

var arrayRe = regexp.MustCompile(`^\[(\d+)\](.+)$`)

func arraySize(goType string) (int, error) {
	// Parse: [16]byte → 16 * 1
	matches := arrayRe.FindStringSubmatch(goType)
	if matches == nil {
		return 0, fmt.Errorf("invalid array type: %s", goType)
	}

	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid array length: %s", matches[1])
	}

	elemSize, err := SizeOf(matches[2])
	if err != nil {
		return 0, fmt.Errorf("array element: %w", err)
	}

	if elemSize < 0 {
		return 0, fmt.Errorf("array of dynamic type not supported: %s", goType)
	}

	return n * elemSize, nil
}

// ElemType returns the element type of a slice type, or false if goType is
// not a slice.
func ElemType(goType string) (string, bool) {
	if !strings.HasPrefix(goType, "[]") {
		return "", false
	}
	return strings.TrimPrefix(goType, "[]"), true
}

// TypeRegistry tracks sizes of named fixed-size types ("internal" structs)
// and type aliases.
type TypeRegistry struct {
	types   map[string]int    // type name → size in bytes
	aliases map[string]string // alias → underlying type
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		types:   make(map[string]int),
		aliases: make(map[string]string),
	}
}

// Register adds a fixed-size named type. The engine treats such types as
// opaque blobs of exactly this size.
func (r *TypeRegistry) Register(name string, size int) {
	r.types[name] = size
}

// RegisterAlias adds a type alias mapping (e.g., type PageID uint64).
func (r *TypeRegistry) RegisterAlias(alias, underlying string) {
	r.aliases[alias] = underlying
}

// ResolveType resolves type aliases to their underlying types.
// Returns the original type if not an alias.
func (r *TypeRegistry) ResolveType(goType string) string {
	for {
		underlying, ok := r.aliases[goType]
		if !ok {
			return goType
		}
		goType = underlying
	}
}

// SizeOf calculates the size of a type, consulting the registry for named
// types and aliases. Slices still report -1 (dynamic).
func (r *TypeRegistry) SizeOf(goType string) (int, error) {
	if strings.HasPrefix(goType, "[]") {
		return -1, nil
	}

	// Arrays of registered types: [N]RegisteredType
	if strings.HasPrefix(goType, "[") {
		if matches := arrayRe.FindStringSubmatch(goType); matches != nil {
			n, _ := strconv.Atoi(matches[1])
			elemSize, err := r.SizeOf(matches[2])
			if err != nil {
				return 0, err
			}
			if elemSize < 0 {
				return 0, fmt.Errorf("array of dynamic type not supported: %s", goType)
			}
			return n * elemSize, nil
		}
	}

	resolved := r.ResolveType(goType)

	if size, err := SizeOf(resolved); err == nil {
		return size, nil
	}

	if size, ok := r.types[resolved]; ok {
		return size, nil
	}

	return 0, fmt.Errorf("unknown type: %s (not registered)", goType)
}
