package analyzer

import (
	"fmt"

	"github.com/alexhholmes/varstruct/internal/parser"
)

// MemberSpec is a fully resolved member: declared name and kind plus the
// element type and its byte size. For scalars the element is the whole field.
type MemberSpec struct {
	Name     string
	Kind     parser.MemberKind
	GoType   string // field type as declared
	ElemType string // element type; equals GoType for scalars
	ElemSize int
}

// StructSpec is the analyzed form of one @varstruct declaration, ready for
// code generation.
type StructSpec struct {
	Name    string // generated base name (annotation override applied)
	GoName  string // declared struct name
	Members []MemberSpec
}

// NumArrays returns the count of array members, which is the number of sizes
// a binding takes.
func (s *StructSpec) NumArrays() int {
	n := 0
	for _, m := range s.Members {
		if m.Kind == parser.Array {
			n++
		}
	}
	return n
}

// Analyze resolves a parsed declaration against the registry.
//
// Scalars must have a fixed, statically known size. Array members must be
// declared as slices of a fixed-size element type; nested variable-length
// members are rejected.
func Analyze(decl *parser.StructDecl, registry *TypeRegistry) (*StructSpec, error) {
	if decl == nil {
		return nil, fmt.Errorf("declaration is nil")
	}

	spec := &StructSpec{
		Name:   decl.Name,
		GoName: decl.Name,
	}
	if decl.Anno != nil && decl.Anno.Name != "" {
		spec.Name = decl.Anno.Name
	}

	for _, m := range decl.Members {
		resolved, err := resolveMember(m, registry)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", decl.Name, m.Name, err)
		}
		spec.Members = append(spec.Members, resolved)
	}

	return spec, nil
}

func resolveMember(m parser.MemberDecl, registry *TypeRegistry) (MemberSpec, error) {
	spec := MemberSpec{
		Name:   m.Name,
		Kind:   m.Kind,
		GoType: m.GoType,
	}

	switch m.Kind {
	case parser.Scalar:
		size, err := registry.SizeOf(m.GoType)
		if err != nil {
			return spec, fmt.Errorf("cannot determine size: %w", err)
		}
		if size < 0 {
			return spec, fmt.Errorf("scalar member cannot have dynamic type %s", m.GoType)
		}
		spec.ElemType = m.GoType
		spec.ElemSize = size

	case parser.Array:
		elem, ok := ElemType(m.GoType)
		if !ok {
			return spec, fmt.Errorf("array member must be a slice type, got %s", m.GoType)
		}
		size, err := registry.SizeOf(elem)
		if err != nil {
			return spec, fmt.Errorf("cannot determine element size: %w", err)
		}
		if size < 0 {
			return spec, fmt.Errorf("array element must have fixed size, got %s", elem)
		}
		spec.ElemType = elem
		spec.ElemSize = size

	default:
		return spec, fmt.Errorf("unknown member kind %v", m.Kind)
	}

	return spec, nil
}
