package analyzer

import (
	"testing"

	"github.com/alexhholmes/varstruct/internal/parser"
)

func TestAnalyze_SimpleStruct(t *testing.T) {
	// type SimpleStruct struct {
	//     Foo int32  `varstruct:"scalar"`
	//     Bar []byte `varstruct:"array"`
	//     Baz []byte `varstruct:"array"`
	// }
	decl := &parser.StructDecl{
		Name: "SimpleStruct",
		Anno: &parser.Annotation{},
		Members: []parser.MemberDecl{
			{Name: "Foo", GoType: "int32", Kind: parser.Scalar},
			{Name: "Bar", GoType: "[]byte", Kind: parser.Array},
			{Name: "Baz", GoType: "[]byte", Kind: parser.Array},
		},
	}

	spec, err := Analyze(decl, NewTypeRegistry())
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if spec.Name != "SimpleStruct" {
		t.Errorf("Name = %s", spec.Name)
	}
	if len(spec.Members) != 3 {
		t.Fatalf("Expected 3 members, got %d", len(spec.Members))
	}
	if spec.NumArrays() != 2 {
		t.Errorf("NumArrays() = %d, want 2", spec.NumArrays())
	}

	m0 := spec.Members[0]
	if m0.ElemSize != 4 || m0.ElemType != "int32" {
		t.Errorf("Foo resolved to %+v", m0)
	}
	m1 := spec.Members[1]
	if m1.ElemSize != 1 || m1.ElemType != "byte" {
		t.Errorf("Bar resolved to %+v", m1)
	}
}

func TestAnalyze_NameOverride(t *testing.T) {
	decl := &parser.StructDecl{
		Name: "PacketHeader",
		Anno: &parser.Annotation{Name: "Header"},
	}

	spec, err := Analyze(decl, NewTypeRegistry())
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if spec.Name != "Header" {
		t.Errorf("Name = %s, want Header", spec.Name)
	}
	if spec.GoName != "PacketHeader" {
		t.Errorf("GoName = %s, want PacketHeader", spec.GoName)
	}
}

func TestAnalyze_EmptyStruct(t *testing.T) {
	decl := &parser.StructDecl{Name: "EmptyStruct", Anno: &parser.Annotation{}}

	spec, err := Analyze(decl, NewTypeRegistry())
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(spec.Members) != 0 || spec.NumArrays() != 0 {
		t.Errorf("Expected zero members, got %+v", spec.Members)
	}
}

func TestAnalyze_ScalarWithDynamicType(t *testing.T) {
	decl := &parser.StructDecl{
		Name: "Bad",
		Members: []parser.MemberDecl{
			{Name: "Foo", GoType: "[]byte", Kind: parser.Scalar},
		},
	}

	if _, err := Analyze(decl, NewTypeRegistry()); err == nil {
		t.Error("Expected error for scalar with slice type")
	}
}

func TestAnalyze_ArrayMustBeSlice(t *testing.T) {
	decl := &parser.StructDecl{
		Name: "Bad",
		Members: []parser.MemberDecl{
			{Name: "Foo", GoType: "uint32", Kind: parser.Array},
		},
	}

	if _, err := Analyze(decl, NewTypeRegistry()); err == nil {
		t.Error("Expected error for array member that is not a slice")
	}
}

func TestAnalyze_NestedDynamicRejected(t *testing.T) {
	// [][]byte would be a variable-length member inside an array.
	decl := &parser.StructDecl{
		Name: "Bad",
		Members: []parser.MemberDecl{
			{Name: "Blobs", GoType: "[][]byte", Kind: parser.Array},
		},
	}

	if _, err := Analyze(decl, NewTypeRegistry()); err == nil {
		t.Error("Expected error for nested variable-length element")
	}
}

func TestAnalyze_InternalStructElement(t *testing.T) {
	// type UsesInternalStruct struct {
	//     First  InternalStruct   `varstruct:"scalar"`
	//     Second []InternalStruct `varstruct:"array"`
	// }
	decl := &parser.StructDecl{
		Name: "UsesInternalStruct",
		Members: []parser.MemberDecl{
			{Name: "First", GoType: "InternalStruct", Kind: parser.Scalar},
			{Name: "Second", GoType: "[]InternalStruct", Kind: parser.Array},
		},
	}

	reg := NewTypeRegistry()
	reg.Register("InternalStruct", 8)

	spec, err := Analyze(decl, reg)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if spec.Members[0].ElemSize != 8 {
		t.Errorf("First ElemSize = %d, want 8", spec.Members[0].ElemSize)
	}
	if spec.Members[1].ElemSize != 8 || spec.Members[1].ElemType != "InternalStruct" {
		t.Errorf("Second resolved to %+v", spec.Members[1])
	}
}

func TestAnalyze_UnknownType(t *testing.T) {
	decl := &parser.StructDecl{
		Name: "Bad",
		Members: []parser.MemberDecl{
			{Name: "Foo", GoType: "Mystery", Kind: parser.Scalar},
		},
	}

	if _, err := Analyze(decl, NewTypeRegistry()); err == nil {
		t.Error("Expected error for unregistered type")
	}
}
