package codegen

import (
	"go/format"
	"strings"
	"testing"

	"github.com/alexhholmes/varstruct/internal/analyzer"
	"github.com/alexhholmes/varstruct/internal/parser"
)

func simpleSpec() *analyzer.StructSpec {
	return &analyzer.StructSpec{
		Name:   "SimpleStruct",
		GoName: "SimpleStruct",
		Members: []analyzer.MemberSpec{
			{Name: "Foo", Kind: parser.Scalar, GoType: "int32", ElemType: "int32", ElemSize: 4},
			{Name: "Bar", Kind: parser.Array, GoType: "[]byte", ElemType: "byte", ElemSize: 1},
			{Name: "Baz", Kind: parser.Array, GoType: "[]byte", ElemType: "byte", ElemSize: 1},
		},
	}
}

func generate(t *testing.T, spec *analyzer.StructSpec, reg *analyzer.TypeRegistry) string {
	t.Helper()
	if reg == nil {
		reg = analyzer.NewTypeRegistry()
	}
	code, err := NewGenerator(spec, reg).Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return code
}

func wantContains(t *testing.T, code string, snippets ...string) {
	t.Helper()
	for _, s := range snippets {
		if !strings.Contains(code, s) {
			t.Errorf("Generated code missing %q\n---\n%s", s, code)
		}
	}
}

func TestGenerate_LayoutVar(t *testing.T) {
	code := generate(t, simpleSpec(), nil)

	wantContains(t, code,
		`var SimpleStructLayout = varstruct.NewBuilder("SimpleStruct").`,
		"\tScalar(\"Foo\", 4).\n",
		"\tArray(\"Bar\", 1).\n",
		"\tArray(\"Baz\", 1).\n",
		"\tMustBuild()\n",
	)
}

func TestGenerate_SizeConstsForScalarsOnly(t *testing.T) {
	code := generate(t, simpleSpec(), nil)

	wantContains(t, code, "const SimpleStructFooSize = 4")
	if strings.Contains(code, "SimpleStructBarSize") {
		t.Error("Array members must not get static size constants")
	}
}

func TestGenerate_ViewTypesAndConstructors(t *testing.T) {
	code := generate(t, simpleSpec(), nil)

	wantContains(t, code,
		"type SimpleStructView struct {\n\tv varstruct.View\n}",
		"type SimpleStructMutable struct {\n\tSimpleStructView\n\tm varstruct.MutableView\n}",
		"func CreateSimpleStruct(buf []byte, sizes ...int) SimpleStructMutable {",
		"func CreateSimpleStructReadOnly(buf []byte, sizes ...int) SimpleStructView {",
	)
}

func TestGenerate_ScalarAccessors(t *testing.T) {
	code := generate(t, simpleSpec(), nil)

	wantContains(t, code,
		`func (p SimpleStructView) FooOffset() int { return p.v.Offset("Foo") }`,
		`func (p SimpleStructView) Foo() int32 { return int32(p.v.Uint32("Foo")) }`,
		`func (p SimpleStructMutable) SetFoo(x int32) { p.m.SetUint32("Foo", uint32(x)) }`,
	)
}

func TestGenerate_ArrayAccessors(t *testing.T) {
	code := generate(t, simpleSpec(), nil)

	wantContains(t, code,
		`func (p SimpleStructView) BarOffset() int { return p.v.Offset("Bar") }`,
		`func (p SimpleStructView) BarLen() int { return p.v.ArrayLen("Bar") }`,
		`func (p SimpleStructView) Bar(i int) byte { return p.v.Uint8At("Bar", i) }`,
		`func (p SimpleStructView) BarUnchecked(i int) byte { return p.v.Uint8AtUnchecked("Bar", i) }`,
		`func (p SimpleStructMutable) SetBar(i int, x byte) { p.m.SetUint8At("Bar", i, x) }`,
		`func (p SimpleStructMutable) SetBarUnchecked(i int, x byte) { p.m.SetUint8AtUnchecked("Bar", i, x) }`,
	)
}

func TestGenerate_SettersOnlyOnMutable(t *testing.T) {
	code := generate(t, simpleSpec(), nil)

	if strings.Contains(code, "func (p SimpleStructView) Set") {
		t.Error("Read-only view must not carry setters")
	}
}

func TestGenerate_WideElements(t *testing.T) {
	spec := &analyzer.StructSpec{
		Name:   "Counters",
		GoName: "Counters",
		Members: []analyzer.MemberSpec{
			{Name: "N", Kind: parser.Scalar, GoType: "uint8", ElemType: "uint8", ElemSize: 1},
			{Name: "Counts", Kind: parser.Array, GoType: "[]uint64", ElemType: "uint64", ElemSize: 8},
		},
	}
	code := generate(t, spec, nil)

	wantContains(t, code,
		`func (p CountersView) Counts(i int) uint64 { return p.v.Uint64At("Counts", i) }`,
		`func (p CountersMutable) SetCounts(i int, x uint64) { p.m.SetUint64At("Counts", i, x) }`,
	)
}

func TestGenerate_InternalStructBlob(t *testing.T) {
	reg := analyzer.NewTypeRegistry()
	reg.Register("InternalStruct", 8)

	spec := &analyzer.StructSpec{
		Name:   "UsesInternalStruct",
		GoName: "UsesInternalStruct",
		Members: []analyzer.MemberSpec{
			{Name: "First", Kind: parser.Scalar, GoType: "InternalStruct", ElemType: "InternalStruct", ElemSize: 8},
			{Name: "Second", Kind: parser.Array, GoType: "[]InternalStruct", ElemType: "InternalStruct", ElemSize: 8},
		},
	}
	code := generate(t, spec, reg)

	wantContains(t, code,
		`func (p UsesInternalStructView) First() []byte { return p.v.Bytes("First") }`,
		`func (p UsesInternalStructMutable) SetFirst(x []byte) { p.m.SetBytes("First", x) }`,
		`func (p UsesInternalStructView) Second(i int) []byte { return p.v.ElemBytes("Second", i) }`,
		`func (p UsesInternalStructView) SecondUnchecked(i int) []byte { return p.v.ElemBytesUnchecked("Second", i) }`,
		`func (p UsesInternalStructMutable) SetSecond(i int, x []byte) { p.m.SetElemBytes("Second", i, x) }`,
		`func (p UsesInternalStructMutable) SetSecondUnchecked(i int, x []byte) { p.m.SetElemBytesUnchecked("Second", i, x) }`,
	)
}

func TestGenerate_FloatUsesMath(t *testing.T) {
	spec := &analyzer.StructSpec{
		Name:   "Sample",
		GoName: "Sample",
		Members: []analyzer.MemberSpec{
			{Name: "Mean", Kind: parser.Scalar, GoType: "float64", ElemType: "float64", ElemSize: 8},
		},
	}
	g := NewGenerator(spec, analyzer.NewTypeRegistry())
	if !g.NeedsMath() {
		t.Error("NeedsMath() should be true for float members")
	}

	code := generate(t, spec, nil)
	wantContains(t, code,
		`func (p SampleView) Mean() float64 { return math.Float64frombits(p.v.Uint64("Mean")) }`,
		`func (p SampleMutable) SetMean(x float64) { p.m.SetUint64("Mean", math.Float64bits(x)) }`,
	)
}

func TestGenerate_AliasCasts(t *testing.T) {
	reg := analyzer.NewTypeRegistry()
	reg.RegisterAlias("PageID", "uint64")

	spec := &analyzer.StructSpec{
		Name:   "Page",
		GoName: "Page",
		Members: []analyzer.MemberSpec{
			{Name: "ID", Kind: parser.Scalar, GoType: "PageID", ElemType: "PageID", ElemSize: 8},
		},
	}
	code := generate(t, spec, reg)

	wantContains(t, code,
		`func (p PageView) ID() PageID { return PageID(p.v.Uint64("ID")) }`,
		`func (p PageMutable) SetID(x PageID) { p.m.SetUint64("ID", uint64(x)) }`,
	)
}

func TestGenerateFile(t *testing.T) {
	code, err := GenerateFile("example", []*analyzer.StructSpec{simpleSpec()}, analyzer.NewTypeRegistry())
	if err != nil {
		t.Fatalf("GenerateFile() error: %v", err)
	}

	wantContains(t, code,
		"// Code generated by varstruct-gen. DO NOT EDIT.",
		"package example",
		"varstruct \"github.com/alexhholmes/varstruct\"",
	)
	if strings.Contains(code, "\"math\"") {
		t.Error("math should only be imported for float members")
	}
}

func TestGenerateFile_GofmtCanonical(t *testing.T) {
	code, err := GenerateFile("example", []*analyzer.StructSpec{simpleSpec()}, analyzer.NewTypeRegistry())
	if err != nil {
		t.Fatalf("GenerateFile() error: %v", err)
	}

	formatted, err := format.Source([]byte(code))
	if err != nil {
		t.Fatalf("format.Source() error: %v", err)
	}
	if string(formatted) != code {
		t.Error("Generated file is not gofmt-canonical")
	}
}

func TestGenerateFile_BoolHelper(t *testing.T) {
	spec := &analyzer.StructSpec{
		Name:   "Flags",
		GoName: "Flags",
		Members: []analyzer.MemberSpec{
			{Name: "On", Kind: parser.Scalar, GoType: "bool", ElemType: "bool", ElemSize: 1},
		},
	}
	code, err := GenerateFile("example", []*analyzer.StructSpec{spec}, analyzer.NewTypeRegistry())
	if err != nil {
		t.Fatalf("GenerateFile() error: %v", err)
	}

	// Formatting may align braces, so assert on the bodies.
	wantContains(t, code,
		"func b2u8(b bool) uint8 {",
		`return p.v.Uint8("On") != 0`,
		`p.m.SetUint8("On", b2u8(x))`,
	)
}

func TestGenerateFile_Empty(t *testing.T) {
	if _, err := GenerateFile("example", nil, analyzer.NewTypeRegistry()); err == nil {
		t.Error("Expected error for zero declarations")
	}
	if _, err := GenerateFile("", []*analyzer.StructSpec{simpleSpec()}, analyzer.NewTypeRegistry()); err == nil {
		t.Error("Expected error for missing package name")
	}
}
