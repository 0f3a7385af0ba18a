package codegen

import (
	"fmt"
	"strings"

	"github.com/alexhholmes/varstruct/internal/analyzer"
	"github.com/alexhholmes/varstruct/internal/parser"
)

// Generator emits named accessor types for one analyzed declaration. The
// generated code is a thin, typed facade over the varstruct runtime package:
// a read-only <Name>View, a writable <Name>Mutable embedding it, Create
// constructors, and per-member getters/setters with checked and unchecked
// indexed variants.
type Generator struct {
	spec     *analyzer.StructSpec
	registry *analyzer.TypeRegistry
}

// NewGenerator creates a generator for one struct spec.
func NewGenerator(spec *analyzer.StructSpec, registry *analyzer.TypeRegistry) *Generator {
	return &Generator{spec: spec, registry: registry}
}

// NeedsMath reports whether the generated code references the math package
// (float members are reinterpreted via math.FloatNfrombits).
func (g *Generator) NeedsMath() bool {
	for _, m := range g.spec.Members {
		switch g.registry.ResolveType(m.ElemType) {
		case "float32", "float64":
			return true
		}
	}
	return false
}

// Generate returns the generated code for this struct (without package
// header/imports).
func (g *Generator) Generate() (string, error) {
	var out strings.Builder

	out.WriteString(g.generateLayoutVar())
	out.WriteString("\n")
	out.WriteString(g.generateSizeConsts())
	out.WriteString(g.generateViewTypes())
	out.WriteString("\n")
	out.WriteString(g.generateConstructors())
	out.WriteString("\n")
	out.WriteString(g.generateIntrospection())

	for _, m := range g.spec.Members {
		out.WriteString("\n")
		if m.Kind == parser.Scalar {
			out.WriteString(g.generateScalarAccessors(m))
		} else {
			out.WriteString(g.generateArrayAccessors(m))
		}
	}

	return out.String(), nil
}

// generateLayoutVar emits the shared package-level Layout declaration.
func (g *Generator) generateLayoutVar() string {
	var code strings.Builder

	name := g.spec.Name
	code.WriteString(fmt.Sprintf("// %sLayout is the shared, immutable layout for %s.\n", name, g.spec.GoName))
	code.WriteString(fmt.Sprintf("var %sLayout = varstruct.NewBuilder(%q).\n", name, name))
	for _, m := range g.spec.Members {
		if m.Kind == parser.Scalar {
			code.WriteString(fmt.Sprintf("\tScalar(%q, %d).\n", m.Name, m.ElemSize))
		} else {
			code.WriteString(fmt.Sprintf("\tArray(%q, %d).\n", m.Name, m.ElemSize))
		}
	}
	code.WriteString("\tMustBuild()\n")

	return code.String()
}

// generateSizeConsts emits a static size constant per scalar member,
// queryable with no view bound.
func (g *Generator) generateSizeConsts() string {
	var code strings.Builder

	for _, m := range g.spec.Members {
		if m.Kind != parser.Scalar {
			continue
		}
		code.WriteString(fmt.Sprintf("// %s%sSize is the static byte size of %s.\n",
			g.spec.Name, m.Name, m.Name))
		code.WriteString(fmt.Sprintf("const %s%sSize = %d\n\n", g.spec.Name, m.Name, m.ElemSize))
	}

	return code.String()
}

func (g *Generator) generateViewTypes() string {
	var code strings.Builder

	name := g.spec.Name
	code.WriteString(fmt.Sprintf("// %sView is a read-only view of a %s buffer. It has no setters.\n", name, g.spec.GoName))
	code.WriteString(fmt.Sprintf("type %sView struct {\n", name))
	code.WriteString("\tv varstruct.View\n")
	code.WriteString("}\n\n")

	code.WriteString(fmt.Sprintf("// %sMutable is a writable view of a %s buffer.\n", name, g.spec.GoName))
	code.WriteString(fmt.Sprintf("type %sMutable struct {\n", name))
	code.WriteString(fmt.Sprintf("\t%sView\n", name))
	code.WriteString("\tm varstruct.MutableView\n")
	code.WriteString("}\n")

	return code.String()
}

func (g *Generator) generateConstructors() string {
	var code strings.Builder

	name := g.spec.Name
	code.WriteString(fmt.Sprintf("// Create%s binds a writable buffer. sizes holds one element count per\n", name))
	code.WriteString("// array member, in declaration order; a count mismatch panics.\n")
	code.WriteString(fmt.Sprintf("func Create%s(buf []byte, sizes ...int) %sMutable {\n", name, name))
	code.WriteString(fmt.Sprintf("\tm := %sLayout.Bind(buf, sizes)\n", name))
	code.WriteString(fmt.Sprintf("\treturn %sMutable{%sView{m.View}, m}\n", name, name))
	code.WriteString("}\n\n")

	code.WriteString(fmt.Sprintf("// Create%sReadOnly binds a buffer that must not be written through the view.\n", name))
	code.WriteString(fmt.Sprintf("func Create%sReadOnly(buf []byte, sizes ...int) %sView {\n", name, name))
	code.WriteString(fmt.Sprintf("\treturn %sView{%sLayout.BindReadOnly(buf, sizes)}\n", name, name))
	code.WriteString("}\n")

	return code.String()
}

func (g *Generator) generateIntrospection() string {
	var code strings.Builder

	name := g.spec.Name
	code.WriteString(fmt.Sprintf("func (p %sView) NumMembers() int { return p.v.NumMembers() }\n", name))
	code.WriteString(fmt.Sprintf("func (p %sView) SizeBytes() int { return p.v.SizeBytes() }\n", name))

	return code.String()
}

// generateScalarAccessors emits Offset/getter (and setter on the mutable
// view) for one scalar member.
func (g *Generator) generateScalarAccessors(m analyzer.MemberSpec) string {
	var code strings.Builder

	name := g.spec.Name
	resolved := g.registry.ResolveType(m.ElemType)

	code.WriteString(fmt.Sprintf("// %s: %s scalar at a bind-time computed offset\n", m.Name, m.GoType))
	code.WriteString(fmt.Sprintf("func (p %sView) %sOffset() int { return p.v.Offset(%q) }\n", name, m.Name, m.Name))

	get, set, ok := scalarConv(resolved, m.GoType, m.Name)
	if !ok {
		// Opaque fixed-size blob: raw bytes in, raw bytes out.
		code.WriteString(fmt.Sprintf("func (p %sView) %s() []byte { return p.v.Bytes(%q) }\n", name, m.Name, m.Name))
		code.WriteString(fmt.Sprintf("func (p %sMutable) Set%s(x []byte) { p.m.SetBytes(%q, x) }\n", name, m.Name, m.Name))
		return code.String()
	}

	code.WriteString(fmt.Sprintf("func (p %sView) %s() %s { return %s }\n", name, m.Name, m.GoType, get))
	code.WriteString(fmt.Sprintf("func (p %sMutable) Set%s(x %s) { %s }\n", name, m.Name, m.GoType, set))

	return code.String()
}

// generateArrayAccessors emits Offset/Len/checked/unchecked element access
// for one array member.
func (g *Generator) generateArrayAccessors(m analyzer.MemberSpec) string {
	var code strings.Builder

	name := g.spec.Name
	resolved := g.registry.ResolveType(m.ElemType)

	code.WriteString(fmt.Sprintf("// %s: %s array, element count bound per instance\n", m.Name, m.GoType))
	code.WriteString(fmt.Sprintf("func (p %sView) %sOffset() int { return p.v.Offset(%q) }\n", name, m.Name, m.Name))
	code.WriteString(fmt.Sprintf("func (p %sView) %sLen() int { return p.v.ArrayLen(%q) }\n", name, m.Name, m.Name))

	get, set, ok := elemConv(resolved, m.ElemType, m.Name, true)
	if !ok {
		// Opaque fixed-size element blob: raw bytes in, raw bytes out.
		code.WriteString(fmt.Sprintf("func (p %sView) %s(i int) []byte { return p.v.ElemBytes(%q, i) }\n", name, m.Name, m.Name))
		code.WriteString(fmt.Sprintf("func (p %sView) %sUnchecked(i int) []byte { return p.v.ElemBytesUnchecked(%q, i) }\n", name, m.Name, m.Name))
		code.WriteString(fmt.Sprintf("func (p %sMutable) Set%s(i int, x []byte) { p.m.SetElemBytes(%q, i, x) }\n", name, m.Name, m.Name))
		code.WriteString(fmt.Sprintf("func (p %sMutable) Set%sUnchecked(i int, x []byte) { p.m.SetElemBytesUnchecked(%q, i, x) }\n", name, m.Name, m.Name))
		return code.String()
	}
	ugets, usets, _ := elemConv(resolved, m.ElemType, m.Name, false)

	code.WriteString(fmt.Sprintf("func (p %sView) %s(i int) %s { return %s }\n", name, m.Name, m.ElemType, get))
	code.WriteString(fmt.Sprintf("func (p %sView) %sUnchecked(i int) %s { return %s }\n", name, m.Name, m.ElemType, ugets))
	code.WriteString(fmt.Sprintf("func (p %sMutable) Set%s(i int, x %s) { %s }\n", name, m.Name, m.ElemType, set))
	code.WriteString(fmt.Sprintf("func (p %sMutable) Set%sUnchecked(i int, x %s) { %s }\n", name, m.Name, m.ElemType, usets))

	return code.String()
}

// scalarConv returns the getter expression and setter statement for a scalar
// member of a primitive resolved type. ok is false for opaque blob types.
func scalarConv(resolved, goType, member string) (get, set string, ok bool) {
	q := fmt.Sprintf("%q", member)
	switch resolved {
	case "uint8", "byte":
		return cast(goType, resolved, "p.v.Uint8("+q+")"),
			"p.m.SetUint8(" + q + ", " + uncast(goType, "uint8") + ")", true
	case "int8":
		return cast(goType, "int8", "int8(p.v.Uint8("+q+"))"),
			"p.m.SetUint8(" + q + ", uint8(" + uncast(goType, "int8") + "))", true
	case "bool":
		return "p.v.Uint8(" + q + ") != 0",
			"p.m.SetUint8(" + q + ", b2u8(x))", true
	case "uint16":
		return cast(goType, "uint16", "p.v.Uint16("+q+")"),
			"p.m.SetUint16(" + q + ", " + uncast(goType, "uint16") + ")", true
	case "int16":
		return cast(goType, "int16", "int16(p.v.Uint16("+q+"))"),
			"p.m.SetUint16(" + q + ", uint16(" + uncast(goType, "int16") + "))", true
	case "uint32":
		return cast(goType, "uint32", "p.v.Uint32("+q+")"),
			"p.m.SetUint32(" + q + ", " + uncast(goType, "uint32") + ")", true
	case "int32":
		return cast(goType, "int32", "int32(p.v.Uint32("+q+"))"),
			"p.m.SetUint32(" + q + ", uint32(" + uncast(goType, "int32") + "))", true
	case "float32":
		return "math.Float32frombits(p.v.Uint32(" + q + "))",
			"p.m.SetUint32(" + q + ", math.Float32bits(x))", true
	case "uint64":
		return cast(goType, "uint64", "p.v.Uint64("+q+")"),
			"p.m.SetUint64(" + q + ", " + uncast(goType, "uint64") + ")", true
	case "int64":
		return cast(goType, "int64", "int64(p.v.Uint64("+q+"))"),
			"p.m.SetUint64(" + q + ", uint64(" + uncast(goType, "int64") + "))", true
	case "float64":
		return "math.Float64frombits(p.v.Uint64(" + q + "))",
			"p.m.SetUint64(" + q + ", math.Float64bits(x))", true
	}
	return "", "", false
}

// elemConv is scalarConv for array elements; checked selects the At or
// AtUnchecked runtime accessor.
func elemConv(resolved, elemType, member string, checked bool) (get, set string, ok bool) {
	q := fmt.Sprintf("%q", member)
	suffix := "At"
	if !checked {
		suffix = "AtUnchecked"
	}
	switch resolved {
	case "uint8", "byte":
		return cast(elemType, resolved, "p.v.Uint8"+suffix+"("+q+", i)"),
			"p.m.SetUint8" + suffix + "(" + q + ", i, " + uncast(elemType, "uint8") + ")", true
	case "int8":
		return cast(elemType, "int8", "int8(p.v.Uint8"+suffix+"("+q+", i))"),
			"p.m.SetUint8" + suffix + "(" + q + ", i, uint8(" + uncast(elemType, "int8") + "))", true
	case "bool":
		return "p.v.Uint8" + suffix + "(" + q + ", i) != 0",
			"p.m.SetUint8" + suffix + "(" + q + ", i, b2u8(x))", true
	case "uint16":
		return cast(elemType, "uint16", "p.v.Uint16"+suffix+"("+q+", i)"),
			"p.m.SetUint16" + suffix + "(" + q + ", i, " + uncast(elemType, "uint16") + ")", true
	case "int16":
		return cast(elemType, "int16", "int16(p.v.Uint16"+suffix+"("+q+", i))"),
			"p.m.SetUint16" + suffix + "(" + q + ", i, uint16(" + uncast(elemType, "int16") + "))", true
	case "uint32":
		return cast(elemType, "uint32", "p.v.Uint32"+suffix+"("+q+", i)"),
			"p.m.SetUint32" + suffix + "(" + q + ", i, " + uncast(elemType, "uint32") + ")", true
	case "int32":
		return cast(elemType, "int32", "int32(p.v.Uint32"+suffix+"("+q+", i))"),
			"p.m.SetUint32" + suffix + "(" + q + ", i, uint32(" + uncast(elemType, "int32") + "))", true
	case "float32":
		return "math.Float32frombits(p.v.Uint32" + suffix + "(" + q + ", i))",
			"p.m.SetUint32" + suffix + "(" + q + ", i, math.Float32bits(x))", true
	case "uint64":
		return cast(elemType, "uint64", "p.v.Uint64"+suffix+"("+q+", i)"),
			"p.m.SetUint64" + suffix + "(" + q + ", i, " + uncast(elemType, "uint64") + ")", true
	case "int64":
		return cast(elemType, "int64", "int64(p.v.Uint64"+suffix+"("+q+", i))"),
			"p.m.SetUint64" + suffix + "(" + q + ", i, uint64(" + uncast(elemType, "int64") + "))", true
	case "float64":
		return "math.Float64frombits(p.v.Uint64" + suffix + "(" + q + ", i))",
			"p.m.SetUint64" + suffix + "(" + q + ", i, math.Float64bits(x))", true
	}
	return "", "", false
}

// cast wraps expr in a conversion to goType when the declared type is an
// alias of the resolved primitive.
func cast(goType, resolved, expr string) string {
	if goType == resolved {
		return expr
	}
	return goType + "(" + expr + ")"
}

// uncast converts the setter argument x back to the resolved primitive.
func uncast(goType, resolved string) string {
	if goType == resolved {
		return "x"
	}
	return resolved + "(x)"
}
