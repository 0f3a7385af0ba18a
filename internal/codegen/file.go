package codegen

import (
	"fmt"
	"go/format"
	"strings"

	"go.uber.org/zap"

	"github.com/alexhholmes/varstruct/internal/analyzer"
)

const runtimeImport = "github.com/alexhholmes/varstruct"

// GenerateFile assembles a complete generated source file for the given
// specs: header, package clause, imports, and one accessor block per struct.
func GenerateFile(pkg string, specs []*analyzer.StructSpec, registry *analyzer.TypeRegistry) (string, error) {
	if pkg == "" {
		return "", fmt.Errorf("package name is required")
	}
	if len(specs) == 0 {
		return "", fmt.Errorf("no varstruct declarations to generate")
	}

	var out strings.Builder

	out.WriteString("// Code generated by varstruct-gen. DO NOT EDIT.\n\n")
	out.WriteString(fmt.Sprintf("package %s\n\n", pkg))

	needsMath := false
	needsBool := false
	var blocks []string
	for _, spec := range specs {
		g := NewGenerator(spec, registry)
		block, err := g.Generate()
		if err != nil {
			return "", fmt.Errorf("generate %s: %w", spec.Name, err)
		}
		blocks = append(blocks, block)
		needsMath = needsMath || g.NeedsMath()
		needsBool = needsBool || g.needsBool()
		Logger().Debug("generated accessors",
			zap.String("struct", spec.Name),
			zap.Int("members", len(spec.Members)))
	}

	out.WriteString("import (\n")
	if needsMath {
		out.WriteString("\t\"math\"\n\n")
	}
	out.WriteString(fmt.Sprintf("\tvarstruct %q\n", runtimeImport))
	out.WriteString(")\n\n")

	if needsBool {
		out.WriteString("func b2u8(b bool) uint8 {\n")
		out.WriteString("\tif b {\n\t\treturn 1\n\t}\n\treturn 0\n")
		out.WriteString("}\n\n")
	}

	out.WriteString(strings.Join(blocks, "\n"))

	// Emitted text is already near-canonical; formatting guarantees the file
	// is exactly what gofmt would produce.
	formatted, err := format.Source([]byte(out.String()))
	if err != nil {
		return "", fmt.Errorf("format generated code: %w", err)
	}
	return string(formatted), nil
}

// needsBool reports whether the generated code uses the b2u8 helper.
func (g *Generator) needsBool() bool {
	for _, m := range g.spec.Members {
		if g.registry.ResolveType(m.ElemType) == "bool" {
			return true
		}
	}
	return false
}
