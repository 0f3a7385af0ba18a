package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"
)

// StructDecl represents a parsed struct with a @varstruct annotation.
type StructDecl struct {
	Name    string
	Anno    *Annotation
	Members []MemberDecl
}

// MemberDecl is one declared member, in declaration order.
type MemberDecl struct {
	Name   string
	GoType string // as written; array members are slice types like "[]byte"
	Kind   MemberKind
}

// ParseFile parses a Go source file and extracts structs with @varstruct
// annotations.
func ParseFile(filename string) ([]*StructDecl, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return extractDecls(file)
}

func extractDecls(file *ast.File) ([]*StructDecl, error) {
	var decls []*StructDecl

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue // Not a struct
			}

			// Extract @varstruct annotation from comments directly above type
			anno := extractAnnotation(genDecl.Doc)
			if anno == nil {
				continue // No @varstruct, skip this type
			}

			members, err := extractMembers(structType)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", typeSpec.Name.Name, err)
			}

			decls = append(decls, &StructDecl{
				Name:    typeSpec.Name.Name,
				Anno:    anno,
				Members: members,
			})
		}
	}

	return decls, nil
}

func extractAnnotation(doc *ast.CommentGroup) *Annotation {
	if doc == nil {
		return nil
	}

	var lines []string
	for _, comment := range doc.List {
		lines = append(lines, CleanComment(comment.Text))
	}

	anno, found := FindAnnotation(lines)
	if !found {
		return nil
	}

	return anno
}

func extractMembers(structType *ast.StructType) ([]MemberDecl, error) {
	var members []MemberDecl

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			continue // Embedded field, skip
		}

		if field.Tag == nil {
			continue // Untagged field, not a varstruct member
		}

		tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
		vsTag := tag.Get("varstruct")
		if vsTag == "" {
			continue
		}

		kind, err := ParseTag(vsTag)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Names[0].Name, err)
		}

		members = append(members, MemberDecl{
			Name:   field.Names[0].Name,
			GoType: typeToString(field.Type),
			Kind:   kind,
		})
	}

	return members, nil
}

// typeToString converts an AST type expression to a string.
// Only supports types with a defined binary layout.
func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		// Simple type: uint16, PacketHeader, etc.
		return t.Name

	case *ast.ArrayType:
		if t.Len == nil {
			// Slice: []byte, []PacketHeader
			return "[]" + typeToString(t.Elt)
		}
		// Array: [8]byte
		return fmt.Sprintf("[%s]%s", exprToString(t.Len), typeToString(t.Elt))

	case *ast.StarExpr:
		// Pointer: *Node (not supported for binary layout)
		return "*" + typeToString(t.X)

	default:
		return "unknown"
	}
}

func exprToString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return e.Value
	case *ast.Ident:
		return e.Name
	default:
		return "?"
	}
}
