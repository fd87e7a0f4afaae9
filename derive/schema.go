package derive

import (
	"go/ast"
	"go/token"
)

// Shape describes how the fields of a type are addressed.
type Shape int

const (
	// ShapeUnsupported is a type with no fields, or not a struct at all.
	ShapeUnsupported Shape = iota
	// ShapeNamed is a struct type; fields are addressed by name.
	ShapeNamed
	// ShapeUnnamed is a fixed-length array type; elements are addressed by index.
	ShapeUnnamed
)

func (s Shape) String() string {
	switch s {
	case ShapeNamed:
		return "named"
	case ShapeUnnamed:
		return "unnamed"
	default:
		return "unsupported"
	}
}

// Struct is the schema of one type to generate an interpolation method for.
// It is produced by ParseFile and consumed by Generator.
type Struct struct {
	Name string
	// TypeParams holds the names of the type's type parameters, in order.
	TypeParams []string
	Shape      Shape
	Fields     []Field
	// Imports maps the local package names of the declaring file to import paths,
	// for rendering qualified field types.
	Imports map[string]string
	Pos     token.Position
	// Reason explains a ShapeUnsupported shape.
	Reason string
	// NoMethods is set for interface, pointer and alias types, which cannot
	// declare methods and therefore get no fallback either.
	NoMethods bool
}

// Field is one field of a Struct, in declaration order.
type Field struct {
	// Name is empty for positional elements and blank fields.
	Name     string
	Index    int
	Embedded bool
	Type     ast.Expr
	// Directives holds every raw directive occurrence found on the field.
	Directives []Directive
	Pos        token.Position
	// TypePos is the position of Type.
	TypePos token.Position
}

// DirectiveSource tells where a directive occurrence was written.
type DirectiveSource int

const (
	// SourceTag is a struct tag entry, lerp:"..."
	SourceTag DirectiveSource = iota
	// SourceComment is a field comment line, //lerp:field ...
	SourceComment
)

// Directive is one unparsed directive occurrence.
type Directive struct {
	Text   string
	Pos    token.Position
	Source DirectiveSource
}
