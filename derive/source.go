package derive

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/fatih/structtag"

	"github.com/teranos/lerp/errors"
)

// Comment directives.
const (
	// DeriveMarker in a type's doc comment selects the type for generation.
	DeriveMarker = "//lerp:derive"
	// FieldMarker on a field carries a directive, like a struct tag entry does.
	FieldMarker = "//lerp:field"
)

// DefaultTag is the struct tag key read when Selection.Tag is empty.
const DefaultTag = "lerp"

// Selection chooses which types of a package are generated.
type Selection struct {
	// Types are generated whether or not they carry DeriveMarker.
	Types []string
	// Tag is the struct tag key holding directives.
	Tag string
}

func (sel Selection) tag() string {
	if sel.Tag == "" {
		return DefaultTag
	}
	return sel.Tag
}

func (sel Selection) wants(name string) bool {
	for _, t := range sel.Types {
		if t == name {
			return true
		}
	}
	return false
}

// ParseSource parses src as a Go file and returns the schemas of its selected types.
func ParseSource(fset *token.FileSet, filename string, src any, sel Selection) ([]*Struct, error) {
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", filename)
	}
	return ParseFile(fset, file, sel)
}

// ParseFile returns the schemas of the selected types declared in file, in
// declaration order. file must have been parsed with parser.ParseComments.
func ParseFile(fset *token.FileSet, file *ast.File, sel Selection) ([]*Struct, error) {
	imports := importsOf(file)

	var structs []*Struct
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}
			if !hasMarker(doc, DeriveMarker) && !sel.wants(ts.Name.Name) {
				continue
			}
			s, err := buildStruct(fset, ts, sel.tag())
			if err != nil {
				return nil, err
			}
			s.Imports = imports
			structs = append(structs, s)
		}
	}
	return structs, nil
}

func buildStruct(fset *token.FileSet, ts *ast.TypeSpec, tagKey string) (*Struct, error) {
	s := &Struct{
		Name: ts.Name.Name,
		Pos:  fset.Position(ts.Name.Pos()),
	}
	if ts.TypeParams != nil {
		for _, field := range ts.TypeParams.List {
			for _, name := range field.Names {
				s.TypeParams = append(s.TypeParams, name.Name)
			}
		}
	}

	if ts.Assign.IsValid() {
		s.Reason = "alias types cannot declare methods"
		s.NoMethods = true
		return s, nil
	}

	switch t := unparen(ts.Type).(type) {
	case *ast.StructType:
		if t.Fields == nil || len(t.Fields.List) == 0 {
			s.Reason = s.Name + " has no fields"
			return s, nil
		}
		s.Shape = ShapeNamed
		return s, collectFields(fset, s, t.Fields.List, tagKey)

	case *ast.ArrayType:
		n, reason := arrayLen(t)
		if reason != "" {
			s.Reason = reason
			return s, nil
		}
		s.Shape = ShapeUnnamed
		pos := fset.Position(t.Elt.Pos())
		for i := 0; i < n; i++ {
			s.Fields = append(s.Fields, Field{Index: i, Type: t.Elt, Pos: pos, TypePos: pos})
		}
		return s, nil

	case *ast.InterfaceType:
		s.Reason = s.Name + " is an interface"
		s.NoMethods = true
		return s, nil

	case *ast.StarExpr:
		s.Reason = s.Name + " is a pointer type"
		s.NoMethods = true
		return s, nil

	default:
		s.Reason = s.Name + " is not a struct"
		return s, nil
	}
}

// arrayLen returns the length of a fixed-size array type, or why it cannot be used.
func arrayLen(t *ast.ArrayType) (int, string) {
	if t.Len == nil {
		return 0, "slice types have no fixed length"
	}
	lit, ok := t.Len.(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return 0, "array length must be an integer literal"
	}
	n, err := strconv.ParseInt(lit.Value, 0, 32)
	if err != nil {
		return 0, "array length must be an integer literal"
	}
	if n == 0 {
		return 0, "zero-length array"
	}
	return int(n), ""
}

func collectFields(fset *token.FileSet, s *Struct, list []*ast.Field, tagKey string) error {
	index := 0
	for _, f := range list {
		directives, err := fieldDirectives(fset, f, tagKey)
		if err != nil {
			return err
		}
		typePos := fset.Position(f.Type.Pos())

		if len(f.Names) == 0 {
			s.Fields = append(s.Fields, Field{
				Name:       embeddedName(f.Type),
				Index:      index,
				Embedded:   true,
				Type:       f.Type,
				Directives: directives,
				Pos:        typePos,
				TypePos:    typePos,
			})
			index++
			continue
		}

		for _, name := range f.Names {
			field := Field{
				Name:       name.Name,
				Index:      index,
				Type:       f.Type,
				Directives: directives,
				Pos:        fset.Position(name.Pos()),
				TypePos:    typePos,
			}
			if field.Name == "_" {
				field.Name = ""
			}
			s.Fields = append(s.Fields, field)
			index++
		}
	}
	return nil
}

// embeddedName is the implicit field name of an embedded type.
func embeddedName(typ ast.Expr) string {
	switch t := typ.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.ParenExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	default:
		return ""
	}
}

// fieldDirectives collects every directive occurrence of f in source order:
// doc comment lines, struct tag entries, then the trailing comment.
func fieldDirectives(fset *token.FileSet, f *ast.Field, tagKey string) ([]Directive, error) {
	directives := commentDirectives(fset, f.Doc)
	if f.Tag != nil {
		tagged, err := tagDirectives(fset, f.Tag, tagKey)
		if err != nil {
			return nil, err
		}
		directives = append(directives, tagged...)
	}
	return append(directives, commentDirectives(fset, f.Comment)...), nil
}

func commentDirectives(fset *token.FileSet, group *ast.CommentGroup) []Directive {
	if group == nil {
		return nil
	}
	var directives []Directive
	for _, c := range group.List {
		rest, ok := strings.CutPrefix(c.Text, FieldMarker)
		if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
			continue
		}
		text := strings.TrimLeft(rest, " \t")
		offset := len(c.Text) - len(text)
		directives = append(directives, Directive{
			Text:   strings.TrimRight(text, " \t"),
			Pos:    fset.Position(c.Pos() + token.Pos(offset)),
			Source: SourceComment,
		})
	}
	return directives
}

// tagDirectives returns one occurrence per key entry in the tag, repeated keys included.
func tagDirectives(fset *token.FileSet, lit *ast.BasicLit, key string) ([]Directive, error) {
	raw, err := strconv.Unquote(lit.Value)
	if err != nil {
		return nil, newDiagnostic(ErrMalformedDirective, fset.Position(lit.Pos()), "malformed struct tag %s", lit.Value)
	}
	tags, err := structtag.Parse(raw)
	if err != nil {
		return nil, newDiagnostic(ErrMalformedDirective, fset.Position(lit.Pos()), "malformed struct tag: %v", err)
	}
	if tags == nil {
		return nil, nil
	}

	// Offsets are only meaningful when the literal is the tag verbatim.
	verbatim := strings.HasPrefix(lit.Value, "`")
	offsets := tagValueOffsets(raw, key)

	var directives []Directive
	n := 0
	for _, tag := range tags.Tags() {
		if tag.Key != key {
			continue
		}
		pos := fset.Position(lit.Pos())
		if verbatim && n < len(offsets) {
			pos = fset.Position(lit.Pos() + token.Pos(1+offsets[n]))
		}
		directives = append(directives, Directive{Text: tag.Value(), Pos: pos, Source: SourceTag})
		n++
	}
	return directives, nil
}

// tagValueOffsets finds the start of the quoted value of every key entry in tag.
func tagValueOffsets(tag, key string) []int {
	prefix := key + `:"`
	var offsets []int
	for i := 0; i+len(prefix) <= len(tag); i++ {
		if (i == 0 || tag[i-1] == ' ') && strings.HasPrefix(tag[i:], prefix) {
			offsets = append(offsets, i+len(prefix))
		}
	}
	return offsets
}

func hasMarker(group *ast.CommentGroup, marker string) bool {
	if group == nil {
		return false
	}
	for _, c := range group.List {
		if strings.TrimRight(c.Text, " \t") == marker {
			return true
		}
	}
	return false
}
