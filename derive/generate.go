package derive

import (
	"bytes"
	"fmt"
	"go/token"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"

	"github.com/teranos/lerp/errors"
	"github.com/teranos/lerp/logger"
)

// GeneratedHeader is the first line of every file lerpgen writes.
const GeneratedHeader = "Code generated by lerpgen. DO NOT EDIT."

// Names used inside generated methods.
const (
	otherParam = "other"
	tParam     = "t"
)

// Options configures a Generator. Empty strings take the defaults below.
type Options struct {
	// Param is the type of the interpolation parameter t. Default float64.
	Param string
	// Method is the name of the generated method. Default Lerp.
	Method string
	// Runtime is the import path of the lerp runtime package.
	Runtime string
	// Fallback emits a panicking method for every type that failed to generate,
	// so the rest of the package keeps compiling.
	Fallback bool
	Logger   *zap.SugaredLogger
}

// Generator renders interpolation methods from Struct schemas.
// It holds no state between calls and performs no I/O.
type Generator struct {
	opts Options
	log  *zap.SugaredLogger
}

// New returns a Generator for opts.
func New(opts Options) *Generator {
	if opts.Param == "" {
		opts.Param = "float64"
	}
	if opts.Method == "" {
		opts.Method = "Lerp"
	}
	if opts.Runtime == "" {
		opts.Runtime = "github.com/teranos/lerp"
	}
	log := opts.Logger
	if log == nil {
		log = logger.ComponentLogger("derive")
	}
	return &Generator{opts: opts, log: log}
}

// Output is one rendered file.
type Output struct {
	Source []byte
	// Generated lists the types whose method was generated successfully.
	Generated []string
	// Diagnostics holds one entry per type that failed, in input order.
	Diagnostics []*Diagnostic
}

// Failed reports whether any type failed to generate.
func (o *Output) Failed() bool {
	return len(o.Diagnostics) > 0
}

// File renders the methods for structs into a single Go file of package pkg.
// Types that fail get a diagnostic and, with Options.Fallback, a placeholder
// method. The returned error is reserved for rendering failures.
func (g *Generator) File(pkg string, structs []*Struct) (*Output, error) {
	f := jen.NewFile(pkg)
	f.HeaderComment(GeneratedHeader)
	for _, s := range structs {
		for name, path := range s.Imports {
			registerImport(f, path, name)
		}
	}
	registerImport(f, g.opts.Runtime, "lerp")

	out := &Output{}
	for _, s := range structs {
		code, err := g.Struct(s)
		if err != nil {
			d := asDiagnostic(err, s.Pos)
			out.Diagnostics = append(out.Diagnostics, d)
			g.log.Debugw("generation failed",
				logger.FieldType, s.Name,
				logger.FieldShape, s.Shape.String(),
				logger.FieldFile, d.Pos.Filename,
				logger.FieldLine, d.Pos.Line,
				logger.FieldErrorKind, d.Kind.Error(),
				logger.FieldError, d.Msg,
			)
			if g.opts.Fallback && !s.NoMethods {
				f.Add(g.Fallback(s, err))
				f.Line()
			}
			continue
		}
		out.Generated = append(out.Generated, s.Name)
		f.Add(code)
		f.Line()
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, errors.Wrapf(err, "failed to render package %s", pkg)
	}
	out.Source = buf.Bytes()
	return out, nil
}

// Struct renders the interpolation method of one type. Every field is examined
// even after a failure; the first failure in declaration order is returned.
func (g *Generator) Struct(s *Struct) (jen.Code, error) {
	if s.Shape == ShapeUnsupported || len(s.Fields) == 0 {
		msg := "struct must have fields"
		if s.Reason != "" {
			msg += ": " + s.Reason
		}
		return nil, newDiagnostic(ErrMalformedStructShape, s.Pos, "%s", msg)
	}

	e := &emitter{gen: g, s: s, recv: receiverName(s.Name), log: logger.ChildLogger(g.log, logger.FieldType, s.Name)}
	var (
		items []jen.Code
		first error
	)
	for _, field := range s.Fields {
		item, err := e.field(field)
		if err != nil {
			if first == nil {
				first = err
			}
			continue
		}
		items = append(items, item)
	}
	if first != nil {
		return nil, first
	}

	lit := jen.Add(e.self()).Custom(jen.Options{
		Open:      "{",
		Close:     "}",
		Separator: ",",
		Multi:     true,
	}, items...)

	doc := fmt.Sprintf("%s interpolates every field of %s between %s and %s.", g.opts.Method, s.Name, e.recv, otherParam)
	return e.signature(jen.Comment(doc).Line()).Block(jen.Return(lit)), nil
}

// Fallback renders a method with the signature Struct would have produced and a
// body that panics with err.
func (g *Generator) Fallback(s *Struct, err error) jen.Code {
	e := &emitter{gen: g, s: s, recv: receiverName(s.Name)}
	msg := err.Error()
	var d *Diagnostic
	if errors.As(err, &d) {
		msg = d.Msg
	}
	doc := fmt.Sprintf("%s could not be generated for %s; calling it panics.", g.opts.Method, s.Name)
	return e.signature(jen.Comment(doc).Line()).Block(
		jen.Panic(jen.Lit(fmt.Sprintf("lerp: %s.%s was not generated: %s", s.Name, g.opts.Method, msg))),
	)
}

// emitter renders the method of a single Struct.
type emitter struct {
	gen  *Generator
	s    *Struct
	recv string
	log  *zap.SugaredLogger
}

// self is the type itself, with its type parameters.
func (e *emitter) self() *jen.Statement {
	s := jen.Id(e.s.Name)
	if len(e.s.TypeParams) == 0 {
		return s
	}
	params := make([]jen.Code, len(e.s.TypeParams))
	for i, name := range e.s.TypeParams {
		params[i] = jen.Id(name)
	}
	return s.Types(params...)
}

// signature appends "func (v T) Lerp(other T, t F) T" to stmt.
func (e *emitter) signature(stmt *jen.Statement) *jen.Statement {
	return stmt.Func().
		Params(jen.Id(e.recv).Add(e.self())).
		Id(e.gen.opts.Method).
		Params(jen.Id(otherParam).Add(e.self()), jen.Id(tParam).Id(e.gen.opts.Param)).
		Add(e.self())
}

func (e *emitter) field(f Field) (jen.Code, error) {
	var left, right jen.Code
	switch e.s.Shape {
	case ShapeNamed:
		if f.Name == "" || f.Name == "_" {
			return nil, newDiagnostic(ErrFieldNotNamed, f.Pos, "all fields must be named in the struct")
		}
		left = jen.Id(e.recv).Dot(f.Name)
		right = jen.Id(otherParam).Dot(f.Name)
	default:
		left = jen.Id(e.recv).Index(jen.Lit(f.Index))
		right = jen.Id(otherParam).Index(jen.Lit(f.Index))
	}

	dec, err := Interpret(f.Directives)
	if err != nil {
		return nil, err
	}
	c, err := Classify(f.Type, dec)
	if err != nil {
		if d, ok := err.(*Diagnostic); ok && !d.Pos.IsValid() {
			d.Pos = f.TypePos
		}
		return nil, err
	}

	e.log.Debugw("field classified",
		logger.FieldField, fieldLabel(f),
		logger.FieldStrategy, c.Kind.String(),
		logger.FieldScalar, c.Scalar,
	)

	expr := e.expr(c, left, right, 0)
	if e.s.Shape == ShapeNamed {
		return jen.Id(f.Name).Op(":").Add(expr), nil
	}
	return expr, nil
}

// expr renders the interpolation of left towards right. depth numbers the
// variables of nested closures so they never shadow each other.
func (e *emitter) expr(c *Classification, left, right jen.Code, depth int) jen.Code {
	rt := e.gen.opts.Runtime
	method := e.gen.opts.Method

	switch c.Kind {
	case KindSkip:
		return left

	case KindExplicitScalar:
		cast := jen.Qual(rt, "Cast").Index(pathCode(c.Scalar, e.s.Imports)).Call(jen.Id(tParam))
		if c.Builtin {
			return jen.Qual(rt, "Lerp").Call(left, right, cast)
		}
		return jen.Add(left).Dot(method).Call(right, cast)

	case KindGenericFloat:
		return jen.Add(left).Dot(method).Call(right, jen.Id(tParam))

	case KindPointer:
		a, b := numbered("a", depth), numbered("b", depth)
		elem := typeCode(c.Type, e.s.Imports)
		fn := jen.Func().
			Params(jen.Id(a), jen.Id(b).Add(elem)).
			Add(elem).
			Block(jen.Return(e.expr(c.Elem, jen.Id(a), jen.Id(b), depth+1)))
		return jen.Qual(rt, "Ref").Call(left, right, fn)

	case KindArray:
		i, out := numbered("i", depth), numbered("out", depth)
		elem := e.expr(c.Elem,
			jen.Add(left).Index(jen.Id(i)),
			jen.Add(right).Index(jen.Id(i)),
			depth+1)
		return jen.Func().Params().Params(jen.Id(out).Add(typeCode(c.Type, e.s.Imports))).Block(
			jen.For(jen.Id(i).Op(":=").Range().Id(out)).Block(
				jen.Id(out).Index(jen.Id(i)).Op("=").Add(elem),
			),
			jen.Return(),
		).Call()

	default:
		panic(fmt.Sprintf("derive: unknown kind %d", c.Kind))
	}
}

// Closure and loop variables, and the parameter t, must not collide with the receiver.
var reservedReceivers = map[string]bool{"a": true, "b": true, "i": true, tParam: true}

// receiverName is the lowercased first letter of the type name.
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	name := string(unicode.ToLower(r))
	if reservedReceivers[name] || !token.IsIdentifier(name) {
		return "v"
	}
	return name
}

func numbered(base string, depth int) string {
	if depth == 0 {
		return base
	}
	return fmt.Sprintf("%s%d", base, depth)
}

func fieldLabel(f Field) string {
	if f.Name != "" {
		return f.Name
	}
	return fmt.Sprintf("%d", f.Index)
}

// registerImport makes f refer to path by name, writing an alias only when
// name is not what the path suggests.
func registerImport(f *jen.File, path, name string) {
	if packageNameGuess(path) == name {
		f.ImportName(path, name)
		return
	}
	f.ImportAlias(path, name)
}

// asDiagnostic anchors a non-diagnostic error at pos.
func asDiagnostic(err error, pos token.Position) *Diagnostic {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d
	}
	return &Diagnostic{Kind: err, Pos: pos, Msg: err.Error()}
}
