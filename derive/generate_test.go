package derive

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/teranos/lerp/errors"
)

func generate(t *testing.T, src string, opts Options) *Output {
	t.Helper()
	structs := parseSource(t, src, Selection{})
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	out, err := New(opts).File("shapes", structs)
	require.NoError(t, err)
	return out
}

// methods maps receiver type names to their method, printed without
// whitespace so formatting differences do not matter.
func methods(t *testing.T, src []byte) map[string]string {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, 0)
	require.NoError(t, err, string(src))

	out := make(map[string]string)
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil {
			continue
		}
		var buf bytes.Buffer
		require.NoError(t, printer.Fprint(&buf, fset, fn))
		recv, _, _ := strings.Cut(types.ExprString(fn.Recv.List[0].Type), "[")
		out[recv] = compact(buf.String())
	}
	return out
}

func fmtCode(code jen.Code) string {
	return fmt.Sprintf("%#v", code)
}

func compact(s string) string {
	s = strings.Join(strings.Fields(s), "")
	s = strings.ReplaceAll(s, ",}", "}")
	return strings.ReplaceAll(s, ",)", ")")
}

func TestGenerate_Named(t *testing.T) {
	out := generate(t, `package shapes

//lerp:derive
type Data struct {
	A float64
	B float32
}
`, Options{})
	require.False(t, out.Failed())
	assert.Equal(t, []string{"Data"}, out.Generated)

	src := string(out.Source)
	assert.True(t, strings.HasPrefix(src, "// Code generated by lerpgen. DO NOT EDIT.\n"))
	assert.Contains(t, src, `import "github.com/teranos/lerp"`)
	assert.Contains(t, src, "// Lerp interpolates every field of Data between d and other.")
	assert.Equal(t,
		compact(`func (d Data) Lerp(other Data, t float64) Data {
			return Data{
				A: lerp.Lerp(d.A, other.A, lerp.Cast[float64](t)),
				B: lerp.Lerp(d.B, other.B, lerp.Cast[float32](t)),
			}
		}`),
		methods(t, out.Source)["Data"])
}

func TestGenerate_Positional(t *testing.T) {
	out := generate(t, `package shapes

//lerp:derive
type Data [2]float64
`, Options{})
	require.False(t, out.Failed())
	assert.Equal(t,
		compact(`func (d Data) Lerp(other Data, t float64) Data {
			return Data{
				lerp.Lerp(d[0], other[0], lerp.Cast[float64](t)),
				lerp.Lerp(d[1], other[1], lerp.Cast[float64](t)),
			}
		}`),
		methods(t, out.Source)["Data"])
}

func TestGenerate_Options(t *testing.T) {
	out := generate(t, `package shapes

//lerp:derive
type Color struct {
	R float32
	Tint Tint
}
`, Options{Param: "float32", Method: "Mix", Runtime: "example.com/interp"})
	require.False(t, out.Failed())

	src := string(out.Source)
	assert.Contains(t, src, `lerp "example.com/interp"`)
	assert.Equal(t,
		compact(`func (c Color) Mix(other Color, t float32) Color {
			return Color{
				R: lerp.Lerp(c.R, other.R, lerp.Cast[float32](t)),
				Tint: c.Tint.Mix(other.Tint, t),
			}
		}`),
		methods(t, out.Source)["Color"])
}

func TestGenerate_QualifiedOverride(t *testing.T) {
	out := generate(t, `package shapes

import (
	"example.com/units"
	geo "example.com/geometry/v2"
)

//lerp:derive
type Probe struct {
	Depth units.Meters `+"`lerp:\"units.Scalar\"`"+`
	At    *geo.Point
}
`, Options{})
	require.False(t, out.Failed(), "%v", out.Diagnostics)

	src := string(out.Source)
	assert.Contains(t, src, `"example.com/units"`)
	assert.Contains(t, src, `geo "example.com/geometry/v2"`)
	assert.Equal(t,
		compact(`func (p Probe) Lerp(other Probe, t float64) Probe {
			return Probe{
				Depth: p.Depth.Lerp(other.Depth, lerp.Cast[units.Scalar](t)),
				At: lerp.Ref(p.At, other.At, func(a, b geo.Point) geo.Point {
					return a.Lerp(b, t)
				}),
			}
		}`),
		methods(t, out.Source)["Probe"])
}

func TestGenerate_NestedWrappers(t *testing.T) {
	out := generate(t, `package shapes

//lerp:derive
type Path struct {
	Points [2]*[3]float32
}
`, Options{})
	require.False(t, out.Failed(), "%v", out.Diagnostics)
	assert.Equal(t,
		compact(`func (p Path) Lerp(other Path, t float64) Path {
			return Path{
				Points: func() (out [2]*[3]float32) {
					for i := range out {
						out[i] = lerp.Ref(p.Points[i], other.Points[i], func(a1, b1 [3]float32) [3]float32 {
							return func() (out2 [3]float32) {
								for i2 := range out2 {
									out2[i2] = lerp.Lerp(a1[i2], b1[i2], lerp.Cast[float32](t))
								}
								return
							}()
						})
					}
					return
				}(),
			}
		}`),
		methods(t, out.Source)["Path"])
}

func TestGenerate_GenericStruct(t *testing.T) {
	out := generate(t, `package shapes

//lerp:derive
type Pair[T any, U any] struct {
	First  T
	Second U
}
`, Options{})
	require.False(t, out.Failed())
	assert.Equal(t,
		compact(`func (p Pair[T, U]) Lerp(other Pair[T, U], t float64) Pair[T, U] {
			return Pair[T, U]{
				First: p.First.Lerp(other.First, t),
				Second: p.Second.Lerp(other.Second, t),
			}
		}`),
		methods(t, out.Source)["Pair"])
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		kind    error
		message string
	}{
		{
			name: "duplicate directive",
			src: `package shapes

//lerp:derive
type Data struct {
	A float64 ` + "`lerp:\"skip\"`" + ` //lerp:field float32
}
`,
			kind:    ErrDuplicateDirective,
			message: "shapes.go:5:39: found duplicate attribute on field, consolidate the attributes into one",
		},
		{
			name: "no fields",
			src: `package shapes

//lerp:derive
type Data struct{}
`,
			kind:    ErrMalformedStructShape,
			message: "shapes.go:4:6: struct must have fields: Data has no fields",
		},
		{
			name: "not a struct",
			src: `package shapes

//lerp:derive
type Data float64
`,
			kind:    ErrMalformedStructShape,
			message: "shapes.go:4:6: struct must have fields: Data is not a struct",
		},
		{
			name: "blank field",
			src: `package shapes

//lerp:derive
type Data struct {
	_ float64
}
`,
			kind:    ErrFieldNotNamed,
			message: "shapes.go:5:2: all fields must be named in the struct",
		},
		{
			name: "unsupported field type",
			src: `package shapes

//lerp:derive
type Data struct {
	Samples []float64
}
`,
			kind:    ErrUnsupportedFieldShape,
			message: "shapes.go:5:10: unsupported type []float64",
		},
		{
			name: "malformed directive",
			src: `package shapes

//lerp:derive
type Data struct {
	A float64 ` + "`lerp:\"skip float32\"`" + `
}
`,
			kind:    ErrMalformedDirective,
			message: "shapes.go:5:24: expected ',' in lerp directive, found 'float32'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := generate(t, tt.src, Options{Fallback: true})
			require.True(t, out.Failed())
			require.Len(t, out.Diagnostics, 1)
			assert.Empty(t, out.Generated)

			d := out.Diagnostics[0]
			assert.True(t, errors.Is(d, tt.kind), "want %v, got %v", tt.kind, d.Kind)
			assert.Equal(t, tt.message, d.Error())

			src := string(out.Source)
			assert.Contains(t, src, "func (d Data) Lerp(other Data, t float64) Data {")
			assert.Contains(t, src, `panic("lerp: Data.Lerp was not generated: `+d.Msg+`")`)
			methods(t, out.Source)
		})
	}
}

func TestGenerate_FirstErrorWins(t *testing.T) {
	out := generate(t, `package shapes

//lerp:derive
type Data struct {
	A float64
	B map[string]float64
	C float64 `+"`lerp:\"skip, skip\"`"+`
}
`, Options{Fallback: true})
	require.Len(t, out.Diagnostics, 1)
	assert.True(t, errors.Is(out.Diagnostics[0], ErrUnsupportedFieldShape))
	assert.Equal(t, 6, out.Diagnostics[0].Pos.Line)
}

func TestGenerate_FallbackDisabled(t *testing.T) {
	out := generate(t, `package shapes

//lerp:derive
type Bad struct{ S []int }

//lerp:derive
type Good struct{ X float64 }
`, Options{Fallback: false})
	require.Len(t, out.Diagnostics, 1)
	assert.Equal(t, []string{"Good"}, out.Generated)

	m := methods(t, out.Source)
	assert.Contains(t, m, "Good")
	assert.NotContains(t, m, "Bad")
}

func TestGenerate_NoFallbackWithoutMethods(t *testing.T) {
	out := generate(t, `package shapes

//lerp:derive
type Iface interface{ M() }

//lerp:derive
type Alias = Other

type Other struct{ X float64 }
`, Options{Fallback: true})
	require.Len(t, out.Diagnostics, 2)
	assert.Empty(t, methods(t, out.Source))
}

func TestGenerate_Deterministic(t *testing.T) {
	src := `package shapes

//lerp:derive
type Data struct {
	A, B float64
	C    Vec
}
`
	first := generate(t, src, Options{})
	second := generate(t, src, Options{})
	assert.Equal(t, first.Source, second.Source)
}

func TestFallback(t *testing.T) {
	g := New(Options{Logger: zap.NewNop().Sugar()})
	s := &Struct{Name: "Item", Shape: ShapeNamed}

	code := g.Fallback(s, errors.New("boom"))
	assert.Contains(t, fmtCode(code), `panic("lerp: Item.Lerp was not generated: boom")`)
}

func TestReceiverName(t *testing.T) {
	tests := map[string]string{
		"Data":   "d",
		"vec":    "v",
		"Tagged": "v",
		"Body":   "v",
		"Item":   "v",
		"Anchor": "v",
		"Écran":  "é",
	}
	for name, want := range tests {
		assert.Equal(t, want, receiverName(name), name)
	}
}
