package derive

import (
	"go/ast"
	"go/token"
	"go/types"
)

// Kind is the generation strategy chosen for a field.
type Kind int

const (
	// KindSkip copies the receiver's value.
	KindSkip Kind = iota
	// KindExplicitScalar interpolates with t cast to Classification.Scalar.
	KindExplicitScalar
	// KindGenericFloat calls the field's own method with t unchanged.
	KindGenericFloat
	// KindPointer interpolates the pointed-to values with Classification.Elem.
	KindPointer
	// KindArray interpolates every element with Classification.Elem.
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindSkip:
		return "skip"
	case KindExplicitScalar:
		return "explicit"
	case KindGenericFloat:
		return "generic"
	case KindPointer:
		return "pointer"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Classification is the strategy for one field, or for the element of a
// pointer or array field.
type Classification struct {
	Kind Kind
	// Scalar is the target type of the cast, for KindExplicitScalar.
	Scalar string
	// Builtin reports a field declared exactly as float32 or float64; it has no
	// method and is interpolated with the runtime Lerp function instead.
	Builtin bool
	// Elem classifies the pointed-to type or the array element.
	Elem *Classification
	// Type is the pointed-to type or the full array type, for KindPointer and KindArray.
	Type ast.Expr
}

// Classify picks the generation strategy for a field of type typ.
// A skip decision wins before the type is looked at, so skipped fields may
// have any type.
func Classify(typ ast.Expr, d Decision) (*Classification, error) {
	if d.Skip {
		return &Classification{Kind: KindSkip}, nil
	}
	return classifyType(typ, d)
}

func classifyType(typ ast.Expr, d Decision) (*Classification, error) {
	switch t := typ.(type) {
	case *ast.ParenExpr:
		return classifyType(t.X, d)

	case *ast.StarExpr:
		elem, err := classifyType(t.X, d)
		if err != nil {
			return nil, err
		}
		return &Classification{Kind: KindPointer, Elem: elem, Type: unparen(t.X)}, nil

	case *ast.ArrayType:
		if t.Len == nil {
			return nil, unsupported(typ)
		}
		if _, ok := t.Len.(*ast.Ellipsis); ok {
			return nil, unsupported(typ)
		}
		elem, err := classifyType(t.Elt, d)
		if err != nil {
			return nil, err
		}
		return &Classification{Kind: KindArray, Elem: elem, Type: t}, nil

	case *ast.Ident, *ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr:
		builtin := isBuiltinFloat(t)
		if d.Override != "" {
			return &Classification{Kind: KindExplicitScalar, Scalar: d.Override, Builtin: builtin}, nil
		}
		if builtin {
			return &Classification{Kind: KindExplicitScalar, Scalar: t.(*ast.Ident).Name, Builtin: true}, nil
		}
		return &Classification{Kind: KindGenericFloat}, nil

	default:
		return nil, unsupported(typ)
	}
}

// unsupported carries no position; the generator anchors it at the field type.
func unsupported(typ ast.Expr) error {
	return newDiagnostic(ErrUnsupportedFieldShape, token.Position{}, "unsupported type %s", types.ExprString(typ))
}

func isBuiltinFloat(typ ast.Expr) bool {
	id, ok := typ.(*ast.Ident)
	return ok && (id.Name == "float32" || id.Name == "float64")
}

func unparen(typ ast.Expr) ast.Expr {
	for {
		p, ok := typ.(*ast.ParenExpr)
		if !ok {
			return typ
		}
		typ = p.X
	}
}
