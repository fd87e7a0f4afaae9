package derive

import (
	"go/ast"
	"go/token"
	"go/types"
	"path"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"
)

// typeCode converts a Go AST type expression back into jennifer code.
// Qualified names are resolved through the declaring file's imports so the
// generated file imports the same packages.
func typeCode(expr ast.Expr, imports map[string]string) jen.Code {
	switch t := expr.(type) {
	case *ast.Ident:
		return jen.Id(t.Name)

	case *ast.SelectorExpr:
		if ident, ok := t.X.(*ast.Ident); ok {
			if importPath, ok := imports[ident.Name]; ok {
				return jen.Qual(importPath, t.Sel.Name)
			}
			return jen.Id(ident.Name + "." + t.Sel.Name)
		}
		return jen.Id(types.ExprString(t))

	case *ast.StarExpr:
		return jen.Op("*").Add(typeCode(t.X, imports))

	case *ast.ParenExpr:
		return jen.Parens(typeCode(t.X, imports))

	case *ast.ArrayType:
		if t.Len == nil {
			return jen.Index().Add(typeCode(t.Elt, imports))
		}
		return jen.Index(typeCode(t.Len, imports)).Add(typeCode(t.Elt, imports))

	case *ast.IndexExpr:
		return jen.Add(typeCode(t.X, imports)).Types(typeCode(t.Index, imports))

	case *ast.IndexListExpr:
		args := make([]jen.Code, len(t.Indices))
		for i, index := range t.Indices {
			args[i] = typeCode(index, imports)
		}
		return jen.Add(typeCode(t.X, imports)).Types(args...)

	case *ast.BasicLit:
		// array lengths
		return jen.Id(t.Value)

	default:
		// Only reachable for array lengths written as constant expressions
		return jen.Id(types.ExprString(expr))
	}
}

// pathCode renders a dotted type path from a directive, such as float32 or
// units.Meters.
func pathCode(p string, imports map[string]string) jen.Code {
	pkg, name, ok := strings.Cut(p, ".")
	if !ok {
		return jen.Id(p)
	}
	if importPath, found := imports[pkg]; found && !strings.Contains(name, ".") {
		return jen.Qual(importPath, name)
	}
	return jen.Id(p)
}

// importsOf maps the local name of every import in file to its path.
// Unnamed imports are keyed by the last path element, minus a major version suffix.
func importsOf(file *ast.File) map[string]string {
	imports := make(map[string]string, len(file.Imports))
	for _, spec := range file.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		name := packageNameGuess(importPath)
		if spec.Name != nil {
			name = spec.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}
		imports[name] = importPath
	}
	return imports
}

func packageNameGuess(importPath string) string {
	base := path.Base(importPath)
	if isMajorVersion(base) {
		base = path.Base(path.Dir(importPath))
	}
	// gopkg.in/yaml.v3
	if i := strings.LastIndex(base, "."); i > 0 && isMajorVersion(base[i+1:]) {
		base = base[:i]
	}
	base = strings.TrimPrefix(base, "go-")
	base = strings.TrimSuffix(base, ".go")
	base = strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return -1
		}
		return r
	}, base)
	if !token.IsIdentifier(base) {
		return ""
	}
	return base
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	_, err := strconv.Atoi(s[1:])
	return err == nil
}
