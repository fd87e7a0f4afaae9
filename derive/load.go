package derive

import (
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/teranos/lerp/errors"
)

// Package is the parsed source of one Go package, minus lerpgen's own output.
type Package struct {
	Name string
	Path string
	Dir  string
	Fset *token.FileSet
	// Files and Filenames are parallel.
	Files     []*ast.File
	Filenames []string
}

// Load parses the non-test Go files of the package in dir. Files written by
// lerpgen are left out so that regenerating never reads stale output.
func Load(dir string) (*Package, error) {
	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
		Dir:  dir,
		Fset: fset,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load package in %s", dir)
	}
	if len(pkgs) != 1 {
		return nil, errors.Newf("expected one package in %s, found %d", dir, len(pkgs))
	}
	p := pkgs[0]
	// Only syntax is needed: unresolved imports and type errors do not matter.
	for _, e := range p.Errors {
		if e.Kind == packages.ParseError {
			return nil, errors.Wrapf(e, "package %s has errors", p.PkgPath)
		}
	}
	if len(p.Syntax) == 0 {
		if len(p.Errors) > 0 {
			return nil, errors.Wrapf(p.Errors[0], "package in %s has errors", dir)
		}
		return nil, errors.Newf("no Go files in %s", dir)
	}

	pkg := &Package{Name: p.Name, Path: p.PkgPath, Dir: dir, Fset: fset}
	for _, file := range p.Syntax {
		if isGenerated(file) {
			continue
		}
		pkg.Files = append(pkg.Files, file)
		pkg.Filenames = append(pkg.Filenames, fset.Position(file.Package).Filename)
	}
	return pkg, nil
}

func isGenerated(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			return false
		}
		for _, c := range group.List {
			if strings.TrimPrefix(c.Text, "// ") == GeneratedHeader {
				return true
			}
		}
	}
	return false
}

// Select returns the schemas of the selected types across every file of pkg.
// A type named in sel.Types that the package does not declare is an error.
func Select(pkg *Package, sel Selection) ([]*Struct, error) {
	var structs []*Struct
	found := make(map[string]bool)
	for _, file := range pkg.Files {
		ss, err := ParseFile(pkg.Fset, file, sel)
		if err != nil {
			return nil, err
		}
		for _, s := range ss {
			found[s.Name] = true
		}
		structs = append(structs, ss...)
	}

	for _, name := range sel.Types {
		if !found[name] {
			return nil, errors.NewNotFoundError("type %s not found in package %s", name, pkg.Name)
		}
	}
	return structs, nil
}
