package derive

import (
	"go/scanner"
	"go/token"
	"strings"
)

// Decision is the normalized outcome of a field's directives.
type Decision struct {
	// Skip carries the field over from the receiver untouched.
	Skip bool
	// Override is the scalar type t is cast to before interpolating the field.
	// It is not validated here; the Go compiler checks it in the generated code.
	Override    string
	OverridePos token.Position
}

// Skip keywords. "-" follows the struct tag convention of encoding/json.
var skipKeywords = map[string]bool{
	"skip":   true,
	"ignore": true,
	"-":      true,
}

// Interpret turns the directive occurrences of one field into a Decision.
// A field may carry at most one occurrence.
func Interpret(occurrences []Directive) (Decision, error) {
	switch len(occurrences) {
	case 0:
		return Decision{}, nil
	case 1:
		return parseDirective(occurrences[0])
	default:
		return Decision{}, newDiagnostic(ErrDuplicateDirective, occurrences[1].Pos,
			"found duplicate attribute on field, consolidate the attributes into one")
	}
}

type directiveEntry struct {
	path string
	pos  token.Position
}

func parseDirective(d Directive) (Decision, error) {
	p := newDirectiveParser(d)
	entries, err := p.parseList()
	if err != nil {
		return Decision{}, err
	}

	var dec Decision
	for _, e := range entries {
		if skipKeywords[e.path] {
			if dec.Skip {
				return Decision{}, newDiagnostic(ErrDuplicateDirective, e.pos, "duplicate skip statement")
			}
			dec.Skip = true
			continue
		}
		if dec.Override != "" {
			return Decision{}, newDiagnostic(ErrDuplicateDirective, e.pos, "duplicate lerp type")
		}
		dec.Override = e.path
		dec.OverridePos = e.pos
	}
	return dec, nil
}

// directiveParser is a recursive descent parser for
//
//	directive := [ entry { "," entry } [ "," ] ]
//	entry     := "-" | ident { "." ident }
type directiveParser struct {
	d    Directive
	file *token.File
	s    scanner.Scanner
	err  *Diagnostic

	pos token.Pos
	tok token.Token
	lit string
}

func newDirectiveParser(d Directive) *directiveParser {
	p := &directiveParser{d: d}
	fset := token.NewFileSet()
	p.file = fset.AddFile("", fset.Base(), len(d.Text))
	p.s.Init(p.file, []byte(d.Text), func(pos token.Position, msg string) {
		if p.err == nil {
			p.err = newDiagnostic(ErrMalformedDirective, p.position(p.file.Pos(pos.Offset)), "malformed directive: %s", msg)
		}
	}, 0)
	p.next()
	return p
}

// position maps a position inside the directive text to the source file.
func (p *directiveParser) position(pos token.Pos) token.Position {
	out := p.d.Pos
	if out.IsValid() {
		off := p.file.Offset(pos)
		out.Offset += off
		out.Column += off
	}
	return out
}

func (p *directiveParser) next() {
	for {
		p.pos, p.tok, p.lit = p.s.Scan()
		// the scanner inserts a semicolon after a trailing identifier
		if p.tok == token.SEMICOLON && p.lit == "\n" {
			continue
		}
		return
	}
}

func (p *directiveParser) errorf(format string, args ...any) *Diagnostic {
	if p.err != nil {
		return p.err
	}
	return newDiagnostic(ErrMalformedDirective, p.position(p.pos), format, args...)
}

func (p *directiveParser) parseList() ([]directiveEntry, error) {
	var entries []directiveEntry
	for p.tok != token.EOF {
		e, err := p.parseEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)

		if p.tok == token.EOF {
			break
		}
		if p.tok != token.COMMA {
			return nil, p.errorf("expected ',' in lerp directive, found %s", p.describe())
		}
		p.next()
	}
	if p.err != nil {
		return nil, p.err
	}
	return entries, nil
}

func (p *directiveParser) parseEntry() (directiveEntry, error) {
	e := directiveEntry{pos: p.position(p.pos)}
	if p.tok == token.SUB {
		e.path = "-"
		p.next()
		return e, nil
	}

	var parts []string
	for {
		if p.tok != token.IDENT {
			return e, p.errorf("expected skip, ignore or a type name in lerp directive, found %s", p.describe())
		}
		parts = append(parts, p.lit)
		p.next()
		if p.tok != token.PERIOD {
			break
		}
		p.next()
	}
	e.path = strings.Join(parts, ".")
	return e, nil
}

func (p *directiveParser) describe() string {
	if p.lit != "" {
		return "'" + p.lit + "'"
	}
	return "'" + p.tok.String() + "'"
}
