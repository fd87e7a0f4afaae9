package derive

import (
	"fmt"
	"go/token"

	"github.com/teranos/lerp/errors"
)

// Failure categories. Every *Diagnostic matches exactly one of them with errors.Is.
var (
	// ErrDuplicateDirective: a field carries two directives, or one directive
	// repeats the skip keyword or the type override.
	ErrDuplicateDirective = errors.New("duplicate directive")

	// ErrMalformedDirective: directive text is not a comma separated list of type paths.
	ErrMalformedDirective = errors.New("malformed directive")

	// ErrUnsupportedFieldShape: slice, map, channel, func, interface or inline struct field.
	ErrUnsupportedFieldShape = errors.New("unsupported type")

	// ErrMalformedStructShape: no fields, or the annotated type is not a struct.
	ErrMalformedStructShape = errors.New("struct must have fields")

	// ErrFieldNotNamed: a named-field struct holds a field that cannot be addressed.
	ErrFieldNotNamed = errors.New("field not named")
)

// Diagnostic is a generation failure anchored at a source position.
type Diagnostic struct {
	Kind error
	Pos  token.Position
	Msg  string
}

func newDiagnostic(kind error, pos token.Position, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Error formats the diagnostic the way the Go toolchain does: file:line:col: msg
func (d *Diagnostic) Error() string {
	if !d.Pos.IsValid() {
		return d.Msg
	}
	return d.Pos.String() + ": " + d.Msg
}

// Unwrap returns the failure category.
func (d *Diagnostic) Unwrap() error {
	return d.Kind
}
