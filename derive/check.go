package derive

import (
	"bytes"
	"os"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/teranos/lerp/errors"
)

// CheckResult holds the result of comparing a generated file with its
// committed version.
type CheckResult struct {
	Path     string
	UpToDate bool
	// Missing reports that no file exists at Path.
	Missing bool
	// Diff is a line diff from the committed file to the generated one.
	Diff string
}

// Compare reports whether the file at path holds exactly generated.
func Compare(path string, generated []byte) (*CheckResult, error) {
	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &CheckResult{Path: path, Missing: true}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	if bytes.Equal(existing, generated) {
		return &CheckResult{Path: path, UpToDate: true}, nil
	}
	return &CheckResult{
		Path: path,
		Diff: cmp.Diff(lines(existing), lines(generated)),
	}, nil
}

// Err returns errors.ErrOutOfDate, annotated with the diff, unless the file is up to date.
func (r *CheckResult) Err() error {
	switch {
	case r.UpToDate:
		return nil
	case r.Missing:
		return errors.WithHint(
			errors.Wrapf(errors.ErrOutOfDate, "%s does not exist", r.Path),
			"run lerpgen to create it")
	default:
		return errors.WithDetail(
			errors.WithHint(
				errors.Wrapf(errors.ErrOutOfDate, "%s differs from the generated code", r.Path),
				"run lerpgen to regenerate it"),
			r.Diff)
	}
}

func lines(b []byte) []string {
	return strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
}
