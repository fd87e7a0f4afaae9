package derive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/lerp/errors"
)

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data_lerp.go")
	committed := "package shapes\n\nfunc A() {}\n"
	require.NoError(t, os.WriteFile(path, []byte(committed), 0o644))

	t.Run("up to date", func(t *testing.T) {
		res, err := Compare(path, []byte(committed))
		require.NoError(t, err)
		assert.True(t, res.UpToDate)
		assert.NoError(t, res.Err())
	})

	t.Run("stale", func(t *testing.T) {
		res, err := Compare(path, []byte("package shapes\n\nfunc B() {}\n"))
		require.NoError(t, err)
		assert.False(t, res.UpToDate)
		assert.Contains(t, res.Diff, "func A() {}")
		assert.Contains(t, res.Diff, "func B() {}")

		err = res.Err()
		assert.True(t, errors.Is(err, errors.ErrOutOfDate))
		assert.Contains(t, errors.FlattenHints(err), "run lerpgen to regenerate it")
		assert.Contains(t, errors.GetAllDetails(err), res.Diff)
	})

	t.Run("missing", func(t *testing.T) {
		res, err := Compare(filepath.Join(dir, "absent.go"), []byte(committed))
		require.NoError(t, err)
		assert.True(t, res.Missing)
		assert.False(t, res.UpToDate)
		assert.True(t, errors.Is(res.Err(), errors.ErrOutOfDate))
	})
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "http_client_lerp.go", OutputName([]*Struct{{Name: "HTTPClient"}}))
	assert.Equal(t, "lerp_gen.go", OutputName([]*Struct{{Name: "A"}, {Name: "B"}}))
	assert.Equal(t, "lerp_gen.go", OutputName(nil))
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Data":            "data",
		"particleState":   "particle_state",
		"HTTPSConnection": "https_connection",
		"Vec2":            "vec2",
		"RGBColor":        "rgb_color",
	}
	for in, want := range tests {
		assert.Equal(t, want, ToSnakeCase(in), in)
	}
}

func TestPackageNameGuess(t *testing.T) {
	tests := map[string]string{
		"time":                         "time",
		"github.com/teranos/lerp":      "lerp",
		"example.com/geometry/v2":      "geometry",
		"github.com/mattn/go-sqlite3":  "sqlite3",
		"gopkg.in/yaml.v3":             "yaml",
		"github.com/pelletier/go-toml": "toml",
	}
	for path, want := range tests {
		assert.Equal(t, want, packageNameGuess(path), path)
	}
}
