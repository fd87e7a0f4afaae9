package derive

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/lerp/errors"
	lerptest "github.com/teranos/lerp/internal/testing"
)

func TestLoad(t *testing.T) {
	dir := lerptest.CreateTestModule(t, map[string]string{
		"shapes.go": `package shapes

//lerp:derive
type Point struct{ X, Y float64 }

type Size [2]float64
`,
		"color.go": `package shapes

type Color struct{ R, G, B float32 }
`,
		"point_lerp.go": `// Code generated by lerpgen. DO NOT EDIT.

package shapes

func (p Point) Lerp(other Point, t float64) Point { return p }
`,
		"shapes_test.go": `package shapes

//lerp:derive
type testOnly struct{ A float64 }
`,
	})

	pkg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "shapes", pkg.Name)
	assert.Equal(t, "example.com/shapes", pkg.Path)

	var names []string
	for _, name := range pkg.Filenames {
		names = append(names, filepath.Base(name))
	}
	assert.ElementsMatch(t, []string{"shapes.go", "color.go"}, names)

	t.Run("marker", func(t *testing.T) {
		structs, err := Select(pkg, Selection{})
		require.NoError(t, err)
		require.Len(t, structs, 1)
		assert.Equal(t, "Point", structs[0].Name)
	})

	t.Run("types across files", func(t *testing.T) {
		structs, err := Select(pkg, Selection{Types: []string{"Color", "Size"}})
		require.NoError(t, err)

		var got []string
		for _, s := range structs {
			got = append(got, s.Name)
		}
		assert.ElementsMatch(t, []string{"Point", "Size", "Color"}, got)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := Select(pkg, Selection{Types: []string{"Missing"}})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		assert.Contains(t, err.Error(), "type Missing not found in package shapes")
	})
}

func TestLoad_SyntaxError(t *testing.T) {
	dir := lerptest.CreateTestModule(t, map[string]string{
		"broken.go": "package shapes\n\ntype T struct {\n",
	})

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has errors")
}
