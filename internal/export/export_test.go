package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blueprints/internal/blueprint"
	"blueprints/internal/render"
)

var square = []blueprint.Point{{X: 100, Y: 100}, {X: 400, Y: 100}, {X: 400, Y: 400}, {X: 100, Y: 400}}

func TestPNGDrawsOutline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, render.Render(square), render.SurfaceWidth, render.SurfaceHeight))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, render.SurfaceWidth, img.Bounds().Dx())
	assert.Equal(t, render.SurfaceHeight, img.Bounds().Dy())

	inked := func(x, y int) bool {
		r, g, b, _ := img.At(x, y).RGBA()
		return r < 0xe000 && g < 0xe000 && b < 0xe000
	}
	assert.True(t, inked(250, 99) || inked(250, 100) || inked(250, 101), "top edge stroked")
	assert.True(t, inked(99, 250) || inked(100, 250) || inked(101, 250), "closing edge stroked")
	assert.False(t, inked(250, 250), "interior not filled")
	assert.False(t, inked(20, 20), "background white")
}

func TestPNGBlank(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, render.Blank(), 50, 50))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	r, g, b, _ := img.At(25, 25).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, "alice / square", render.Render(square), render.SurfaceWidth, render.SurfaceHeight))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []Format{FormatPNG, FormatPDF} {
		path, err := Save(dir, "alice", "square", f, render.Render(square))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "alice-square."+string(f)), path)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestSaveUnsupported(t *testing.T) {
	dir := t.TempDir()
	_, err := Save(dir, "alice", "square", Format("svg"), render.Render(square))
	require.Error(t, err)
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "alice-square.png", FileName("alice", "square", FormatPNG))
	assert.Equal(t, "ana_maria-a_b.pdf", FileName("ana maria", "a/b", FormatPDF))
	assert.Equal(t, "untitled-untitled.png", FileName("", " ", FormatPNG))
}
