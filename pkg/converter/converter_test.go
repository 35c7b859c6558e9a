package converter

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// writePNG encodes img into dir and returns the file path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

// stripes returns a width x height gray image whose columns hold the given levels.
func stripes(levels []uint8, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, len(levels), height))
	for y := 0; y < height; y++ {
		for x, level := range levels {
			img.SetGray(x, y, color.Gray{Y: level})
		}
	}
	return img
}

func TestTargetHeight(t *testing.T) {
	tests := []struct {
		name          string
		srcW, srcH, w int
		expected      int
	}{
		{"square", 100, 100, 100, 55},
		{"widescreen", 160, 90, 80, 25},
		{"portrait", 10, 20, 10, 11},
		{"upscaled", 4, 4, 20, 11},
		{"very wide clamps to one row", 1000, 1, 10, 1},
		{"single pixel", 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TargetHeight(tt.srcW, tt.srcH, tt.w))
		})
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		gray     uint8
		invert   bool
		expected byte
	}{
		{0, false, '@'},
		{255, false, ' '},
		{0, true, ' '},
		{255, true, '@'},
		{20, false, '@'},   // 20/255*9 = 0.70
		{128, false, '+'},  // 4.52
		{200, false, ':'},  // 7.06
		{128, true, '+'},   // 4.48
		{240, false, '.'},  // 8.47
		{240, true, '@'},   // 0.53
	}

	for _, tt := range tests {
		assert.Equal(t, string(tt.expected), string(Glyph(tt.gray, tt.invert)), "gray=%d invert=%v", tt.gray, tt.invert)
	}
}

func TestConvertDimensions(t *testing.T) {
	conv := New()
	sizes := []struct{ w, h int }{{100, 100}, {640, 480}, {37, 211}, {1, 1}, {500, 3}}
	widths := []int{1, 10, 33, 100}

	for _, size := range sizes {
		img := imaging.New(size.w, size.h, color.NRGBA{R: 120, G: 60, B: 200, A: 255})
		for _, w := range widths {
			grid, err := conv.Convert(img, w, false)
			require.NoError(t, err)

			expectedRows := TargetHeight(size.w, size.h, w)
			assert.Equal(t, expectedRows, grid.Height(), "image %dx%d width %d", size.w, size.h, w)
			for i, row := range grid {
				assert.Len(t, row, w, "row %d of image %dx%d width %d", i, size.w, size.h, w)
			}
		}
	}
}

func TestConvertUsesOnlyCharset(t *testing.T) {
	// Diagonal gradient covering the full intensity range
	img := image.NewGray(image.Rect(0, 0, 256, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 256; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x + y) % 256)})
		}
	}

	for _, invert := range []bool{false, true} {
		grid, err := New().Convert(img, 64, invert)
		require.NoError(t, err)
		for _, row := range grid {
			for _, r := range row {
				assert.True(t, strings.ContainsRune(Charset, r), "unexpected glyph %q", r)
			}
		}
	}
}

func TestConvertUniformImages(t *testing.T) {
	tests := []struct {
		name     string
		fill     color.Color
		invert   bool
		expected string
	}{
		{"black", color.Black, false, "@"},
		{"white", color.White, false, " "},
		{"black inverted", color.Black, true, " "},
		{"white inverted", color.White, true, "@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := imaging.New(64, 48, tt.fill)
			grid, err := New().Convert(img, 20, tt.invert)
			require.NoError(t, err)
			require.Equal(t, 8, grid.Height())
			for _, row := range grid {
				assert.Equal(t, strings.Repeat(tt.expected, 20), row)
			}
		})
	}
}

func TestConvertInvertMirrorsIndices(t *testing.T) {
	// Levels avoid bucket boundaries (multiples of 85)
	levels := []uint8{0, 20, 40, 60, 80, 100, 120, 140, 160, 180, 200, 220, 240, 255}
	img := stripes(levels, 40)

	normal, err := New().Convert(img, len(levels), false)
	require.NoError(t, err)
	inverted, err := New().Convert(img, len(levels), true)
	require.NoError(t, err)
	require.Equal(t, normal.Height(), inverted.Height())

	last := len(Charset) - 1
	for y := range normal {
		for x := range levels {
			i := strings.IndexByte(Charset, normal[y][x])
			j := strings.IndexByte(Charset, inverted[y][x])
			// Flooring puts the mirrored index one bucket short unless the level sits on a boundary
			assert.GreaterOrEqual(t, i+j, last-1, "level %d", levels[x])
			assert.LessOrEqual(t, i+j, last, "level %d", levels[x])
		}
	}

	assert.Equal(t, byte('@'), normal[0][0])
	assert.Equal(t, byte(' '), inverted[0][0])
	assert.Equal(t, byte(' '), normal[0][len(levels)-1])
	assert.Equal(t, byte('@'), inverted[0][len(levels)-1])
}

func TestConvertBrightnessIsMonotonic(t *testing.T) {
	levels := make([]uint8, 0, 52)
	for v := 0; v < 256; v += 5 {
		levels = append(levels, uint8(v))
	}
	grid, err := New().Convert(stripes(levels, 10), len(levels), false)
	require.NoError(t, err)

	prev := 0
	for x := range levels {
		idx := strings.IndexByte(Charset, grid[0][x])
		assert.GreaterOrEqual(t, idx, prev, "level %d", levels[x])
		prev = idx
	}
}

func TestConvertRejectsInvalidInput(t *testing.T) {
	conv := New()

	_, err := conv.Convert(imaging.New(10, 10, color.Black), 0, false)
	assert.ErrorIs(t, err, ErrInvalidWidth)

	_, err = conv.Convert(image.NewGray(image.Rect(0, 0, 0, 0)), 10, false)
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestConvertAnyFilter(t *testing.T) {
	img := imaging.New(30, 30, color.White)
	for _, filter := range []imaging.ResampleFilter{imaging.NearestNeighbor, imaging.Box, imaging.Linear, imaging.CatmullRom} {
		grid, err := NewWithFilter(filter).Convert(img, 12, false)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat(" ", 12), grid[0])
	}
}

func TestGridString(t *testing.T) {
	grid := Grid{"@@", "  "}
	assert.Equal(t, "@@\n  ", grid.String())
	assert.Equal(t, 2, grid.Width())
	assert.Equal(t, 2, grid.Height())
	assert.Equal(t, 0, Grid{}.Width())
}

func TestImageToASCII(t *testing.T) {
	dir := t.TempDir()
	conv := New()

	t.Run("PNG", func(t *testing.T) {
		path := writePNG(t, dir, "black.png", imaging.New(200, 100, color.Black))

		out, err := conv.ImageToASCII(path, 40, false)
		require.NoError(t, err)

		rows := strings.Split(out, "\n")
		assert.Len(t, rows, TargetHeight(200, 100, 40))
		for _, row := range rows {
			assert.Equal(t, strings.Repeat("@", 40), row)
		}
		assert.False(t, strings.HasSuffix(out, "\n"))
	})

	t.Run("BMP", func(t *testing.T) {
		path := filepath.Join(dir, "white.bmp")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, bmp.Encode(f, imaging.New(50, 50, color.White)))
		require.NoError(t, f.Close())

		out, err := conv.ImageToASCII(path, 10, false)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat(" ", 10), strings.Split(out, "\n")[0])
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(dir, "missing.png")
		_, err := conv.ImageToASCII(path, 40, false)

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, path, decodeErr.Path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("not an image", func(t *testing.T) {
		path := filepath.Join(dir, "notes.png")
		require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0644))

		_, err := conv.ImageToASCII(path, 40, false)
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
		assert.Contains(t, err.Error(), "notes.png")
	})

	t.Run("invalid width", func(t *testing.T) {
		path := writePNG(t, dir, "small.png", imaging.New(5, 5, color.Black))
		_, err := conv.ImageToASCII(path, 0, false)
		assert.ErrorIs(t, err, ErrInvalidWidth)
	})
}
