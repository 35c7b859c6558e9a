// Package converter maps raster images onto a fixed glyph gradient.
package converter

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"math"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/webp" // Register WEBP decoder

	"github.com/dixieflatline76/asciiart/util/log"
)

// Charset holds the glyphs ordered from densest to lightest.
const Charset = "@%#*+=-:. "

// CellAspect compensates for monospace cells being taller than they are wide.
const CellAspect = 0.55

var (
	// ErrInvalidWidth is returned when the requested width is below one character.
	ErrInvalidWidth = errors.New("target width must be at least 1")
	// ErrEmptyImage is returned for images without pixels.
	ErrEmptyImage = errors.New("image has no pixels")
)

// DecodeError reports an image file that could not be opened or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode image %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Grid is a rendered image, one string per row.
type Grid []string

// String joins the rows with newlines, without a trailing newline.
func (g Grid) String() string {
	return strings.Join(g, "\n")
}

// Width returns the number of glyphs per row.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Converter turns images into glyph grids.
type Converter struct {
	resampler imaging.ResampleFilter
}

// New returns a Converter that resamples with the Lanczos filter.
func New() *Converter {
	return NewWithFilter(imaging.Lanczos)
}

// NewWithFilter returns a Converter that resamples with the given filter.
func NewWithFilter(resampler imaging.ResampleFilter) *Converter {
	return &Converter{resampler: resampler}
}

// TargetHeight returns the row count for an image of srcWidth x srcHeight
// rendered width glyphs wide. It is never below 1.
func TargetHeight(srcWidth, srcHeight, width int) int {
	aspect := float64(srcHeight) / float64(srcWidth)
	h := int(math.Round(float64(width) * aspect * CellAspect))
	return max(1, h)
}

// Glyph maps a luminance value onto Charset.
func Glyph(gray uint8, invert bool) byte {
	v := float64(gray) / 255
	if invert {
		v = 1 - v
	}
	return Charset[int(v*float64(len(Charset)-1))]
}

// Open opens and decodes the image at path, honouring EXIF orientation.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// Convert renders img width glyphs wide.
func (c *Converter) Convert(img image.Image, width int, invert bool) (Grid, error) {
	if width < 1 {
		return nil, ErrInvalidWidth
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}

	height := TargetHeight(bounds.Dx(), bounds.Dy(), width)
	gray := imaging.Grayscale(imaging.Resize(img, width, height, c.resampler))
	log.Debugf("Resampled %dx%d to %dx%d", bounds.Dx(), bounds.Dy(), width, height)

	grid := make(Grid, height)
	var row strings.Builder
	for y := 0; y < height; y++ {
		row.Reset()
		row.Grow(width)
		// Grayscale output is NRGBA with R == G == B.
		offset := y * gray.Stride
		for x := 0; x < width; x++ {
			row.WriteByte(Glyph(gray.Pix[offset+x*4], invert))
		}
		grid[y] = row.String()
	}
	return grid, nil
}

// ImageToASCII opens the image at path and renders it width glyphs wide.
// Rows are joined by newlines.
func (c *Converter) ImageToASCII(path string, width int, invert bool) (string, error) {
	img, err := Open(path)
	if err != nil {
		return "", err
	}

	grid, err := c.Convert(img, width, invert)
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", path, err)
	}
	return grid.String(), nil
}
