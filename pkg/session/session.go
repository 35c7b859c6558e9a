// Package session holds the state behind the generator window: the image
// picked by the user and the art currently on display.
package session

import (
	"errors"
	"strings"

	"github.com/dixieflatline76/asciiart/config"
	"github.com/dixieflatline76/asciiart/pkg/export"
	"github.com/dixieflatline76/asciiart/util/log"
)

var (
	// ErrNoImage is returned when generating before an image was loaded.
	ErrNoImage = errors.New("please upload an image first")
	// ErrNoContent is returned when saving before anything was generated.
	ErrNoContent = errors.New("no ASCII art to save, generate one first")
)

// Converter renders the image at path as rows of glyphs joined by newlines.
type Converter interface {
	ImageToASCII(path string, width int, invert bool) (string, error)
}

// Session owns the loaded image path and the displayed art.
type Session struct {
	conv      Converter
	imagePath string
	content   string
}

// New creates an empty session that renders with conv.
func New(conv Converter) *Session {
	return &Session{conv: conv}
}

// ClampWidth raises width to config.MinWidth.
func ClampWidth(width int) int {
	return max(config.MinWidth, width)
}

// LoadImage remembers path as the image to render. An empty path, as
// produced by a cancelled dialog, leaves the session unchanged and
// reports false.
func (s *Session) LoadImage(path string) bool {
	if path == "" {
		return false
	}
	s.imagePath = path
	log.Printf("Loaded image %s", path)
	return true
}

// ImagePath returns the loaded image path, or "" if none.
func (s *Session) ImagePath() string {
	return s.imagePath
}

// HasImage reports whether an image was loaded.
func (s *Session) HasImage() bool {
	return s.imagePath != ""
}

// Content returns the art currently on display.
func (s *Session) Content() string {
	return s.content
}

// SetContent replaces the art on display.
func (s *Session) SetContent(content string) {
	s.content = content
}

// Generate renders the loaded image at max(width, config.MinWidth)
// characters and makes it the displayed art. On failure the displayed art
// is left untouched.
func (s *Session) Generate(width int, invert bool) (string, error) {
	if !s.HasImage() {
		return "", ErrNoImage
	}

	width = ClampWidth(width)
	art, err := s.conv.ImageToASCII(s.imagePath, width, invert)
	if err != nil {
		log.Printf("Conversion of %s failed: %v", s.imagePath, err)
		return "", err
	}

	s.content = art
	log.Debugf("Generated %d characters wide art from %s (invert=%v)", width, s.imagePath, invert)
	return art, nil
}

// Save writes the displayed art to path, choosing the format from the
// extension. Art that is blank or whitespace only is not written.
func (s *Session) Save(path string) (export.Format, error) {
	if strings.TrimSpace(s.content) == "" {
		return export.Text, ErrNoContent
	}

	format, err := export.SaveFile(path, s.content)
	if err != nil {
		log.Printf("Saving %s failed: %v", path, err)
		return format, err
	}
	log.Printf("Saved %s art to %s", format, path)
	return format, nil
}
