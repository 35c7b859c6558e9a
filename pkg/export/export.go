// Package export writes rendered ASCII art to plain text or HTML files.
package export

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dixieflatline76/asciiart/asset"
)

// Format is an output file format.
type Format int

const (
	// Text writes the raw rows.
	Text Format = iota
	// HTML wraps the rows in a styled, static page.
	HTML
)

func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	default:
		return "Text"
	}
}

// DefaultExtension is appended to save paths that have none.
const DefaultExtension = ".txt"

// htmlTemplateName is the embedded template used for HTML export.
const htmlTemplateName = "export.html.tmpl"

// htmlTitle is the document title of exported pages.
const htmlTitle = "ASCII Art"

var loadHTMLTemplate = sync.OnceValues(func() (*template.Template, error) {
	return asset.NewManager().GetHTMLTemplate(htmlTemplateName)
})

// FormatForPath picks HTML for .html and .htm files and Text for everything else.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return HTML
	default:
		return Text
	}
}

// WithDefaultExtension appends DefaultExtension when path has no extension.
func WithDefaultExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + DefaultExtension
	}
	return path
}

// WriteText writes content unchanged.
func WriteText(w io.Writer, content string) error {
	_, err := io.WriteString(w, content)
	return err
}

// WriteHTML writes content inside a black, monospace, whitespace-preserving page.
func WriteHTML(w io.Writer, content string) error {
	tmpl, err := loadHTMLTemplate()
	if err != nil {
		return fmt.Errorf("loading HTML template: %w", err)
	}

	data := struct {
		Title   string
		Content string
	}{
		Title:   htmlTitle,
		Content: content,
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}

// Write writes content to w in the given format.
func Write(w io.Writer, format Format, content string) error {
	if format == HTML {
		return WriteHTML(w, content)
	}
	return WriteText(w, content)
}

// SaveFile writes content to path in the format implied by its extension
// and returns that format.
func SaveFile(path, content string) (Format, error) {
	format := FormatForPath(path)

	f, err := os.Create(path)
	if err != nil {
		return format, fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Write(f, format, content); err != nil {
		f.Close()
		return format, fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return format, fmt.Errorf("closing %s: %w", path, err)
	}
	return format, nil
}
