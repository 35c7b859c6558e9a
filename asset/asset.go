package asset

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/dixieflatline76/asciiart/util/log"
)

//go:embed text/*
var assets embed.FS

// Manager manages the loading of embedded assets.
type Manager struct{}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{}
}

// GetText loads and returns embedded text asset by name.
func (am *Manager) GetText(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("text asset name is empty")
	}

	textBytes, err := assets.ReadFile("text/" + name)
	if err != nil {
		log.Println("Error loading text:", err)
		return "", err
	}
	return string(textBytes), nil
}

// GetHTMLTemplate loads and parses an embedded html/template asset by name.
func (am *Manager) GetHTMLTemplate(name string) (*template.Template, error) {
	text, err := am.GetText(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		log.Println("Error parsing template:", err)
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return tmpl, nil
}
