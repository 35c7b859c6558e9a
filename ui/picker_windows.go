//go:build windows

package ui

import (
	"errors"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/harry1453/go-common-file-dialog/cfd"
	"github.com/harry1453/go-common-file-dialog/cfdutil"

	"github.com/dixieflatline76/asciiart/util/log"
)

// nativePicker uses the Windows common item dialogs and falls back to
// fyne's dialogs when they cannot be created.
type nativePicker struct {
	fallback *fynePicker
}

// newFilePicker returns the platform file picker.
func newFilePicker(window fyne.Window) filePicker {
	return &nativePicker{fallback: newFynePicker(window)}
}

func patternFor(exts []string) string {
	patterns := make([]string, len(exts))
	for i, ext := range exts {
		patterns[i] = "*" + ext
	}
	return strings.Join(patterns, ";")
}

// PickImage shows the native open dialog. It blocks, so it runs off the UI goroutine.
func (p *nativePicker) PickImage(startDir string, onPicked pickedFunc) {
	go func() {
		path, err := cfdutil.ShowOpenFileDialog(cfd.DialogConfig{
			Title:  "Select an image",
			Role:   "AsciiArtOpenImage",
			Folder: startDir,
			FileFilters: []cfd.FileFilter{
				{DisplayName: "Images", Pattern: patternFor(imageExtensions)},
			},
		})
		p.finish(path, err, func() { p.fallback.PickImage(startDir, onPicked) }, onPicked)
	}()
}

// PickSavePath shows the native save dialog with a .txt default.
func (p *nativePicker) PickSavePath(startDir, suggestedName string, onPicked pickedFunc) {
	go func() {
		path, err := cfdutil.ShowSaveFileDialog(cfd.DialogConfig{
			Title:            "Save ASCII Art As",
			Role:             "AsciiArtSave",
			Folder:           startDir,
			FileName:         suggestedName,
			DefaultExtension: strings.TrimPrefix(filepath.Ext(suggestedName), "."),
			FileFilters: []cfd.FileFilter{
				{DisplayName: "Text file", Pattern: "*.txt"},
				{DisplayName: "HTML file", Pattern: "*.html"},
			},
		})
		p.finish(path, err, func() { p.fallback.PickSavePath(startDir, suggestedName, onPicked) }, onPicked)
	}()
}

// finish hands the result back on the UI goroutine.
func (p *nativePicker) finish(path string, err error, fallback func(), onPicked pickedFunc) {
	fyne.Do(func() {
		switch {
		case errors.Is(err, cfd.ErrorCancelled):
			onPicked("", nil)
		case err != nil:
			log.Printf("Native file dialog failed, using fallback: %v", err)
			fallback()
		default:
			onPicked(path, nil)
		}
	})
}
