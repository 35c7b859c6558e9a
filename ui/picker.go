package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/dixieflatline76/asciiart/util/log"
)

// pickedFunc receives the chosen path, "" when the dialog was cancelled.
type pickedFunc func(path string, err error)

// filePicker shows the open and save dialogs of the generator.
type filePicker interface {
	PickImage(startDir string, onPicked pickedFunc)
	PickSavePath(startDir, suggestedName string, onPicked pickedFunc)
}

// fynePicker uses fyne's own file dialogs.
type fynePicker struct {
	window fyne.Window
}

func newFynePicker(window fyne.Window) *fynePicker {
	return &fynePicker{window: window}
}

// PickImage shows an open dialog filtered to supported images.
func (p *fynePicker) PickImage(startDir string, onPicked pickedFunc) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			onPicked("", err)
			return
		}
		defer reader.Close()
		onPicked(reader.URI().Path(), nil)
	}, p.window)
	fd.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	p.setLocation(fd, startDir)
	fd.Show()
}

// PickSavePath shows a save dialog for text and HTML exports.
func (p *fynePicker) PickSavePath(startDir, suggestedName string, onPicked pickedFunc) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			onPicked("", err)
			return
		}
		// The session rewrites the file in the chosen format.
		path := writer.URI().Path()
		if cerr := writer.Close(); cerr != nil {
			log.Printf("Failed to close save target %s: %v", path, cerr)
		}
		onPicked(path, nil)
	}, p.window)
	fd.SetFilter(storage.NewExtensionFileFilter(exportExtensions))
	fd.SetFileName(suggestedName)
	p.setLocation(fd, startDir)
	fd.Show()
}

// setLocation opens the dialog in dir when it still exists.
func (p *fynePicker) setLocation(fd *dialog.FileDialog, dir string) {
	if dir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(filepath.Clean(dir)))
	if err != nil {
		log.Debugf("Ignoring last directory %s: %v", dir, err)
		return
	}
	fd.SetLocation(lister)
}
