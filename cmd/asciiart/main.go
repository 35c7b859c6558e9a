package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/dixieflatline76/asciiart/config"
	"github.com/dixieflatline76/asciiart/ui"
	"github.com/dixieflatline76/asciiart/util/log"
)

func main() {
	acquired, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to acquire single-instance lock: %v", err)
	}
	if !acquired {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	defer releaseLock()

	log.Printf("Starting %s %s", config.AppName, config.AppVersion)
	a := app.NewWithID(config.AppID)
	ui.NewAsciiApp(a).Run()
	log.Println("Shut down")
}
