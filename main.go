package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/devilrun/config"
	"github.com/milk9111/devilrun/dialogue"
	"github.com/milk9111/devilrun/level"
	"github.com/milk9111/devilrun/store"
)

func main() {
	settingsPath := flag.String("settings", "settings.yaml", "path to the optional settings file")
	phrasesPath := flag.String("phrases", "", "narrator phrase override file (defaults to the settings value)")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := level.ValidateBlueprints(); err != nil {
		log.Fatal(err)
	}

	db, err := store.Open(settings.SaveAppName)
	if err != nil {
		log.Fatal(err)
	}

	phrases := *phrasesPath
	if phrases == "" {
		phrases = settings.PhrasesFile
	}
	if phrases != "" {
		if tiers, err := dialogue.LoadPhrases(phrases); err != nil {
			log.Printf("phrase override %s: %v", phrases, err)
		} else {
			dialogue.SetPhrases(tiers)
		}
		if watcher, err := dialogue.WatchPhrases(phrases); err != nil {
			log.Printf("watch phrases: %v", err)
		} else if watcher != nil {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("devil run")
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(NewGame(db)); err != nil {
		log.Fatal(err)
	}
}
