// Command deathmap prints the deadliest spots of a level from the save data,
// most lethal first. Useful when tuning hazard placement.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/milk9111/devilrun/level"
	"github.com/milk9111/devilrun/store"
)

func main() {
	appName := flag.String("app", "devilrun", "save app name (matches the game's settings)")
	levelID := flag.Int("level", 1, "level id to inspect")
	limit := flag.Int("limit", 10, "max spots to print")
	flag.Parse()

	if err := level.ValidateBlueprints(); err != nil {
		log.Fatal(err)
	}
	name := ""
	for _, bp := range level.Blueprints {
		if bp.ID == *levelID {
			name = bp.Name
		}
	}
	if name == "" {
		log.Fatalf("no level with id %d", *levelID)
	}

	db, err := store.Open(*appName)
	if err != nil {
		log.Fatal(err)
	}

	spots, err := db.MostLethalSpots(*levelID, *limit)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s\n", name)
	if len(spots) == 0 {
		fmt.Println("no recorded deaths")
		return
	}
	for i, s := range spots {
		fmt.Printf("%2d. (%4d, %4d)  %d deaths\n", i+1, s.X, s.Y, s.Count)
	}
}
