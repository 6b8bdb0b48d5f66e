package main

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/MartinAtoyan/classicbattleship/app"
	"github.com/MartinAtoyan/classicbattleship/config"
	"github.com/MartinAtoyan/classicbattleship/storage"
)

func main() {
	if err := config.Load("."); err != nil {
		log.Fatal("main [config]", "err", err)
	}

	if lvl, err := log.ParseLevel(config.GetString("logLevel")); err == nil {
		log.SetLevel(lvl)
	}

	store, err := storage.NewStore(config.GetString("dataDir"))
	if err != nil {
		log.Fatal("main [storage]", "err", err)
	}

	var archive *storage.Archive
	if config.GetBool("archive.enabled") {
		archive, err = storage.OpenArchive(config.GetString("archive.path"))
		if err != nil {
			log.Fatal("main [archive]", "err", err)
		}
		defer archive.Close()
	}

	seed := config.GetInt64("bot.seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	a := app.New(store, archive, rng)
	if err := a.Run(); err != nil {
		log.Fatal("main [run]", "err", err)
	}
}
