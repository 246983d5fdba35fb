package main

import (
	"flag"
	"os"

	"github.com/oggyb/roommatch/internal/config"
	"github.com/oggyb/roommatch/internal/db"
	"github.com/oggyb/roommatch/internal/logger"
)

func main() {
	seed := flag.Int64("seed", 42, "random seed for the generated profiles and swipes")
	flag.Parse()

	// Load configuration
	cfg := config.New()
	logger.InitFromConfig(cfg)
	log := logger.L()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	if err := db.SeedTestData(database, *seed); err != nil {
		log.Error("failed to seed", "err", err)
		os.Exit(1)
	}

	log.Info("seeding completed", "seed", *seed)
}
