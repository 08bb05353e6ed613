// Script to seed a database with demo users, profiles and cycle history.
// Usage: go run scripts/seed/main.go
package main

import (
	"fmt"
	"time"

	"github.com/flowise/cycle-tracker/internal/config"
	"github.com/flowise/cycle-tracker/internal/logger"
	"github.com/flowise/cycle-tracker/internal/seed"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}

	if err := seed.Run(db, time.Now(), log); err != nil {
		log.Fatal("seed failed", "error", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, user := range seed.DemoUsers {
		fmt.Printf("  %s (%s, %d day cycle)\n", user.ID, user.Timezone, user.CycleLength)
	}
}
