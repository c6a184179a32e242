package main

import (
	"context"
	"flag"
	"log"

	"github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/questdb/migrations"
	"github.com/JieiGarcia/market-microstructure-research/pkg/config"
	"github.com/JieiGarcia/market-microstructure-research/pkg/logger"
	"github.com/JieiGarcia/market-microstructure-research/pkg/migration"
	"github.com/JieiGarcia/market-microstructure-research/pkg/questdb"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "number of migrations to apply, 0 means all")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadQuestDB()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	l, err := logger.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer l.Sync()

	// Initialize QuestDB client
	client, err := questdb.NewClient(ctx, *cfg)
	if err != nil {
		log.Fatalf("Failed to initialize QuestDB client: %v", err)
	}
	defer client.Close()

	runner := migration.NewRunner(client, migrations.FS, l)

	switch *direction {
	case "up":
		err = runner.MigrateUp(ctx, *steps)
	case "down":
		err = runner.MigrateDown(ctx, *steps)
	default:
		log.Fatalf("Unknown direction %q", *direction)
	}
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")
}
