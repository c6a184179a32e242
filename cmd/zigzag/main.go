package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/JieiGarcia/market-microstructure-research/internal/bootstrap"
	"github.com/JieiGarcia/market-microstructure-research/internal/domain/zigzag"
	"github.com/JieiGarcia/market-microstructure-research/pkg/config"
	"github.com/JieiGarcia/market-microstructure-research/pkg/logger"
	"github.com/JieiGarcia/market-microstructure-research/pkg/questdb"
	"github.com/JieiGarcia/market-microstructure-research/pkg/redis"
)

func main() {
	mode := flag.String("mode", "run", "run: build the zigzag once, ingest: copy csv ticks into questdb")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	l, err := logger.NewLogger(
		logger.WithLoggingLevel(logger.ParseLevel(cfg.App.LogLevel)),
		logger.WithDevelopment(cfg.App.Environment == "development"),
		logger.WithInitialFields(logger.NewField("app", cfg.App.Name)),
	)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer l.Sync()

	bc := bootstrap.BootstrapConfig{Config: cfg, Logger: l}

	if cfg.Zigzag.Source == config.SourceQuestDB || cfg.QuestDB.StoreSwings || *mode == "ingest" {
		client, err := questdb.NewClient(ctx, cfg.QuestDB.Config)
		if err != nil {
			log.Fatalf("Failed to initialize QuestDB client: %v", err)
		}
		defer client.Close()
		bc.QuestDB = client
	}

	if cfg.Redis.Enabled {
		client := redis.NewClient(l, &cfg.Redis.Config)
		if err := client.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer client.Disconnect(context.Background())
		bc.Redis = client
	}

	app, err := (&bootstrap.Bootstrap{}).Init(bc)
	if err != nil {
		log.Fatalf("Failed to bootstrap: %v", err)
	}
	defer app.Close()

	from, to, err := cfg.Zigzag.Range()
	if err != nil {
		log.Fatalf("Invalid range: %v", err)
	}

	switch *mode {
	case "ingest":
		if app.Usecase.IngestUsecase == nil {
			log.Fatal("Ingest needs ZIGZAG_CSV_PATH")
		}
		stored, err := app.Usecase.IngestUsecase.Ingest(ctx, cfg.Zigzag.Symbol, from, to)
		if err != nil {
			l.Error(err)
			log.Fatalf("Ingest failed after %d ticks", stored)
		}
		log.Printf("Stored %d ticks", stored)
	case "run":
		result, err := app.Usecase.ZigzagUsecase.Run(ctx, zigzag.Request{
			Symbol:   cfg.Zigzag.Symbol,
			Interval: cfg.Zigzag.Interval,
			From:     from,
			To:       to,
		})
		if err != nil {
			l.Error(err)
			log.Fatalf("Run failed: %v", err)
		}
		log.Printf("Run %s: %d bars, %d swings", result.Run.ID, result.Run.Bars, result.Run.Swings)
	default:
		log.Fatalf("Unknown mode %q", *mode)
	}
}
