package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	csvTick "github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/csv/tick"
	kafkaSwing "github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/kafka/swing"
	parquetSwing "github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/parquet/swing"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
	"github.com/JieiGarcia/market-microstructure-research/pkg/interval"
	"github.com/JieiGarcia/market-microstructure-research/pkg/questdb"
	"github.com/JieiGarcia/market-microstructure-research/pkg/redis"
	"github.com/JieiGarcia/market-microstructure-research/pkg/util"
)

// Tick sources.
const (
	SourceCSV     = "csv"
	SourceQuestDB = "questdb"
)

// Config represents the application configuration.
type Config struct {
	App        AppConfig           `envPrefix:"APP_"`
	Zigzag     ZigzagConfig        `envPrefix:"ZIGZAG_"`
	QuestDB    QuestDBConfig       `envPrefix:"QUESTDB_"`
	Redis      RedisConfig         `envPrefix:"REDIS_"`
	SwingKafka kafkaSwing.Config   `envPrefix:"SWING_KAFKA_"`
	Parquet    parquetSwing.Config `envPrefix:"PARQUET_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"zigzag"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// ZigzagConfig selects the ticks of a run and tunes the pipeline.
type ZigzagConfig struct {
	Symbol   string `env:"SYMBOL" envDefault:"EURUSD"`
	Interval string `env:"INTERVAL" envDefault:"1m"`
	Source   string `env:"SOURCE" envDefault:"csv"`
	Workers  int    `env:"WORKERS" envDefault:"4"`
	// MaxGapRun of zero means one day of bars, a negative value disables the filter.
	MaxGapRun       int    `env:"MAX_GAP_RUN" envDefault:"0"`
	From            string `env:"FROM"`
	To              string `env:"TO"`
	IngestBatchSize int    `env:"INGEST_BATCH_SIZE" envDefault:"10000"`

	CSV csvTick.Config `envPrefix:"CSV_"`
}

// QuestDBConfig enables the swing store on top of the connection settings.
type QuestDBConfig struct {
	StoreSwings bool `env:"STORE_SWINGS" envDefault:"false"`
	questdb.Config
}

// RedisConfig enables the latest swings cache on top of the client settings.
type RedisConfig struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
	redis.Config
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadQuestDB loads only the QuestDB connection settings.
func LoadQuestDB() (*questdb.Config, error) {
	_ = godotenv.Load()

	cfg := &questdb.Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "QUESTDB_"}); err != nil {
		return nil, fmt.Errorf("failed to parse questdb config: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings a run cannot start without.
func (c *Config) Validate() error {
	if !interval.IsValidInterval(c.Zigzag.Interval) {
		return invalid("unsupported interval: "+c.Zigzag.Interval, "ZIGZAG_INTERVAL")
	}

	switch c.Zigzag.Source {
	case SourceCSV:
		if c.Zigzag.CSV.Path == "" {
			return invalid("csv source needs a path", "ZIGZAG_CSV_PATH")
		}
	case SourceQuestDB:
	default:
		return invalid("unknown tick source: "+c.Zigzag.Source, "ZIGZAG_SOURCE")
	}

	if c.Zigzag.Workers < 1 {
		return invalid("workers must be positive", "ZIGZAG_WORKERS")
	}

	if _, _, err := c.Zigzag.Range(); err != nil {
		return err
	}

	if c.Redis.Enabled {
		if err := c.Redis.Config.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Range parses the optional FROM and TO bounds as RFC3339 times.
func (z ZigzagConfig) Range() (from, to *time.Time, err error) {
	from, err = util.ParseOptionalTime(z.From, time.RFC3339, time.UTC)
	if err != nil {
		return nil, nil, invalid("invalid from: "+z.From, "ZIGZAG_FROM")
	}
	to, err = util.ParseOptionalTime(z.To, time.RFC3339, time.UTC)
	if err != nil {
		return nil, nil, invalid("invalid to: "+z.To, "ZIGZAG_TO")
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, invalid("to is before from", "ZIGZAG_TO")
	}
	return from, to, nil
}

func invalid(message, field string) error {
	return errors.NewErrorDetails(message, string(errors.InvalidConfigError), field)
}
