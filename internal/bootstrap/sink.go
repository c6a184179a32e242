package bootstrap

import (
	kafkaSwing "github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/kafka/swing"
	parquetSwing "github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/parquet/swing"
	redisSwing "github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/redis/swing"
)

// Sink holds the enabled swing outputs besides QuestDB.
type Sink struct {
	Publisher *kafkaSwing.Publisher
	Cache     *redisSwing.Cache
	Exporter  *parquetSwing.Exporter
}

// registerSink registers the sinks enabled in the config.
func (b *Bootstrap) registerSink() {
	if cfg := b.Config.SwingKafka; cfg.Enabled {
		b.Sink.Publisher = kafkaSwing.NewPublisher(kafkaSwing.NewWriter(cfg), cfg.BatchSize, b.Logger)
	}
	if b.Config.Redis.Enabled && b.Redis != nil {
		b.Sink.Cache = redisSwing.NewCache(b.Redis, b.Logger)
	}
	if b.Config.Parquet.Enabled {
		b.Sink.Exporter = parquetSwing.NewExporter(b.Config.Parquet)
	}
}
