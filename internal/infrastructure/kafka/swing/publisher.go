package swing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	swingv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/swing/v1"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
	"github.com/JieiGarcia/market-microstructure-research/pkg/logger"
)

// Config is the swing topic configuration.
type Config struct {
	Enabled   bool          `env:"ENABLED" envDefault:"false"`
	Brokers   []string      `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic     string        `env:"TOPIC" envDefault:"swings"`
	BatchSize int           `env:"BATCH_SIZE" envDefault:"500"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Publisher publishes every swing of a run as one message keyed by symbol.
type Publisher struct {
	writer    Writer
	batchSize int
	logger    logger.Interface
}

// NewWriter creates the kafka writer for the swing topic.
func NewWriter(config Config) *kafka.Writer {
	return kafka.NewWriter(kafka.WriterConfig{
		Brokers:      config.Brokers,
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    config.BatchSize,
		WriteTimeout: config.Timeout,
	})
}

// NewPublisher creates a new swing publisher.
func NewPublisher(writer Writer, batchSize int, logger logger.Interface) *Publisher {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Publisher{writer: writer, batchSize: batchSize, logger: logger}
}

// Publish sends the swings in order.
func (p *Publisher) Publish(ctx context.Context, run *swingv1.Run, points []swingv1.Point) error {
	msgs := make([]kafka.Message, 0, len(points))
	for i, point := range points {
		value, err := json.Marshal(swingv1.Event{
			RunID:    run.ID,
			Symbol:   run.Symbol,
			Interval: run.Interval,
			Seq:      i,
			Point:    point,
		})
		if err != nil {
			return errors.NewTracer("failed to encode swing event").Wrap(err)
		}
		msgs = append(msgs, kafka.Message{Key: []byte(run.Symbol), Value: value, Time: point.Time})
	}

	for start := 0; start < len(msgs); start += p.batchSize {
		end := min(start+p.batchSize, len(msgs))
		if err := p.writer.WriteMessages(ctx, msgs[start:end]...); err != nil {
			p.logger.ErrorContext(ctx, err,
				logger.NewField("run_id", run.ID),
				logger.NewField("offset", start),
			)
			return errors.NewErrorDetails("failed to publish swings: "+err.Error(), string(errors.KafkaPublishError), run.ID)
		}
	}

	p.logger.InfoContext(ctx, "swings published", logger.NewField("count", len(msgs)))
	return nil
}

// Close closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
