package swing

import (
	"context"
	"encoding/json"

	swingv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/swing/v1"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
	"github.com/JieiGarcia/market-microstructure-research/pkg/logger"
	"github.com/JieiGarcia/market-microstructure-research/pkg/redis"
)

// Snapshot is the cached result of the latest run of a symbol and interval.
type Snapshot struct {
	Run    swingv1.Run     `json:"run"`
	Swings []swingv1.Point `json:"swings"`
}

// Cache keeps the latest swings per symbol and interval in Redis.
type Cache struct {
	client redis.Client
	logger logger.Interface
}

// NewCache creates a new swing cache.
func NewCache(client redis.Client, logger logger.Interface) *Cache {
	return &Cache{client: client, logger: logger}
}

func (c *Cache) key(symbol, interval string) string {
	return c.client.Key("swings", symbol, interval)
}

// StoreLatest replaces the cached snapshot of the run's symbol and interval.
func (c *Cache) StoreLatest(ctx context.Context, run *swingv1.Run, points []swingv1.Point) error {
	buf, err := json.Marshal(Snapshot{Run: *run, Swings: points})
	if err != nil {
		return errors.NewTracer("swing_snapshot_marshal_error").Wrap(err)
	}

	key := c.key(run.Symbol, run.Interval)
	if err := c.client.Set(ctx, key, buf, c.client.DefaultTTL()); err != nil {
		c.logger.ErrorContext(ctx, err, logger.NewField("key", key))
		return errors.NewTracer("swing_snapshot_store_error").Wrap(err)
	}

	c.logger.InfoContext(ctx, "swing snapshot cached",
		logger.NewField("key", key),
		logger.NewField("swings", len(points)),
	)
	return nil
}

// GetLatest returns the cached snapshot, or nil when there is none.
func (c *Cache) GetLatest(ctx context.Context, symbol, interval string) (*Snapshot, error) {
	val, err := c.client.Get(ctx, c.key(symbol, interval))
	if err != nil {
		return nil, errors.NewTracer("swing_snapshot_load_error").Wrap(err)
	}
	if val == "" {
		return nil, nil
	}

	snapshot := &Snapshot{}
	if err := json.Unmarshal([]byte(val), snapshot); err != nil {
		return nil, errors.NewTracer("swing_snapshot_unmarshal_error").Wrap(err)
	}
	return snapshot, nil
}
