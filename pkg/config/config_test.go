package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
)

func TestLoad(t *testing.T) {
	testCases := []struct {
		name     string
		env      map[string]string
		assertFn func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "defaults with a csv path",
			env:  map[string]string{"ZIGZAG_CSV_PATH": "ticks.csv"},
			assertFn: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "zigzag", cfg.App.Name)
				assert.Equal(t, "1m", cfg.Zigzag.Interval)
				assert.Equal(t, SourceCSV, cfg.Zigzag.Source)
				assert.Equal(t, 4, cfg.Zigzag.Workers)
				assert.Equal(t, "Time (EET)", cfg.Zigzag.CSV.TimeColumn)
				assert.Equal(t, "Bid", cfg.Zigzag.CSV.PriceColumn)
				assert.Equal(t, 8812, cfg.QuestDB.Port)
				assert.Equal(t, "swings", cfg.SwingKafka.Topic)
				assert.Equal(t, "zigzag:", cfg.Redis.PrefixKey)
				assert.False(t, cfg.Redis.Enabled)
				assert.False(t, cfg.Parquet.Enabled)
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"ZIGZAG_SOURCE":        SourceQuestDB,
				"ZIGZAG_INTERVAL":      "5m",
				"ZIGZAG_FROM":          "2024-03-04T00:00:00Z",
				"SWING_KAFKA_ENABLED":  "true",
				"SWING_KAFKA_BROKERS":  "a:9092,b:9092",
				"QUESTDB_STORE_SWINGS": "true",
			},
			assertFn: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "5m", cfg.Zigzag.Interval)
				assert.True(t, cfg.SwingKafka.Enabled)
				assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.SwingKafka.Brokers)
				assert.True(t, cfg.QuestDB.StoreSwings)

				from, to, err := cfg.Zigzag.Range()
				require.NoError(t, err)
				assert.Nil(t, to)
				assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), *from)
			},
		},
		{
			name: "csv source without path",
			env:  map[string]string{},
			assertFn: func(t *testing.T, cfg *Config, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.InvalidConfigError))
			},
		},
		{
			name: "unsupported interval",
			env:  map[string]string{"ZIGZAG_CSV_PATH": "ticks.csv", "ZIGZAG_INTERVAL": "7m"},
			assertFn: func(t *testing.T, cfg *Config, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.InvalidConfigError))
			},
		},
		{
			name: "reversed range",
			env: map[string]string{
				"ZIGZAG_SOURCE": SourceQuestDB,
				"ZIGZAG_FROM":   "2024-03-05T00:00:00Z",
				"ZIGZAG_TO":     "2024-03-04T00:00:00Z",
			},
			assertFn: func(t *testing.T, cfg *Config, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.InvalidConfigError))
			},
		},
		{
			name: "zero workers",
			env:  map[string]string{"ZIGZAG_SOURCE": SourceQuestDB, "ZIGZAG_WORKERS": "0"},
			assertFn: func(t *testing.T, cfg *Config, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.InvalidConfigError))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			tc.assertFn(t, cfg, err)
		})
	}
}

func TestLoadQuestDB(t *testing.T) {
	t.Setenv("QUESTDB_HOST", "questdb")

	cfg, err := LoadQuestDB()
	require.NoError(t, err)
	assert.Equal(t, "questdb", cfg.Host)
	assert.Equal(t, "qdb", cfg.Database)
}
