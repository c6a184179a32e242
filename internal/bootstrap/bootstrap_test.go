package bootstrap

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/csv/tick"
	"github.com/JieiGarcia/market-microstructure-research/pkg/config"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
	"github.com/JieiGarcia/market-microstructure-research/pkg/logger"
	questdbMock "github.com/JieiGarcia/market-microstructure-research/pkg/questdb/mock"
)

func baseConfig() *config.Config {
	return &config.Config{
		Zigzag: config.ZigzagConfig{
			Interval: "1m",
			Source:   config.SourceCSV,
			Workers:  2,
			CSV:      tick.Config{Path: "ticks.csv", TimeColumn: "Time (EET)", PriceColumn: "Bid", Location: "UTC"},
		},
	}
}

func TestBootstrap_Init(t *testing.T) {
	testCases := []struct {
		name     string
		cfgFn    func(cfg *config.Config)
		questDB  bool
		assertFn func(t *testing.T, b Bootstrap, err error)
	}{
		{
			name:  "csv source without sinks",
			cfgFn: func(cfg *config.Config) {},
			assertFn: func(t *testing.T, b Bootstrap, err error) {
				require.NoError(t, err)
				assert.NotNil(t, b.Usecase.ZigzagUsecase)
				assert.Nil(t, b.Usecase.IngestUsecase)
				assert.Nil(t, b.Sink.Publisher)
				assert.Nil(t, b.Sink.Exporter)
			},
		},
		{
			name: "csv source with questdb enables ingest",
			cfgFn: func(cfg *config.Config) {
				cfg.QuestDB.StoreSwings = true
				cfg.Parquet.Enabled = true
				cfg.Parquet.Dir = t.TempDir()
			},
			questDB: true,
			assertFn: func(t *testing.T, b Bootstrap, err error) {
				require.NoError(t, err)
				assert.NotNil(t, b.Usecase.IngestUsecase)
				assert.NotNil(t, b.Repository.SwingRepository)
				assert.NotNil(t, b.Sink.Exporter)
			},
		},
		{
			name: "questdb source without client",
			cfgFn: func(cfg *config.Config) {
				cfg.Zigzag.Source = config.SourceQuestDB
			},
			assertFn: func(t *testing.T, b Bootstrap, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.InvalidConfigError))
			},
		},
		{
			name: "unknown csv location",
			cfgFn: func(cfg *config.Config) {
				cfg.Zigzag.CSV.Location = "Nowhere/Land"
			},
			assertFn: func(t *testing.T, b Bootstrap, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.InvalidConfigError))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := baseConfig()
			tc.cfgFn(cfg)

			bc := BootstrapConfig{Config: cfg, Logger: logger.NewNopLogger()}
			if tc.questDB {
				bc.QuestDB = questdbMock.NewMockQuestDBClient(ctrl)
			}

			b, err := (&Bootstrap{}).Init(bc)
			tc.assertFn(t, b, err)
		})
	}
}
