package bootstrap

import (
	zigzagDomain "github.com/JieiGarcia/market-microstructure-research/internal/domain/zigzag"
	csvTick "github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/csv/tick"
	ingestUc "github.com/JieiGarcia/market-microstructure-research/internal/usecase/ingest"
	zigzagUc "github.com/JieiGarcia/market-microstructure-research/internal/usecase/zigzag"
	"github.com/JieiGarcia/market-microstructure-research/pkg/config"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
)

// Usecase holds the usecases of the zigzag tool.
type Usecase struct {
	ZigzagUsecase zigzagDomain.Usecase
	// IngestUsecase is set when a CSV file and QuestDB are both configured.
	IngestUsecase zigzagDomain.IngestUsecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() error {
	var csvSource *csvTick.Reader
	if b.Config.Zigzag.CSV.Path != "" {
		reader, err := csvTick.NewReader(b.Config.Zigzag.CSV)
		if err != nil {
			return err
		}
		csvSource = reader
	}

	var source zigzagDomain.TickSource
	switch b.Config.Zigzag.Source {
	case config.SourceCSV:
		if csvSource == nil {
			return errors.NewErrorDetails("csv source needs a path", string(errors.InvalidConfigError), "ZIGZAG_CSV_PATH")
		}
		source = csvSource
	case config.SourceQuestDB:
		if b.Repository.TickRepository == nil {
			return errors.NewErrorDetails("questdb source needs a client", string(errors.InvalidConfigError), "ZIGZAG_SOURCE")
		}
		source = zigzagUc.NewRepositorySource(b.Repository.TickRepository)
	default:
		return errors.NewErrorDetails("unknown tick source: "+b.Config.Zigzag.Source, string(errors.InvalidConfigError), "ZIGZAG_SOURCE")
	}

	sinks := zigzagUc.Sinks{}
	if b.Config.QuestDB.StoreSwings {
		sinks.Swings = b.Repository.SwingRepository
		sinks.Transaction = b.Repository.Transaction
	}
	if b.Sink.Publisher != nil {
		sinks.Publisher = b.Sink.Publisher
	}
	if b.Sink.Cache != nil {
		sinks.Cache = b.Sink.Cache
	}
	if b.Sink.Exporter != nil {
		sinks.Exporter = b.Sink.Exporter
	}

	b.Usecase.ZigzagUsecase = zigzagUc.NewUsecase(source, sinks, zigzagUc.Options{
		Workers:   b.Config.Zigzag.Workers,
		MaxGapRun: b.Config.Zigzag.MaxGapRun,
	}, b.Logger)

	if csvSource != nil && b.Repository.TickRepository != nil {
		b.Usecase.IngestUsecase = ingestUc.NewUsecase(csvSource, b.Repository.TickRepository, b.Config.Zigzag.IngestBatchSize, b.Logger)
	}

	return nil
}
