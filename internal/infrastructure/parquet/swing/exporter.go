package swing

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	swingv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/swing/v1"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
)

// Config is the parquet sink configuration.
type Config struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Dir     string `env:"DIR" envDefault:"./out"`
}

// Row is one swing in the exported file.
type Row struct {
	RunID    string  `parquet:"run_id"`
	Symbol   string  `parquet:"symbol"`
	Interval string  `parquet:"interval"`
	Seq      int64   `parquet:"seq"`
	Time     int64   `parquet:"time_unix_nano"`
	Price    float64 `parquet:"price"`
	High     bool    `parquet:"high"`
}

// Exporter writes the swings of a run to one parquet file per run.
type Exporter struct {
	dir string
}

// NewExporter creates an exporter writing into dir.
func NewExporter(config Config) *Exporter {
	return &Exporter{dir: config.Dir}
}

// Path returns the file a run is exported to.
func (e *Exporter) Path(run *swingv1.Run) string {
	return filepath.Join(e.dir, fmt.Sprintf("%s_%s_%s.parquet", run.Symbol, run.Interval, run.ID))
}

// Export writes points and returns the file path.
func (e *Exporter) Export(run *swingv1.Run, points []swingv1.Point) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", errors.NewErrorDetails("failed to create export dir: "+err.Error(), string(errors.ParquetExportError), e.dir)
	}

	rows := make([]Row, len(points))
	for i, p := range points {
		rows[i] = Row{
			RunID:    run.ID,
			Symbol:   run.Symbol,
			Interval: run.Interval,
			Seq:      int64(i),
			Time:     p.Time.UnixNano(),
			Price:    p.Price,
			High:     p.Direction == swingv1.DirectionHigh,
		}
	}

	path := e.Path(run)
	if err := parquet.WriteFile(path, rows); err != nil {
		return "", errors.NewErrorDetails("failed to write parquet: "+err.Error(), string(errors.ParquetExportError), path)
	}
	return path, nil
}
