package tick

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	barv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/bar/v1"
	"github.com/JieiGarcia/market-microstructure-research/pkg/errors"
)

// Layouts are tried in order for every time cell.
var Layouts = []string{
	"2006.01.02 15:04:05.000",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// Config describes the tick file.
type Config struct {
	Path        string `env:"PATH"`
	TimeColumn  string `env:"TIME_COLUMN" envDefault:"Time (EET)"`
	PriceColumn string `env:"PRICE_COLUMN" envDefault:"Bid"`
	Location    string `env:"LOCATION" envDefault:"EET"`
}

// Reader loads ticks from a CSV export with a header row.
type Reader struct {
	config Config
	loc    *time.Location
}

// NewReader creates a reader. An empty location means UTC.
func NewReader(config Config) (*Reader, error) {
	loc := time.UTC
	if config.Location != "" {
		var err error
		loc, err = time.LoadLocation(config.Location)
		if err != nil {
			return nil, errors.NewErrorDetails("unknown location: "+config.Location, string(errors.InvalidConfigError), "LOCATION")
		}
	}
	return &Reader{config: config, loc: loc}, nil
}

// Ticks reads the configured file and keeps ticks inside [from, to].
// symbol is ignored since a file holds a single instrument.
func (r *Reader) Ticks(ctx context.Context, _ string, from, to *time.Time) ([]barv1.Tick, error) {
	f, err := os.Open(r.config.Path)
	if err != nil {
		return nil, errors.NewErrorDetails("failed to open tick file: "+err.Error(), string(errors.TickSourceError), r.config.Path)
	}
	defer f.Close()

	ticks, err := r.Read(ctx, f)
	if err != nil {
		return nil, err
	}

	filtered := ticks[:0]
	for _, t := range ticks {
		if from != nil && t.Timestamp.Before(*from) {
			continue
		}
		if to != nil && t.Timestamp.After(*to) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered, nil
}

// Read parses ticks from src and returns them stable-sorted by time.
func (r *Reader) Read(ctx context.Context, src io.Reader) ([]barv1.Tick, error) {
	cr := csv.NewReader(src)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.NewErrorDetails("failed to read header: "+err.Error(), string(errors.TickSourceError), "header")
	}

	timeIdx, priceIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case r.config.TimeColumn:
			timeIdx = i
		case r.config.PriceColumn:
			priceIdx = i
		}
	}
	if timeIdx < 0 || priceIdx < 0 {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("missing column %q or %q", r.config.TimeColumn, r.config.PriceColumn),
			string(errors.TickSourceError), "header",
		)
	}

	var ticks []barv1.Tick
	for line := 2; ; line++ {
		if line%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, errors.TracerFromError(err)
			}
		}

		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewErrorDetails(err.Error(), string(errors.TickSourceError), "line "+strconv.Itoa(line))
		}

		at, err := r.parseTime(rec[timeIdx])
		if err != nil {
			return nil, errors.NewErrorDetails(err.Error(), string(errors.TickSourceError), "line "+strconv.Itoa(line))
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(rec[priceIdx]), 64)
		if err != nil {
			return nil, errors.NewErrorDetails("invalid price: "+rec[priceIdx], string(errors.TickSourceError), "line "+strconv.Itoa(line))
		}

		ticks = append(ticks, barv1.Tick{Timestamp: at, Price: price})
	}

	sort.SliceStable(ticks, func(i, j int) bool {
		return ticks[i].Timestamp.Before(ticks[j].Timestamp)
	})
	return ticks, nil
}

func (r *Reader) parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range Layouts {
		if t, err := time.ParseInLocation(layout, value, r.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format: %q", value)
}
