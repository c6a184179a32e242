package resample

import (
	barv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/bar/v1"
)

// GapReport summarises what ExcludeLongGaps removed.
type GapReport struct {
	Total   int
	Removed int
	Runs    int
}

// Percent returns the share of removed bars.
func (r GapReport) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Removed) / float64(r.Total) * 100
}

// ExcludeLongGaps drops every run of consecutive empty bars longer than
// maxRun. Shorter runs are kept. A maxRun below one disables the filter.
func ExcludeLongGaps(descs []barv1.Descriptor, maxRun int) ([]barv1.Descriptor, GapReport) {
	report := GapReport{Total: len(descs)}
	if maxRun < 1 {
		return descs, report
	}

	out := make([]barv1.Descriptor, 0, len(descs))
	runStart := -1
	flush := func(end int) {
		if runStart < 0 {
			return
		}
		if n := end - runStart; n > maxRun {
			report.Removed += n
			report.Runs++
		} else {
			out = append(out, descs[runStart:end]...)
		}
		runStart = -1
	}

	for i, desc := range descs {
		if desc.Empty {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		flush(i)
		out = append(out, desc)
	}
	flush(len(descs))

	return out, report
}
