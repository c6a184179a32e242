package interval

import (
	"fmt"
	"sort"
	"time"
)

// Interval represents the fixed bar length used to group ticks.
type Interval struct {
	Name     string
	Duration time.Duration
}

// Supported intervals configuration
var (
	Interval1m  = Interval{Name: "1m", Duration: time.Minute}
	Interval2m  = Interval{Name: "2m", Duration: 2 * time.Minute}
	Interval3m  = Interval{Name: "3m", Duration: 3 * time.Minute}
	Interval5m  = Interval{Name: "5m", Duration: 5 * time.Minute}
	Interval10m = Interval{Name: "10m", Duration: 10 * time.Minute}
	Interval15m = Interval{Name: "15m", Duration: 15 * time.Minute}
	Interval30m = Interval{Name: "30m", Duration: 30 * time.Minute}
	Interval1h  = Interval{Name: "1h", Duration: time.Hour}
	Interval4h  = Interval{Name: "4h", Duration: 4 * time.Hour}
)

// AllIntervals lists every supported interval, shortest first.
var AllIntervals = []Interval{
	Interval1m, Interval2m, Interval3m, Interval5m, Interval10m,
	Interval15m, Interval30m, Interval1h, Interval4h,
}

var intervalRegistry = make(map[string]Interval)

func init() {
	for _, interval := range AllIntervals {
		intervalRegistry[interval.Name] = interval
	}
}

// GetInterval returns an interval by name
func GetInterval(name string) (Interval, error) {
	interval, exists := intervalRegistry[name]
	if !exists {
		return Interval{}, fmt.Errorf("unsupported interval: %s, supported: %v", name, GetAllIntervalNames())
	}
	return interval, nil
}

// IsValidInterval checks if interval name is supported
func IsValidInterval(name string) bool {
	_, exists := intervalRegistry[name]
	return exists
}

// GetAllIntervalNames returns all supported interval names
func GetAllIntervalNames() []string {
	names := make([]string, 0, len(AllIntervals))
	for _, interval := range AllIntervals {
		names = append(names, interval.Name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		return intervalRegistry[names[i]].Duration < intervalRegistry[names[j]].Duration
	})
	return names
}

// BarsPerDay returns how many bars of this interval fit into 24 hours.
// The gap filter treats an empty run longer than this as a market closure.
func (i Interval) BarsPerDay() int {
	return int((24 * time.Hour) / i.Duration)
}

func (i Interval) String() string {
	return i.Name
}
