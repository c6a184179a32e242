package interval

import (
	"time"
)

// CalculateBucketTime calculates the start time of the interval bucket.
// Buckets are aligned to the wall clock of the timestamp's location.
func (i Interval) CalculateBucketTime(timestamp time.Time) time.Time {
	_, offset := timestamp.Zone()
	shift := time.Duration(offset) * time.Second

	return timestamp.Add(shift).Truncate(i.Duration).Add(-shift)
}

// GetBucketRange returns the start and end time of the interval bucket.
// The end is exclusive.
func (i Interval) GetBucketRange(timestamp time.Time) (start, end time.Time) {
	start = i.CalculateBucketTime(timestamp)
	end = start.Add(i.Duration)
	return start, end
}

// IsInBucket checks if a timestamp falls within the same bucket as another timestamp
func (i Interval) IsInBucket(timestamp1, timestamp2 time.Time) bool {
	bucket1 := i.CalculateBucketTime(timestamp1)
	bucket2 := i.CalculateBucketTime(timestamp2)
	return bucket1.Equal(bucket2)
}

// CountBuckets returns how many buckets the closed range [from, to] spans.
func (i Interval) CountBuckets(from, to time.Time) int {
	first := i.CalculateBucketTime(from)
	last := i.CalculateBucketTime(to)
	if last.Before(first) {
		return 0
	}
	return int(last.Sub(first)/i.Duration) + 1
}
