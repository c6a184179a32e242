package interval

import (
	"fmt"
	"time"
)

// ValidateTimeRange validates an optional time range for a specific interval
func ValidateTimeRange(from, to *time.Time, intervalName string) error {
	if _, err := GetInterval(intervalName); err != nil {
		return err
	}

	if from != nil && to != nil && from.After(*to) {
		return fmt.Errorf("from time cannot be after to time")
	}

	return nil
}
