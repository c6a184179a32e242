package util

import "time"

// TimePointer converts a time.Time to a pointer to a time.Time.
func TimePointer(t time.Time) *time.Time {
	return &t
}

// ParseOptionalTime parses value with layout in loc. An empty value yields nil.
func ParseOptionalTime(value, layout string, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return nil, err
	}

	return TimePointer(t), nil
}
