package util

import (
	"context"

	"github.com/google/uuid"
)

type key string

const (
	runIDKey = key("x-run-id")
)

// WithRunID returns a context carrying the given run id.
// It will generate new run id if the provided id is empty.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return context.WithValue(ctx, runIDKey, generate())
	}

	return context.WithValue(ctx, runIDKey, id)
}

// GetRunID returns the run id from ctx, or an empty string when none is set.
func GetRunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)

	return id
}

// generate returns a uuid-v4 string to use as run id
func generate() string {
	return uuid.NewString()
}
