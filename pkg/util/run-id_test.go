package util

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRunID(t *testing.T) {
	testCases := []struct {
		name     string
		id       string
		assertFn func(t *testing.T, got string)
	}{
		{
			name: "keeps given id",
			id:   "run-1",
			assertFn: func(t *testing.T, got string) {
				assert.Equal(t, "run-1", got)
			},
		},
		{
			name: "generates id when empty",
			id:   "",
			assertFn: func(t *testing.T, got string) {
				assert.Len(t, got, 36)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := WithRunID(context.Background(), tc.id)
			tc.assertFn(t, GetRunID(ctx))
		})
	}
}

func TestGetRunID_Missing(t *testing.T) {
	assert.Equal(t, "", GetRunID(context.Background()))
}

func TestParseOptionalTime(t *testing.T) {
	got, err := ParseOptionalTime("", time.RFC3339, time.UTC)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalTime("2024-01-02T03:04:05Z", time.RFC3339, time.UTC)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), *got)

	_, err = ParseOptionalTime("not-a-time", time.RFC3339, time.UTC)
	assert.Error(t, err)
}
