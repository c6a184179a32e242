package errors

import (
	"bytes"
	"strings"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"
	// InvalidConfigError represents a configuration that cannot drive a run.
	InvalidConfigError ErrorCode = "invalid_config"

	// ErrInvalidBar represents a bar whose prices or timestamps break the OHLC invariants.
	ErrInvalidBar ErrorCode = "invalid_bar"
	// ErrUnclassifiableBar represents a bar whose open/close, high/low ordering and wick
	// pattern match no known shape.
	ErrUnclassifiableBar ErrorCode = "unclassifiable_bar"
	// ErrMissingConnectorEntry represents a classified shape without a connector table entry.
	ErrMissingConnectorEntry ErrorCode = "missing_connector_entry"
	// ErrUnknownLink represents a connector pair between two bars that has no handler.
	ErrUnknownLink ErrorCode = "unknown_link"
	// ErrUnresolvedPivot represents a pivot role that the bar carries no point for.
	ErrUnresolvedPivot ErrorCode = "unresolved_pivot"

	// TickSourceError represents a failure while reading ticks.
	TickSourceError ErrorCode = "tick_source_error"
	// KafkaPublishError represents a failure while publishing swings to Kafka.
	KafkaPublishError ErrorCode = "kafka_publish_error"
	// ParquetExportError represents a failure while writing swings to a parquet file.
	ParquetExportError ErrorCode = "parquet_export_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisDelError represents an error when deleting a value from Redis.
	RedisDelError ErrorCode = "redis_del_error"
)

// BaseError is an `error` type containing an array of ErrorDetails.
// The pipeline uses it to report every failing bar of a run at once.
type BaseError struct {
	details []*ErrorDetails
}

// NewBaseError create BaseError with ErrorDetails
func NewBaseError(details ...*ErrorDetails) *BaseError {
	return &BaseError{details: details}
}

// AddErrorDetails add more ErrorDetails to BaseError
func (b *BaseError) AddErrorDetails(errors ...*ErrorDetails) {
	b.details = append(b.details, errors...)
}

// GetDetails get array ErrorDetails on BaseError
func (b *BaseError) GetDetails() []*ErrorDetails {
	return b.details
}

// HasDetails reports whether any ErrorDetails were collected.
func (b *BaseError) HasDetails() bool {
	return len(b.details) > 0
}

// Error implement error interface
func (b *BaseError) Error() string {
	buff := bytes.NewBufferString("")

	buff.WriteString("Error on\n")
	for _, err := range b.details {
		buff.WriteString("code: ")
		buff.WriteString(err.Code)
		buff.WriteString("; error: ")
		buff.WriteString(err.Error())
		buff.WriteString("; field: ")
		buff.WriteString(err.Field)
		buff.WriteString("\n")
	}

	return strings.TrimSpace(buff.String())
}

// IsAllCodeEqual check if all ErrorDetails code is equal with given code
func (b *BaseError) IsAllCodeEqual(code string) bool {
	if len(b.details) == 0 {
		return false
	}

	for _, d := range b.GetDetails() {
		if d.Code != code {
			return false
		}
	}
	return true
}

// IsAnyCodeEqual check if any ErrorDetails code is equal with given code
func (b *BaseError) IsAnyCodeEqual(code string) bool {
	for _, d := range b.GetDetails() {
		if d.Code == code {
			return true
		}
	}
	return false
}
