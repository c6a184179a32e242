package swing

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Writer is the part of *kafka.Writer the publisher needs.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
