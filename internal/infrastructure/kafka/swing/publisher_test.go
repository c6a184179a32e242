package swing

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swingv1 "github.com/JieiGarcia/market-microstructure-research/internal/domain/swing/v1"
	"github.com/JieiGarcia/market-microstructure-research/internal/infrastructure/kafka/swing/mock"
	pkgerrors "github.com/JieiGarcia/market-microstructure-research/pkg/errors"
	"github.com/JieiGarcia/market-microstructure-research/pkg/logger"
)

func TestPublisher_Publish(t *testing.T) {
	at := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	run := &swingv1.Run{ID: "run-1", Symbol: "EURUSD", Interval: "1m"}
	points := []swingv1.Point{
		swingv1.High(at, 1.09),
		swingv1.Low(at.Add(time.Minute), 1.08),
		swingv1.High(at.Add(2*time.Minute), 1.10),
	}

	testCases := []struct {
		name      string
		batchSize int
		mockFn    func(writer *mock.MockWriter)
		assertFn  func(t *testing.T, err error)
	}{
		{
			name:      "single batch keyed by symbol",
			batchSize: 10,
			mockFn: func(writer *mock.MockWriter) {
				writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
						require.Len(t, msgs, 3)
						for i, msg := range msgs {
							assert.Equal(t, []byte("EURUSD"), msg.Key)

							var event swingv1.Event
							require.NoError(t, json.Unmarshal(msg.Value, &event))
							assert.Equal(t, i, event.Seq)
							assert.Equal(t, points[i], event.Point)
						}
						return nil
					})
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:      "split into batches",
			batchSize: 2,
			mockFn: func(writer *mock.MockWriter) {
				gomock.InOrder(
					writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
					writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:      "write failure",
			batchSize: 10,
			mockFn: func(writer *mock.MockWriter) {
				writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.True(t, pkgerrors.ErrorCodeEquals(err, pkgerrors.KafkaPublishError))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writer := mock.NewMockWriter(ctrl)
			tc.mockFn(writer)

			err := NewPublisher(writer, tc.batchSize, logger.NewNopLogger()).Publish(context.Background(), run, points)
			tc.assertFn(t, err)
		})
	}
}
