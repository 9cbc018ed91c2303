package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pricing/config"
	"pricing/internal/domain/constants"
	"pricing/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.PriceChangeEvent {
	return &service.PriceChangeEvent{
		RequestID:    "req-123",
		EventID:      "evt-1",
		Operation:    service.OperationBulkAdjust,
		ActorID:      "actor-1",
		UpdatedCount: 1,
		Changes: []service.PriceChangeEntry{
			{ProductID: "p-1", OldPrice: 100, NewPrice: 105, Reason: "Bulk increase 5% (frozen)"},
		},
		OccurredAt: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	t.Parallel()

	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishPriceChangeEvent(context.Background(), event))
	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, service.OperationBulkAdjust, received.Message.Attributes["operation"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.PriceChangeEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.UpdatedCount, decoded.UpdatedCount)
	assert.Equal(t, event.Changes, decoded.Changes)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishPriceChangeEvent(context.Background(), newTestEvent())
	assert.ErrorContains(t, err, "502")
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	t.Parallel()

	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishPriceChangeEvent(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, []byte(service.OperationBulkAdjust), msg.Key)
	assert.Equal(t, event.OccurredAt, msg.Time)

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "evt-1", headers["event_id"])
	assert.Equal(t, "req-123", headers["request_id"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestNewKafkaPublisher_FlushesWithoutWaitingForBatch(t *testing.T) {
	t.Parallel()

	publisher := NewKafkaPublisher([]string{"localhost:9092"}, "price-changes", slog.New(slog.DiscardHandler))
	kp, ok := publisher.(*kafkaPublisher)
	require.True(t, ok)
	writer, ok := kp.writer.(*kafka.Writer)
	require.True(t, ok)

	assert.Equal(t, kafkaBatchTimeout, writer.BatchTimeout)
	assert.Less(t, writer.BatchTimeout, 100*time.Millisecond)
	assert.Equal(t, "price-changes", writer.Topic)
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	t.Parallel()

	publisher := newKafkaPublisher(&fakeWriter{err: errors.New("leader not available")}, newDiscardLogger())

	err := publisher.PublishPriceChangeEvent(context.Background(), newTestEvent())
	assert.ErrorContains(t, err, "evt-1")
}

func TestNewPublisher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      *config.PubSubConfig
		wantType any
		wantErr  string
	}{
		{name: "not configured", cfg: nil, wantType: &noopPublisher{}},
		{name: "empty provider", cfg: &config.PubSubConfig{}, wantType: &noopPublisher{}},
		{
			name:     "local",
			cfg:      &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"},
			wantType: &localHTTPPublisher{},
		},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint"},
		{
			name:     "kafka",
			cfg:      &config.PubSubConfig{Provider: constants.PubSubProviderKafka, Brokers: []string{"localhost:9092"}, TopicID: "price-changes"},
			wantType: &kafkaPublisher{},
		},
		{name: "kafka without brokers", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderKafka, TopicID: "t"}, wantErr: "brokers"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: "project ID"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			publisher, err := newPublisher(context.Background(), tt.cfg, newDiscardLogger())
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}
