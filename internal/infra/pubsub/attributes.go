package pubsub

import "pricing/internal/domain/service"

// eventAttributes returns the message attributes used for filtering and tracing.
func eventAttributes(event *service.PriceChangeEvent) map[string]string {
	attributes := map[string]string{
		"event_id":  event.EventID,
		"operation": event.Operation,
		"actor_id":  event.ActorID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
