package events_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freegoat/admin-dashboard/internal/events"
)

func TestNewPublisher_RequiresClient(t *testing.T) {
	assert.Nil(t, events.NewPublisher(nil, nil))
}

func TestPublisher_NilReceiverIsNoOp(t *testing.T) {
	var pub *events.Publisher

	err := pub.Publish(context.Background(), events.Event{
		EventType:  events.NotificationSent,
		ResourceID: "3",
	})
	assert.NoError(t, err)

	// Must not panic either.
	pub.PublishAsync(events.NotificationDeleted, "3", nil)
}

func TestEvent_MarshalsWithResourceID(t *testing.T) {
	event := events.Event{
		EventType:  events.RepositoryRefreshed,
		ResourceID: "7",
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, string(events.RepositoryRefreshed), decoded["event_type"])
	assert.Equal(t, "7", decoded["resource_id"])
}

func TestEvent_OmitsEmptyOptionalFields(t *testing.T) {
	data, err := json.Marshal(events.Event{EventType: events.RepositoriesRefreshed})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "resource_id")
	assert.NotContains(t, decoded, "payload")
}
