package rabbitmq

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		pattern string
		key     string
		want    bool
	}{
		{"order.created", "order.created", true},
		{"order.created", "order.deleted", false},
		{"product.*", "product.created", true},
		{"product.*", "product.updated", true},
		{"product.*", "order.created", false},
		{"order.*", "order.product_added", true},
		{"#", "anything.at.all", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matches(tt.pattern, tt.key), "pattern %q key %q", tt.pattern, tt.key)
	}
}

func TestDispatch(t *testing.T) {
	router := NewEventRouter()

	var exact, wildcard, all int
	router.RegisterHandler("order.created", func(body []byte) error {
		exact++
		return nil
	})
	router.RegisterHandler("product.*", func(body []byte) error {
		wildcard++
		return nil
	})
	router.RegisterHandler("#", func(body []byte) error {
		all++
		return nil
	})

	router.Dispatch("order.created", []byte(`{}`))
	router.Dispatch("product.deleted", []byte(`{}`))

	assert.Equal(t, 1, exact)
	assert.Equal(t, 1, wildcard)
	assert.Equal(t, 2, all)
}

func TestNewEntityEventEnvelope(t *testing.T) {
	event := NewEntityEvent(OrderProductAdded, AssociationEventData{OrderID: 1, ProductID: 10})

	_, err := uuid.Parse(event.ID)
	require.NoError(t, err)
	assert.Equal(t, OrderProductAdded, event.Type)
	assert.False(t, event.Timestamp.IsZero())

	// The envelope round-trips through the generic consumer shape.
	body, err := json.Marshal(event)
	require.NoError(t, err)

	var generic GenericEvent
	require.NoError(t, json.Unmarshal(body, &generic))
	assert.Equal(t, event.ID, generic.ID)

	var data AssociationEventData
	require.NoError(t, json.Unmarshal(generic.Data, &data))
	assert.Equal(t, uint(1), data.OrderID)
	assert.Equal(t, uint(10), data.ProductID)
}

func TestSetupEventHandlersDispatch(t *testing.T) {
	router := SetupEventHandlers(nil)

	event := NewEntityEvent(OrderProductAdded, AssociationEventData{OrderID: 2, ProductID: 20})
	body, err := json.Marshal(event)
	require.NoError(t, err)

	// Handlers are logging-only; this must not panic or error loudly.
	router.Dispatch(string(OrderProductAdded), body)
	router.Dispatch(string(CustomerCreated), body)
}
