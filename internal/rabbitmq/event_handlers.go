package rabbitmq

import (
	"encoding/json"
	"log"
	"time"

	"gorm.io/gorm"
)

// GenericEvent is a structure for parsing event data without knowing the
// concrete payload type.
type GenericEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// AssociationEventData is the payload of order.product_added and
// order.product_removed events.
type AssociationEventData struct {
	OrderID   uint `json:"order_id"`
	ProductID uint `json:"product_id"`
}

// SetupEventHandlers configures handlers for the event types this service
// cares about. The dbConn parameter is where a handler would read current
// state when reacting to an event.
func SetupEventHandlers(dbConn *gorm.DB) *EventRouter {
	router := NewEventRouter()

	router.RegisterHandler("order.product_added", func(body []byte) error {
		var event GenericEvent
		if err := json.Unmarshal(body, &event); err != nil {
			log.Printf("Error unmarshaling association event: %v", err)
			return err
		}

		var data AssociationEventData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			log.Printf("Error unmarshaling association payload: %v", err)
			return err
		}

		log.Printf("Product %d added to order %d", data.ProductID, data.OrderID)
		return nil
	})

	router.RegisterHandler("customer.*", func(body []byte) error {
		var event GenericEvent
		if err := json.Unmarshal(body, &event); err != nil {
			log.Printf("Error unmarshaling customer event: %v", err)
			return err
		}

		log.Printf("Received customer event %s", event.Type)
		return nil
	})

	// Catch-all handler for debugging - will receive all events
	router.RegisterHandler("#", func(body []byte) error {
		var event GenericEvent
		if err := json.Unmarshal(body, &event); err != nil {
			log.Printf("Error unmarshaling generic event: %v", err)
		} else {
			log.Printf("Received event of type %s", event.Type)
		}
		return nil
	})

	return router
}
