package rabbitmq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type EventType string

const (
	CustomerCreated EventType = "customer.created"
	CustomerUpdated EventType = "customer.updated"
	CustomerDeleted EventType = "customer.deleted"

	ProductCreated EventType = "product.created"
	ProductUpdated EventType = "product.updated"
	ProductDeleted EventType = "product.deleted"

	OrderCreated EventType = "order.created"
	OrderUpdated EventType = "order.updated"
	OrderDeleted EventType = "order.deleted"

	OrderProductAdded   EventType = "order.product_added"
	OrderProductRemoved EventType = "order.product_removed"
)

// EntityEvent is the envelope published for every entity lifecycle change.
type EntityEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEntityEvent stamps the envelope with a fresh id and the current time.
func NewEntityEvent(eventType EventType, data any) EntityEvent {
	return EntityEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// PublishEntityEvent publishes an entity event to RabbitMQ. The routing key
// is the event type, so consumers can bind per entity ("customer.*") or per
// change ("order.product_added").
func PublishEntityEvent(ch *amqp.Channel, eventType EventType, data any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event := NewEntityEvent(eventType, data)

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return err
	}

	err = ch.PublishWithContext(
		ctx,
		"events", // exchange
		string(eventType),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   event.ID,
			Body:        body,
		},
	)
	if err != nil {
		log.Printf("Error publishing message: %v", err)
		return err
	}

	log.Printf("Published %s event %s", eventType, event.ID)
	return nil
}
