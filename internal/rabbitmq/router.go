package rabbitmq

import (
	"log"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
)

// HandlerFunc processes the raw body of a received event.
type HandlerFunc func(body []byte) error

// EventRouter dispatches incoming events to handlers by routing-key
// pattern. Supported patterns: exact keys ("order.created"), a trailing
// wildcard segment ("product.*"), and the catch-all "#".
type EventRouter struct {
	handlers map[string]HandlerFunc
}

func NewEventRouter() *EventRouter {
	return &EventRouter{handlers: make(map[string]HandlerFunc)}
}

func (r *EventRouter) RegisterHandler(pattern string, handler HandlerFunc) {
	r.handlers[pattern] = handler
}

// Dispatch runs every handler whose pattern matches the routing key.
func (r *EventRouter) Dispatch(routingKey string, body []byte) {
	for pattern, handler := range r.handlers {
		if !matches(pattern, routingKey) {
			continue
		}
		if err := handler(body); err != nil {
			log.Printf("Handler for %q failed on %s: %v", pattern, routingKey, err)
		}
	}
}

func matches(pattern, key string) bool {
	if pattern == "#" || pattern == key {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, ".*"); ok {
		rest, found := strings.CutPrefix(key, prefix+".")
		return found && !strings.Contains(rest, ".")
	}
	return false
}

// StartListening binds a queue to the events exchange and dispatches
// deliveries through the router on a background goroutine.
func StartListening(ch *amqp.Channel, router *EventRouter) (string, error) {
	queue, err := ch.QueueDeclare(
		"",    // server-generated name
		false, // durable
		true,  // auto-delete
		true,  // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return "", err
	}

	if err := ch.QueueBind(queue.Name, "#", "events", false, nil); err != nil {
		return "", err
	}

	deliveries, err := ch.Consume(
		queue.Name,
		"",    // consumer tag
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return "", err
	}

	go func() {
		for delivery := range deliveries {
			router.Dispatch(delivery.RoutingKey, delivery.Body)
		}
	}()

	return queue.Name, nil
}
