package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/yeremiapane/neo-dine/models"
)

// RabbitMQ publishes order lifecycle events to a topic exchange.
// Routing key: <event type>.<status>, e.g. order.status_changed.cooking.
type RabbitMQ struct {
	Conn     *amqp.Connection
	Channel  *amqp.Channel
	Exchange string
	mu       sync.Mutex // amqp.Channel is not safe for concurrent publishes
}

func NewRabbitMQ(url, exchange string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	r := &RabbitMQ{Conn: conn, Channel: ch, Exchange: exchange}
	if err := r.SetupExchange(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *RabbitMQ) SetupExchange() error {
	if err := r.Channel.ExchangeDeclare(
		r.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("declare exchange %s: %w", r.Exchange, err)
	}
	return nil
}

// RoutingKey appends the order status to the event type so consumers can
// bind on "order.#" or "*.*.delivered".
func RoutingKey(ev models.OrderEvent) string {
	return ev.EventType + "." + string(ev.Status)
}

func (r *RabbitMQ) PublishOrderEvent(ctx context.Context, ev models.OrderEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		MessageId:    ev.OrderID + ":" + string(ev.Status),
		Body:         body,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Channel.PublishWithContext(ctx,
		r.Exchange,
		RoutingKey(ev),
		false, // mandatory
		false, // immediate
		msg,
	)
}

func (r *RabbitMQ) Close() {
	if r.Channel != nil {
		_ = r.Channel.Close()
	}
	if r.Conn != nil {
		_ = r.Conn.Close()
	}
}
