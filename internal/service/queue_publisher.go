// Package queue_publisher publishes ticket lifecycle events to RabbitMQ.
// Publishing is best-effort: errors are logged and returned so callers can
// ignore them without interrupting the request flow.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/cine-estrella/box-office/internal/queue"
)

// PublishTicketIssued sends a TicketIssuedEvent to the "ticket.issued"
// queue. Messages are persistent so they survive a broker restart.
func PublishTicketIssued(ctx context.Context, event q.TicketIssuedEvent) error {
	return publish(ctx, "ticket.issued", event)
}

// PublishTicketCancelled sends a TicketCancelledEvent to the
// "ticket.cancelled" queue.
func PublishTicketCancelled(ctx context.Context, event q.TicketCancelledEvent) error {
	return publish(ctx, "ticket.cancelled", event)
}

// publish dials the broker, declares the durable queue (idempotent) and
// publishes one JSON message to it via the default exchange.
func publish(ctx context.Context, queueName string, event any) error {
	conn, err := amqp.Dial(q.BrokerURL())
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
