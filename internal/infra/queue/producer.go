package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// BookingConfirmedPayload carries a Calendly invitee.created event to the
// worker that finishes the booking: CRM call_status + confirmation email.
type BookingConfirmedPayload struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Origin string `json:"origin"` // e.g. "WEBHOOK_CALENDLY"
}

type BookingProducerInterface interface {
	PublishBookingConfirmed(ctx context.Context, payload BookingConfirmedPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishBookingConfirmed(ctx context.Context, payload BookingConfirmedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // survives a broker restart
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}
