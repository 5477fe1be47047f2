package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// CallStatusUpdater marks the contact as scheduled in the CRM. Satisfied by
// the hubspot client.
type CallStatusUpdater interface {
	UpdateCallStatus(ctx context.Context, email, status string) error
}

// ConfirmationMailer sends the booking confirmation. Satisfied by the mail
// sender.
type ConfirmationMailer interface {
	SendBookingConfirmation(to, name string) error
}

const callStatusScheduled = "Call Scheduled"

// Worker drains booking-confirmed events. It is the only writer of the CRM
// call_status field, which is what the quiz duplicate-booking guard reads.
type Worker struct {
	Channel *amqp.Channel
	CRM     CallStatusUpdater
	Mailer  ConfirmationMailer
}

func NewWorker(ch *amqp.Channel, crm CallStatusUpdater, mailer ConfirmationMailer) *Worker {
	return &Worker{
		Channel: ch,
		CRM:     crm,
		Mailer:  mailer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload BookingConfirmedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] Malformed message: %s", err)
				// Poison message. Reject without requeue so it lands on the DLQ.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Booking confirmed for %s (%s)", payload.Name, payload.Email)

			if err := w.processMessage(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Booking pipeline failed for %s: %s", payload.Email, err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] %s marked scheduled and notified", payload.Email)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(ctx context.Context, payload BookingConfirmedPayload) error {
	// CRM first: call_status feeds the duplicate-booking guard, so it matters
	// more than the courtesy email.
	if err := w.CRM.UpdateCallStatus(ctx, payload.Email, callStatusScheduled); err != nil {
		return err
	}

	if err := w.Mailer.SendBookingConfirmation(payload.Email, payload.Name); err != nil {
		// Contact is already marked scheduled; a resend is cheap, a double
		// CRM write is idempotent, so nacking for retry is safe.
		return err
	}

	return nil
}
