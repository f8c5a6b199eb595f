package notifier

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
)

type queueNotifier struct {
	ch        *amqp.Channel
	queueName string
}

// NewQueueNotifier declares the durable notification queue and returns a
// publisher bound to it.
func NewQueueNotifier(conn *amqp.Connection, queueName string) (contracts.QueueNotifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &queueNotifier{ch: ch, queueName: queueName}, nil
}

func (n *queueNotifier) Publish(ctx context.Context, message *contracts.NotificationMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := n.ch.PublishWithContext(ctx, "", n.queueName, false, false, msg); err != nil {
		return exceptions.ErrQueuePublish(err)
	}
	return nil
}
