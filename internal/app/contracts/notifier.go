package contracts

import "context"

// NotificationMessage is published to the notification queue when an
// enquiry arrives or an appointment changes status. Consumers (mailer,
// dashboard feed) live outside this service.
type NotificationMessage struct {
	Kind       string `json:"kind"`
	Subject    string `json:"subject"`
	Recipient  string `json:"recipient,omitempty"`
	Body       string `json:"body"`
	OccurredAt string `json:"occurred_at"`
}

type QueueNotifier interface {
	Publish(ctx context.Context, message *NotificationMessage) error
}
