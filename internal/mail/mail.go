// Package mail defines the outbound email capability used by the contact
// endpoint. Delivery goes through a provider driver; nothing is queued or
// persisted locally.
package mail

import "context"

// Message is one outbound email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender delivers messages through an email provider. Implementations
// return the provider's message identifier on success.
type Sender interface {
	Send(ctx context.Context, msg *Message) (id string, err error)
}
