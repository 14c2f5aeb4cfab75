package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type Subscriber interface {
	Subscribe(subject string, handler func(msg *Message)) error
	QueueSubscribe(subject, queue string, handler func(msg *Message)) error
	Close() error
}

type EventBus interface {
	Publisher
	Subscriber
}

type Message struct {
	Subject   string
	Data      []byte
	Timestamp time.Time
	ID        string
}

type NATSEventBus struct {
	conn *nats.Conn
}

func NewNATSEventBus(url string) (*NATSEventBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSEventBus{conn: conn}, nil
}

func (n *NATSEventBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSEventBus) Subscribe(subject string, handler func(msg *Message)) error {
	_, err := n.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(&Message{
			Subject:   msg.Subject,
			Data:      msg.Data,
			Timestamp: time.Now(),
			ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		})
	})
	return err
}

func (n *NATSEventBus) QueueSubscribe(subject, queue string, handler func(msg *Message)) error {
	_, err := n.conn.QueueSubscribe(subject, queue, func(msg *nats.Msg) {
		handler(&Message{
			Subject:   msg.Subject,
			Data:      msg.Data,
			Timestamp: time.Now(),
			ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		})
	})
	return err
}

func (n *NATSEventBus) Close() error {
	n.conn.Close()
	return nil
}

// Event subjects
const (
	// Contact disclosure events
	ContactRequested = "contact.requested"
	ContactApproved  = "contact.approved"
	ContactDiscarded = "contact.discarded"

	// Premium tier events
	PremiumRequested = "premium.requested"
	PremiumApproved  = "premium.approved"

	// User events
	UserCreated  = "user.created"
	UserPromoted = "user.promoted"

	// Payment events
	PaymentIntentCreated = "payment.intent.created"
)

// Event payloads
type ContactRequestedEvent struct {
	RequestID     string    `json:"request_id"`
	BiodataID     int64     `json:"biodata_id"`
	CheckoutEmail string    `json:"checkout_email"`
	RequestedAt   time.Time `json:"requested_at"`
}

type ContactApprovedEvent struct {
	RequestID  string    `json:"request_id"`
	ApprovedAt time.Time `json:"approved_at"`
}

type ContactDiscardedEvent struct {
	RequestID   string    `json:"request_id"`
	DiscardedAt time.Time `json:"discarded_at"`
}

type PremiumRequestedEvent struct {
	Email       string    `json:"email"`
	RequestedAt time.Time `json:"requested_at"`
}

type PremiumApprovedEvent struct {
	Email      string    `json:"email"`
	ApprovedAt time.Time `json:"approved_at"`
}

type UserCreatedEvent struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type UserPromotedEvent struct {
	UserID     string    `json:"user_id"`
	PromotedAt time.Time `json:"promoted_at"`
}

type PaymentIntentCreatedEvent struct {
	IntentID string `json:"intent_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
