package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/captable-labs/captable-indexer/internal/config"
)

const routingKey = "captable.tx.synced"

// TransactionSyncedEvent tells the portal that a transaction has been
// confirmed on chain and persisted. Delivery sits outside the batch
// transaction: a batch retried after a crash may publish the same event
// again, so consumers must deduplicate on transaction_id.
type TransactionSyncedEvent struct {
	IssuerID        string `json:"issuer_id"`
	TransactionID   string `json:"transaction_id"`
	TransactionType string `json:"transaction_type"`
	SecurityID      string `json:"security_id,omitempty"`
}

type Notifier interface {
	PublishTransactionSynced(ctx context.Context, event *TransactionSyncedEvent) error
	Shutdown()
}

type QueueNotifier struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewQueueNotifier(cfg *config.NotifierConfig) (*QueueNotifier, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s", cfg.User, cfg.Password, cfg.Url)
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := channel.ExchangeDeclare(
		cfg.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}
	return &QueueNotifier{
		conn:     conn,
		channel:  channel,
		exchange: cfg.Exchange,
	}, nil
}

func (n *QueueNotifier) PublishTransactionSynced(ctx context.Context, event *TransactionSyncedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal sync event: %w", err)
	}
	return n.channel.PublishWithContext(ctx, n.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

func (n *QueueNotifier) Shutdown() {
	log.Info().Msg("Shutting down queue notifier")
	if err := n.channel.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close queue channel")
	}
	if err := n.conn.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close queue connection")
	}
}

// NoopNotifier is used when the notifier is disabled in config.
type NoopNotifier struct{}

func (NoopNotifier) PublishTransactionSynced(context.Context, *TransactionSyncedEvent) error {
	return nil
}

func (NoopNotifier) Shutdown() {}
