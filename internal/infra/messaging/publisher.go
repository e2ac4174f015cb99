package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"lucr-news/internal/resilience/circuitbreaker"
)

// CrawlRequestMessage is the payload consumed by the external crawler.
// Field names are part of the wire contract.
type CrawlRequestMessage struct {
	JobID       uuid.UUID `json:"jobId"`
	MaxArticles int       `json:"maxArticles"`
}

const publishConfirmTimeout = 10 * time.Second

// CrawlRequestPublisher publishes crawl requests with publisher confirms.
// Publishes go through a circuit breaker so a dead broker fails fast
// instead of holding HTTP requests for the full confirm timeout.
type CrawlRequestPublisher struct {
	conn    *amqp.Connection
	breaker *circuitbreaker.CircuitBreaker
	mu      sync.Mutex
}

func NewCrawlRequestPublisher(conn *amqp.Connection) *CrawlRequestPublisher {
	return &CrawlRequestPublisher{
		conn:    conn,
		breaker: circuitbreaker.New(circuitbreaker.BrokerPublishConfig()),
	}
}

// PublishCrawlRequest sends the message to the request queue and waits for
// broker confirmation. Returns an error if the broker does not ack in time.
func (p *CrawlRequestPublisher) PublishCrawlRequest(ctx context.Context, msg CrawlRequestMessage) error {
	_, err := p.breaker.Execute(func() (interface{}, error) {
		return nil, p.publish(ctx, msg)
	})
	return err
}

func (p *CrawlRequestPublisher) publish(ctx context.Context, msg CrawlRequestMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		return fmt.Errorf("rabbitmq connection is not available")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal crawl request: %w", err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := DeclareTopology(ch); err != nil {
		return err
	}

	if err := ch.Confirm(false); err != nil {
		return fmt.Errorf("failed to put channel in confirm mode: %w", err)
	}
	confirms := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	err = ch.PublishWithContext(
		ctx,
		CrawlExchange,
		CrawlRequestKey,
		true,  // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    msg.JobID.String(),
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish crawl request: %w", err)
	}

	select {
	case confirmed, ok := <-confirms:
		if !ok {
			return fmt.Errorf("confirmation channel closed")
		}
		if !confirmed.Ack {
			return fmt.Errorf("broker rejected crawl request publish")
		}
	case <-time.After(publishConfirmTimeout):
		return fmt.Errorf("publish confirmation timed out")
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
