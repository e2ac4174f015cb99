// Package messaging implements the RabbitMQ integration with the external
// crawler: the request publisher and the result consumer.
package messaging

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"lucr-news/internal/resilience/retry"
)

// Topology shared with the external crawler worker. The names form the
// contract between both sides and must not change independently.
const (
	// CrawlExchange is the topic exchange all crawl traffic flows through.
	CrawlExchange = "lucr.crawl.exchange"

	// CrawlRequestQueue receives crawl requests for the external worker.
	CrawlRequestQueue = "lucr.crawl.request"

	// CrawlResultQueue receives progress and result reports from the worker.
	CrawlResultQueue = "lucr.crawl.result"

	// CrawlRequestKey routes messages into the request queue.
	CrawlRequestKey = "crawl.request"

	// CrawlResultKey routes messages into the result queue.
	CrawlResultKey = "crawl.result"
)

// Connect dials the broker at the given AMQP URL.
func Connect(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	return conn, nil
}

// ConnectWithRetry dials the broker with backoff. The broker regularly comes
// up after the application in compose deployments, so a refused connection is
// retried instead of failing startup.
func ConnectWithRetry(ctx context.Context, url string) (*amqp.Connection, error) {
	var conn *amqp.Connection
	err := retry.WithBackoff(ctx, retry.BrokerConnectConfig(), func() error {
		var dialErr error
		conn, dialErr = amqp.Dial(url)
		return dialErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	return conn, nil
}

// DeclareTopology declares the crawl exchange, both queues, and their
// bindings. Declarations are idempotent; both the API and the worker run
// this on startup so either side can come up first.
func DeclareTopology(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(
		CrawlExchange, // exchange name
		"topic",       // exchange type
		true,          // durable
		false,         // auto-delete
		false,         // internal
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	bindings := []struct {
		queue      string
		routingKey string
	}{
		{CrawlRequestQueue, CrawlRequestKey},
		{CrawlResultQueue, CrawlResultKey},
	}

	for _, b := range bindings {
		q, err := ch.QueueDeclare(
			b.queue, // queue name
			true,    // durable
			false,   // delete when unused
			false,   // exclusive
			false,   // no-wait
			nil,     // arguments
		)
		if err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", b.queue, err)
		}

		if err := ch.QueueBind(q.Name, b.routingKey, CrawlExchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue %s: %w", b.queue, err)
		}
	}

	return nil
}
