package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"lucr-news/internal/domain/entity"
	crawljobUC "lucr-news/internal/usecase/crawljob"
)

// CrawlResultMessage is the payload the external crawler reports back.
// A RUNNING status marks progress; COMPLETED and FAILED carry results.
type CrawlResultMessage struct {
	JobID         uuid.UUID `json:"jobId"`
	Status        string    `json:"status"`
	TotalArticles int       `json:"totalArticles"`
	MediaResults  string    `json:"mediaResults"`
	ErrorMessage  string    `json:"errorMessage"`
}

// JobTracker applies crawler progress reports to stored jobs.
type JobTracker interface {
	MarkRunning(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, totalArticles int, mediaResults string) error
	MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error
}

// permanentError marks a delivery that can never be applied. Requeueing it
// would loop forever, so the consumer drops it instead.
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func permanent(err error) error { return &permanentError{err: err} }

// ResultConsumer consumes crawl result messages and updates job state.
type ResultConsumer struct {
	conn    *amqp.Connection
	tracker JobTracker
}

func NewResultConsumer(conn *amqp.Connection, tracker JobTracker) *ResultConsumer {
	return &ResultConsumer{conn: conn, tracker: tracker}
}

// Run consumes the result queue until ctx is cancelled or the channel
// closes. Messages are acked after the tracker applies them. Poison
// messages and results for unknown or already-terminal jobs are rejected
// without requeue; transient tracker failures (a flaky database, a closed
// pool) are requeued so the result is not lost.
func (c *ResultConsumer) Run(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := DeclareTopology(ch); err != nil {
		return err
	}

	deliveries, err := ch.Consume(
		CrawlResultQueue, // queue
		"",               // consumer tag
		false,            // auto-ack
		false,            // exclusive
		false,            // no-local
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	slog.Info("crawl result consumer started", slog.String("queue", CrawlResultQueue))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("result delivery channel closed")
			}
			if err := c.handle(ctx, d.Body); err != nil {
				var perm *permanentError
				if errors.As(err, &perm) {
					slog.Error("dropping unusable crawl result",
						slog.String("error", err.Error()))
					_ = d.Nack(false, false)
				} else {
					slog.Warn("failed to apply crawl result, requeueing",
						slog.String("error", err.Error()))
					_ = d.Nack(false, true)
				}
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// handle decodes one result message and dispatches it to the tracker.
// Errors that no redelivery can cure come back wrapped as permanent.
func (c *ResultConsumer) handle(ctx context.Context, body []byte) error {
	var msg CrawlResultMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return permanent(fmt.Errorf("failed to decode crawl result: %w", err))
	}
	if msg.JobID == uuid.Nil {
		return permanent(fmt.Errorf("crawl result missing job id"))
	}

	var err error
	switch msg.Status {
	case "RUNNING":
		err = c.tracker.MarkRunning(ctx, msg.JobID)
	case "COMPLETED":
		err = c.tracker.MarkCompleted(ctx, msg.JobID, msg.TotalArticles, msg.MediaResults)
	case "FAILED":
		err = c.tracker.MarkFailed(ctx, msg.JobID, msg.ErrorMessage)
	default:
		return permanent(fmt.Errorf("unknown crawl result status: %q", msg.Status))
	}

	if err != nil && unappliable(err) {
		return permanent(err)
	}
	return err
}

// unappliable reports whether the tracker rejected the result for a reason
// that redelivery cannot fix: the job does not exist or already reached a
// terminal state. Everything else is treated as transient.
func unappliable(err error) bool {
	return errors.Is(err, entity.ErrInvalidTransition) ||
		errors.Is(err, crawljobUC.ErrJobNotFound) ||
		errors.Is(err, crawljobUC.ErrInvalidJobID)
}
