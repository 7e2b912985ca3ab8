package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	reportExchange   = "catalog.events"
	reportRoutingKey = "catalog.sync.report"
)

// ReportPublisherAdapter publishes finished sync reports to a direct
// durable exchange so downstream consumers can track catalog freshness.
type ReportPublisherAdapter struct {
	connection *amqp.Connection
	channel    *amqp.Channel
}

func NewReportPublisherAdapter(url string) (*ReportPublisherAdapter, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("report publisher: failed to dial RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("report publisher: failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		reportExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("report publisher: failed to declare exchange '%s': %w", reportExchange, err)
	}

	return &ReportPublisherAdapter{
		connection: conn,
		channel:    ch,
	}, nil
}

func (a *ReportPublisherAdapter) PublishReport(ctx context.Context, report domain.SyncReport) error {
	if a.channel == nil || a.connection == nil || a.connection.IsClosed() {
		return fmt.Errorf("report publisher: not connected or channel/connection is closed")
	}

	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "ReportPublisherAdapter",
		"routing_key": reportRoutingKey,
	})

	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("report publisher: failed to marshal report: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.channel.PublishWithContext(publishCtx, reportExchange, reportRoutingKey, false, false, msg); err != nil {
		logger.Error("Failed to publish sync report", err, nil)
		return fmt.Errorf("report publisher: failed to publish report: %w", err)
	}

	logger.Info("Published sync report", port.Fields{
		"created": report.Created,
		"updated": report.Updated,
		"failed":  report.Failed,
	})
	return nil
}

func (a *ReportPublisherAdapter) Close() error {
	var firstErr error
	if a.channel != nil {
		if err := a.channel.Close(); err != nil {
			firstErr = err
		}
		a.channel = nil
	}
	if a.connection != nil {
		if err := a.connection.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		a.connection = nil
	}
	return firstErr
}
