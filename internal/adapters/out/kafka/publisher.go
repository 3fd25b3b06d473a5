// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"shoppingcart/internal/core/ports"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

// EventTypeOrderStatusChanged is stored in the event-type message header.
const EventTypeOrderStatusChanged = "order.status_changed"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventPublisher writes order events keyed by order id, so every event of
// one order lands in the same partition in commit order.
type OrderEventPublisher struct {
	writer messageWriter
	logger *log.Entry
}

// NewWriter builds a writer for a comma separated broker list.
func NewWriter(brokersCSV, topic string) *kafka.Writer {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}
}

func NewOrderEventPublisher(writer messageWriter, logger *log.Entry) *OrderEventPublisher {
	if logger == nil {
		logger = log.New().WithField("component", "order-event-publisher")
	}
	return &OrderEventPublisher{
		writer: writer,
		logger: logger,
	}
}

func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderStatusChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(EventTypeOrderStatusChanged)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish order %d event: %w", event.OrderID, err)
	}

	p.logger.WithFields(log.Fields{
		"order_id":  event.OrderID,
		"operation": event.Operation,
		"status":    event.Status,
	}).Debug("Order event published")
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ports.OrderStatusChanged) error {
	return nil
}

var (
	_ ports.OrderEventPublisher = (*OrderEventPublisher)(nil)
	_ ports.OrderEventPublisher = NoopPublisher{}
)
