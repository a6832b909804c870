package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"yolo/mq/mq"
)

const (
	// All inquiry events go through this exchange.
	exchangeName = "inquiry_events_exchange"
)

const (
	inquiryCreateRoutingKey = "inquiry.create"
)

func getRoutingKey(action mq.Action) string {
	switch action {
	case mq.ActionCreate:
		return inquiryCreateRoutingKey
	}
	return ""
}

// rabbitInquiryMessageQueue implements mq.InquiryMessageQueue for RabbitMQ.
type rabbitInquiryMessageQueue struct {
	action     mq.Action
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	queueName  string
	routingKey string
	mu         sync.RWMutex // Protects the consumers map
	consumers  map[uuid.UUID]chan mq.InquiryMessage
}

// NewRabbitInquiryMessageQueue creates a RabbitMQ queue for inquiry events of
// one action.
func NewRabbitInquiryMessageQueue(action mq.Action, conn *amqp091.Connection) (mq.InquiryMessageQueue, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	queueName := fmt.Sprintf("inquiry_%d_queue", action)
	routingKey := getRoutingKey(action)

	if err := DeclareQueueAndExchange(ch, queueName, exchangeName, routingKey); err != nil {
		ch.Close()
		return nil, err
	}

	return &rabbitInquiryMessageQueue{
		action:     action,
		conn:       conn,
		channel:    ch,
		queueName:  queueName,
		routingKey: routingKey,
		consumers:  make(map[uuid.UUID]chan mq.InquiryMessage),
	}, nil
}

// RabbitInquiryMessageQueueWrapper implements mq.InquiryMessageQueueWrapper.
type RabbitInquiryMessageQueueWrapper struct {
	InquiryMQArray [mq.ActionCnt]mq.InquiryMessageQueue
}

func (wrapper *RabbitInquiryMessageQueueWrapper) GetInquiryMessageQueue(action mq.Action) mq.InquiryMessageQueue {
	if action < 0 || action >= mq.ActionCnt {
		return nil
	}
	return wrapper.InquiryMQArray[action]
}

// NewRabbitInquiryMessageQueueWrapper builds queues for every action over one
// shared connection.
func NewRabbitInquiryMessageQueueWrapper(conn *amqp091.Connection) (mq.InquiryMessageQueueWrapper, error) {
	wrapper := RabbitInquiryMessageQueueWrapper{}

	queue, err := NewRabbitInquiryMessageQueue(mq.ActionCreate, conn)
	if err != nil {
		return nil, err
	}
	wrapper.InquiryMQArray[mq.ActionCreate] = queue

	return &wrapper, nil
}

func (q *rabbitInquiryMessageQueue) GetAction() mq.Action {
	return q.action
}

// Publish sends an InquiryMessage to the exchange.
func (q *rabbitInquiryMessageQueue) Publish(msg mq.InquiryMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = q.channel.PublishWithContext(ctx,
		exchangeName, // exchange
		q.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Subscribe registers a consumer on the queue and returns a channel fed by a
// dedicated goroutine.
func (q *rabbitInquiryMessageQueue) Subscribe() (uuid.UUID, <-chan mq.InquiryMessage, error) {
	msgs, err := q.channel.Consume(
		q.queueName, // queue
		"",          // consumer
		true,        // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("failed to register a consumer: %w", err)
	}

	subscriberID := uuid.New()
	outputChan := make(chan mq.InquiryMessage)

	q.mu.Lock()
	q.consumers[subscriberID] = outputChan
	q.mu.Unlock()

	go func() {
		defer func() {
			q.mu.Lock()
			if ch, ok := q.consumers[subscriberID]; ok {
				close(ch)
				delete(q.consumers, subscriberID)
			}
			q.mu.Unlock()
		}()

		for d := range msgs {
			var msg mq.InquiryMessage
			if err := json.Unmarshal(d.Body, &msg); err != nil {
				log.Printf("Failed to unmarshal InquiryMessage: %v", err)
				continue
			}

			// Hold the read lock across the send so DeSubscribe cannot
			// close the channel mid-flight.
			q.mu.RLock()
			ch, ok := q.consumers[subscriberID]
			if !ok {
				q.mu.RUnlock()
				return
			}
			select {
			case ch <- msg:
			case <-time.After(1 * time.Second): // Prevent blocking indefinitely
				log.Printf("Timeout sending message to InquiryMessage consumer %s. Skipping.", subscriberID)
			}
			q.mu.RUnlock()
		}
	}()

	return subscriberID, outputChan, nil
}

// DeSubscribe removes a subscriber by its ID.
func (q *rabbitInquiryMessageQueue) DeSubscribe(subscriberID uuid.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if ch, ok := q.consumers[subscriberID]; ok {
		delete(q.consumers, subscriberID)
		close(ch)
		return nil
	}
	return fmt.Errorf("consumer with ID %s not found for queue %s", subscriberID, q.queueName)
}
