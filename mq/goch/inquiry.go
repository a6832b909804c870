package goch

import (
	"sync"

	"github.com/google/uuid"

	"yolo/mq/mq"
)

const subscriberBufferSize = 5

// channelInquiryMessageQueue implements mq.InquiryMessageQueue with plain Go
// channels, one buffered channel per subscriber.
type channelInquiryMessageQueue struct {
	action    mq.Action
	mu        sync.RWMutex
	consumers map[uuid.UUID]chan mq.InquiryMessage
}

// GoChanInquiryMessageQueueWrapper holds one in-process queue per action.
type GoChanInquiryMessageQueueWrapper struct {
	InquiryMQArray [mq.ActionCnt]mq.InquiryMessageQueue
}

func (wrapper *GoChanInquiryMessageQueueWrapper) GetInquiryMessageQueue(action mq.Action) mq.InquiryMessageQueue {
	if action < 0 || action >= mq.ActionCnt {
		return nil
	}
	return wrapper.InquiryMQArray[action]
}

// NewGoChanInquiryMessageQueueWrapper creates the in-process wrapper. This is
// the default backend when no external broker is configured.
func NewGoChanInquiryMessageQueueWrapper() mq.InquiryMessageQueueWrapper {
	wrapper := GoChanInquiryMessageQueueWrapper{}
	wrapper.InquiryMQArray[mq.ActionCreate] = NewChannelInquiryMessageQueue(mq.ActionCreate)
	return &wrapper
}

// NewChannelInquiryMessageQueue creates a broadcast queue for one action.
func NewChannelInquiryMessageQueue(action mq.Action) mq.InquiryMessageQueue {
	return &channelInquiryMessageQueue{
		action:    action,
		consumers: make(map[uuid.UUID]chan mq.InquiryMessage),
	}
}

func (q *channelInquiryMessageQueue) GetAction() mq.Action {
	return q.action
}

// Publish fans the message out to every subscriber. A subscriber whose buffer
// is full misses the message rather than blocking the publisher.
func (q *channelInquiryMessageQueue) Publish(msg mq.InquiryMessage) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	for _, ch := range q.consumers {
		select {
		case ch <- msg:
		default:
		}
	}
	return nil
}

func (q *channelInquiryMessageQueue) Subscribe() (uuid.UUID, <-chan mq.InquiryMessage, error) {
	id := uuid.New()
	ch := make(chan mq.InquiryMessage, subscriberBufferSize)

	q.mu.Lock()
	q.consumers[id] = ch
	q.mu.Unlock()

	return id, ch, nil
}

func (q *channelInquiryMessageQueue) DeSubscribe(id uuid.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	ch, ok := q.consumers[id]
	if !ok {
		return ErrSubscriberNotFound
	}
	delete(q.consumers, id)
	close(ch)
	return nil
}

type QueueError string

func (e QueueError) Error() string {
	return string(e)
}

const (
	ErrSubscriberNotFound QueueError = "subscriber not found"
)
