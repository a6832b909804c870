package mq

import "github.com/google/uuid"

type InquiryMessageQueueWrapper interface {
	GetInquiryMessageQueue(action Action) InquiryMessageQueue
}

// InquiryMessageQueue is a broadcast queue: every subscriber receives every
// message published after it subscribed.
type InquiryMessageQueue interface {
	GetAction() Action
	Publish(msg InquiryMessage) error
	Subscribe() (uuid.UUID, <-chan InquiryMessage, error)
	DeSubscribe(id uuid.UUID) error
}
