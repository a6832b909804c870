package mq

import "time"

// Mode selects the message queue backend at startup.
type Mode string

const (
	ModeGoChan    Mode = "go_chan"
	ModeRabbit    Mode = "rabbitmq"
	ModeGCPPubSub Mode = "gcp_pub_sub"
)

type Action int

const (
	ActionCreate Action = iota
	ActionCnt
)

// InquiryMessage is the event published when a support inquiry is filed.
// Inquiries are never updated or deleted, so ActionCreate is the only action
// with traffic today; the enum leaves room for more.
type InquiryMessage struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
