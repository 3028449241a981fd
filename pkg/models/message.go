package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageType tags the intent of a bus message.
type MessageType string

const (
	MessageRequest   MessageType = "request"
	MessageResponse  MessageType = "response"
	MessageBroadcast MessageType = "broadcast"
	MessageQuery     MessageType = "query"
	MessageResult    MessageType = "result"
	MessageEvent     MessageType = "event"
	MessageHandoff   MessageType = "handoff"
	MessageApproval  MessageType = "approval"
	MessageFeedback  MessageType = "feedback"
	MessageSync      MessageType = "sync"
)

// Priority is advisory metadata for recipient scheduling. The dispatcher
// logs it but never reorders queued messages on it.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Message is the unit routed by the bus. Recipient empty means broadcast.
type Message struct {
	ID               string         `json:"id"`
	CorrelationID    string         `json:"correlation_id,omitempty"`
	Sender           string         `json:"sender"`
	Recipient        string         `json:"recipient,omitempty"`
	Type             MessageType    `json:"type"`
	Priority         Priority       `json:"priority"`
	Payload          map[string]any `json:"payload,omitempty"`
	Context          map[string]any `json:"context,omitempty"`
	TTLSeconds       int            `json:"ttl_seconds,omitempty"`
	Timestamp        time.Time      `json:"timestamp"`
	RequiresResponse bool           `json:"requires_response,omitempty"`
}

// NewMessage builds a message with a fresh id and current timestamp.
func NewMessage(sender, recipient string, mt MessageType, payload map[string]any) Message {
	return Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Recipient: recipient,
		Type:      mt,
		Priority:  PriorityNormal,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// Expired reports whether the TTL, if set, has elapsed at now.
func (m *Message) Expired(now time.Time) bool {
	if m.TTLSeconds <= 0 {
		return false
	}
	return now.Sub(m.Timestamp) > time.Duration(m.TTLSeconds)*time.Second
}
