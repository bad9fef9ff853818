package entity

import (
	"errors"
	"time"
)

// Message is one outbound text message
type Message struct {
	To   string `json:"to" validate:"required"`
	From string `json:"from" validate:"required"`
	Text string `json:"text" validate:"required"`

	// Room is set for check-in messages so relays can describe the room
	Room *Room `json:"-"`
}

// Validate checks that the message can be delivered
func (m Message) Validate() error {
	if m.To == "" || m.From == "" || m.Text == "" {
		return errors.New("message must have to, from and text")
	}
	return nil
}

// SendMessageRequest is the body of the pass-through send endpoint
type SendMessageRequest struct {
	Messages []Message `json:"messages" validate:"required,min=1,dive"`
}

// SendResult is the transport-agnostic outcome of a send
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CheckInOutcome is the result kind of a check-in send attempt
type CheckInOutcome string

const (
	OutcomeSent        CheckInOutcome = "sent"
	OutcomeAlreadySent CheckInOutcome = "already_sent"
)

// CheckInResult describes a check-in send attempt
type CheckInResult struct {
	RequestID  string         `json:"requestId,omitempty"`
	RoomNumber int            `json:"roomNumber"`
	Outcome    CheckInOutcome `json:"outcome"`
	Channel    string         `json:"channel,omitempty"`
	Message    string         `json:"message,omitempty"`
	SentAt     time.Time      `json:"sentAt,omitempty"`
}

// SendLog is an audit record of a check-in send attempt
type SendLog struct {
	ID         uint
	RequestID  string
	RoomNumber int
	DayKey     string
	Phone      string
	Channel    string
	Status     string
	Error      string
	CreatedAt  time.Time
}

// Send log statuses
const (
	SendStatusSent   = "sent"
	SendStatusFailed = "failed"
)
