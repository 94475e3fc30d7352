package model

import "time"

// ChatMessage is one entry in a per-user conversation log
type ChatMessage struct {
	Role      string    `json:"role"` // user or bot
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatReply is the bot's answer to one message. Type records which
// routing branch produced it.
type ChatReply struct {
	Message    string  `json:"message"`
	Type       string  `json:"type"` // compliance, regulation or conversation
	Confidence float64 `json:"confidence,omitempty"`
	Regulation string  `json:"regulation,omitempty"`
}
