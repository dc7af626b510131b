package model

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in a chat session's transcript. Content may
// grow while the owning response is still streaming; once the stream or
// request completes the message is never touched again.
type ChatMessage struct {
	ID              string
	Role            Role
	Content         string
	Recommendations []BookRecord // to-read candidates, unpersisted until added
	CreatedAt       time.Time
}

// NewMessage creates a message with a fresh time-ordered identifier.
func NewMessage(role Role, content string) ChatMessage {
	return ChatMessage{
		ID:        newMessageID(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// newMessageID returns an identifier that sorts by creation time within
// a session.
func newMessageID() string {
	return time.Now().UTC().Format("20060102T150405.000000000") + "-" + uuid.NewString()[:8]
}
