// Package chat drives the book-recommendation assistant conversation:
// a linear transcript, one in-flight request at a time, streamed or
// plain replies, and a single automatic fallback from a broken stream
// to the plain path.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/readingctl/internal/model"
)

// ErrBusy is returned by Send while a previous request has not reached
// a terminal state. The UI disables input too, but the controller does
// not rely on that.
var ErrBusy = errors.New("a chat request is already in flight")

// StreamTransportError wraps a failure while reading a streamed reply.
// It triggers one automatic retry over the non-streaming path before
// anything is surfaced to the user.
type StreamTransportError struct {
	Err error
}

func (e *StreamTransportError) Error() string {
	return fmt.Sprintf("chat stream failed: %v", e.Err)
}

func (e *StreamTransportError) Unwrap() error { return e.Err }

// State is the controller's request lifecycle state.
type State int

const (
	StateIdle State = iota
	StateSending
	StateStreaming
)

// Assistant is the remote collaborator producing replies. *Client
// satisfies it.
type Assistant interface {
	Ask(ctx context.Context, query, userID string) (Reply, error)
	Stream(ctx context.Context, query, userID string) (io.ReadCloser, error)
}

// RecordAdder persists a recommended book. *store.Library satisfies it.
type RecordAdder interface {
	Add(ctx context.Context, candidate model.BookRecord) (model.BookRecord, error)
}

// ErrorReplyText is shown when both reply paths fail.
const ErrorReplyText = "Sorry, I encountered an error while processing your request. Please try again later."

// NoRecommendationsText stands in when a reply has recommendations but
// no accompanying message.
const NoRecommendationsText = "Here are some books you might enjoy:"

// DefaultMessages returns the greeting transcript a fresh session
// starts with.
func DefaultMessages() []model.ChatMessage {
	return []model.ChatMessage{
		model.NewMessage(model.RoleAssistant,
			"Hello! I'm your BookBot assistant. I can help you find books you'll love."),
		model.NewMessage(model.RoleAssistant,
			"Try asking me questions like:\n- Recommend fantasy books\n- Find books about AI\n- What books are like Mistborn?"),
	}
}

// Session is a chat conversation for one signed-in user. Not safe for
// concurrent use; the command / event loop serializes access.
type Session struct {
	assistant    Assistant
	userID       string
	useStreaming bool
	state        State
	messages     []model.ChatMessage
}

// NewSession creates a session seeded with the greeting messages.
func NewSession(assistant Assistant, userID string, useStreaming bool) *Session {
	return &Session{
		assistant:    assistant,
		userID:       userID,
		useStreaming: useStreaming,
		messages:     DefaultMessages(),
	}
}

// Messages returns a copy of the transcript in submission order.
func (s *Session) Messages() []model.ChatMessage {
	out := make([]model.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// State returns the current request state.
func (s *Session) State() State { return s.state }

// Busy reports whether a request is in flight.
func (s *Session) Busy() bool { return s.state != StateIdle }

// Reset restores the greeting transcript. Called on logout and by the
// clear-chat action.
func (s *Session) Reset() {
	s.messages = DefaultMessages()
	s.state = StateIdle
}

// Send submits one user message and appends the assistant's reply to
// the transcript. Failures surface as transcript messages, never as a
// lost or duplicated user message. Returns ErrBusy while an earlier
// send has not completed; blank input is a no-op.
func (s *Session) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if s.state != StateIdle {
		return ErrBusy
	}

	s.messages = append(s.messages, model.NewMessage(model.RoleUser, text))
	s.state = StateSending
	defer func() { s.state = StateIdle }()

	if s.useStreaming {
		if err := s.sendStreaming(ctx, text); err == nil {
			return nil
		}
		// Placeholder already rolled back; fall through to the plain path.
	}

	reply, err := s.assistant.Ask(ctx, text, s.userID)
	if err != nil {
		s.messages = append(s.messages, model.NewMessage(model.RoleAssistant, ErrorReplyText))
		return nil
	}
	s.messages = append(s.messages, s.replyMessage(reply))
	return nil
}

// sendStreaming runs the streamed path. It appends a placeholder
// assistant message that grows chunk by chunk and holds its position
// for its entire lifetime. On a transport failure the placeholder is
// removed before the error is returned, so the fallback starts from
// the transcript as it was after the user message.
func (s *Session) sendStreaming(ctx context.Context, text string) error {
	body, err := s.assistant.Stream(ctx, text, s.userID)
	if err != nil {
		return &StreamTransportError{Err: err}
	}
	defer func() { _ = body.Close() }()

	s.state = StateStreaming
	s.messages = append(s.messages, model.NewMessage(model.RoleAssistant, ""))
	idx := len(s.messages) - 1

	dec := NewEventDecoder(body)
	for {
		ev, err := dec.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			s.messages = s.messages[:idx]
			return &StreamTransportError{Err: err}
		}
		if ev.Chunk != "" {
			s.messages[idx].Content += ev.Chunk
		}
		if ev.Done {
			if len(ev.Recommendations) > 0 {
				s.messages[idx].Recommendations = s.stamp(ev.Recommendations)
				if s.messages[idx].Content == "" {
					s.messages[idx].Content = NoRecommendationsText
				}
			}
			return nil
		}
	}
}

// AddToLibrary persists a recommended candidate through the library
// store and appends a confirmation or error message, following the
// normal append ordering.
func (s *Session) AddToLibrary(ctx context.Context, lib RecordAdder, candidate model.BookRecord) error {
	candidate.UserID = s.userID
	created, err := lib.Add(ctx, candidate)
	if err != nil {
		s.messages = append(s.messages, model.NewMessage(model.RoleAssistant,
			fmt.Sprintf("Sorry, I couldn't add %q to your library. Please try again later.", candidate.Title)))
		return err
	}
	s.messages = append(s.messages, model.NewMessage(model.RoleAssistant,
		fmt.Sprintf("I've added %q to your library!", created.Title)))
	return nil
}

// replyMessage converts a plain reply into a transcript message.
func (s *Session) replyMessage(reply Reply) model.ChatMessage {
	content := reply.Message
	if len(reply.Recommendations) > 0 {
		if content == "" {
			content = NoRecommendationsText
		}
		msg := model.NewMessage(model.RoleAssistant, content)
		msg.Recommendations = s.stamp(reply.Recommendations)
		return msg
	}
	if content == "" {
		content = "I couldn't find any specific recommendations at the moment."
	}
	return model.NewMessage(model.RoleAssistant, content)
}

// stamp marks recommendation candidates as belonging to this user.
// They stay unpersisted until explicitly added.
func (s *Session) stamp(recs []model.BookRecord) []model.BookRecord {
	out := make([]model.BookRecord, len(recs))
	copy(out, recs)
	for i := range out {
		out[i].UserID = s.userID
		out[i].Status = model.StatusToRead
		out[i].CurrentPage = 0
	}
	return out
}
