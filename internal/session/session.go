// Package session holds the per-session mutable state of a chat: the
// append-only message log, the single pending-suggestion slot, the
// capability handle produced at login, and the retained widget state that
// keeps interactive choices stable across transcript re-renders.
//
// Nothing here is process-global; each user session owns one Session value
// and passes it by reference into the chat components.
package session

import (
	"snowchat/cli/internal/analyst"
	"snowchat/cli/internal/sqlexec"
)

// Handle is the capability bundle produced by a successful login: the query
// execution engine and the Cortex session token. It is created once and
// shared read-only for the rest of the session; no refresh is attempted.
type Handle struct {
	Engine sqlexec.Engine
	Token  string
}

// Session is the state of one chat session.
type Session struct {
	Account string
	Handle  *Handle
	Widgets *WidgetState

	messages   []analyst.Message
	pending    string
	hasPending bool
}

// New creates an empty session for an authenticated account.
func New(account string, handle *Handle, widgets *WidgetState) *Session {
	return &Session{Account: account, Handle: handle, Widgets: widgets}
}

// Append adds a message to the log. The log only ever grows; messages are
// never removed or reordered.
func (s *Session) Append(m analyst.Message) {
	s.messages = append(s.messages, m)
}

// Len reports the number of messages in the log.
func (s *Session) Len() int { return len(s.messages) }

// Messages returns a copy of the log in insertion order.
func (s *Session) Messages() []analyst.Message {
	out := make([]analyst.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// SetPendingSuggestion buffers a clicked suggestion as the next prompt.
// At most one suggestion is outstanding; a later click replaces it.
func (s *Session) SetPendingSuggestion(text string) {
	s.pending = text
	s.hasPending = true
}

// ConsumePendingSuggestion returns the buffered suggestion and clears the
// slot in the same step, so a suggestion can never dispatch twice.
func (s *Session) ConsumePendingSuggestion() (string, bool) {
	if !s.hasPending {
		return "", false
	}
	text := s.pending
	s.pending = ""
	s.hasPending = false
	return text, true
}
