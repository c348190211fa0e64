// Package analyst implements the client for the Snowflake Cortex Analyst
// message endpoint and the message/content-block model shared with the chat
// transcript. Content blocks form a closed sum type so rendering can match
// exhaustively instead of comparing type strings.
package analyst

import (
	"encoding/json"
	"fmt"
)

// Message roles on the wire and in the transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one transcript entry. Messages are immutable once appended to
// the session log.
type Message struct {
	Role      string
	Content   []ContentBlock
	RequestID string
}

// NewUserMessage wraps a prompt in the single-text-block form the analyst
// endpoint expects.
func NewUserMessage(prompt string) Message {
	return Message{
		Role:    RoleUser,
		Content: []ContentBlock{TextBlock{Text: prompt}},
	}
}

// ContentBlock is one typed unit of message content. The set is closed:
// Text, Suggestions, SQL, and Unknown for anything the service adds later.
type ContentBlock interface {
	blockType() string
}

// TextBlock is freeform markdown-ish text.
type TextBlock struct {
	Text string
}

// SuggestionsBlock carries follow-up questions the user can pick from.
type SuggestionsBlock struct {
	Suggestions []string
}

// SQLBlock carries a generated SQL statement to execute verbatim.
type SQLBlock struct {
	Statement string
}

// UnknownBlock preserves the type tag of content this client does not
// understand; it renders as a notice, never an error.
type UnknownBlock struct {
	Kind string
}

func (TextBlock) blockType() string        { return "text" }
func (SuggestionsBlock) blockType() string { return "suggestions" }
func (SQLBlock) blockType() string         { return "sql" }
func (b UnknownBlock) blockType() string   { return b.Kind }

// wireBlock is the JSON shape of a content block on the analyst API.
type wireBlock struct {
	Type        string   `json:"type"`
	Text        string   `json:"text,omitempty"`
	Statement   string   `json:"statement,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// wireMessage is the JSON shape of a message on the analyst API.
type wireMessage struct {
	Role    string      `json:"role"`
	Content []wireBlock `json:"content"`
}

// MarshalJSON encodes the message in the analyst wire format.
func (m Message) MarshalJSON() ([]byte, error) {
	w := wireMessage{Role: m.Role, Content: make([]wireBlock, 0, len(m.Content))}
	for _, b := range m.Content {
		switch c := b.(type) {
		case TextBlock:
			w.Content = append(w.Content, wireBlock{Type: "text", Text: c.Text})
		case SuggestionsBlock:
			w.Content = append(w.Content, wireBlock{Type: "suggestions", Suggestions: c.Suggestions})
		case SQLBlock:
			w.Content = append(w.Content, wireBlock{Type: "sql", Statement: c.Statement})
		case UnknownBlock:
			w.Content = append(w.Content, wireBlock{Type: c.Kind})
		default:
			return nil, fmt.Errorf("unencodable content block %T", b)
		}
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a message from the analyst wire format. Unrecognized
// block types decode to UnknownBlock rather than failing the whole message.
func (m *Message) UnmarshalJSON(data []byte) error {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	m.Role = w.Role
	m.Content = make([]ContentBlock, 0, len(w.Content))
	for _, b := range w.Content {
		switch b.Type {
		case "text":
			m.Content = append(m.Content, TextBlock{Text: b.Text})
		case "suggestions":
			m.Content = append(m.Content, SuggestionsBlock{Suggestions: b.Suggestions})
		case "sql":
			m.Content = append(m.Content, SQLBlock{Statement: b.Statement})
		default:
			m.Content = append(m.Content, UnknownBlock{Kind: b.Type})
		}
	}
	return nil
}
