package analyst

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageUnmarshalVariants(t *testing.T) {
	raw := `{
		"role": "assistant",
		"content": [
			{"type": "text", "text": "hello"},
			{"type": "suggestions", "suggestions": ["a", "b"]},
			{"type": "sql", "statement": "SELECT 1"},
			{"type": "chart_spec", "spec": "{}"}
		]
	}`

	var m Message
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	require.Equal(t, RoleAssistant, m.Role)
	require.Len(t, m.Content, 4)
	require.Equal(t, TextBlock{Text: "hello"}, m.Content[0])
	require.Equal(t, SuggestionsBlock{Suggestions: []string{"a", "b"}}, m.Content[1])
	require.Equal(t, SQLBlock{Statement: "SELECT 1"}, m.Content[2])
	require.Equal(t, UnknownBlock{Kind: "chart_spec"}, m.Content[3])
}

func TestUserMessageMarshal(t *testing.T) {
	b, err := json.Marshal(NewUserMessage("what changed?"))
	require.NoError(t, err)
	require.JSONEq(t, `{"role":"user","content":[{"type":"text","text":"what changed?"}]}`, string(b))
}

func TestMessageRoundTripPreservesOrder(t *testing.T) {
	in := Message{
		Role: RoleAssistant,
		Content: []ContentBlock{
			SQLBlock{Statement: "SELECT 2"},
			TextBlock{Text: "then text"},
		},
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out Message
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, in.Content, out.Content)
}
