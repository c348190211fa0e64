// Copyright (c) 2026 Snowchat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package chat

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"snowchat/cli/internal/analyst"
	"snowchat/cli/internal/session"
)

// skipSuggestion is the chooser entry that dismisses a suggestions block
// without queueing a follow-up prompt.
const skipSuggestion = "(none)"

// Renderer turns transcript messages into terminal output. The transcript is
// append-only, so each message renders exactly once, in order; interactive
// pieces (suggestion choosers, chart pickers) keep their identity through the
// session widget store.
type Renderer struct {
	Session *session.Session
	Panel   *SQLPanel
}

// RenderTranscript renders every message in the log in insertion order.
func (r *Renderer) RenderTranscript(ctx context.Context) error {
	for i, m := range r.Session.Messages() {
		if err := r.RenderMessage(ctx, i, m); err != nil {
			return err
		}
	}
	return nil
}

// RenderMessage renders one message. index is the message's position in the
// session log and anchors the keys of any widgets the message owns.
func (r *Renderer) RenderMessage(ctx context.Context, index int, m analyst.Message) error {
	printRole(m.Role)
	for _, block := range m.Content {
		switch b := block.(type) {
		case analyst.TextBlock:
			pterm.DefaultParagraph.Println(b.Text)
		case analyst.SQLBlock:
			if err := r.Panel.Render(ctx, b.Statement); err != nil {
				return err
			}
		case analyst.SuggestionsBlock:
			if err := r.renderSuggestions(index, b.Suggestions); err != nil {
				return err
			}
		case analyst.UnknownBlock:
			pterm.Warning.Printfln("Unsupported content type: %s", b.Kind)
		}
	}
	if m.Role == analyst.RoleAssistant && m.RequestID != "" {
		pterm.FgGray.Printfln("request id: %s", m.RequestID)
	}
	return nil
}

// renderSuggestions offers the block's follow-up questions once. The chooser
// is keyed by message index, so replays of the same transcript never re-fire
// a pick that already queued a prompt.
func (r *Renderer) renderSuggestions(index int, suggestions []string) error {
	if len(suggestions) == 0 {
		return nil
	}
	options := append([]string{skipSuggestion}, suggestions...)
	key := fmt.Sprintf("suggestions_%d", index)
	choice, fired, err := r.Session.Widgets.PickOnce(key, "Suggested follow-ups", options)
	if err != nil {
		return err
	}
	if fired && choice != skipSuggestion {
		r.Session.SetPendingSuggestion(choice)
	}
	return nil
}

func printRole(role string) {
	switch role {
	case analyst.RoleUser:
		pterm.DefaultSection.WithLevel(2).Println("You")
	case analyst.RoleAssistant:
		pterm.DefaultSection.WithLevel(2).Println("Analyst")
	}
}
