// Copyright (c) 2026 Snowchat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package chat

import (
	"context"

	"snowchat/cli/internal/analyst"
	apperrors "snowchat/cli/internal/errors"
	"snowchat/cli/internal/session"
)

// AnalystAPI is the slice of the analyst client the controller needs.
type AnalystAPI interface {
	SendMessage(ctx context.Context, token, prompt string) (*analyst.Response, error)
}

// Controller drives one chat turn: append the user prompt, relay it to the
// analyst, append and render the reply. A failed analyst call leaves the
// assistant side of the log untouched and propagates to the command
// boundary; only the remote call is treated as fatal to the turn.
type Controller struct {
	Analyst  AnalystAPI
	Session  *session.Session
	Renderer *Renderer
}

// ProcessMessage runs one full turn for the given prompt.
func (c *Controller) ProcessMessage(ctx context.Context, prompt string) error {
	user := analyst.NewUserMessage(prompt)
	c.Session.Append(user)
	if err := c.Renderer.RenderMessage(ctx, c.Session.Len()-1, user); err != nil {
		return err
	}

	resp, err := c.Analyst.SendMessage(ctx, c.Session.Handle.Token, prompt)
	if err != nil {
		return apperrors.Wrap(apperrors.RemoteCallFailed, "Cortex Analyst request failed", err)
	}

	reply := resp.Message
	reply.Role = analyst.RoleAssistant
	reply.RequestID = resp.RequestID
	c.Session.Append(reply)
	return c.Renderer.RenderMessage(ctx, c.Session.Len()-1, reply)
}
