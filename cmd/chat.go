// Copyright (c) 2026 Snowchat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"snowchat/cli/internal/analyst"
	"snowchat/cli/internal/auth"
	"snowchat/cli/internal/charts"
	"snowchat/cli/internal/chat"
	"snowchat/cli/internal/config"
	"snowchat/cli/internal/dsn"
	apperrors "snowchat/cli/internal/errors"
	"snowchat/cli/internal/httperrors"
	"snowchat/cli/internal/logging"
	"snowchat/cli/internal/session"
	"snowchat/cli/internal/snowflake"
	"snowchat/cli/internal/sqlexec"
)

// chatCmd runs the interactive Cortex Analyst chat. The credential gate runs
// first; the chat loop only starts once a session token exists. Analyst call
// failures end the session and surface at the command boundary, while SQL
// execution failures stay inside their result panel.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with Cortex Analyst about your data",
	Long: `The chat command opens an interactive session with Snowflake Cortex
Analyst. Each question is relayed to the analyst; replies render as text,
SQL with an executed result table and chart, and suggested follow-ups you
can pick from. An empty prompt or 'exit' ends the session.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		svc := auth.NewService(cfg.Analyst)

		printTitle()
		username, password, token, err := credentialGate(ctx, svc)
		if err != nil {
			return err
		}

		engine, err := buildEngine(ctx, cfg, username, password)
		if err != nil {
			return err
		}
		defer engine.Close()

		printWelcome(cfg.Analyst, username, engine.Name())

		widgets := session.NewWidgetState(session.TerminalPrompt)
		sess := session.New(cfg.Analyst.Account, &session.Handle{Engine: engine, Token: token}, widgets)
		ctrl := &chat.Controller{
			Analyst: analyst.New("https://"+cfg.Analyst.Host, cfg.Analyst.SemanticModelPath()),
			Session: sess,
			Renderer: &chat.Renderer{
				Session: sess,
				Panel:   &chat.SQLPanel{Engine: engine, Charts: charts.NewSelector(widgets)},
			},
		}

		for {
			prompt, queued := sess.ConsumePendingSuggestion()
			if !queued {
				prompt, err = pterm.DefaultInteractiveTextInput.
					WithDefaultText("Ask a question (empty or 'exit' to quit)").
					Show()
				if err != nil {
					return err
				}
				prompt = strings.TrimSpace(prompt)
				if prompt == "" || strings.EqualFold(prompt, "exit") {
					break
				}
			}
			if err := ctrl.ProcessMessage(ctx, prompt); err != nil {
				var reqErr *analyst.RequestError
				if errors.As(err, &reqErr) {
					return err
				}
				return httperrors.FormatNetworkError(err, "calling Cortex Analyst")
			}
		}
		pterm.Println("Goodbye!")
		return nil
	},
}

// credentialGate produces the authenticated triple the chat needs. Stored
// credentials are tried first; a rejection falls back to the interactive
// prompt with the username preserved between attempts.
func credentialGate(ctx context.Context, svc *auth.Service) (username, password, token string, err error) {
	if u, p, ok := svc.StoredCredentials(); ok {
		token, err := svc.Login(ctx, u, p)
		if err == nil {
			return u, p, token, nil
		}
		var e *apperrors.E
		if !errors.As(err, &e) || e.Kind != apperrors.AuthFailed {
			return "", "", "", httperrors.FormatNetworkError(err, "logging in to Snowflake")
		}
		pterm.Error.Println(logging.PresentError("stored credentials rejected", err))
		username = u
	}

	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		username, err = promptUsername(username)
		if err != nil {
			return "", "", "", err
		}
		password, err = promptPassword()
		if err != nil {
			return "", "", "", err
		}
		token, err = svc.Login(ctx, username, password)
		if err == nil {
			return username, password, token, nil
		}
		var e *apperrors.E
		if errors.As(err, &e) && e.Kind == apperrors.AuthFailed && attempt < maxLoginAttempts {
			pterm.Error.Println(logging.PresentError("login failed", err))
			continue
		}
		return "", "", "", err
	}
	return "", "", "", apperrors.New(apperrors.AuthFailed, "too many failed login attempts")
}

// buildEngine picks the SQL execution target: the PostgreSQL mirror when one
// is configured, otherwise the Snowflake warehouse opened with the login
// credentials.
func buildEngine(ctx context.Context, cfg config.Config, username, password string) (sqlexec.Engine, error) {
	if mirror := mirrorDSNFromEnvOrKeychain(); mirror != "" {
		normalized, err := dsn.Parse(mirror)
		if err != nil {
			return nil, fmt.Errorf("configured mirror DSN is invalid: %w", err)
		}
		pool, err := pgxpool.New(ctx, normalized)
		if err != nil {
			return nil, fmt.Errorf("open mirror connection: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("mirror unreachable: %w", err)
		}
		return sqlexec.NewPostgresEngine(pool), nil
	}

	db, err := snowflake.Connect(ctx, cfg.Analyst, username, password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.AuthFailed, "warehouse connection failed", err)
	}
	return sqlexec.NewSnowflakeEngine(db), nil
}

func printTitle() {
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgBlue)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightWhite)).
		Println("Cortex Analyst Chat")
}

func printWelcome(a config.Analyst, username, engineName string) {
	pterm.Printfln("Welcome, %s. Connected to %s; SQL runs on %s.", username, a.Account, engineName)
	pterm.Printfln("Semantic model: %s", a.SemanticModelPath())
	pterm.Println()
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
