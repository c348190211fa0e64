// Copyright (c) 2026 Snowchat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"snowchat/cli/internal/auth"
	"snowchat/cli/internal/config"
	apperrors "snowchat/cli/internal/errors"
	"snowchat/cli/internal/logging"
)

// maxLoginAttempts bounds the interactive retry loop; a rejected password
// re-prompts with the username preserved.
const maxLoginAttempts = 3

// loginCmd authenticates against the configured Snowflake deployment with
// username and password and stores the resulting session token in the OS
// keychain. If valid credentials are already stored, it short-circuits.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Authenticate against Snowflake and store the session token",
	Long: `The login command prompts for your Snowflake username and password and
performs a session login against the configured account. On success the
credentials and the session token are stored in the OS keychain so that
'snowchat chat' can start without prompting.

A rejected password re-prompts up to three times, keeping the username.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		svc := auth.NewService(cfg.Analyst)

		if st, ok := svc.WhoAmI(); ok {
			fmt.Printf("Already logged in as %s@%s\n", st.Username, st.Account)
			return nil
		}

		username := ""
		for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
			username, err = promptUsername(username)
			if err != nil {
				return err
			}
			password, err := promptPassword()
			if err != nil {
				return err
			}

			_, err = svc.Login(cmd.Context(), username, password)
			if err == nil {
				pterm.Success.Printfln("Logged in as %s@%s", username, cfg.Analyst.Account)
				return nil
			}

			var e *apperrors.E
			if errors.As(err, &e) && e.Kind == apperrors.AuthFailed && attempt < maxLoginAttempts {
				pterm.Error.Println(logging.PresentError("login failed", err))
				continue
			}
			return err
		}
		return apperrors.New(apperrors.AuthFailed, "too many failed login attempts")
	},
}

func promptUsername(previous string) (string, error) {
	input := pterm.DefaultInteractiveTextInput.WithDefaultText("Snowflake username")
	if previous != "" {
		input = input.WithDefaultValue(previous)
	}
	username, err := input.Show()
	if err != nil {
		return "", err
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return "", apperrors.New(apperrors.AuthFailed, "username is required")
	}
	return username, nil
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stdout)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
