// Copyright (c) 2026 Snowchat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"snowchat/cli/internal/config"
	"snowchat/cli/internal/dsn"
	"snowchat/cli/internal/keychain"
)

// modelinfoCmd shows the analyst deployment the chat talks to: the semantic
// model stage path, the account, and the SQL execution target. Passwords and
// DSN secrets are masked.
var modelinfoCmd = &cobra.Command{
	Use:   "modelinfo",
	Short: "Show the configured semantic model and execution target",
	Long: `The modelinfo command displays the Cortex Analyst deployment snowchat is
configured against: the semantic model stage path, the account host, and
where generated SQL will execute (the Snowflake warehouse or a configured
PostgreSQL mirror). Credentials are masked.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		a := cfg.Analyst

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Cortex Analyst")).
			WithPadding(1).
			Printfln("Account:        %s\nHost:           %s\nWarehouse:      %s\nRole:           %s\nSemantic model: %s",
				a.Account, a.Host, a.Warehouse, a.Role, a.SemanticModelPath())
		pterm.Println()

		mirror := mirrorDSNFromEnvOrKeychain()
		if mirror == "" {
			pterm.Println("SQL execution: Snowflake warehouse (no mirror configured)")
			pterm.Println("To configure a PostgreSQL mirror, run: snowchat connect")
			return nil
		}
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("PostgreSQL Mirror")).
			WithPadding(1).
			Println(dsn.Mask(mirror))
		return nil
	},
}

// mirrorDSNFromEnvOrKeychain resolves the mirror DSN the way the chat does:
// environment first, then the OS keychain.
func mirrorDSNFromEnvOrKeychain() string {
	if env := strings.TrimSpace(os.Getenv("SNOWCHAT_DSN")); env != "" {
		return env
	}
	if env := strings.TrimSpace(os.Getenv("DATABASE_URL")); env != "" {
		return env
	}
	km, err := keychain.GetManager()
	if err != nil {
		return ""
	}
	stored, err := km.LoadMirrorDSN()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(stored)
}

func init() {
	rootCmd.AddCommand(modelinfoCmd)
}
