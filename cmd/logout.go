// Copyright (c) 2026 Snowchat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"snowchat/cli/internal/auth"
	"snowchat/cli/internal/config"
	"snowchat/cli/internal/keychain"
)

var (
	logoutAll bool
)

// logoutCmd clears all authentication state from the local system.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove all saved credentials and tokens",
	Long: `The logout command clears the stored Snowflake credentials, the Cortex
session token and the local login state from the OS keychain. The optional
PostgreSQL mirror DSN is kept unless --all is given.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		_ = auth.NewService(cfg.Analyst).Logout()
		_ = auth.Clear()
		if logoutAll {
			if km, err := keychain.GetManager(); err == nil {
				_ = km.ClearAll()
			}
		}

		fmt.Println("✅ All credentials and tokens have been removed")
		if logoutAll {
			fmt.Println("   The mirror connection was removed too")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
	logoutCmd.Flags().BoolVar(&logoutAll, "all", false, "Also remove the PostgreSQL mirror connection")
}
