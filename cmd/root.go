// Copyright (c) 2026 Snowchat
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for snowchat. It implements
// the login gate, the Cortex Analyst chat loop, and the configuration
// commands using the Cobra CLI framework, with a rich terminal UI built on
// pterm.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"snowchat/cli/internal/config"
	"snowchat/cli/internal/logging"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "snowchat",
	Short:         "Chat with your data through Snowflake Cortex Analyst",
	Long:          `Snowchat is a terminal chat client for Snowflake Cortex Analyst. It relays natural-language questions to the analyst, executes the SQL it generates against your warehouse, and renders result tables and charts inline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfg, err := config.Load(); err == nil && strings.EqualFold(cfg.LogLevel, "debug") {
			pterm.EnableDebugMessages()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("snowchat %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application. Errors reaching this boundary are
// presented once, masked, and set a non-zero exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("snowchat", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}
