// Package main is the entry point for the snowchat CLI application.
// It provides a conversational terminal front-end to Snowflake Cortex Analyst.
package main

import (
	"snowchat/cli/cmd"
)

// main is the entry point for the snowchat CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
