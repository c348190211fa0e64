package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"snowchat/cli/internal/auth"
	"snowchat/cli/internal/keychain"
)

// whoamiCmd shows the stored login identity without touching the network.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current authenticated account",
	Long: `The whoami command displays the stored Snowflake identity: the username
and account that 'snowchat login' persisted. It does not contact Snowflake;
an expired session will only surface when the chat starts.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := auth.Load()
		if err != nil || !st.LoggedIn {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'snowchat login' to get started.")
			return nil
		}
		fmt.Printf("👤 Current user: %s@%s\n", st.Username, st.Account)
		if !st.LoggedInAt.IsZero() {
			fmt.Printf("   Logged in at %s\n", st.LoggedInAt.Format("2006-01-02 15:04 MST"))
		}
		if km, err := keychain.GetManager(); err == nil {
			if _, err := km.LoadSessionToken(); err == nil {
				fmt.Println("   Session token: stored (refreshed on each chat)")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
