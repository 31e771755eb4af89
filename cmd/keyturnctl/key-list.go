package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// keyListCmd represents the key list command
var keyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List unredeemed keys and registered users",
	Long: `List unredeemed keys and registered users.

User entries show the login only; stored passwords are never returned
by the server.`,
	Run: func(cmd *cobra.Command, args []string) {
		body, err := adminRequest(cmd, "/stats", url.Values{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list keys: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(strings.ReplaceAll(body, "<br/>", "\n"))
	},
}

func init() {
	keyCmd.AddCommand(keyListCmd)
}
