package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

// keyRevokeCmd represents the key revoke command
var keyRevokeCmd = &cobra.Command{
	Use:   "revoke <identifier>",
	Short: "Revoke an unredeemed access key",
	Long: `Revoke an unredeemed access key.

Revocation removes the key permanently; a revoked identifier can never
be redeemed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		params := url.Values{}
		params.Set("id", args[0])

		body, err := adminRequest(cmd, "/remove", params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to revoke key: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(body)
	},
}

func init() {
	keyCmd.AddCommand(keyRevokeCmd)
}
