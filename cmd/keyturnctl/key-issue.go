package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// keyIssueCmd represents the key issue command
var keyIssueCmd = &cobra.Command{
	Use:   "issue [comment]",
	Short: "Issue a fresh single-use access key",
	Long: `Issue a fresh single-use access key.

The optional comment is stored alongside the key and shown in listings.

Example:
  keyturnctl key issue "for dave"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		params := url.Values{}
		if len(args) == 1 {
			params.Set("comment", strings.TrimSpace(args[0]))
		}

		id, err := adminRequest(cmd, "/generate", params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue key: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(id)
	},
}

func init() {
	keyCmd.AddCommand(keyIssueCmd)
}
