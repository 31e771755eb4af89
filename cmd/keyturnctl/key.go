package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// keyCmd represents the key command
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage access keys on a running server",
	Long:  `Manage access keys on a running server.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'key' requires a subcommand (issue, revoke, list)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(keyCmd)

	keyCmd.PersistentFlags().String("url", "http://localhost:8000", "base URL of the keyturn server")
	keyCmd.PersistentFlags().String("secret", os.Getenv("KEYTURN_SECRET_KEY"), "administrative secret (defaults to KEYTURN_SECRET_KEY)")
}

// adminRequest performs an authorized GET against the server and
// returns the response body.
func adminRequest(cmd *cobra.Command, path string, params url.Values) (string, error) {
	base, _ := cmd.Flags().GetString("url")
	secret, _ := cmd.Flags().GetString("secret")
	if secret == "" {
		return "", fmt.Errorf("administrative secret is required (--secret or KEYTURN_SECRET_KEY)")
	}

	params.Set("key", secret)
	endpoint := base + path + "?" + params.Encode()

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(endpoint)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned %s: %s", resp.Status, body)
	}

	return string(body), nil
}
