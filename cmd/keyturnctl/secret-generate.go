package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
)

// secretGenerateCmd represents the secret > generate command
var secretGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an administrative secret",
	Long: `
Generate an administrative secret

Use this command to generate a fresh random administrative token. Place it
in the server configuration as secret_key (or KEYTURN_SECRET_KEY); every
lifecycle operation requires it.

Example:

$ export KEYTURN_SECRET_KEY="$(keyturnctl secret generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		bytes := make([]byte, 32)
		_, _ = rand.Read(bytes)
		fmt.Printf("%s", base64.URLEncoding.EncodeToString(bytes))
	},
}

func init() {
	secretCmd.AddCommand(secretGenerateCmd)
}
