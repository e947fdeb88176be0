package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "securepass",
	Short: "SecurePass personal vault server",
	Long: `SecurePass is a personal vault server for API keys, login passwords
and secure notes. Every record belongs to exactly one owner and is only
reachable with that owner's session token.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
