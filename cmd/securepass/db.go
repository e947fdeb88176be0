package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// dbCmd groups the schema management subcommands
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the database schema",
	Long: `Manage the database schema.

Requires one of the subcommands: migrate, down or status.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: 'db' requires a subcommand (migrate, down, status)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
