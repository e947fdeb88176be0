package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abidraza5594/SecurePass/pkg/auth"
	"github.com/abidraza5594/SecurePass/pkg/db"
)

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage vault users",
	Long:  `Manage vault users.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'user' requires a subcommand (create)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create EMAIL",
	Short: "Create a vault user",
	Long: `Create a vault user.

The password is read from the --password flag or prompted for
interactively.

Example:
  securepass user create alice@example.com`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		email := args[0]

		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			fmt.Print("Password: ")
			raw, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to read password: %v\n", err)
				os.Exit(1)
			}
			password = string(raw)
		}

		conn, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to DB: %v\n", err)
			os.Exit(1)
		}

		provider := auth.NewProvider(conn)
		user, err := provider.SignUp(cmd.Context(), email, password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created user %s (%s)\n", user.Email, user.ID)
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().String("password", "", "password for the new user (prompted when omitted)")
}
