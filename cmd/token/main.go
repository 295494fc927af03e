// Command token issues a bearer token for a board client.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"noteboard/internal/auth"
	"noteboard/internal/config"
)

var clientID string

var rootCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the note board API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is not set")
		}

		id := clientID
		if id == "" {
			id = uuid.NewString()
		} else if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("client id must be a UUID: %w", err)
		}

		token, err := auth.GenerateToken([]byte(cfg.JWTSecret), id, time.Duration(cfg.JWTExpiryHours)*time.Hour)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVar(&clientID, "client", "", "client id (a new UUID when empty)")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
