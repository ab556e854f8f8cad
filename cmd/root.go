// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL   string
	apiToken string
	envFile  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "team-service",
	Short: "Team Service",
	Long:  `Team Service CLI for running the server and managing teams, members and invitations.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:8080", "Team service base URL")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", os.Getenv("TEAM_SERVICE_TOKEN"), "Bearer token, defaults to $TEAM_SERVICE_TOKEN")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", envOrDefault("ENV_FILE", ".env"), "Optional dotenv file loaded before reading the environment")
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
