// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/canonical/team-service/pkg/authentication"
)

var (
	signInEmail    string
	signInPassword string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign in and print a bearer token",
	Long:  `Sign in with email and password. Any token previously issued to the user is revoked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp authentication.SignInResponse
		_, err := newClient().do(cmd.Context(), http.MethodPost, "/users/token", authentication.SignInRequest{
			Email:    signInEmail,
			Password: signInPassword,
		}, &resp)
		if err != nil {
			return fmt.Errorf("failed to sign in: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), resp.Auth.Token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&signInEmail, "email", "", "User email")
	tokenCmd.Flags().StringVar(&signInPassword, "password", "", "User password")

	_ = tokenCmd.MarkFlagRequired("email")
	_ = tokenCmd.MarkFlagRequired("password")
}
