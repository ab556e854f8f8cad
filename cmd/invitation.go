// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/team-service/internal/types"
	"github.com/canonical/team-service/pkg/invitations"
)

var (
	inviteTeamID         string
	inviteEmail          string
	inviteCaptain        bool
	inviteManageUsers    bool
	inviteManageProjects bool

	registerEmail     string
	registerPassword  string
	registerFirstName string
	registerLastName  string
)

var invitationCmd = &cobra.Command{
	Use:   "invitation",
	Short: "Manage team invitations",
}

var createInvitationCmd = &cobra.Command{
	Use:   "create",
	Short: "Invite an email address to a team",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp := new(invitations.CreateInvitationResponse)
		_, err := newClient().do(cmd.Context(), http.MethodPost, "/teams/"+url.PathEscape(inviteTeamID)+"/invitations", invitations.CreateInvitationRequest{
			Email:                       inviteEmail,
			IsCaptain:                   inviteCaptain,
			HasPermissionManageUsers:    inviteManageUsers,
			HasPermissionManageProjects: inviteManageProjects,
		}, resp)
		if err != nil {
			return fmt.Errorf("failed to create invitation: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Invitation created: %s\n%s\n", resp.Invitation.ID, resp.InviteURL)
		return nil
	},
}

var listInvitationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the invitations of a team, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		var list []*types.Invitation
		if _, err := newClient().do(cmd.Context(), http.MethodGet, "/teams/"+url.PathEscape(inviteTeamID)+"/invitations", nil, &list); err != nil {
			return fmt.Errorf("failed to list invitations: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tSTATUS\tCAPTAIN\tCREATED_AT")
		for _, inv := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", inv.ID, inv.Email, inv.Status, inv.IsCaptain, inv.CreatedAt)
		}
		return w.Flush()
	},
}

var acceptInvitationCmd = &cobra.Command{
	Use:   "accept [token]",
	Short: "Accept an invitation as an already registered user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := newClient().do(cmd.Context(), http.MethodPost, "/accept", invitations.AcceptInvitationRequest{Token: args[0]}, nil); err != nil {
			return fmt.Errorf("failed to accept invitation: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Invitation accepted: %s\n", args[0])
		return nil
	},
}

var registerInvitationCmd = &cobra.Command{
	Use:   "register [token]",
	Short: "Register a new user through an invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user := new(types.User)
		_, err := newClient().do(cmd.Context(), http.MethodPost, "/invitations/"+url.PathEscape(args[0])+"/register", invitations.RegisterRequest{
			Email:     registerEmail,
			Password:  registerPassword,
			FirstName: registerFirstName,
			LastName:  registerLastName,
		}, user)
		if err != nil {
			return fmt.Errorf("failed to register: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "User registered: %s (ID: %s)\n", user.Email, user.ID)
		return nil
	},
}

var cancelInvitationCmd = &cobra.Command{
	Use:   "cancel [id]",
	Short: "Cancel a pending invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := newClient().do(cmd.Context(), http.MethodPatch, "/invitations/"+url.PathEscape(args[0])+"/cancel", nil, nil); err != nil {
			return fmt.Errorf("failed to cancel invitation: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Invitation cancelled: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invitationCmd)
	invitationCmd.AddCommand(createInvitationCmd)
	invitationCmd.AddCommand(listInvitationsCmd)
	invitationCmd.AddCommand(acceptInvitationCmd)
	invitationCmd.AddCommand(registerInvitationCmd)
	invitationCmd.AddCommand(cancelInvitationCmd)

	for _, c := range []*cobra.Command{createInvitationCmd, listInvitationsCmd} {
		c.Flags().StringVar(&inviteTeamID, "team", "", "Team ID")
		_ = c.MarkFlagRequired("team")
	}

	createInvitationCmd.Flags().StringVar(&inviteEmail, "email", "", "Invitee email")
	createInvitationCmd.Flags().BoolVar(&inviteCaptain, "captain", false, "Invite as team captain")
	createInvitationCmd.Flags().BoolVar(&inviteManageUsers, "manage-users", false, "Grant the manage users permission")
	createInvitationCmd.Flags().BoolVar(&inviteManageProjects, "manage-projects", false, "Grant the manage projects permission")
	_ = createInvitationCmd.MarkFlagRequired("email")

	registerInvitationCmd.Flags().StringVar(&registerEmail, "email", "", "Email, must match the invitation")
	registerInvitationCmd.Flags().StringVar(&registerPassword, "password", "", "Password")
	registerInvitationCmd.Flags().StringVar(&registerFirstName, "first-name", "", "First name")
	registerInvitationCmd.Flags().StringVar(&registerLastName, "last-name", "", "Last name")
	for _, f := range []string{"email", "password", "first-name", "last-name"} {
		_ = registerInvitationCmd.MarkFlagRequired(f)
	}
}
