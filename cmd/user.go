// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/team-service/internal/types"
	"github.com/canonical/team-service/pkg/users"
)

var (
	memberTeamID string
	memberPage   int
	memberSize   int
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Inspect users and manage team members",
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp := new(users.MeResponse)
		if _, err := newClient().do(cmd.Context(), http.MethodGet, "/users/me", nil, resp); err != nil {
			return fmt.Errorf("failed to get current user: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp.User)
	},
}

var listMembersCmd = &cobra.Command{
	Use:   "list",
	Short: "List the members of a team",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		q.Set("team_id", memberTeamID)
		q.Set("page", fmt.Sprint(memberPage))
		q.Set("size", fmt.Sprint(memberSize))

		var list []*types.User
		env, err := newClient().do(cmd.Context(), http.MethodGet, "/users?"+q.Encode(), nil, &list)
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tFIRST_NAME\tLAST_NAME")
		for _, u := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Email, u.FirstName, u.LastName)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		var meta types.PageMeta
		if len(env.Meta) > 0 && json.Unmarshal(env.Meta, &meta) == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d, %d members\n", meta.CurrentPage, meta.TotalPages, meta.TotalItems)
		}
		return nil
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove [user-id]",
	Short: "Remove a user from a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/users/" + url.PathEscape(args[0]) + "?team_id=" + url.QueryEscape(memberTeamID)
		if _, err := newClient().do(cmd.Context(), http.MethodDelete, path, nil, nil); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "User %s removed from team %s\n", args[0], memberTeamID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(meCmd)
	userCmd.AddCommand(listMembersCmd)
	userCmd.AddCommand(removeMemberCmd)

	for _, c := range []*cobra.Command{listMembersCmd, removeMemberCmd} {
		c.Flags().StringVar(&memberTeamID, "team", "", "Team ID")
		_ = c.MarkFlagRequired("team")
	}
	listMembersCmd.Flags().IntVar(&memberPage, "page", 1, "Page number")
	listMembersCmd.Flags().IntVar(&memberSize, "size", 20, "Page size")
}
