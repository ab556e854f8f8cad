// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/team-service/internal/types"
	"github.com/canonical/team-service/pkg/teams"
)

var (
	teamInstitutionType string
	teamCityID          string
	teamUniversityID    string
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage teams",
}

var createTeamCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := teams.CreateTeamRequest{
			Name:                       args[0],
			EducationalInstitutionType: teamInstitutionType,
			CityID:                     teamCityID,
		}
		if teamUniversityID != "" {
			req.UniversityID = &teamUniversityID
		}

		team := new(types.Team)
		if _, err := newClient().do(cmd.Context(), http.MethodPost, "/teams", req, team); err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Team created: %s (ID: %s)\n", team.Name, team.ID)
		return nil
	},
}

var listTeamsCmd = &cobra.Command{
	Use:   "list",
	Short: "List teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		var list []*types.Team
		if _, err := newClient().do(cmd.Context(), http.MethodGet, "/teams", nil, &list); err != nil {
			return fmt.Errorf("failed to list teams: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tCITY\tCREATED_AT")
		for _, t := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Name, t.EducationalInstitutionType, t.CityID, t.CreatedAt)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(teamCmd)
	teamCmd.AddCommand(createTeamCmd)
	teamCmd.AddCommand(listTeamsCmd)

	createTeamCmd.Flags().StringVar(&teamInstitutionType, "type", "university", "Educational institution type (university, college or school)")
	createTeamCmd.Flags().StringVar(&teamCityID, "city", "", "City identifier")
	createTeamCmd.Flags().StringVar(&teamUniversityID, "university", "", "University identifier")
	_ = createTeamCmd.MarkFlagRequired("city")
}
