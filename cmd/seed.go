// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/canonical/team-service/internal/config"
	"github.com/canonical/team-service/internal/db"
	"github.com/canonical/team-service/internal/logging"
	"github.com/canonical/team-service/internal/monitoring"
	"github.com/canonical/team-service/internal/storage"
	"github.com/canonical/team-service/internal/tracing"
	"github.com/canonical/team-service/internal/types"
	"github.com/canonical/team-service/pkg/authentication"
)

var skipSeed bool

var seedCmd = &cobra.Command{
	Use:   "reset",
	Short: "Rebuild the database from scratch and load demo data",
	Long:  `Roll every migration back, apply them again and insert the demo users, teams, memberships and roles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := config.Load(envFile)
		if err != nil {
			return err
		}

		return resetDatabase(cmd, specs)
	},
}

func init() {
	seedCmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Only drop and migrate the database without inserting demo data")
	rootCmd.AddCommand(seedCmd)
}

func resetDatabase(cmd *cobra.Command, specs *config.EnvSpec) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	sqlDB, err := openMigrationDB(ctx, specs.DSN)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	provider, err := newMigrationProvider(sqlDB, true)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Resetting database...")
	if _, err := provider.DownTo(ctx, 0); err != nil {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}

	fmt.Fprintln(out, "Applying migrations...")
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	if skipSeed {
		fmt.Fprintln(out, "Skipping demo data.")
		return nil
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := monitoring.NewNoopMonitor("team-service", logger)
	tracer := tracing.NewNoopTracer()

	dbClient, err := db.NewDBClient(db.Config{
		DSN:             specs.DSN,
		MaxConns:        2,
		MinConns:        1,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
	}, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}
	defer dbClient.Close()

	fmt.Fprintln(out, "Seeding demo data...")
	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	if err := seedDemoData(ctx, s, dbClient, authentication.NewPasswordHasher(specs.BcryptCost)); err != nil {
		return err
	}

	fmt.Fprintln(out, "Done.")
	return nil
}

type seedStorage interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	CreateTeam(ctx context.Context, t *types.Team) (*types.Team, error)
	CreateMembership(ctx context.Context, membership *types.UserTeam) (*types.UserTeam, error)
	CreateRole(ctx context.Context, r *types.Role) (*types.Role, error)
}

type seedUser struct {
	email, firstName, lastName, password, telegram string
}

type seedMember struct {
	user, team     int
	manageUsers    bool
	manageProjects bool
	role           string
}

var (
	demoUsers = []seedUser{
		{"captain@example.com", "Alice", "Captain", "captain123", "@alice"},
		{"developer@example.com", "Bob", "Builder", "builder123", "@bob"},
		{"designer@example.com", "Carol", "Colors", "designer123", "@carol"},
	}

	demoMembers = []seedMember{
		{user: 0, team: 0, manageUsers: true, manageProjects: true, role: types.RoleCaptain},
		{user: 1, team: 0, manageProjects: true, role: types.RoleDeveloper},
		{user: 2, team: 1, role: types.RoleDesigner},
	}
)

func demoTeams() []*types.Team {
	university := stableID("university:dream-team")

	return []*types.Team{
		{Name: "Dream Team", EducationalInstitutionType: "university", CityID: stableID("city:dream-team"), UniversityID: &university},
		{Name: "Rising Stars", EducationalInstitutionType: "college", CityID: stableID("city:rising-stars")},
	}
}

// stableID derives the same identifier on every reset.
func stableID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("team-service:"+name)).String()
}

func seedDemoData(ctx context.Context, s seedStorage, tx db.TxRunner, hasher *authentication.PasswordHasher) error {
	return tx.WithTx(ctx, func(ctx context.Context) error {
		users := make([]*types.User, 0, len(demoUsers))
		for _, du := range demoUsers {
			hash, err := hasher.Hash(du.password)
			if err != nil {
				return err
			}

			telegram := du.telegram
			u, err := s.CreateUser(ctx, &types.User{
				Email:        du.email,
				PasswordHash: hash,
				FirstName:    du.firstName,
				LastName:     du.lastName,
				TelegramNick: &telegram,
				IsActive:     true,
			})
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", du.email, err)
			}
			users = append(users, u)
		}

		teams := make([]*types.Team, 0, 2)
		for _, dt := range demoTeams() {
			t, err := s.CreateTeam(ctx, dt)
			if err != nil {
				return fmt.Errorf("failed to create team %s: %w", dt.Name, err)
			}
			teams = append(teams, t)
		}

		for _, m := range demoMembers {
			userID, teamID := users[m.user].ID, teams[m.team].ID

			if _, err := s.CreateMembership(ctx, &types.UserTeam{
				UserID:                      userID,
				TeamID:                      teamID,
				HasPermissionManageUsers:    m.manageUsers,
				HasPermissionManageProjects: m.manageProjects,
			}); err != nil {
				return fmt.Errorf("failed to create membership: %w", err)
			}

			if _, err := s.CreateRole(ctx, &types.Role{UserID: userID, TeamID: &teamID, Role: m.role}); err != nil {
				return fmt.Errorf("failed to create role: %w", err)
			}
		}

		return nil
	})
}
