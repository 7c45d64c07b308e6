// Seeds the database with example users, teams, members, and notes. Drops
// nothing; run it against a fresh database.
package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/median-man/team-tracker/config"
	"github.com/median-man/team-tracker/models"
	"github.com/median-man/team-tracker/repos"
	"github.com/median-man/team-tracker/utils"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type seedUser struct {
	username string
	email    string
	password string
	teams    []seedTeam
}

type seedTeam struct {
	name    string
	members []string
	notes   []string
}

var seedData = []seedUser{
	{
		username: "jseinfeld",
		email:    "jerry@email.com",
		password: "Password12#",
		teams: []seedTeam{
			{
				name:    "Test Team",
				members: []string{"Jerry", "Elaine"},
				notes: []string{
					"Kickoff meeting on Monday.",
					"Elaine owns the demo script.",
				},
			},
			{
				name:    "Vandelay Industries",
				members: []string{"George", "Kramer", "Newman"},
				notes:   []string{"Importing. Exporting."},
			},
		},
	},
	{
		username: "ebenes",
		email:    "elaine@email.com",
		password: "Password12#",
		teams: []seedTeam{
			{
				name:    "J. Peterman Catalog",
				members: []string{"Elaine"},
				notes:   []string{"Urban sombrero copy due Friday."},
			},
		},
	},
}

func main() {
	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(os.Getenv("DSN"))))
	db := bun.NewDB(pgdb, pgdialect.New())

	if err := config.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	ctx := context.Background()
	userRepo := repos.NewUserRepo(db)
	teamRepo := repos.NewTeamRepo(db)
	noteRepo := repos.NewNoteRepo(db)

	for _, u := range seedData {
		hash, err := utils.HashPassword(u.password)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash password")
		}

		user := &models.User{Username: u.username, Email: u.email, Password: hash}
		if err := userRepo.AddUser(ctx, user); err != nil {
			log.Fatal().Err(err).Str("username", u.username).Msg("Failed to seed user")
		}

		for _, t := range u.teams {
			team := &models.Team{Name: t.name, UserId: user.Id}
			if err := teamRepo.AddTeamTx(ctx, team, t.members); err != nil {
				log.Fatal().Err(err).Str("team", t.name).Msg("Failed to seed team")
			}

			for _, body := range t.notes {
				note := &models.Note{TeamId: team.Id, UserId: user.Id, Body: body}
				if err := noteRepo.AddNote(ctx, note); err != nil {
					log.Fatal().Err(err).Str("team", t.name).Msg("Failed to seed note")
				}
			}
		}
	}

	log.Info().Msg("Successfully seeded data")
}
