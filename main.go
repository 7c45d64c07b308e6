package main

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/median-man/team-tracker/config"
	"github.com/median-man/team-tracker/controllers"
	"github.com/median-man/team-tracker/providers"
	"github.com/median-man/team-tracker/repos"
	"github.com/median-man/team-tracker/server"
	"github.com/median-man/team-tracker/sessions"
	"github.com/median-man/team-tracker/utils"
	"github.com/uptrace/bun"
	"go.uber.org/fx"
)

func main() {

	opts := []fx.Option{}
	opts = append(opts, provideOptions()...)
	opts = append(opts, fx.Invoke(run))

	app := fx.New(opts...)

	app.Run()
}

func provideOptions() []fx.Option {
	return []fx.Option{
		fx.Provide(config.Parse),
		fx.Invoke(func(cfg *config.Config) {
			utils.ConfigureLogger(cfg.IsProduction)
			utils.InitSharedConstants(*cfg.JwtParsedPublicKey)
		}),
		fx.Provide(config.ProvidePostgres),
		fx.Provide(config.ProvideRedis),
		fx.Provide(config.ProvideSmtp),
		fx.Provide(server.CreateServer),
		fx.Provide(utils.GetDefaultRouter),
		fx.Provide(utils.NewValidator),
		fx.Invoke(config.RunMigrations),
		fx.Provide(func(client *redis.Client, cfg *config.Config) *sessions.Store {
			return sessions.New(client, time.Duration(cfg.SessionTTL)*time.Second)
		}),
		fx.Provide(
			func(s *sessions.Store) controllers.SessionStore { return s },
			func(db *bun.DB) controllers.UserStore { return repos.NewUserRepo(db) },
			func(db *bun.DB) controllers.TeamStore { return repos.NewTeamRepo(db) },
			func(db *bun.DB) controllers.MemberStore { return repos.NewMemberRepo(db) },
			func(db *bun.DB) controllers.NoteStore { return repos.NewNoteRepo(db) },
			providers.NewMailer,
		),
		fx.Invoke(controllers.RegisterUserController),
		fx.Invoke(controllers.RegisterTeamsController),
		fx.Invoke(controllers.RegisterMembersController),
		fx.Invoke(controllers.RegisterNotesController),
		fx.Invoke(controllers.RegisterHealthController),
	}
}

func run(app *fiber.App, config *config.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			errChan := make(chan error)

			go func() {
				errChan <- app.Listen(config.Port)
			}()

			select {
			case err := <-errChan:
				return err
			case <-time.After(100 * time.Millisecond):
				return nil
			}
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}
