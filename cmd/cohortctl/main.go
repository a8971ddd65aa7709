// Command cohortctl runs maintenance tasks against the configured storage.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/cohorttools/cohort-tools-api/internal/bootstrap"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/logger"
	"github.com/cohorttools/cohort-tools-api/internal/seed"
)

func main() {
	app := &cli.App{
		Name:  "cohortctl",
		Usage: "operate the cohort tools API storage",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   bootstrap.DefaultConfigPath,
				Usage:   "path to the YAML configuration file",
			},
		},
		Commands: []*cli.Command{
			seedCommand(),
			tokenCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("cohortctl failed")
		os.Exit(1)
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "load the bundled cohorts and students into an empty store",
		Flags: []cli.Flag{
			&cli.DurationFlag{Name: "timeout", Value: time.Minute},
		},
		Action: func(c *cli.Context) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
			defer cancel()

			repos, err := bootstrap.SetupStorage(ctx, cfg, lgr)
			if err != nil {
				return err
			}
			defer func() {
				if err := repos.Close(context.Background()); err != nil {
					lgr.Error().Err(err).Msg("Storage close error")
				}
			}()

			result, err := seed.Run(ctx, repos, cfg.Seed.AdminEmail, lgr)
			if err != nil {
				return err
			}
			if result.Skipped {
				fmt.Fprintln(c.App.Writer, "cohorts already present, nothing seeded")
				return nil
			}
			fmt.Fprintf(c.App.Writer, "seeded %d cohorts and %d students\n", result.Cohorts, result.Students)
			return nil
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "print a signed access token for the protected routes",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Usage: "user id placed in the token", Required: true},
			&cli.StringFlag{Name: "email", Usage: "email placed in the token"},
		},
		Action: func(c *cli.Context) error {
			cfg, _, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
			if err != nil {
				return err
			}

			token, expiresAt, err := bootstrap.NewJWTService(cfg).GenerateAccessToken(c.String("user"), c.String("email"))
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, token)
			fmt.Fprintf(c.App.ErrWriter, "expires at %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}
}
