package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/infiniteloop/camaraclient/cmd/app/commands"
	"github.com/infiniteloop/camaraclient/internal/app"
	"github.com/infiniteloop/camaraclient/internal/config"
)

func getOperatorCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "token",
			Usage: "Exchange the operator client credentials for an access token",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "class",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Service class sent as X-SI-CLASS (e.g., number-verification)",
				},
				&cli.StringFlag{
					Name:     "scope",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "OAuth2 scope requested for the token",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				// Logs go to stderr so stdout carries only the token.
				container := app.NewContainerWithLogOutput(cfg, os.Stderr)
				defer func() { _ = container.Shutdown(ctx) }()

				tokenUseCase, err := container.TokenUseCase()
				if err != nil {
					return err
				}

				return commands.RunToken(
					ctx,
					tokenUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("class"),
					cmd.String("scope"),
					cmd.String("format"),
				)
			},
		},
	}
}
