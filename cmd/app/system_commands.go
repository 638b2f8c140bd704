package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/infiniteloop/camaraclient/cmd/app/commands"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server exposing encrypt/decrypt and the operator token endpoint",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
	}
}
