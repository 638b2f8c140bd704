package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/infiniteloop/camaraclient/cmd/app/commands"
	"github.com/infiniteloop/camaraclient/internal/app"
	"github.com/infiniteloop/camaraclient/internal/config"
)

func getCryptoCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-cipher-key",
			Usage: "Generate a new cipher key, optionally wrapped with a KMS key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Value: "",
					Usage: "KMS key URI (e.g., base64key://, gcpkms://projects/.../cryptoKeys/...)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainerWithLogOutput(cfg, os.Stderr)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunCreateCipherKey(
					ctx,
					container.KMSService(),
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("kms-key-uri"),
				)
			},
		},
		{
			Name:      "encrypt",
			Usage:     "Encrypt a value with CIPHER_KEY (reads stdin when no argument is given)",
			ArgsUsage: "[plaintext]",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainerWithLogOutput(cfg, os.Stderr)
				defer func() { _ = container.Shutdown(ctx) }()

				cipherUseCase, err := container.CipherUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunEncrypt(
					ctx,
					cipherUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.Args().First(),
				)
			},
		},
		{
			Name:      "decrypt",
			Usage:     "Decrypt a blob with CIPHER_KEY (reads stdin when no argument is given)",
			ArgsUsage: "[blob]",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainerWithLogOutput(cfg, os.Stderr)
				defer func() { _ = container.Shutdown(ctx) }()

				cipherUseCase, err := container.CipherUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunDecrypt(
					ctx,
					cipherUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.Args().First(),
				)
			},
		},
	}
}
