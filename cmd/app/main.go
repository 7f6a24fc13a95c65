// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/hidolabs/hido/cmd/app/commands"
)

var version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "hido",
		Usage:   "Agent identity and tamper-evident audit service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "generate-identity",
				Usage: "Generate a new agent identity and print its DID document",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "show-private-key",
						Value: false,
						Usage: "Also print the base64-encoded private key",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateIdentity(
						ctx,
						commands.DefaultIO().Writer,
						cmd.Bool("show-private-key"),
					)
				},
			},
			{
				Name:  "verify-audit-chain",
				Usage: "Verify the integrity of recorded audit entries",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format (text or json)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunVerifyAuditChain(
						ctx,
						commands.DefaultIO().Writer,
						cmd.String("format"),
					)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
