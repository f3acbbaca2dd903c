package cli

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func Handle() {
	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Send commands to an active plannerd instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
			{
				Name:  "stats",
				Usage: "Inspect or reset the usage statistics",
				Commands: []*cli.Command{
					{
						Name:  "show",
						Usage: "Print the accumulated usage statistics",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return printStats()
						},
					},
					{
						Name:  "reset",
						Usage: "Clear the accumulated usage statistics",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return resetStats()
						},
					},
				},
			},
		},
		Name:  "Plannerd",
		Usage: "Start an instance of plannerd",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}
