package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"tempmon/internal/config"
	"tempmon/internal/db"
	"tempmon/internal/migrate"
)

const usage = `usage: %s <command>
  migrate  apply pending schema migrations
  status   list migrations and whether they are applied
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, usage, os.Args[0])
		os.Exit(2)
	}
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "env file error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	conn, err := db.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "db open: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := db.Close(conn); closeErr != nil {
			slog.Error("db close", "err", closeErr)
		}
	}()

	if err := run(context.Background(), os.Args[1], migrator{conn: conn}, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

type migrations interface {
	Run(ctx context.Context) error
	Status(ctx context.Context) ([]migrate.Migration, error)
}

func run(ctx context.Context, cmd string, m migrations, out io.Writer) error {
	switch cmd {
	case "migrate":
		if err := m.Run(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, "migrations applied")
		return err
	case "status":
		list, err := m.Status(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "VERSION\tNAME\tAPPLIED")
		for _, mig := range list {
			fmt.Fprintf(tw, "%s\t%s\t%v\n", mig.Version, mig.Name, mig.Applied)
		}
		return tw.Flush()
	default:
		return errors.New("unknown command")
	}
}
