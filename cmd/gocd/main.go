package main

import (
	"context"
	"os"

	"github.com/hbjs97/gocd/internal/cli"
	"github.com/hbjs97/gocd/internal/config"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(int(cli.MapExitCode(err)))
	}

	app := cli.NewApp(cfg)
	if err := app.Execute(context.Background(), os.Args[1:]); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(int(cli.MapExitCode(err)))
	}
}
