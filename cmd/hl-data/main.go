package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"hl-data/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&eventsCmd{}, "generate")
	subcommands.Register(&candlesCmd{}, "generate")
	subcommands.Register(&allCmd{}, "generate")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
