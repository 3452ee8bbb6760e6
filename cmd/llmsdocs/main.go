package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/llmsdocs/cmd/llmsdocs/commands"
	derrors "git.home.luguber.info/inful/llmsdocs/internal/errors"
)

func main() {
	var cli commands.CLI
	parser, err := commands.NewParser(&cli)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	global := &commands.Global{Logger: slog.Default(), Context: ctx, Stdout: os.Stdout}
	if err := kctx.Run(global, &cli); err != nil {
		stop()
		derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
