package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/xyths/ktr/cmd/utils"
)

var app *cli.App

func init() {
	app = &cli.App{
		Name:    filepath.Base(os.Args[0]),
		Usage:   "the kraken exchange toolkit",
		Version: "0.1.0",
	}

	app.Commands = []*cli.Command{
		timeCommand,
		pairsCommand,
		tickerCommand,
		depthCommand,
		tradesCommand,
		spreadCommand,
		ohlcCommand,
		balanceCommand,
		ordersCommand,
		orderCommand,
		buyCommand,
		sellCommand,
		cancelCommand,
		historyCommand,
		snapshotCommand,
		taCommand,
	}
	app.Flags = []cli.Flag{
		utils.ConfigFlag,
		utils.KeyFileFlag,
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		cancel()
	}()

	if err := app.RunContext(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
