package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/xyths/ktr/exchange"
	"github.com/xyths/ktr/kraken"
)

var downloadCommand = &cli.Command{
	Action: download,
	Name:   "kraken",
	Usage:  "Download candlesticks from kraken",
	Flags: []cli.Flag{
		SymbolFlag,
		IntervalFlag,
		SinceFlag,
		OutputFlag,
		HostFlag,
	},
}

func download(ctx *cli.Context) error {
	// public endpoint, no credentials needed
	k, err := kraken.New("", "", ctx.String(HostFlag.Name))
	if err != nil {
		return err
	}
	interval, err := time.ParseDuration(ctx.String(IntervalFlag.Name))
	if err != nil {
		return err
	}
	candles, err := k.OHLC(ctx.String(SymbolFlag.Name), interval, ctx.Int64(SinceFlag.Name))
	if err != nil {
		return err
	}
	return writeToCsv(candles, ctx.String(OutputFlag.Name))
}

func writeToCsv(candles []exchange.Candle, output string) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = fmt.Fprintln(f, "Time,Open,High,Low,Close,Volume")
	for _, c := range candles {
		_, _ = fmt.Fprintf(f, "%d,%f,%f,%f,%f,%f\n", c.Timestamp, c.Open, c.High, c.Low, c.Close, c.Volume)
	}
	return nil
}
