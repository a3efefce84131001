package main

import "github.com/urfave/cli/v2"

var (
	SymbolFlag = &cli.StringFlag{
		Name:  "symbol",
		Value: "XXBTZUSD",
		Usage: "get the candlestick of `symbol`",
	}
	IntervalFlag = &cli.StringFlag{
		Name:    "interval",
		Aliases: []string{"i"},
		Value:   "1h",
		Usage:   "candlestick `interval`, eg. 1m, 5m, 1h, 4h, 24h",
	}
	SinceFlag = &cli.Int64Flag{
		Name:  "since",
		Usage: "candlesticks since unix `timestamp`",
	}
	OutputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   "candles.csv",
		Usage:   "write candlesticks to `file`",
	}
	HostFlag = &cli.StringFlag{
		Name:  "host",
		Usage: "api `host`",
	}
)
