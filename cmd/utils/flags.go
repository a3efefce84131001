package utils

import "github.com/urfave/cli/v2"

var (
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   "config.json",
		Usage:   "load configuration from `file`",
	}
	KeyFileFlag = &cli.StringFlag{
		Name:  "keyfile",
		Usage: "load API key and secret from `file` (two lines)",
	}

	StartTimeFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Value:   "",
		Usage:   "start `time`",
	}
	EndTimeFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Value:   "",
		Usage:   "end `time`",
	}
	LabelFlag = &cli.StringFlag{
		Name:    "label",
		Aliases: []string{"l"},
		Value:   "",
		Usage:   "account `label`",
	}
	CsvFlag = &cli.StringFlag{
		Name:  "csv",
		Value: "output.csv",
		Usage: "export to csv `file`",
	}
	OutputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   "output.csv",
		Usage:   "write result to `file`",
	}

	SymbolFlag = &cli.StringFlag{
		Name:  "symbol",
		Value: "XXBTZUSD",
		Usage: "trade `symbol` (pair)",
	}
	PriceFlag = &cli.Float64Flag{
		Name:  "price",
		Usage: "order `price`",
	}
	VolumeFlag = &cli.Float64Flag{
		Name:  "volume",
		Usage: "order `volume` in base currency",
	}
	OrderIdFlag = &cli.StringFlag{
		Name:  "txid",
		Usage: "order transaction `id`",
	}
	IntervalFlag = &cli.StringFlag{
		Name:    "interval",
		Aliases: []string{"i"},
		Value:   "1h",
		Usage:   "candle `interval`, eg. 1m, 5m, 1h, 4h, 24h",
	}
	SinceFlag = &cli.Int64Flag{
		Name:  "since",
		Usage: "return data since unix `timestamp`",
	}
	DepthFlag = &cli.IntFlag{
		Name:  "count",
		Value: 10,
		Usage: "order book depth `count`",
	}
)
