package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/xyths/ktr/cmd/utils"
	"github.com/xyths/ktr/history"
	"github.com/xyths/ktr/snapshot"
	"github.com/xyths/ktr/ta"
)

var (
	timeCommand = &cli.Command{
		Action: serverTime,
		Name:   "time",
		Usage:  "Get the exchange server time",
	}
	pairsCommand = &cli.Command{
		Action: pairs,
		Name:   "pairs",
		Usage:  "List tradable asset pairs",
	}
	tickerCommand = &cli.Command{
		Action: ticker,
		Name:   "ticker",
		Usage:  "Get ticker of symbol",
		Flags: []cli.Flag{
			utils.SymbolFlag,
		},
	}
	depthCommand = &cli.Command{
		Action: depth,
		Name:   "depth",
		Usage:  "Get order book of symbol",
		Flags: []cli.Flag{
			utils.SymbolFlag,
			utils.DepthFlag,
		},
	}
	tradesCommand = &cli.Command{
		Action: trades,
		Name:   "trades",
		Usage:  "Get recent trades of symbol",
		Flags: []cli.Flag{
			utils.SymbolFlag,
		},
	}
	spreadCommand = &cli.Command{
		Action: spread,
		Name:   "spread",
		Usage:  "Get recent spread of symbol",
		Flags: []cli.Flag{
			utils.SymbolFlag,
		},
	}
	ohlcCommand = &cli.Command{
		Action: ohlc,
		Name:   "ohlc",
		Usage:  "Get candlestick data of symbol",
		Flags: []cli.Flag{
			utils.SymbolFlag,
			utils.IntervalFlag,
			utils.SinceFlag,
		},
	}
	balanceCommand = &cli.Command{
		Action: balance,
		Name:   "balance",
		Usage:  "Get account balances",
	}
	ordersCommand = &cli.Command{
		Action: orders,
		Name:   "orders",
		Usage:  "Get my open order list",
	}
	orderCommand = &cli.Command{
		Action: order,
		Name:   "order",
		Usage:  "Get order status",
		Flags: []cli.Flag{
			utils.OrderIdFlag,
		},
	}
	buyCommand = &cli.Command{
		Action: buy,
		Name:   "buy",
		Usage:  "Place a limit buy order",
		Flags: []cli.Flag{
			utils.SymbolFlag,
			utils.PriceFlag,
			utils.VolumeFlag,
		},
	}
	sellCommand = &cli.Command{
		Action: sell,
		Name:   "sell",
		Usage:  "Place a limit sell order",
		Flags: []cli.Flag{
			utils.SymbolFlag,
			utils.PriceFlag,
			utils.VolumeFlag,
		},
	}
	cancelCommand = &cli.Command{
		Action: cancel,
		Name:   "cancel",
		Usage:  "Cancel an open order",
		Flags: []cli.Flag{
			utils.OrderIdFlag,
		},
	}
	historyCommand = &cli.Command{
		Name:  "history",
		Usage: "Manage trading history",
		Subcommands: []*cli.Command{
			{
				Action: pull,
				Name:   "pull",
				Usage:  "Pull trading history from exchange",
			},
			{
				Action: export,
				Name:   "export",
				Usage:  "Export trading history to csv",
				Flags: []cli.Flag{
					utils.StartTimeFlag,
					utils.EndTimeFlag,
					utils.CsvFlag,
				},
			},
		},
	}
	snapshotCommand = &cli.Command{
		Action: snap,
		Name:   "snapshot",
		Usage:  "Snapshot the asset",
	}
	taCommand = &cli.Command{
		Name:  "ta",
		Usage: "Technical analysis scans",
		Subcommands: []*cli.Command{
			{
				Action: taNatr,
				Name:   "natr",
				Usage:  "Scan symbols by NATR",
				Flags: []cli.Flag{
					utils.IntervalFlag,
					utils.SinceFlag,
					utils.OutputFlag,
				},
			},
			{
				Action: taAtr,
				Name:   "atr",
				Usage:  "Scan symbols by ATR",
				Flags: []cli.Flag{
					utils.IntervalFlag,
					utils.SinceFlag,
				},
			},
			{
				Action: taSuperTrend,
				Name:   "supertrend",
				Usage:  "Scan symbols by SuperTrend",
				Flags: []cli.Flag{
					utils.IntervalFlag,
					utils.SinceFlag,
					utils.OutputFlag,
				},
			},
		},
	}
)

func serverTime(ctx *cli.Context) error {
	k := utils.GetClient(ctx)
	t, err := k.Time()
	if err != nil {
		return err
	}
	log.Printf("server time: %d (%s)", t.Unixtime, t.Rfc1123)
	return nil
}

func pairs(ctx *cli.Context) error {
	k := utils.GetClient(ctx)
	all, err := k.AssetPairs()
	if err != nil {
		return err
	}
	return printJson(all)
}

func ticker(ctx *cli.Context) error {
	k := utils.GetClient(ctx)
	t, err := k.Ticker(ctx.String(utils.SymbolFlag.Name))
	if err != nil {
		return err
	}
	log.Printf("ticker is %#v", t)
	return nil
}

func depth(ctx *cli.Context) error {
	k := utils.GetClient(ctx)
	d, err := k.Depth(ctx.String(utils.SymbolFlag.Name), ctx.Int(utils.DepthFlag.Name))
	if err != nil {
		return err
	}
	log.Println(d)
	return nil
}

func trades(ctx *cli.Context) error {
	k := utils.GetClient(ctx)
	t, err := k.Trades(ctx.String(utils.SymbolFlag.Name), "")
	if err != nil {
		return err
	}
	log.Println(t)
	return nil
}

func spread(ctx *cli.Context) error {
	k := utils.GetClient(ctx)
	s, err := k.Spread(ctx.String(utils.SymbolFlag.Name), 0)
	if err != nil {
		return err
	}
	log.Println(s)
	return nil
}

func ohlc(ctx *cli.Context) error {
	k := utils.GetClient(ctx)
	interval, err := time.ParseDuration(ctx.String(utils.IntervalFlag.Name))
	if err != nil {
		return err
	}
	candles, err := k.OHLC(ctx.String(utils.SymbolFlag.Name), interval, ctx.Int64(utils.SinceFlag.Name))
	if err != nil {
		return err
	}
	return printJson(candles)
}

func balance(ctx *cli.Context) error {
	k := utils.GetClient(ctx)
	balances, err := k.Balance()
	if err != nil {
		return err
	}
	return printJson(balances)
}

func orders(ctx *cli.Context) error {
	k := utils.GetClient(ctx)
	open, err := k.OpenOrders()
	if err != nil {
		return err
	}
	return printJson(open)
}

func order(ctx *cli.Context) error {
	k := utils.GetClient(ctx)
	o, err := k.GetOrder(ctx.String(utils.OrderIdFlag.Name))
	if err != nil {
		return err
	}
	log.Printf("order is %#v", o)
	return nil
}

func buy(ctx *cli.Context) error {
	k := utils.GetClient(ctx)
	if err := k.LoadAssetPairs(); err != nil {
		return err
	}
	res, err := k.Buy(ctx.String(utils.SymbolFlag.Name),
		ctx.Float64(utils.PriceFlag.Name), ctx.Float64(utils.VolumeFlag.Name))
	if err != nil {
		return err
	}
	log.Printf("order placed: %v (%s)", res.Txid, res.Descr.Order)
	return nil
}

func sell(ctx *cli.Context) error {
	k := utils.GetClient(ctx)
	if err := k.LoadAssetPairs(); err != nil {
		return err
	}
	res, err := k.Sell(ctx.String(utils.SymbolFlag.Name),
		ctx.Float64(utils.PriceFlag.Name), ctx.Float64(utils.VolumeFlag.Name))
	if err != nil {
		return err
	}
	log.Printf("order placed: %v (%s)", res.Txid, res.Descr.Order)
	return nil
}

func cancel(ctx *cli.Context) error {
	k := utils.GetClient(ctx)
	res, err := k.CancelOrder(ctx.String(utils.OrderIdFlag.Name))
	if err != nil {
		return err
	}
	log.Printf("%d order(s) canceled", res.Count)
	return nil
}

func pull(ctx *cli.Context) error {
	h := history.New(ctx.String(utils.ConfigFlag.Name))
	h.Init(ctx.Context)
	defer h.Close(ctx.Context)
	return h.Pull(ctx.Context)
}

func export(ctx *cli.Context) error {
	h := history.New(ctx.String(utils.ConfigFlag.Name))
	h.Init(ctx.Context)
	defer h.Close(ctx.Context)
	return h.Export(ctx.Context,
		ctx.String(utils.StartTimeFlag.Name),
		ctx.String(utils.EndTimeFlag.Name),
		ctx.String(utils.CsvFlag.Name))
}

func snap(ctx *cli.Context) error {
	s := snapshot.New(ctx.String(utils.ConfigFlag.Name))
	if s == nil {
		return cli.Exit("snapshot init failed", 1)
	}
	if err := s.Log(); err != nil {
		return err
	}
	return s.Save(ctx.Context)
}

func newTaAgent(ctx *cli.Context) (*ta.Agent, error) {
	cfg := ta.Config{}
	c := utils.ParseConfig(ctx)
	cfg.Exchange = c.Exchange
	cfg.Log = c.Log
	agent := ta.NewAgent(cfg)
	if err := agent.Init(); err != nil {
		return nil, err
	}
	return agent, nil
}

func taNatr(ctx *cli.Context) error {
	agent, err := newTaAgent(ctx)
	if err != nil {
		return err
	}
	interval, err := time.ParseDuration(ctx.String(utils.IntervalFlag.Name))
	if err != nil {
		return err
	}
	return agent.NATR(ctx.Context, ctx.Args().Slice(), interval,
		ctx.Int64(utils.SinceFlag.Name), ctx.String(utils.OutputFlag.Name))
}

func taAtr(ctx *cli.Context) error {
	agent, err := newTaAgent(ctx)
	if err != nil {
		return err
	}
	interval, err := time.ParseDuration(ctx.String(utils.IntervalFlag.Name))
	if err != nil {
		return err
	}
	return agent.ATR(ctx.Context, ctx.Args().Slice(), interval, ctx.Int64(utils.SinceFlag.Name))
}

func taSuperTrend(ctx *cli.Context) error {
	agent, err := newTaAgent(ctx)
	if err != nil {
		return err
	}
	interval, err := time.ParseDuration(ctx.String(utils.IntervalFlag.Name))
	if err != nil {
		return err
	}
	return agent.SuperTrend(ctx.Context, ctx.Args().Slice(), interval,
		ctx.Int64(utils.SinceFlag.Name), ctx.String(utils.OutputFlag.Name))
}

func printJson(v interface{}) error {
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "\t")
	return e.Encode(v)
}
