package ta

import (
	"context"
	"time"

	"github.com/xyths/hs"
	"go.uber.org/zap"

	"github.com/xyths/ktr/kraken"
	"github.com/xyths/ktr/ta/atr"
	"github.com/xyths/ktr/ta/natr"
	"github.com/xyths/ktr/ta/supertrend"
)

type Config struct {
	Exchange hs.ExchangeConf
	Log      hs.LogConf
}

type Agent struct {
	config Config

	Sugar *zap.SugaredLogger
	ex    *kraken.Kraken
}

func NewAgent(cfg Config) *Agent {
	return &Agent{
		config: cfg,
	}
}

func (a *Agent) Init() error {
	l, err := hs.NewZapLogger(a.config.Log)
	if err != nil {
		return err
	}
	a.Sugar = l.Sugar()
	a.Sugar.Info("Logger initialized")

	a.ex, err = kraken.New(a.config.Exchange.Key, a.config.Exchange.Secret, a.config.Exchange.Host)
	if err != nil {
		return err
	}
	a.Sugar.Info("exchange initialized")
	return nil
}

func (a *Agent) NATR(ctx context.Context, symbols []string, interval time.Duration, since int64, output string) error {
	symbols, err := a.fillSymbols(symbols)
	if err != nil {
		return err
	}
	r, err := natr.NATR(a.ex, symbols, interval, since)
	if err != nil {
		a.Sugar.Errorf("get natr error: %s", err)
		return err
	}
	// write to csv
	return natr.WriteToCsv(r, output)
}

func (a *Agent) ATR(ctx context.Context, symbols []string, interval time.Duration, since int64) error {
	symbols, err := a.fillSymbols(symbols)
	if err != nil {
		return err
	}
	return atr.All(a.ex, symbols, interval, since)
}

func (a *Agent) SuperTrend(ctx context.Context, symbols []string, interval time.Duration, since int64, output string) error {
	symbols, err := a.fillSymbols(symbols)
	if err != nil {
		return err
	}
	s := supertrend.SuperTrend{
		Sugar: a.Sugar, Ex: a.ex,
	}
	r, err := s.Scan(ctx, symbols, interval, since)
	if err != nil {
		a.Sugar.Errorf("scan by SuperTrend error: %s", err)
		return err
	}
	// write to csv
	return s.WriteToCsv(ctx, r, output)
}

func (a *Agent) fillSymbols(symbols []string) ([]string, error) {
	// if no symbols, use all symbols available in the exchange
	if len(symbols) == 0 {
		a.Sugar.Info("no symbols in command line")
		if len(a.config.Exchange.Symbols) > 0 {
			a.Sugar.Info("use symbols in config file")
			symbols = a.config.Exchange.Symbols
		} else {
			a.Sugar.Info("use all symbols from exchange online")
			pairs, err := a.ex.AssetPairs()
			if err != nil {
				return nil, err
			}
			for name := range pairs {
				symbols = append(symbols, name)
			}
		}
	}
	a.Sugar.Infof("%d symbols to scan", len(symbols))
	return symbols, nil
}
