package supertrend

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	indicator "github.com/xyths/go-indicators"
	"go.uber.org/zap"

	"github.com/xyths/ktr/kraken"
)

type SuperTrend struct {
	Sugar *zap.SugaredLogger
	Ex    *kraken.Kraken

	Factor float64
	Period int
}

type Result struct {
	Symbol string
	Trend  bool // true is uptrend
	Price  float64
	Tsl    float64
}

const (
	DefaultFactor = 3.0
	DefaultPeriod = 7
)

func (s *SuperTrend) Scan(ctx context.Context, symbols []string, interval time.Duration, since int64) (results []Result, err error) {
	factor := s.Factor
	if factor == 0 {
		factor = DefaultFactor
	}
	period := s.Period
	if period == 0 {
		period = DefaultPeriod
	}
	for _, symbol := range symbols {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}
		candles, err1 := s.Ex.OHLC(symbol, interval, since)
		if err1 != nil {
			s.Sugar.Errorf("get OHLC error: %s", err1)
			continue
		}
		if len(candles) <= period {
			s.Sugar.Infof("%s: not enough candles (%d)", symbol, len(candles))
			continue
		}
		var high, low, close_ []float64
		for _, c := range candles {
			high = append(high, c.High)
			low = append(low, c.Low)
			close_ = append(close_, c.Close)
		}
		tsl, trend := indicator.SuperTrend(factor, period, high, low, close_)
		last := len(trend) - 1
		results = append(results, Result{
			Symbol: symbol,
			Trend:  trend[last],
			Price:  close_[last],
			Tsl:    tsl[last],
		})
		s.Sugar.Infow("scanned", "symbol", symbol, "trend", trend[last], "price", close_[last], "tsl", tsl[last])
	}
	return
}

func (s *SuperTrend) WriteToCsv(ctx context.Context, results []Result, output string) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	_ = w.Write([]string{"symbol", "trend", "price", "tsl"})
	for _, r := range results {
		trend := "down"
		if r.Trend {
			trend = "up"
		}
		_ = w.Write([]string{r.Symbol, trend, fmt.Sprintf("%f", r.Price), fmt.Sprintf("%f", r.Tsl)})
	}
	return nil
}
