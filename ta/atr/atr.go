package atr

import (
	"time"

	"github.com/thrasher-corp/gct-ta/indicators"
	"github.com/xyths/hs/logger"

	"github.com/xyths/ktr/kraken"
)

func All(ex *kraken.Kraken, symbols []string, interval time.Duration, since int64) error {
	for _, s := range symbols {
		candles, err := ex.OHLC(s, interval, since)
		if err != nil {
			logger.Sugar.Error(err)
			continue
		}
		var high []float64
		var low []float64
		var close []float64
		for _, c := range candles {
			high = append(high, c.High)
			low = append(low, c.Low)
			close = append(close, c.Close)
		}
		atrSeries := indicators.ATR(high, low, close, 14)
		logger.Sugar.Info(atrSeries)
	}
	return nil
}
