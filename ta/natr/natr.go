package natr

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/markcheno/go-talib"

	"github.com/xyths/ktr/kraken"
)

type NatrResult struct {
	Timestamp []int64
	Symbols   []string
	Natr      [][]float64
}

func NATR(ex *kraken.Kraken, symbols []string, interval time.Duration, since int64) (r NatrResult, err error) {
	for _, symbol := range symbols {
		candles, err := ex.OHLC(symbol, interval, since)
		if err != nil {
			return r, err
		}
		first := len(r.Timestamp) == 0
		var high, low, close_ []float64
		for _, c := range candles {
			if first {
				r.Timestamp = append(r.Timestamp, int64(c.Timestamp))
			}
			high = append(high, c.High)
			low = append(low, c.Low)
			close_ = append(close_, c.Close)
		}
		natrSeries := talib.Natr(high, low, close_, 14)
		r.Symbols = append(r.Symbols, symbol)
		r.Natr = append(r.Natr, natrSeries)
	}
	return
}

func WriteToCsv(r NatrResult, output string) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"timestamp"}
	for _, symbol := range r.Symbols {
		header = append(header, symbol)
	}
	_ = w.Write(header)
	for i := 0; i < len(r.Timestamp); i++ {
		line := []string{fmt.Sprintf("%d", r.Timestamp[i])}
		for j := 0; j < len(r.Natr); j++ {
			if i < len(r.Natr[j]) {
				line = append(line, fmt.Sprintf("%f", r.Natr[j][i]))
			} else {
				line = append(line, "")
			}
		}
		_ = w.Write(line)
	}
	return nil
}
