package kraken

import (
	"github.com/shopspring/decimal"
	"github.com/xyths/hs/convert"
)

// FormatDecimal renders value with exactly precision fractional digits,
// fixed-point, rounding half away from zero.
func FormatDecimal(value float64, precision int) string {
	return decimal.NewFromFloat(value).StringFixed(int32(precision))
}

// the exchange mixes numbers and numeric strings in OHLC rows
func toFloat(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		return convert.StrToFloat64(x)
	}
	return 0
}

func first(a []string) float64 {
	if len(a) < 1 {
		return 0
	}
	return convert.StrToFloat64(a[0])
}

func second(a []string) float64 {
	if len(a) < 2 {
		return 0
	}
	return convert.StrToFloat64(a[1])
}
