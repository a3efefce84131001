package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xyths/ktr/kraken"
)

func TestTradeRecord(t *testing.T) {
	buy := kraken.TradeInfo{
		OrderTxid: "OQCLML-BW3P3-BUCMWZ",
		Pair:      "XXBTZUSD",
		Time:      1688667796.8802,
		Side:      "buy",
		OrderType: "limit",
		Price:     "30010.00000",
		Cost:      "600.20000",
		Fee:       "0.96032",
		Volume:    "0.02000000",
	}
	r := TradeRecord("TCWJEG-FL4SZ-3FKGH6", "main", buy)
	assert.Equal(t, "TCWJEG-FL4SZ-3FKGH6", r.TradeId)
	assert.Equal(t, "OQCLML-BW3P3-BUCMWZ", r.OrderId)
	assert.Equal(t, "main", r.Label)
	assert.Equal(t, "buy", r.Type)
	assert.Equal(t, 0.02, r.Amount)
	assert.Equal(t, -600.2, r.Total)
	assert.Equal(t, time.Unix(1688667796, 0), r.Date)

	sell := buy
	sell.Side = "sell"
	r = TradeRecord("TCWJEG-FL4SZ-3FKGH6", "main", sell)
	assert.Equal(t, -0.02, r.Amount)
	assert.Equal(t, 600.2, r.Total)
}
