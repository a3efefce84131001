package kraken

import (
	"encoding/json"
	"strings"
)

// every response comes wrapped in this envelope
type apiResponse struct {
	Error  []string        `json:"error"`
	Result json.RawMessage `json:"result"`
}

// APIError is a failure reported by the exchange in the response envelope.
// The exchange may report several messages; Error returns the first one,
// the rest stay available on Errors.
type APIError struct {
	Errors []string
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return "unknown API error"
	}
	return e.Errors[0]
}

type ServerTime struct {
	Unixtime int64  `json:"unixtime"`
	Rfc1123  string `json:"rfc1123"`
}

type AssetInfo struct {
	Aclass          string `json:"aclass"`
	Altname         string `json:"altname"`
	Decimals        int    `json:"decimals"`
	DisplayDecimals int    `json:"display_decimals"`
}

type AssetPair struct {
	Altname       string `json:"altname"`
	WsName        string `json:"wsname"`
	Base          string `json:"base"`
	Quote         string `json:"quote"`
	PairDecimals  int    `json:"pair_decimals"`  // price precision
	LotDecimals   int    `json:"lot_decimals"`   // volume precision
	LotMultiplier int    `json:"lot_multiplier"`
	OrderMin      string `json:"ordermin"`
}

type TickerInfo struct {
	Ask    []string `json:"a"` // price, whole lot volume, lot volume
	Bid    []string `json:"b"`
	Close  []string `json:"c"` // price, lot volume
	Volume []string `json:"v"` // today, last 24 hours
	VWAP   []string `json:"p"`
	Trades []int64  `json:"t"`
	Low    []string `json:"l"`
	High   []string `json:"h"`
	Open   string   `json:"o"`
}

type TradeBalanceResult struct {
	EquivalentBalance string `json:"eb"`
	TradeBalance      string `json:"tb"`
	MarginOpen        string `json:"m"`
	UnrealizedNet     string `json:"n"`
	CostBasis         string `json:"c"`
	Valuation         string `json:"v"`
	Equity            string `json:"e"`
	FreeMargin        string `json:"mf"`
}

type OrderDescription struct {
	Pair      string `json:"pair"`
	Side      string `json:"type"` // buy/sell
	OrderType string `json:"ordertype"`
	Price     string `json:"price"`
	Price2    string `json:"price2"`
	Leverage  string `json:"leverage"`
	Order     string `json:"order"`
	Close     string `json:"close"`
}

type OrderInfo struct {
	RefId      string           `json:"refid"`
	UserRef    int64            `json:"userref"`
	Status     string           `json:"status"`
	OpenTime   float64          `json:"opentm"`
	StartTime  float64          `json:"starttm"`
	ExpireTime float64          `json:"expiretm"`
	Descr      OrderDescription `json:"descr"`
	Volume     string           `json:"vol"`
	VolumeExec string           `json:"vol_exec"`
	Cost       string           `json:"cost"`
	Fee        string           `json:"fee"`
	Price      string           `json:"price"`
	Misc       string           `json:"misc"`
	OrderFlags string           `json:"oflags"`
}

type OpenOrdersResult struct {
	Open map[string]OrderInfo `json:"open"`
}

type ClosedOrdersResult struct {
	Closed map[string]OrderInfo `json:"closed"`
	Count  int                  `json:"count"`
}

type TradeInfo struct {
	OrderTxid string  `json:"ordertxid"`
	Pair      string  `json:"pair"`
	Time      float64 `json:"time"` // unix seconds with fraction
	Side      string  `json:"type"` // buy/sell
	OrderType string  `json:"ordertype"`
	Price     string  `json:"price"`
	Cost      string  `json:"cost"`
	Fee       string  `json:"fee"`
	Volume    string  `json:"vol"`
	Margin    string  `json:"margin"`
	Misc      string  `json:"misc"`
}

type TradesHistoryResult struct {
	Trades map[string]TradeInfo `json:"trades"`
	Count  int                  `json:"count"`
}

type AddOrderDescr struct {
	Order string `json:"order"`
	Close string `json:"close"`
}

type AddOrderResult struct {
	Descr AddOrderDescr `json:"descr"`
	Txid  []string      `json:"txid"`
}

type CancelOrderResult struct {
	Count int `json:"count"`
}

// IsBuy reports whether the trade side is a buy.
func (t TradeInfo) IsBuy() bool {
	return strings.EqualFold(t.Side, OrderSideBuy)
}
