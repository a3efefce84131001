package kraken

const (
	DefaultHost    = "https://api.kraken.com"
	DefaultVersion = "0"
)

const (
	GET  = "GET"
	POST = "POST"
)

const (
	XBT_USD = "XXBTZUSD"
	ETH_USD = "XETHZUSD"
	XBT_EUR = "XXBTZEUR"

	XBT = "XXBT"
	ETH = "XETH"
	USD = "ZUSD"
	EUR = "ZEUR"
)

// used by AddOrder
const (
	OrderTypeLimit      = "limit"
	OrderTypeMarket     = "market"
	OrderTypeStopLoss   = "stop-loss"
	OrderTypeTakeProfit = "take-profit"
)

const (
	OrderStatusPending  = "pending"
	OrderStatusOpen     = "open"
	OrderStatusClosed   = "closed"
	OrderStatusCanceled = "canceled"
	OrderStatusExpired  = "expired"

	OrderSideBuy  = "buy"
	OrderSideSell = "sell"
)
