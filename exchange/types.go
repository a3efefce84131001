package exchange

type Ticker struct {
	Last       float64 // 最新成交价
	LowestAsk  float64 // 卖1，卖方最低价
	HighestBid float64 // 买1，买方最高价
	Open       float64 // 今日开盘价
	BaseVolume float64 // 24小时交易量
	High24hr   float64 // 24小时最高价
	Low24hr    float64 // 24小时最低价
}

type Candle struct {
	Timestamp uint64
	Open      float64
	Close     float64
	High      float64
	Low       float64
	Volume    float64
}

type Order struct {
	Txid       string
	Pair       string
	Type       string // buy/sell
	OrderType  string // limit/market
	Status     string
	Price      float64
	Volume     float64
	VolumeExec float64
	Fee        float64
	Timestamp  int64
}
