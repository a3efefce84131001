package types

import "time"

// for mongo
//	_id: 成交id (txid)
//	orderId: 订单id
//	pair: 交易对
//	type: 买卖类型
//	price: 成交价格
//	amount: 成交数量
//	total: 成交金额
type Trade struct {
	TradeId string    `bson:"_id"`
	OrderId string    `bson:"orderId"`
	Label   string    `bson:"label"`
	Pair    string    `bson:"pair"`
	Type    string    `bson:"type"`
	Price   float64   `bson:"price"`
	Amount  float64   `bson:"amount"`
	Total   float64   `bson:"total"`
	Fee     float64   `bson:"fee"`
	Date    time.Time `bson:"date"`
}

const TimeLayout = "2006-01-02 15:04:05"

func TimestampToDate(timestamp int64) string {
	return time.Unix(timestamp, 0).Format(TimeLayout)
}
