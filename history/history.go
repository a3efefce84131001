package history

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/xyths/hs"
	. "github.com/xyths/hs/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyths/hs/convert"
	"github.com/xyths/ktr/cmd/utils"
	"github.com/xyths/ktr/kraken"
	"github.com/xyths/ktr/types"
)

type Config struct {
	Exchange hs.ExchangeConf
	Mongo    hs.MongoConf
	History  hs.HistoryConf
}

type History struct {
	config Config

	db *mongo.Database
	ex *kraken.Kraken

	interval time.Duration
}

func New(configFilename string) *History {
	cfg := Config{}
	if err := hs.ParseJsonConfig(configFilename, &cfg); err != nil {
		Sugar.Fatal(err)
	}
	d, err := time.ParseDuration(cfg.History.Interval)
	if err != nil {
		log.Fatalf("parse duration error: %s", err)
	}
	return &History{
		config:   cfg,
		interval: d,
	}
}

func (h *History) Init(ctx context.Context) {
	db, err := hs.ConnectMongo(ctx, h.config.Mongo)
	if err != nil {
		Sugar.Fatal(err)
	}
	h.db = db
	h.ex, err = kraken.New(h.config.Exchange.Key, h.config.Exchange.Secret, h.config.Exchange.Host)
	if err != nil {
		Sugar.Fatal(err)
	}
}

func (h *History) Close(ctx context.Context) {
	if h.db != nil {
		_ = h.db.Client().Disconnect(ctx)
	}
}

func (h *History) Pull(ctx context.Context) error {
	if err := h.getHistoryOnce(ctx); err != nil {
		Sugar.Errorf("error when getHistory: %s", err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Println(ctx.Err())
			return nil
		case <-time.After(h.interval):
			if err := h.getHistoryOnce(ctx); err != nil {
				Sugar.Errorf("error when getHistory: %s", err)
			}
		}
	}
}

const collNameHistory = "history"

func (h *History) getHistoryOnce(ctx context.Context) error {
	history, err := h.ex.TradesHistory(0, 0)
	if err != nil {
		return err
	}

	all := len(history.Trades)
	success := 0
	duplicate := 0
	fail := 0

	coll := h.db.Collection(collNameHistory)
	for txid, t := range history.Trades {
		Sugar.Infow("got trade", "txid", txid, "trade", t)
		trade := TradeRecord(txid, h.config.Exchange.Label, t)

		if c, err := coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: trade.TradeId}}); err != nil {
		} else if c == 0 {
			if _, err1 := coll.InsertOne(ctx, &trade); err1 != nil {
				Sugar.Errorw("insert error", "tradeId", trade.TradeId)
				fail++
			} else {
				success++
			}
		} else {
			duplicate++
		}
	}
	log.Printf("get history for %s finish now, all: %d, success: %d, duplicate: %d, fail: %d",
		h.config.Exchange.Label, all, success, duplicate, fail)
	return nil
}

// TradeRecord converts an exchange trade to the mongo document.
// Buys spend quote currency so total goes negative; sells give away base
// currency so amount goes negative.
func TradeRecord(txid, label string, t kraken.TradeInfo) types.Trade {
	trade := types.Trade{
		TradeId: txid,
		OrderId: t.OrderTxid,
		Label:   label,
		Pair:    t.Pair,
		Type:    t.Side,
		Price:   convert.StrToFloat64(t.Price),
		Fee:     convert.StrToFloat64(t.Fee),
		Date:    time.Unix(int64(t.Time), 0),
	}
	amount := convert.StrToFloat64(t.Volume)
	total := convert.StrToFloat64(t.Cost)
	if t.IsBuy() {
		trade.Amount = amount
		trade.Total = -total
	} else {
		trade.Amount = -amount
		trade.Total = total
	}
	return trade
}

func (h *History) Export(ctx context.Context, start, end, csvfile string) error {
	startTime, endTime, err := utils.ParseStartEndTime(start, end)
	if err != nil {
		Sugar.Error(err)
		return err
	}
	f, err := os.Create(csvfile)
	if err != nil {
		Sugar.Error(err)
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	w := csv.NewWriter(f)
	header := []string{"account", "time", "type", "pair", "price", "amount", "total", "fee", "tradeId", "orderId"}
	if err = w.Write(header); err != nil {
		Sugar.Errorf("error when write csv header: %s", err)
	}
	w.Flush()

	trades, err := h.getUserTrades(ctx, startTime, endTime)
	if err != nil {
		Sugar.Errorf("error when getUserTrades: %s", err)
		return err
	}
	//write to csv
	for _, t := range trades {
		record := []string{
			h.config.Exchange.Label,
			t.Date.Format(types.TimeLayout),
			t.Type,
			t.Pair,
			fmt.Sprintf("%f", t.Price),
			fmt.Sprintf("%f", t.Amount),
			fmt.Sprintf("%f", t.Total),
			fmt.Sprintf("%f", t.Fee),
			t.TradeId,
			t.OrderId,
		}
		if err1 := w.Write(record); err1 != nil {
			log.Printf("error when write record: %s", err1)
		}
	}
	w.Flush()

	return nil
}

func (h *History) getUserTrades(ctx context.Context, start, end time.Time) (trades []types.Trade, err error) {
	coll := h.db.Collection(collNameHistory)
	cursor, err := coll.Find(ctx, bson.D{
		{Key: "date", Value: bson.D{
			{Key: "$gte", Value: start},
			{Key: "$lte", Value: end},
		}},
	})
	if err != nil {
		return
	}
	err = cursor.All(ctx, &trades)

	return
}
