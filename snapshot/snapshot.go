package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/martian/log"
	"github.com/xyths/hs"
	"github.com/xyths/hs/convert"
	. "github.com/xyths/hs/logger"
	"go.uber.org/zap"

	"github.com/xyths/ktr/kraken"
)

type Config struct {
	Exchange hs.ExchangeConf
	Mongo    hs.MongoConf
	Log      hs.LogConf
	Output   string
}

type Snapshot struct {
	config Config
	Sugar  *zap.SugaredLogger
}

func New(configFilename string) *Snapshot {
	cfg := Config{}
	if err := hs.ParseJsonConfig(configFilename, &cfg); err != nil {
		Sugar.Fatal(err)
	}
	l, err := hs.NewZapLogger(cfg.Log)
	if err != nil {
		return nil
	}
	l.Sugar().Info("Logger initialized")
	s := &Snapshot{
		config: cfg,
		Sugar:  l.Sugar(),
	}
	return s
}

// balance of currency
type Currency struct {
	Exchange string  `json:"exchange" bson:"exchange"`
	Account  string  `json:"account" bson:"account"`
	Currency string  `json:"currency" bson:"currency"`
	Amount   float64 `json:"amount" bson:"amount"`
	Price    float64 `json:"price" bson:"price"`
	Value    float64 `json:"value" bson:"value"`
	Time     string  `json:"time" bson:"time"`
}

const collNameBalance = "balance"

func (s *Snapshot) balance(e hs.ExchangeConf) (currencies []Currency, err error) {
	ex, err := kraken.New(e.Key, e.Secret, e.Host)
	if err != nil {
		return
	}
	amounts, err := ex.Balance()
	if err != nil {
		return
	}
	now := time.Now().String()
	for coin, amount := range amounts {
		currency := Currency{
			Exchange: "kraken",
			Account:  e.Label,
			Time:     now,
			Currency: strings.ToUpper(coin),
		}
		currency.Amount = convert.StrToFloat64(amount)
		if coin == kraken.USD {
			currency.Value = currency.Amount
		} else {
			ticker, err1 := ex.Ticker(coin + kraken.USD)
			if err1 != nil {
				continue
			}
			currency.Price = ticker.Last
			currency.Value = ticker.Last * currency.Amount
		}
		currencies = append(currencies, currency)
	}
	return
}

func (s *Snapshot) Log() error {
	f, err := os.OpenFile(s.config.Output, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		Sugar.Error(err)
		return err
	}
	defer f.Close()

	currencies, err := s.balance(s.config.Exchange)
	if err != nil {
		log.Errorf("balance error: %s", err)
		return err
	}
	for _, c := range currencies {
		b2, err2 := json.Marshal(c)
		if err2 != nil {
			Sugar.Error(err2)
			continue
		}
		_, err1 := fmt.Fprintf(f, "%s\n", string(b2))
		if err1 != nil {
			Sugar.Error(err1)
			continue
		}
	}
	return nil
}

// Save writes one snapshot to mongo
func (s *Snapshot) Save(ctx context.Context) error {
	db, err := hs.ConnectMongo(ctx, s.config.Mongo)
	if err != nil {
		Sugar.Error(err)
		return err
	}
	defer func() {
		_ = db.Client().Disconnect(ctx)
	}()

	currencies, err := s.balance(s.config.Exchange)
	if err != nil {
		log.Errorf("balance error: %s", err)
		return err
	}
	coll := db.Collection(collNameBalance)
	for _, c := range currencies {
		if _, err1 := coll.InsertOne(ctx, &c); err1 != nil {
			Sugar.Errorw("insert error", "currency", c.Currency, "error", err1)
		}
	}
	return nil
}
