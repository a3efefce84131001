package utils

import (
	"github.com/urfave/cli/v2"
	"github.com/xyths/hs"
	"log"

	"github.com/xyths/ktr/kraken"
)

type Config struct {
	Exchange hs.ExchangeConf
	Mongo    hs.MongoConf
	History  hs.HistoryConf
	Log      hs.LogConf
}

func ParseConfig(ctx *cli.Context) Config {
	c := Config{}
	if err := hs.ParseJsonConfig(ctx.String(ConfigFlag.Name), &c); err != nil {
		log.Fatal(err)
	}
	return c
}

// GetClient builds the exchange client, from the key file when given,
// otherwise from the config file.
func GetClient(ctx *cli.Context) *kraken.Kraken {
	if keyfile := ctx.String(KeyFileFlag.Name); keyfile != "" {
		k, err := kraken.NewFromFile(keyfile, "")
		if err != nil {
			log.Fatal(err)
		}
		return k
	}
	c := ParseConfig(ctx)
	k, err := kraken.New(c.Exchange.Key, c.Exchange.Secret, c.Exchange.Host)
	if err != nil {
		log.Fatal(err)
	}
	return k
}
