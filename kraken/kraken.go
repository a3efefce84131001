package kraken

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/xyths/hs/convert"
	"github.com/xyths/ktr/exchange"
)

const DefaultTimeout = 30 * time.Second

type Kraken struct {
	Host    string
	Version string

	Key    string
	secret []byte

	client *http.Client

	lastNonce int64

	mu             sync.RWMutex
	pricePrecision map[string]int
	lotPrecision   map[string]int
}

// New builds a client. secret is the base64 API secret from the exchange;
// a malformed secret is rejected here, before any request is signed.
func New(key, secret, host string) (*Kraken, error) {
	decoded, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, errors.Wrap(err, "bad API secret")
	}
	if host == "" {
		host = DefaultHost
	}
	return &Kraken{
		Host:    strings.TrimSuffix(host, "/"),
		Version: DefaultVersion,
		Key:     key,
		secret:  decoded,
		client:  &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// NewFromFile builds a client from a key file: line 1 is the API key,
// line 2 is the base64 secret, both trimmed. Any other line count is an
// error.
func NewFromFile(filename, host string) (*Kraken, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "read key file")
	}
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) != 2 {
		return nil, errors.Errorf("key file %s: want 2 lines, got %d", filename, len(lines))
	}
	return New(strings.TrimSpace(lines[0]), strings.TrimSpace(lines[1]), host)
}

func (k *Kraken) SetTimeout(d time.Duration) {
	k.client.Timeout = d
}

// Get server time
func (k *Kraken) Time() (ServerTime, error) {
	var t ServerTime
	err := k.public("Time", "", &t)
	return t, err
}

// Get asset info
func (k *Kraken) Assets() (map[string]AssetInfo, error) {
	assets := make(map[string]AssetInfo)
	err := k.public("Assets", "", &assets)
	return assets, err
}

// Get tradable asset pairs
func (k *Kraken) AssetPairs() (map[string]AssetPair, error) {
	pairs := make(map[string]AssetPair)
	err := k.public("AssetPairs", "", &pairs)
	return pairs, err
}

// ticker
func (k *Kraken) Ticker(pair string) (ticker *exchange.Ticker, err error) {
	result := make(map[string]TickerInfo)
	if err = k.public("Ticker", "pair="+pair, &result); err != nil {
		return
	}
	for _, t := range result {
		ticker = &exchange.Ticker{
			Last:       first(t.Close),
			LowestAsk:  first(t.Ask),
			HighestBid: first(t.Bid),
			Open:       convert.StrToFloat64(t.Open),
			High24hr:   second(t.High),
			Low24hr:    second(t.Low),
			BaseVolume: second(t.Volume),
		}
		return
	}
	return nil, errors.Errorf("no ticker for pair %s", pair)
}

// 获取Candle
func (k *Kraken) OHLC(pair string, interval time.Duration, since int64) (candles []exchange.Candle, err error) {
	query := fmt.Sprintf("pair=%s&interval=%d", pair, int(interval.Minutes()))
	if since > 0 {
		query = fmt.Sprintf("%s&since=%d", query, since)
	}
	result := make(map[string]json.RawMessage)
	if err = k.public("OHLC", query, &result); err != nil {
		return
	}
	for key, raw := range result {
		if key == "last" {
			continue
		}
		var rows [][]interface{}
		if err = json.Unmarshal(raw, &rows); err != nil {
			return nil, errors.Wrap(err, "parse OHLC rows")
		}
		for _, row := range rows {
			if len(row) < 7 {
				continue
			}
			candles = append(candles, exchange.Candle{
				Timestamp: uint64(toFloat(row[0])),
				Open:      toFloat(row[1]),
				High:      toFloat(row[2]),
				Low:       toFloat(row[3]),
				Close:     toFloat(row[4]),
				Volume:    toFloat(row[6]),
			})
		}
	}
	return
}

// Depth of pair, raw JSON passthrough
func (k *Kraken) Depth(pair string, count int) (string, error) {
	query := "pair=" + pair
	if count > 0 {
		query = fmt.Sprintf("%s&count=%d", query, count)
	}
	var raw json.RawMessage
	if err := k.public("Depth", query, &raw); err != nil {
		return "", err
	}
	return string(raw), nil
}

// Recent trades, raw JSON passthrough
func (k *Kraken) Trades(pair string, since string) (string, error) {
	query := "pair=" + pair
	if since != "" {
		query = query + "&since=" + since
	}
	var raw json.RawMessage
	if err := k.public("Trades", query, &raw); err != nil {
		return "", err
	}
	return string(raw), nil
}

// Recent spread, raw JSON passthrough
func (k *Kraken) Spread(pair string, since int64) (string, error) {
	query := "pair=" + pair
	if since > 0 {
		query = fmt.Sprintf("%s&since=%d", query, since)
	}
	var raw json.RawMessage
	if err := k.public("Spread", query, &raw); err != nil {
		return "", err
	}
	return string(raw), nil
}

// Get account fund balances
func (k *Kraken) Balance() (map[string]string, error) {
	balances := make(map[string]string)
	err := k.private("Balance", NewParams(), &balances)
	return balances, err
}

// Get trade balance in the given base asset ("ZUSD" when empty)
func (k *Kraken) TradeBalance(asset string) (*TradeBalanceResult, error) {
	p := NewParams()
	if asset != "" {
		p.Set("asset", asset)
	}
	var res TradeBalanceResult
	if err := k.private("TradeBalance", p, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Get my open order list
func (k *Kraken) OpenOrders() (*OpenOrdersResult, error) {
	var res OpenOrdersResult
	if err := k.private("OpenOrders", NewParams(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Get my closed orders, start/end are unix seconds, 0 means unbounded
func (k *Kraken) ClosedOrders(start, end int64) (*ClosedOrdersResult, error) {
	p := NewParams()
	if start > 0 {
		p.Set("start", fmt.Sprintf("%d", start))
	}
	if end > 0 {
		p.Set("end", fmt.Sprintf("%d", end))
	}
	var res ClosedOrdersResult
	if err := k.private("ClosedOrders", p, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Get order status
func (k *Kraken) GetOrder(txid string) (order exchange.Order, err error) {
	orders, err := k.QueryOrders(txid)
	if err != nil {
		return
	}
	o, ok := orders[txid]
	if !ok {
		return order, errors.Errorf("order %s not found", txid)
	}
	order = exchange.Order{
		Txid:       txid,
		Pair:       o.Descr.Pair,
		Type:       o.Descr.Side,
		OrderType:  o.Descr.OrderType,
		Status:     o.Status,
		Price:      convert.StrToFloat64(o.Price),
		Volume:     convert.StrToFloat64(o.Volume),
		VolumeExec: convert.StrToFloat64(o.VolumeExec),
		Fee:        convert.StrToFloat64(o.Fee),
		Timestamp:  int64(o.OpenTime),
	}
	return
}

// Query orders info by transaction id
func (k *Kraken) QueryOrders(txids ...string) (map[string]OrderInfo, error) {
	p := NewParams()
	p.Set("txid", strings.Join(txids, ","))
	orders := make(map[string]OrderInfo)
	if err := k.private("QueryOrders", p, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// 获取我的成交记录
func (k *Kraken) TradesHistory(start, end int64) (*TradesHistoryResult, error) {
	p := NewParams()
	if start > 0 {
		p.Set("start", fmt.Sprintf("%d", start))
	}
	if end > 0 {
		p.Set("end", fmt.Sprintf("%d", end))
	}
	var res TradesHistoryResult
	if err := k.private("TradesHistory", p, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AddOrder places an order. price and volume are rendered to the pair's
// precision before the request is signed, so LoadAssetPairs must have run;
// an unknown pair fails here, before any nonce is spent.
// price is ignored for market orders. userref is optional.
func (k *Kraken) AddOrder(pair, side, orderType string, price, volume float64, userref string) (*AddOrderResult, error) {
	vol, err := k.FormatVolume(pair, volume)
	if err != nil {
		return nil, err
	}
	p := NewParams()
	p.Set("pair", pair)
	p.Set("type", side)
	p.Set("ordertype", orderType)
	if orderType != OrderTypeMarket {
		prc, err := k.FormatPrice(pair, price)
		if err != nil {
			return nil, err
		}
		p.Set("price", prc)
	}
	p.Set("volume", vol)
	if userref != "" {
		p.Set("userref", userref)
	}
	var res AddOrderResult
	if err := k.private("AddOrder", p, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Place order buy
func (k *Kraken) Buy(pair string, price, volume float64) (*AddOrderResult, error) {
	return k.AddOrder(pair, OrderSideBuy, OrderTypeLimit, price, volume, "")
}

// Place order sell
func (k *Kraken) Sell(pair string, price, volume float64) (*AddOrderResult, error) {
	return k.AddOrder(pair, OrderSideSell, OrderTypeLimit, price, volume, "")
}

// Cancel order
func (k *Kraken) CancelOrder(txid string) (*CancelOrderResult, error) {
	p := NewParams()
	p.Set("txid", txid)
	var res CancelOrderResult
	if err := k.private("CancelOrder", p, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// LoadAssetPairs refreshes the pair precision table from exchange
// metadata. New maps are built aside and swapped in whole, so concurrent
// formatting never sees a half-filled table.
func (k *Kraken) LoadAssetPairs() error {
	pairs, err := k.AssetPairs()
	if err != nil {
		return err
	}
	price := make(map[string]int, 2*len(pairs))
	lot := make(map[string]int, 2*len(pairs))
	for name, p := range pairs {
		price[name] = p.PairDecimals
		lot[name] = p.LotDecimals
		if p.Altname != "" {
			price[p.Altname] = p.PairDecimals
			lot[p.Altname] = p.LotDecimals
		}
	}
	k.mu.Lock()
	k.pricePrecision = price
	k.lotPrecision = lot
	k.mu.Unlock()
	return nil
}

func (k *Kraken) PricePrecision(pair string) (int, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	p, ok := k.pricePrecision[pair]
	if !ok {
		return 0, errors.Errorf("no price precision for pair %s, LoadAssetPairs first", pair)
	}
	return p, nil
}

func (k *Kraken) LotPrecision(pair string) (int, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	p, ok := k.lotPrecision[pair]
	if !ok {
		return 0, errors.Errorf("no lot precision for pair %s, LoadAssetPairs first", pair)
	}
	return p, nil
}

func (k *Kraken) FormatPrice(pair string, price float64) (string, error) {
	p, err := k.PricePrecision(pair)
	if err != nil {
		return "", err
	}
	return FormatDecimal(price, p), nil
}

func (k *Kraken) FormatVolume(pair string, volume float64) (string, error) {
	p, err := k.LotPrecision(pair)
	if err != nil {
		return "", err
	}
	return FormatDecimal(volume, p), nil
}

func (k *Kraken) publicPath(name string) string {
	return "/" + k.Version + "/public/" + name
}

func (k *Kraken) privatePath(name string) string {
	return "/" + k.Version + "/private/" + name
}

func (k *Kraken) public(name, query string, result interface{}) error {
	url := k.Host + k.publicPath(name)
	if query != "" {
		url = url + "?" + query
	}
	req, err := http.NewRequest(GET, url, nil)
	if err != nil {
		return err
	}
	return k.do(req, result)
}

func (k *Kraken) private(name string, p *Params, result interface{}) error {
	path := k.privatePath(name)
	nonce := k.nextNonce()
	p.Set("nonce", nonce)
	// encoded once: the same bytes are hashed and transmitted
	body := p.Encode()
	sign := Sign(path, body, nonce, k.secret)

	req, err := http.NewRequest(POST, k.Host+path, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("API-Key", k.Key)
	req.Header.Set("API-Sign", sign)
	return k.do(req, result)
}

func (k *Kraken) do(req *http.Request, result interface{}) error {
	resp, err := k.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response")
	}
	var r apiResponse
	if err = json.Unmarshal(data, &r); err != nil {
		return errors.Wrapf(err, "parse response: %s", snippet(data))
	}
	if len(r.Error) > 0 {
		return &APIError{Errors: r.Error}
	}
	if result != nil && len(r.Result) > 0 {
		if err = json.Unmarshal(r.Result, result); err != nil {
			return errors.Wrap(err, "parse result")
		}
	}
	return nil
}

func snippet(data []byte) string {
	const max = 128
	if len(data) > max {
		data = data[:max]
	}
	return string(data)
}
