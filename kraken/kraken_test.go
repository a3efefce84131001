package kraken

import (
	"encoding/base64"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, host string) *Kraken {
	k, err := New("test-key", testSecret, host)
	require.NoError(t, err)
	return k
}

func TestNewBadSecret(t *testing.T) {
	_, err := New("key", "not-base64!!!", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad API secret")
}

func TestNewFromFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "kraken")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	write := func(name, content string) string {
		filename := filepath.Join(dir, name)
		require.NoError(t, ioutil.WriteFile(filename, []byte(content), 0600))
		return filename
	}

	k, err := NewFromFile(write("good", "abc\nZGVm\n"), "")
	require.NoError(t, err)
	assert.Equal(t, "abc", k.Key)
	assert.Equal(t, []byte("def"), k.secret)

	// no trailing newline is fine too
	k, err = NewFromFile(write("bare", " abc \nZGVm"), "")
	require.NoError(t, err)
	assert.Equal(t, "abc", k.Key)

	_, err = NewFromFile(write("three", "abc\nZGVm\nextra\n"), "")
	require.Error(t, err)

	_, err = NewFromFile(write("one", "abc\n"), "")
	require.Error(t, err)
}

func TestPublicResult(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, GET, r.Method)
		assert.Equal(t, "/0/public/Time", r.URL.Path)
		assert.Empty(t, r.Header.Get("API-Key"))
		_, _ = w.Write([]byte(`{"error":[],"result":{"unixtime":1700000000,"rfc1123":"Tue, 14 Nov 23 22:13:20 +0000"}}`))
	}))
	defer ts.Close()

	k := newTestClient(t, ts.URL)
	st, err := k.Time()
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), st.Unixtime)
}

func TestAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":["EGeneral:Invalid arguments","EService:Unavailable"],"result":[]}`))
	}))
	defer ts.Close()

	k := newTestClient(t, ts.URL)
	_, err := k.Time()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EGeneral:Invalid arguments")

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	// first message surfaced, all messages kept
	assert.Equal(t, "EGeneral:Invalid arguments", apiErr.Error())
	assert.Equal(t, []string{"EGeneral:Invalid arguments", "EService:Unavailable"}, apiErr.Errors)
}

func TestBadJSONBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer ts.Close()

	k := newTestClient(t, ts.URL)
	_, err := k.Time()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
}

func TestPrivateRequest(t *testing.T) {
	secret, _ := base64.StdEncoding.DecodeString(testSecret)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, POST, r.Method)
		assert.Equal(t, "/0/private/Balance", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("API-Key"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		body, err := ioutil.ReadAll(r.Body)
		assert.NoError(t, err)
		// body is the canonical encoding of a single nonce parameter
		assert.Regexp(t, `^nonce=\d+$`, string(body))
		nonce := string(body[len("nonce="):])

		// the transmitted body must verify against the transmitted signature
		want := Sign(r.URL.Path, string(body), nonce, secret)
		assert.Equal(t, want, r.Header.Get("API-Sign"))

		_, _ = w.Write([]byte(`{"error":[],"result":{"ZUSD":"1200.5000","XXBT":"0.25000000"}}`))
	}))
	defer ts.Close()

	k := newTestClient(t, ts.URL)
	balances, err := k.Balance()
	require.NoError(t, err)
	assert.Equal(t, "1200.5000", balances["ZUSD"])
	assert.Equal(t, "0.25000000", balances["XXBT"])
}

func TestAddOrderParams(t *testing.T) {
	var gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := ioutil.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{"error":[],"result":{"descr":{"order":"buy 1.25000000 XBTUSD @ limit 37500.0"},"txid":["OUF4EM-FRGI2-MQMWZD"]}}`))
	}))
	defer ts.Close()

	k := newTestClient(t, ts.URL)
	k.pricePrecision = map[string]int{"XBTUSD": 1}
	k.lotPrecision = map[string]int{"XBTUSD": 8}

	res, err := k.Buy("XBTUSD", 37500, 1.25)
	require.NoError(t, err)
	require.Equal(t, []string{"OUF4EM-FRGI2-MQMWZD"}, res.Txid)

	// formatted values, not raw floats, in deterministic insertion order
	assert.Regexp(t, `^pair=XBTUSD&type=buy&ordertype=limit&price=37500\.0&volume=1\.25000000&nonce=\d+$`, gotBody)
}

func TestGetOrder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/0/private/QueryOrders", r.URL.Path)
		_, _ = w.Write([]byte(`{"error":[],"result":{"OUF4EM-FRGI2-MQMWZD":{
			"status":"open","opentm":1688666559.8974,
			"descr":{"pair":"XBTUSD","type":"buy","ordertype":"limit","price":"27500.0"},
			"vol":"1.25000000","vol_exec":"0.50000000","price":"27500.0","fee":"0.00000"}}}`))
	}))
	defer ts.Close()

	k := newTestClient(t, ts.URL)
	o, err := k.GetOrder("OUF4EM-FRGI2-MQMWZD")
	require.NoError(t, err)
	assert.Equal(t, "XBTUSD", o.Pair)
	assert.Equal(t, "buy", o.Type)
	assert.Equal(t, "open", o.Status)
	assert.Equal(t, 27500.0, o.Price)
	assert.Equal(t, 1.25, o.Volume)
	assert.Equal(t, 0.5, o.VolumeExec)
	assert.Equal(t, int64(1688666559), o.Timestamp)

	_, err = k.GetOrder("MISSING-TXID")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAddOrderUnknownPair(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the network for an unknown pair")
	}))
	defer ts.Close()

	k := newTestClient(t, ts.URL)
	_, err := k.Buy("NOPEUSD", 1, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOPEUSD")
}

func TestLoadAssetPairs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/0/public/AssetPairs", r.URL.Path)
		_, _ = w.Write([]byte(`{"error":[],"result":{
			"XXBTZUSD":{"altname":"XBTUSD","base":"XXBT","quote":"ZUSD","pair_decimals":1,"lot_decimals":8},
			"XETHZUSD":{"altname":"ETHUSD","base":"XETH","quote":"ZUSD","pair_decimals":2,"lot_decimals":8}
		}}`))
	}))
	defer ts.Close()

	k := newTestClient(t, ts.URL)
	require.NoError(t, k.LoadAssetPairs())

	// both canonical name and altname resolve
	p, err := k.PricePrecision("XXBTZUSD")
	require.NoError(t, err)
	assert.Equal(t, 1, p)
	p, err = k.PricePrecision("XBTUSD")
	require.NoError(t, err)
	assert.Equal(t, 1, p)

	l, err := k.LotPrecision("ETHUSD")
	require.NoError(t, err)
	assert.Equal(t, 8, l)

	_, err = k.PricePrecision("XRPUSD")
	require.Error(t, err)
}

// apiKey=xxx secretKey=yyy go test -v -run TestLiveTicker ./kraken
func TestLiveTicker(t *testing.T) {
	apiKey := os.Getenv("apiKey")
	secretKey := os.Getenv("secretKey")
	if secretKey == "" {
		t.Skip("no secretKey in env")
	}
	k, err := New(apiKey, secretKey, os.Getenv("host"))
	require.NoError(t, err)
	if ticker, err := k.Ticker(XBT_USD); err != nil {
		t.Logf("error when Ticker: %s", err)
	} else {
		t.Logf("XXBTZUSD ticker is %#v", ticker)
	}
}

// apiKey=xxx secretKey=yyy go test -v -run TestLiveBalance ./kraken
func TestLiveBalance(t *testing.T) {
	apiKey := os.Getenv("apiKey")
	secretKey := os.Getenv("secretKey")
	if secretKey == "" {
		t.Skip("no secretKey in env")
	}
	k, err := New(apiKey, secretKey, os.Getenv("host"))
	require.NoError(t, err)
	balances, err := k.Balance()
	if err != nil {
		t.Logf("error when Balance: %s", err)
	}
	t.Logf("balances is %#v", balances)
}
