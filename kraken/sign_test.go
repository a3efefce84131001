package kraken

import (
	"encoding/base64"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vector from the exchange API documentation
const (
	testSecret = "kQH5HW/8p1uGOVjbgWA7FunAmGO8lsSUXNsu3eow76sz84Q18fWxnyRzBHCd3pd5nE9qa99HAZtuZuj6F1huXg=="
	testNonce  = "1616492376594"
)

func TestSign(t *testing.T) {
	secret, err := base64.StdEncoding.DecodeString(testSecret)
	require.NoError(t, err)

	p := NewParams()
	p.Set("nonce", testNonce)
	p.Set("ordertype", "limit")
	p.Set("pair", "XBTUSD")
	p.Set("price", "37500")
	p.Set("type", "buy")
	p.Set("volume", "1.25")
	body := p.Encode()
	require.Equal(t, "nonce=1616492376594&ordertype=limit&pair=XBTUSD&price=37500&type=buy&volume=1.25", body)

	sign := Sign("/0/private/AddOrder", body, testNonce, secret)
	assert.Equal(t, "4/dpxb3iT4tp/ZCVEwSnEsLxx0bqyhLpdfOpc6fn7OR8+UClSV5n9E6aSS8MPtnRfp32bAb0nmbRn6H8ndwLUQ==", sign)
}

func TestSignDeterministic(t *testing.T) {
	secret, err := base64.StdEncoding.DecodeString(testSecret)
	require.NoError(t, err)
	body := "nonce=" + testNonce
	s1 := Sign("/0/private/Balance", body, testNonce, secret)
	s2 := Sign("/0/private/Balance", body, testNonce, secret)
	assert.Equal(t, s1, s2)

	// any input change changes the output
	assert.NotEqual(t, s1, Sign("/0/private/TradeBalance", body, testNonce, secret))
	assert.NotEqual(t, s1, Sign("/0/private/Balance", body+"&asset=ZUSD", testNonce, secret))
	assert.NotEqual(t, s1, Sign("/0/private/Balance", body, "1616492376595", secret))
	other := make([]byte, len(secret))
	copy(other, secret)
	other[0] ^= 1
	assert.NotEqual(t, s1, Sign("/0/private/Balance", body, testNonce, other))
}

func TestNextNonce(t *testing.T) {
	k, err := New("key", testSecret, "")
	require.NoError(t, err)

	last := ""
	for i := 0; i < 1000; i++ {
		n := k.nextNonce()
		require.True(t, len(n) > len(last) || (len(n) == len(last) && n > last),
			"nonce %s not greater than %s", n, last)
		last = n
	}
}

func TestNextNonceConcurrent(t *testing.T) {
	k, err := New("key", testSecret, "")
	require.NoError(t, err)

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				n := k.nextNonce()
				mu.Lock()
				if seen[n] {
					t.Errorf("duplicate nonce %s", n)
				}
				seen[n] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1000, len(seen))
}
