package kraken

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"strconv"
	"sync/atomic"
	"time"
)

// Sign computes the API-Sign header value:
//	base64(HMAC-SHA512(secret, path + SHA256(nonce + body)))
// path must be the exact request path, e.g. "/0/private/AddOrder".
// body must be the exact string sent as the POST body.
func Sign(path, body, nonce string, secret []byte) string {
	sha := sha256.New()
	sha.Write([]byte(nonce + body))

	mac := hmac.New(sha512.New, secret)
	mac.Write([]byte(path))
	mac.Write(sha.Sum(nil))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// nextNonce returns wall-clock milliseconds as a decimal string.
// The exchange requires nonces to increase strictly, so when the clock
// has not moved past the last issued value (same-millisecond calls,
// clock stepped back) the value is bumped to last+1.
func (k *Kraken) nextNonce() string {
	for {
		last := atomic.LoadInt64(&k.lastNonce)
		nonce := time.Now().UnixNano() / int64(time.Millisecond)
		if nonce <= last {
			nonce = last + 1
		}
		if atomic.CompareAndSwapInt64(&k.lastNonce, last, nonce) {
			return strconv.FormatInt(nonce, 10)
		}
	}
}
