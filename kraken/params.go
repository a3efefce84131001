package kraken

import "strings"

// Params is an ordered set of request parameters. Encode writes keys in
// insertion order, so the string hashed by the signer and the string sent
// as the POST body are always the same bytes.
type Params struct {
	keys   []string
	values map[string]string
}

func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Set adds the parameter, or replaces its value keeping the original
// position.
func (p *Params) Set(key, value string) *Params {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

func (p *Params) Get(key string) string {
	return p.values[key]
}

func (p *Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

func (p *Params) Len() int {
	return len(p.keys)
}

// Encode renders "k1=v1&k2=v2" with no trailing separator. Values go on
// the wire as-is, without percent-escaping; a value containing '&' or '='
// would corrupt the body, so callers must not pass such values.
func (p *Params) Encode() string {
	var b strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(p.values[k])
	}
	return b.String()
}
