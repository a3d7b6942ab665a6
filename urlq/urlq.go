// Package urlq provides an order-preserving URL query collection.
//
// net/url.Values is a map and forgets the order pairs appeared in;
// Collection keeps it, so Parse followed by Encode is stable. The
// package also binds collections to structs via `query` tags, see Bind
// and Marshal.
package urlq

import (
	"net/url"
	"strings"
)

// pair is one key=value entry. Duplicate keys are legal and kept.
type pair struct {
	key   string
	value string
}

// Collection is an ordered multimap of query parameters.
// The zero value is an empty collection ready to use.
// A Collection is not safe for concurrent mutation.
type Collection struct {
	pairs []pair
}

// New returns an empty Collection.
func New() *Collection {
	return &Collection{}
}

// Parse parses a raw query string ("a=1&b=2") into a Collection,
// preserving pair order. Escape sequences are decoded. A leading '?'
// is tolerated. Malformed escapes fail with a ParseError wrapping
// ErrParse.
func Parse(rawQuery string) (*Collection, error) {
	c := New()
	rawQuery = strings.TrimPrefix(rawQuery, "?")

	for _, segment := range strings.Split(rawQuery, "&") {
		if segment == "" {
			continue
		}

		key, value, _ := strings.Cut(segment, "=")

		key, err := url.QueryUnescape(key)
		if err != nil {
			return nil, newParseError(segment, err)
		}
		value, err = url.QueryUnescape(value)
		if err != nil {
			return nil, newParseError(segment, err)
		}

		c.pairs = append(c.pairs, pair{key: key, value: value})
	}

	return c, nil
}

// Len returns the number of pairs, counting duplicates.
func (c *Collection) Len() int {
	return len(c.pairs)
}

// Has reports whether at least one pair with the given key exists.
func (c *Collection) Has(key string) bool {
	for _, p := range c.pairs {
		if p.key == key {
			return true
		}
	}
	return false
}

// Get returns the first value for key, or "" when absent.
func (c *Collection) Get(key string) string {
	for _, p := range c.pairs {
		if p.key == key {
			return p.value
		}
	}
	return ""
}

// GetAll returns every value for key in collection order.
// It returns nil when the key is absent.
func (c *Collection) GetAll(key string) []string {
	var values []string
	for _, p := range c.pairs {
		if p.key == key {
			values = append(values, p.value)
		}
	}
	return values
}

// Add appends a pair to the end of the collection.
func (c *Collection) Add(key, value string) {
	c.pairs = append(c.pairs, pair{key: key, value: value})
}

// Set replaces the first pair with the given key in place and removes
// any later duplicates. When the key is absent the pair is appended.
func (c *Collection) Set(key, value string) {
	out := c.pairs[:0]
	replaced := false
	for _, p := range c.pairs {
		if p.key != key {
			out = append(out, p)
			continue
		}
		if !replaced {
			out = append(out, pair{key: key, value: value})
			replaced = true
		}
	}
	if !replaced {
		out = append(out, pair{key: key, value: value})
	}
	c.pairs = out
}

// Del removes every pair with the given key.
func (c *Collection) Del(key string) {
	out := c.pairs[:0]
	for _, p := range c.pairs {
		if p.key != key {
			out = append(out, p)
		}
	}
	c.pairs = out
}

// Keys returns the distinct keys in first-appearance order.
func (c *Collection) Keys() []string {
	seen := make(map[string]struct{}, len(c.pairs))
	var keys []string
	for _, p := range c.pairs {
		if _, ok := seen[p.key]; ok {
			continue
		}
		seen[p.key] = struct{}{}
		keys = append(keys, p.key)
	}
	return keys
}

// Encode renders the collection as a query string in collection order,
// escaping keys and values. An empty collection yields "".
func (c *Collection) Encode() string {
	var b strings.Builder
	for i, p := range c.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
