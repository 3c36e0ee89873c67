package mws

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"sort"
	"strings"
)

// QueryString returns the unsigned query component: the normalized
// parameters sorted by key in byte order and percent-encoded.
func (q *Query) QueryString() string {
	return encodeParams(q.params)
}

// CanonicalString returns the Signature V2 string to sign, four lines
// joined by LF: method, host, path, query.
func (q *Query) CanonicalString() string {
	return strings.Join([]string{q.method, q.host, q.path, q.QueryString()}, "\n")
}

// Sign returns the base64-encoded HMAC-SHA256 of the canonical string keyed
// with the secret access key. The result is not percent-encoded.
func (q *Query) Sign() string {
	mac := hmac.New(sha256.New, []byte(q.secret))
	mac.Write([]byte(q.CanonicalString()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SignedQuery returns the query component with the Signature parameter
// added and re-sorted with the rest. For POST requests it doubles as the
// request body.
func (q *Query) SignedQuery() string {
	params := make(map[string]string, len(q.params)+1)
	for k, v := range q.params {
		params[k] = v
	}
	params["Signature"] = q.Sign()
	return encodeParams(params)
}

// RequestURI returns the full signed request URI for the MWS endpoint.
func (q *Query) RequestURI() string {
	return "https://" + q.host + q.path + "?" + q.SignedQuery()
}

func encodeParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = escape(k) + "=" + escape(params[k])
	}
	return strings.Join(pairs, "&")
}
