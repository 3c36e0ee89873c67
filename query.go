package mws

import (
	"fmt"
	"strings"
	"time"
)

const (
	methodGet  = "GET"
	methodPost = "POST"

	signatureMethod  = "HmacSHA256"
	signatureVersion = "2"
)

// iso8601 is the timestamp layout MWS expects. Offsets are preserved as
// supplied by the caller.
const iso8601 = "2006-01-02T15:04:05-07:00"

// FormatTime renders t in the MWS timestamp form, ISO-8601 with seconds
// precision and an explicit UTC offset.
func FormatTime(t time.Time) string {
	return t.Format(iso8601)
}

// secretKey masks its value when rendered so the secret access key cannot
// leak through formatted output.
type secretKey string

func (secretKey) String() string   { return "****" }
func (secretKey) GoString() string { return "****" }

type paramList struct {
	label  string
	values []interface{}
}

// Query holds everything needed to sign a single MWS request. It is
// immutable after New returns: all derived values (Params, CanonicalString,
// Sign, QueryString, SignedQuery, RequestURI) are pure functions of the
// construction-time state, so a Query is safe for concurrent use.
type Query struct {
	method      string
	host        string
	path        string
	accessKeyID string
	secret      secretKey
	action      string
	sellerID    string
	version     string
	timestamp   time.Time
	authToken   string

	extras map[string]interface{}
	lists  []paramList

	params map[string]string
}

// New builds a Query from the given options, applies defaults (GET, path
// "/", current time), validates the inputs and normalizes all parameters.
// Invalid input is reported as *MissingCredentialError, *MissingFieldError,
// *InvalidPathError or *InvalidParameterError.
func New(opts ...Option) (*Query, error) {
	q := &Query{
		method: methodGet,
		path:   "/",
		extras: make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	if q.timestamp.IsZero() {
		q.timestamp = time.Now()
	}
	q.host = canonicalHost(q.host)

	if err := q.validate(); err != nil {
		return nil, err
	}
	params, err := q.normalize()
	if err != nil {
		return nil, err
	}
	q.params = params
	return q, nil
}

func (q *Query) validate() error {
	if q.accessKeyID == "" {
		return &MissingCredentialError{Field: "access key id"}
	}
	if q.secret == "" {
		return &MissingCredentialError{Field: "secret access key"}
	}
	required := []struct {
		name, value string
	}{
		{"action", q.action},
		{"seller id", q.sellerID},
		{"version", q.version},
		{"host", q.host},
		{"uri path", q.path},
	}
	for _, f := range required {
		if f.value == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	if !strings.HasPrefix(q.path, "/") {
		return &InvalidPathError{Path: q.path}
	}
	if q.method != methodGet && q.method != methodPost {
		return &InvalidParameterError{Name: "method", Reason: "must be GET or POST"}
	}
	return nil
}

// canonicalHost lowercases the endpoint host and strips any port. The
// canonical string carries the bare host name only.
func canonicalHost(host string) string {
	host = strings.ToLower(host)
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return host
}

// Method returns the HTTP verb, GET or POST.
func (q *Query) Method() string { return q.method }

// Host returns the endpoint host name.
func (q *Query) Host() string { return q.host }

// Path returns the URI path, always starting with "/".
func (q *Query) Path() string { return q.path }

// Action returns the MWS operation name.
func (q *Query) Action() string { return q.action }

// SellerID returns the merchant identifier.
func (q *Query) SellerID() string { return q.sellerID }

// Version returns the MWS API version string.
func (q *Query) Version() string { return q.version }

// AccessKeyID returns the AWS access key id. There is no accessor for the
// secret access key.
func (q *Query) AccessKeyID() string { return q.accessKeyID }

// Timestamp returns the request timestamp captured at construction.
func (q *Query) Timestamp() time.Time { return q.timestamp }

// Params returns a copy of the normalized parameter map.
func (q *Query) Params() map[string]string {
	params := make(map[string]string, len(q.params))
	for k, v := range q.params {
		params[k] = v
	}
	return params
}

// String renders the query for diagnostics without credentials.
func (q *Query) String() string {
	return fmt.Sprintf("mws.Query(%s https://%s%s %s/%s)", q.method, q.host, q.path, q.action, q.version)
}
