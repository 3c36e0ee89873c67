package mws

import (
	"strings"
	"time"
)

// Option configures a Query during New.
type Option func(*Query)

// WithMethod sets the HTTP verb, GET or POST. Defaults to GET.
func WithMethod(method string) Option {
	return func(q *Query) { q.method = strings.ToUpper(method) }
}

// WithHost sets the MWS endpoint host, such as "mws-eu.amazonservices.com".
func WithHost(host string) Option {
	return func(q *Query) { q.host = host }
}

// WithPath sets the URI path. Defaults to "/".
func WithPath(path string) Option {
	return func(q *Query) { q.path = path }
}

// WithCredential sets the AWS access key id and secret access key.
func WithCredential(accessKeyID, secretAccessKey string) Option {
	return func(q *Query) {
		q.accessKeyID = accessKeyID
		q.secret = secretKey(secretAccessKey)
	}
}

// WithAction sets the MWS operation name, such as "ListOrders".
func WithAction(action string) Option {
	return func(q *Query) { q.action = action }
}

// WithSellerID sets the merchant identifier.
func WithSellerID(sellerID string) Option {
	return func(q *Query) { q.sellerID = sellerID }
}

// WithVersion sets the MWS API version string, such as "2010-01-01".
func WithVersion(version string) Option {
	return func(q *Query) { q.version = version }
}

// WithTimestamp sets the request timestamp. When absent, the current time is
// captured once in New. The offset is preserved in the rendered value.
func WithTimestamp(t time.Time) Option {
	return func(q *Query) { q.timestamp = t }
}

// WithAuthToken sets the optional MWSAuthToken delegation token. An empty
// token is the same as never setting one.
func WithAuthToken(token string) Option {
	return func(q *Query) { q.authToken = token }
}

// WithParam adds one extra request parameter. The name is camelized
// (snake_case to UpperCamelCase) and the value may be a string, number,
// boolean, time.Time, or a one-level map of the same.
func WithParam(name string, value interface{}) Option {
	return func(q *Query) { q.extras[name] = value }
}

// WithParams adds a set of extra request parameters, as WithParam does for
// each entry.
func WithParams(params map[string]interface{}) Option {
	return func(q *Query) {
		for name, value := range params {
			q.extras[name] = value
		}
	}
}

// WithParamList adds an MWS list parameter. The label is used verbatim as
// the dotted prefix and each value becomes "<label>.<n>" with n counting
// from 1 in input order.
func WithParamList(label string, values ...interface{}) Option {
	return func(q *Query) {
		q.lists = append(q.lists, paramList{label: label, values: values})
	}
}
