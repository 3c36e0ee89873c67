package mws

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// normalize flattens the query into the final parameter map: the fixed MWS
// entries, the optional auth token, the camelized extras and the expanded
// list parameters. Entries whose rendered value is empty are dropped.
func (q *Query) normalize() (map[string]string, error) {
	params := map[string]string{
		"AWSAccessKeyId":   q.accessKeyID,
		"Action":           q.action,
		"SellerId":         q.sellerID,
		"SignatureMethod":  signatureMethod,
		"SignatureVersion": signatureVersion,
		"Timestamp":        FormatTime(q.timestamp),
		"Version":          q.version,
	}
	if q.authToken != "" {
		params["MWSAuthToken"] = q.authToken
	}
	for name, value := range q.extras {
		if err := mergeParam(params, name, value); err != nil {
			return nil, err
		}
	}
	for _, list := range q.lists {
		for i, value := range list.values {
			s, err := renderValue(list.label, value)
			if err != nil {
				return nil, err
			}
			setParam(params, fmt.Sprintf("%s.%d", list.label, i+1), s)
		}
	}
	return params, nil
}

func mergeParam(params map[string]string, name string, value interface{}) error {
	nested, ok := value.(map[string]interface{})
	if !ok {
		s, err := renderValue(name, value)
		if err != nil {
			return err
		}
		setParam(params, camelize(name), s)
		return nil
	}
	for sub, subValue := range nested {
		if _, ok := subValue.(map[string]interface{}); ok {
			return &InvalidParameterError{
				Name:   name + "." + sub,
				Reason: "nested more than one level",
			}
		}
		s, err := renderValue(name+"."+sub, subValue)
		if err != nil {
			return err
		}
		setParam(params, camelize(name)+"."+camelize(sub), s)
	}
	return nil
}

func setParam(params map[string]string, key, value string) {
	if value == "" {
		return
	}
	params[key] = value
}

// renderValue converts a primitive parameter value to its on-wire string.
// Times keep their offset, booleans render lowercase and numbers in their
// natural decimal form.
func renderValue(name string, value interface{}) (string, error) {
	if t, ok := value.(time.Time); ok {
		return FormatTime(t), nil
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return "", &InvalidParameterError{
			Name:   name,
			Reason: fmt.Sprintf("unsupported value type %T", value),
		}
	}
	return s, nil
}

// camelize converts a snake_case identifier to UpperCamelCase. Segments
// already starting upper-case pass through unchanged and digits stay in
// place.
func camelize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
