package client

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query accumulates URL query parameters, preserving insertion order.
// Absent values are skipped entirely rather than serialized as
// empty-valued parameters.
type Query struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

func NewQuery() *Query {
	return &Query{}
}

// Set appends key=value. A nil value, a nil pointer, or an empty string
// counts as absent and is not appended. Pointer values are dereferenced;
// everything else is serialized via its string form.
func (q *Query) Set(key string, value any) *Query {
	s, ok := stringify(value)
	if !ok {
		return q
	}

	q.pairs = append(q.pairs, pair{key: key, value: s})

	return q
}

// Encode renders the parameters as a query string in insertion order.
// A nil or empty Query encodes to "".
func (q *Query) Encode() string {
	if q == nil || len(q.pairs) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}

	return sb.String()
}

func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case *string:
		if v == nil {
			return "", false
		}
		return *v, *v != ""
	case int:
		return strconv.Itoa(v), true
	case *int:
		if v == nil {
			return "", false
		}
		return strconv.Itoa(*v), true
	case bool:
		return strconv.FormatBool(v), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}
