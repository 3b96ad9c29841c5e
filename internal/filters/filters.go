// Package filters holds helpers shared by the filter parsers that translate
// URL filter values into Lucene filter syntax.
package filters

import (
	"errors"
	"strings"
)

// ErrEmptyValue is returned when a filter value is empty.
var ErrEmptyValue = errors.New("empty filter value")

// OpenEnd marks an unbounded side of a range.
const OpenEnd = "*"

// Quote wraps a value in double quotes, escaping backslashes and quotes.
func Quote(value string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(value) + `"`
}

// SplitRange splits a "from-to" value. A leading minus sign on either bound
// is kept with the number ("-10--5" -> "-10", "-5").
func SplitRange(value string) (from, to string, ok bool) {
	if len(value) < 3 {
		return "", "", false
	}
	i := strings.Index(value[1:], "-")
	if i < 0 {
		return "", "", false
	}
	i++
	from, to = value[:i], value[i+1:]
	if from == "" || to == "" {
		return "", "", false
	}
	return from, to, true
}

// Range formats an inclusive Lucene range.
func Range(from, to string) string {
	return "[" + from + " TO " + to + "]"
}
