package rangefilter

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dejo1307/facetmcp/internal/filters"
)

// ID identifies the parser in the instantiation service.
const ID = "NumericRangeFilterParser"

// ErrMalformed is returned for values that are not "from-to" numeric ranges.
var ErrMalformed = errors.New("malformed numeric range")

// decimalBound matches plain decimal numbers with an optional exponent.
// NaN, infinities and hex floats are rejected.
var decimalBound = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Parser translates "from-to" into a Lucene range query.
type Parser struct{}

// New creates a numeric range filter parser.
func New() *Parser {
	return &Parser{}
}

// Parse accepts "10-100", "*-100", "10-*" and negative bounds like "-10--5".
func (p *Parser) Parse(raw string) (string, error) {
	from, to, ok := filters.SplitRange(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMalformed, raw)
	}
	if err := checkBound(from); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformed, raw, err)
	}
	if err := checkBound(to); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformed, raw, err)
	}
	return filters.Range(from, to), nil
}

func checkBound(s string) error {
	if s == filters.OpenEnd || decimalBound.MatchString(s) {
		return nil
	}
	return fmt.Errorf("bound %q is not a decimal number", s)
}
