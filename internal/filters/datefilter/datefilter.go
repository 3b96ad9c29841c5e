package datefilter

import (
	"errors"
	"fmt"
	"time"

	"github.com/dejo1307/facetmcp/internal/filters"
)

// ID identifies the parser in the instantiation service.
const ID = "DateRangeFilterParser"

// URLLayout is the compact date format used in filter parameters.
const URLLayout = "200601021504"

// engineLayout is the Lucene/Solr date format.
const engineLayout = "2006-01-02T15:04:05Z"

// ErrMalformed is returned for values that are not "from-to" date ranges.
var ErrMalformed = errors.New("malformed date range")

// Parser translates "200801010000-200812312359" into a Lucene date range.
type Parser struct{}

// New creates a date range filter parser.
func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(raw string) (string, error) {
	from, to, ok := filters.SplitRange(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMalformed, raw)
	}

	start, err := convert(from)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformed, raw, err)
	}
	end, err := convert(to)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformed, raw, err)
	}
	return filters.Range(start, end), nil
}

func convert(s string) (string, error) {
	if s == filters.OpenEnd {
		return s, nil
	}
	t, err := time.Parse(URLLayout, s)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(engineLayout), nil
}
