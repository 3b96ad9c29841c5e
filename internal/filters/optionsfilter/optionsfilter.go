package optionsfilter

import (
	"fmt"
	"strings"

	"github.com/dejo1307/facetmcp/internal/filters"
)

// ID identifies the parser in the instantiation service.
const ID = "OptionsFilterParser"

// valueSeparator joins several selected options of the same facet.
const valueSeparator = "||"

// Parser turns option values into quoted Lucene terms.
type Parser struct{}

// New creates an options filter parser.
func New() *Parser {
	return &Parser{}
}

// Parse quotes a single value, or ORs several values separated by "||".
func (p *Parser) Parse(raw string) (string, error) {
	values := strings.Split(raw, valueSeparator)
	terms := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			return "", fmt.Errorf("options filter %q: %w", raw, filters.ErrEmptyValue)
		}
		terms = append(terms, filters.Quote(v))
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return "(" + strings.Join(terms, " OR ") + ")", nil
}
