package datefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p := New()

	got, err := p.Parse("200801010000-200812312359")
	require.NoError(t, err)
	assert.Equal(t, "[2008-01-01T00:00:00Z TO 2008-12-31T23:59:00Z]", got)

	got, err = p.Parse("*-201001011200")
	require.NoError(t, err)
	assert.Equal(t, "[* TO 2010-01-01T12:00:00Z]", got)
}

func TestParse_Malformed(t *testing.T) {
	p := New()
	for _, raw := range []string{"2008", "2008-2009", "200813010000-200812312359", "yesterday-today"} {
		_, err := p.Parse(raw)
		assert.ErrorIs(t, err, ErrMalformed, "raw=%q", raw)
	}
}
