package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexPattern_FindAll(t *testing.T) {
	p := NewRegexPattern(`(\w+)=(\d+)?`)

	matches := p.FindAll("a=1 b=")
	require.Len(t, matches, 2)

	assert.Equal(t, Match{Text: "a=1", Groups: []string{"a", "1"}, Column: 1}, matches[0])
	assert.Equal(t, Match{Text: "b=", Groups: []string{"b", ""}, Column: 5}, matches[1])

	assert.Nil(t, p.FindAll("nothing here"))
}
