package detectors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripLiterals(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "string with digits",
			line: `printf("a %d\n", 42);`,
			want: `printf("` + strings.Repeat(" ", 6) + `", 42);`,
		},
		{
			name: "escaped quote in string",
			line: `s = "say \"hi\"";`,
			want: `s = "` + strings.Repeat(" ", 10) + `";`,
		},
		{
			name: "escaped char literal",
			line: `c = '\'';`,
			want: `c = '  ';`,
		},
		{
			name: "char literal",
			line: `if (c == '7') return;`,
			want: `if (c == ' ') return;`,
		},
		{
			name: "unterminated string",
			line: `s = "abc`,
			want: `s = "   `,
		},
		{
			name: "no literal",
			line: `x = y + 3;`,
			want: `x = y + 3;`,
		},
		{
			name: "two literals",
			line: `f("ab", 'c');`,
			want: `f("  ", ' ');`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripLiterals(tt.line)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.line))
		})
	}
}
