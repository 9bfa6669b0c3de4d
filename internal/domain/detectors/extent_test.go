package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/cstyle/internal/model"
)

func TestFunctionLength(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		start int
		want  int
	}{
		{
			name:  "single line function",
			lines: []string{"int f(void) { return 0; }"},
			start: 1,
			want:  1,
		},
		{
			name:  "allman braces",
			lines: []string{"int f(void)", "{", "    return 0;", "}", "int g;"},
			start: 1,
			want:  4,
		},
		{
			name:  "braces in comments are ignored",
			lines: []string{"int f(void)", "{", "    /* { */", "    // }", "    return 0; /* } */", "}"},
			start: 1,
			want:  4,
		},
		{
			name:  "braces in literals are ignored",
			lines: []string{"void f(void) {", `    puts("}");`, "    putchar('{');", "}"},
			start: 1,
			want:  4,
		},
		{
			name:  "blank lines are skipped",
			lines: []string{"int f(void)", "{", "", "    x++;", "", "}"},
			start: 1,
			want:  4,
		},
		{
			name:  "nested blocks",
			lines: []string{"int f(int a) {", "    if (a) {", "        a++;", "    }", "    return a;", "}", "int g(void) {", "}"},
			start: 1,
			want:  6,
		},
		{
			name:  "starts at the declaration line",
			lines: []string{"int g;", "", "int f(void) {", "    x++;", "}"},
			start: 3,
			want:  3,
		},
		{
			name:  "unclosed function is best effort",
			lines: []string{"int f(void)", "{", "    x++;"},
			start: 1,
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Scan(newDoc(tt.lines...))
			assert.Equal(t, tt.want, FunctionLength(lines, tt.start))
		})
	}
}

func TestExtent(t *testing.T) {
	lines := Scan(newDoc("int f(void)", "{", "}"))

	got := Extent(lines, m.Declaration{Name: "f", Line: 1, Kind: m.KindFunction})
	assert.Equal(t, m.FunctionExtent{Name: "f", StartLine: 1, Length: 3}, got)
}
