package adapter

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/cstyle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ctagsFunctionsOutput = `main             function     12 sample.c         int main(void)
Parse_input      function     30 sample.c         static int Parse_input(const char *s)
broken row
helper           function    abc sample.c         void helper(void)
`

func TestCtagsAdapter_Declarations(t *testing.T) {
	t.Run("parses cross reference rows", func(t *testing.T) {
		var gotName string
		var gotArgs []string

		runner := func(_ context.Context, name string, args ...string) ([]byte, error) {
			gotName = name
			gotArgs = args

			return []byte(ctagsFunctionsOutput), nil
		}

		adapter := NewCtagsAdapter("", WithCommandRunner(runner))

		decls, err := adapter.Declarations(context.Background(), m.Path("sample.c"), m.KindFunction)
		require.NoError(t, err)

		assert.Equal(t, "ctags", gotName)
		assert.Equal(t, []string{"-x", "--sort=no", "--language-force=C", "--c-kinds=f", "sample.c"}, gotArgs)
		assert.Equal(t, []m.Declaration{
			{Name: "main", Line: 12, Kind: m.KindFunction},
			{Name: "Parse_input", Line: 30, Kind: m.KindFunction},
		}, decls)
	})

	t.Run("maps every kind to its ctags letter", func(t *testing.T) {
		var kindFlags []string

		runner := func(_ context.Context, _ string, args ...string) ([]byte, error) {
			kindFlags = append(kindFlags, args[3])

			return nil, nil
		}

		adapter := NewCtagsAdapter("uctags", WithCommandRunner(runner))

		for _, kind := range m.DeclarationKinds {
			decls, err := adapter.Declarations(context.Background(), "a.c", kind)
			require.NoError(t, err)
			assert.Empty(t, decls)
		}

		assert.Equal(t, []string{"--c-kinds=v", "--c-kinds=f", "--c-kinds=t"}, kindFlags)
	})

	t.Run("propagates runner failures", func(t *testing.T) {
		runner := func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			return nil, errors.New("exit status 1")
		}

		adapter := NewCtagsAdapter("ctags", WithCommandRunner(runner))

		_, err := adapter.Declarations(context.Background(), "a.c", m.KindTypedef)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ctags failed for typedef declarations of a.c")
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		adapter := NewCtagsAdapter("ctags", WithCommandRunner(func(context.Context, string, ...string) ([]byte, error) {
			t.Fatal("runner must not be called")
			return nil, nil
		}))

		_, err := adapter.Declarations(context.Background(), "a.c", m.DeclarationKind("macro"))
		assert.ErrorContains(t, err, "unsupported declaration kind")
	})
}

func TestCtagsAdapter_MissingBinary(t *testing.T) {
	adapter := NewCtagsAdapter(filepath.Join(t.TempDir(), "no-such-ctags"))

	_, err := adapter.Declarations(context.Background(), "a.c", m.KindVariable)
	assert.Error(t, err)
}

func TestCtagsAdapter_RealCtags(t *testing.T) {
	if _, err := exec.LookPath("ctags"); err != nil {
		t.Skip("ctags not installed")
	}

	path := filepath.Join(t.TempDir(), "sample.c")
	writeTestFile(t, path, "int counter;\n\ntypedef int score;\n\nint main(void)\n{\n    return counter;\n}\n")

	adapter := NewCtagsAdapter("ctags")

	funcs, err := adapter.Declarations(context.Background(), m.Path(path), m.KindFunction)
	if err != nil {
		t.Skipf("ctags does not support the cross reference flags: %v", err)
	}

	require.Len(t, funcs, 1)
	assert.Equal(t, m.Declaration{Name: "main", Line: 5, Kind: m.KindFunction}, funcs[0])
}

func TestParseCtagsOutput(t *testing.T) {
	decls := parseCtagsOutput([]byte("  \nbuf variable 0 a.c char buf;\nbuf2 variable 4 a.c char buf2;\n"), m.KindVariable)

	assert.Equal(t, []m.Declaration{{Name: "buf2", Line: 4, Kind: m.KindVariable}}, decls)
}
