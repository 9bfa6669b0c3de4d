package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	m "github.com/mouse-blink/cstyle/internal/model"
)

// DeclarationProvider supplies the file-scope declarations of a C file.
type DeclarationProvider interface {
	// Declarations returns the (name, line) pairs of the given kind in the
	// order the symbol table reports them. No declarations is not an error.
	Declarations(ctx context.Context, path m.Path, kind m.DeclarationKind) ([]m.Declaration, error)
}

// CommandRunner executes an external program and returns its stdout.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// CtagsOption configures a CtagsAdapter.
type CtagsOption func(*CtagsAdapter)

// WithCommandRunner replaces the process runner, mainly for tests.
func WithCommandRunner(run CommandRunner) CtagsOption {
	return func(a *CtagsAdapter) {
		a.run = run
	}
}

// CtagsAdapter is a DeclarationProvider backed by the ctags cross-reference
// output (`ctags -x`).
type CtagsAdapter struct {
	binary string
	run    CommandRunner
}

// NewCtagsAdapter constructs a CtagsAdapter invoking binary ("ctags" when empty).
func NewCtagsAdapter(binary string, opts ...CtagsOption) *CtagsAdapter {
	if binary == "" {
		binary = "ctags"
	}

	a := &CtagsAdapter{binary: binary, run: execCommand}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

var ctagsKinds = map[m.DeclarationKind]string{
	m.KindVariable: "v",
	m.KindFunction: "f",
	m.KindTypedef:  "t",
}

// Declarations runs ctags for one kind and parses its cross-reference table.
func (a *CtagsAdapter) Declarations(ctx context.Context, path m.Path, kind m.DeclarationKind) ([]m.Declaration, error) {
	flag, ok := ctagsKinds[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported declaration kind: %s", kind)
	}

	out, err := a.run(ctx, a.binary, "-x", "--sort=no", "--language-force=C", "--c-kinds="+flag, string(path))
	if err != nil {
		return nil, fmt.Errorf("ctags failed for %s declarations of %s: %w", kind, path, err)
	}

	return parseCtagsOutput(out, kind), nil
}

// parseCtagsOutput reads `name kind line file text` rows. Rows with fewer
// than three fields or a non-numeric line are skipped.
func parseCtagsOutput(out []byte, kind m.DeclarationKind) []m.Declaration {
	var decls []m.Declaration

	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}

		line, err := strconv.Atoi(fields[2])
		if err != nil || line < 1 {
			continue
		}

		decls = append(decls, m.Declaration{Name: fields[0], Line: line, Kind: kind})
	}

	return decls
}

func execCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	// #nosec G204 - the binary comes from configuration, args are fixed flags and the input path
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && stderr.Len() > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}

		return nil, err
	}

	return out, nil
}
