package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/cstyle/internal/model"
)

// TUIOption configures a TUI.
type TUIOption func(*TUI)

// WithInput sets the reader key presses come from. A nil reader disables
// keyboard input.
func WithInput(input io.Reader) TUIOption {
	return func(t *TUI) {
		t.input = input
		t.inputSet = true
	}
}

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output   io.Writer
	input    io.Reader
	inputSet bool
	config   StartConfig
	styles   styles

	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, options ...TUIOption) *TUI {
	t := &TUI{output: output, config: newStartConfig()}
	for _, option := range options {
		option(t)
	}

	t.styles = newStyles(output, t.config.color)

	return t
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.config = newStartConfig(options...)
	t.styles = newStyles(t.output, t.config.color)

	return nil
}

// Close quits a running browser and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Quit()
	}

	t.Wait()
}

// Wait blocks until the user closes the browser.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// DisplayReport opens the findings browser for one report.
func (t *TUI) DisplayReport(report m.Report) error {
	return t.startWithModel(newFindingsModel(string(report.Source.Path), t.styles, report))
}

// DisplayReportSaved shows where the report was written.
func (t *TUI) DisplayReportSaved(path m.Path) {
	if !t.send(reportSavedMsg{path: path}) {
		_, _ = fmt.Fprintf(t.output, "report saved to %s\n", path)
	}
}

// DisplayReports opens the findings browser over every stored report.
func (t *TUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		_, _ = fmt.Fprintln(t.output, "no reports found")
		return nil
	}

	return t.startWithModel(newFindingsModel(fmt.Sprintf("%d reports", len(reports)), t.styles, reports...))
}

// DisplayRules prints the detector table; it needs no interaction.
func (t *TUI) DisplayRules(rules []m.Rule) error {
	_, err := fmt.Fprint(t.output, renderRules(rules))

	return err
}

// startWithModel runs model in the background until it quits.
func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return fmt.Errorf("tui already running")
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}
	if t.inputSet {
		opts = append(opts, tea.WithInput(t.input))
	}

	t.program = tea.NewProgram(model, opts...)
	t.started = true
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		_, err := program.Run()

		t.mu.Lock()
		t.err = err
		t.program = nil
		t.started = false
		t.mu.Unlock()

		close(done)
	}(t.program, t.done)

	return nil
}

// send delivers msg to a running program and reports whether one was running.
func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// Err returns the error the last browser session ended with.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}
