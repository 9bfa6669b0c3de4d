// Package cmd provides the root command and CLI setup for cstyle.
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/cstyle/internal/adapter"
	"github.com/mouse-blink/cstyle/internal/config"
	"github.com/mouse-blink/cstyle/internal/controller"
	"github.com/mouse-blink/cstyle/internal/domain"
	m "github.com/mouse-blink/cstyle/internal/model"
)

var noColorFlag bool
var configFlag string
var jobsFlag int
var reportsOutputDirFlag string
var onlyFlags []string
var summaryFlag bool
var interactiveFlag bool

// app holds the wired dependencies of one command invocation.
type app struct {
	workflow domain.Workflow
	ui       controller.UI
}

// newApp wires the adapters, analyzer and UI for cmd.
var newApp = func(cmd *cobra.Command, cfg *config.Config, interactive bool) app {
	ui := controller.NewUI(cmd, interactive)

	return app{
		ui: ui,
		workflow: domain.NewWorkflow(
			adapter.NewLocalSourceFSAdapter(),
			adapter.NewCtagsAdapter(cfg.Ctags),
			adapter.NewReportStore(),
			ui,
			domain.NewAnalyzer(cfg.DetectorThresholds(), cfg.Jobs),
		),
	}
}

// setup loads configuration, applies flag overrides and starts the UI.
// Callers must Close the returned UI.
func setup(cmd *cobra.Command, interactive bool) (app, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return app{}, err
	}

	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = jobsFlag
		if err := cfg.Validate(); err != nil {
			return app{}, err
		}
	}

	a := newApp(cmd, cfg, interactive && controller.IsTTY(cmd.OutOrStdout()))

	options := []controller.StartOption{controller.WithColor(!noColorFlag)}
	if summaryFlag {
		options = append(options, controller.WithSummary())
	}

	if err := a.ui.Start(options...); err != nil {
		return app{}, err
	}

	return a, nil
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cstyle <file.c>",
		Short: "C source style checker",
		Long: `cstyle inspects a single C source file and reports style defects:
oversized functions, magic numbers, long lines, short identifiers, casts,
undocumented blocks, pointer increments, naming violations, suspicious
argument counts and global variables.

Declarations are read from ctags, which must be installed.

Findings can be suppressed with comments:
  // cstyle:ignore [Detector, ...]        next line, or this line when trailing code
  /* cstyle:ignore-file [Detector, ...] */ whole file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, interactiveFlag)
			if err != nil {
				return err
			}
			defer a.ui.Close()

			err = a.workflow.Check(cmd.Context(), domain.CheckArgs{
				Path:    m.Path(args[0]),
				Only:    onlyFlags,
				Reports: m.Path(reportsOutputDirFlag),
			})
			if err != nil {
				return err
			}

			a.ui.Wait()

			return nil
		},
	}
	cmd.PersistentFlags().BoolVar(&noColorFlag, "nocolor", false, "disable colored output")
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a YAML configuration file")
	cmd.PersistentFlags().IntVarP(&jobsFlag, "jobs", "j", 0, "number of detectors run in parallel (0 means one per CPU)")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", "", "directory reports are saved to and read from")
	cmd.Flags().StringSliceVar(&onlyFlags, "only", nil, "run only the named detectors (can be repeated)")
	cmd.Flags().BoolVar(&summaryFlag, "summary", false, "print a per-detector summary table after the findings")
	cmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "browse findings interactively when attached to a terminal")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
