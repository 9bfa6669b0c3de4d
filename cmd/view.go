package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/cstyle/internal/domain"
	m "github.com/mouse-blink/cstyle/internal/model"
)

var viewInteractiveFlag bool

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved reports",
		Long:  "View reports previously saved with --reports from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, viewInteractiveFlag)
			if err != nil {
				return err
			}
			defer a.ui.Close()

			if err := a.workflow.View(domain.ViewArgs{Reports: m.Path(reportsOutputDirFlag)}); err != nil {
				return err
			}

			a.ui.Wait()

			return nil
		},
	}
	cmd.Flags().BoolVarP(&viewInteractiveFlag, "interactive", "i", false, "browse reports interactively when attached to a terminal")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
