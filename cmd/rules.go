package cmd

import (
	"github.com/spf13/cobra"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List detectors, severities and limits",
		Long:  "List every detector in reporting order with its severity and the limits taken from configuration.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer a.ui.Close()

			return a.workflow.Rules()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
