package main

import (
	"errors"
	"fmt"

	"github.com/rpgo/pension-calculator/internal/form"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:          "prompt",
	Short:        "Ask for each input interactively, then print a report",
	SilenceUsage: true,
	RunE:         runPrompt,
}

func init() {
	promptCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format, default console")
	promptCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the report to this file instead of stdout")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	params, err := form.Collect(cmd.Context(), cfg.Parameters)
	if errors.Is(err, form.ErrAborted) {
		fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
		return nil
	}
	if err != nil {
		return err
	}
	cfg.Parameters = params
	result, err := newEngine(cmd, cfg).RunScenario(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return report(cmd, cfg, result)
}
