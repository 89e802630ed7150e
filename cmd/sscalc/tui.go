package main

import (
	"github.com/rpgo/pension-calculator/internal/calculation"
	"github.com/rpgo/pension-calculator/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:          "tui",
	Short:        "Live calculator that recomputes as you type",
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	// Logging would draw over the alternate screen.
	engine := calculation.NewCalculationEngineWithConfig(cfg)
	_, err = tui.Run(engine, cfg.Parameters)
	return err
}
