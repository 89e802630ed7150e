package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/pension-calculator/internal/calculation"
	"github.com/rpgo/pension-calculator/internal/config"
	"github.com/rpgo/pension-calculator/internal/domain"
	"github.com/rpgo/pension-calculator/internal/form"
	"github.com/rpgo/pension-calculator/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagConfig      string
	flagFormat      string
	flagOutput      string
	flagVerbose     bool
	flagEmptyWindow string
	flagSave        string
)

var rootCmd = &cobra.Command{
	Use:   "sscalc",
	Short: "Social security pension contribution calculator",
	Long: `Project yearly social security contributions from a start age to retirement,
then estimate the monthly pension and the years needed to recover what was paid.

Inputs come from defaults, an optional scenario file (--config) and flags, in
increasing precedence. Flag values must lie in the calculator's input ranges.`,
	SilenceUsage: true,
	RunE:         runCalculate,
}

var runCmd = &cobra.Command{
	Use:          "run",
	Short:        "Calculate and print a report (same as the root command)",
	SilenceUsage: true,
	RunE:         runCalculate,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "Scenario file (.yaml, .json or .toml)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log calculation details to stderr")
	pf.StringVar(&flagEmptyWindow, "empty-window", "", "Pension wage when retirement is not after start age: last_wage, zero or error")
	for _, f := range form.Fields() {
		pf.String(flagName(f.Key), "", fmt.Sprintf("%s (%s)", f.Label, f.Hint()))
	}

	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format (see `sscalc formats`), default console")
		c.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the report to this file instead of stdout")
		c.Flags().StringVar(&flagSave, "save", "", "Save the effective scenario as YAML to this file")
	}
	rootCmd.AddCommand(runCmd)
}

func flagName(key string) string { return strings.ReplaceAll(key, "_", "-") }

// loadScenario merges defaults, the scenario file and parameter flags.
func loadScenario(cmd *cobra.Command) (*domain.Configuration, error) {
	cfg := domain.DefaultConfiguration()
	if flagConfig != "" {
		loaded, err := config.NewInputParser().LoadFromFile(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	params := cfg.Parameters
	startSet, incStartSet := false, false
	for _, f := range form.Fields() {
		fl := cmd.Flags().Lookup(flagName(f.Key))
		if fl == nil || !fl.Changed {
			continue
		}
		v := fl.Value.String()
		if err := f.Validate(v); err != nil {
			return nil, fmt.Errorf("--%s: %w", fl.Name, err)
		}
		if err := f.Set(&params, v); err != nil {
			return nil, err
		}
		startSet = startSet || f.Key == "start_age"
		incStartSet = incStartSet || f.Key == "inc_start_age"
	}
	if startSet && !incStartSet && cfg.Parameters.IncStartAge == cfg.Parameters.StartAge {
		params.IncStartAge = params.StartAge
	}
	cfg.Parameters = params

	if flagEmptyWindow != "" {
		policy, err := domain.ParseEmptyWindowPolicy(flagEmptyWindow)
		if err != nil {
			return nil, err
		}
		cfg.EmptyWindow = policy
	}
	return &cfg, nil
}

func newEngine(cmd *cobra.Command, cfg *domain.Configuration) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngineWithConfig(cfg)
	engine.SetLogger(newLogger(cmd.ErrOrStderr(), flagVerbose))
	return engine
}

func runCalculate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	result, err := newEngine(cmd, cfg).RunScenario(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if flagSave != "" {
		if err := config.SaveConfiguration(cfg, flagSave); err != nil {
			return fmt.Errorf("save scenario: %w", err)
		}
	}
	return report(cmd, cfg, result)
}

// report renders result using the flag format, then the scenario's output
// settings, then the console formatter.
func report(cmd *cobra.Command, cfg *domain.Configuration, result *domain.Result) error {
	format, path := flagFormat, flagOutput
	if format == "" {
		format = cfg.Output.Format
	}
	if format == "" {
		format = "console"
	}
	if path == "" {
		path = cfg.Output.Path
	}
	return output.GenerateReport(cmd.OutOrStdout(), result, format, path)
}
