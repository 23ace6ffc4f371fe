package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	calc "github.com/rpgo/retirement-savings/internal/calculation"
	"github.com/rpgo/retirement-savings/internal/config"
)

var (
	flagSettings string
	flagLogLevel string

	// populated by the root PersistentPreRunE before any subcommand runs
	settings *config.Settings
	logger   zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "retirecalc",
	Short: "Retirement savings projection calculator",
	Long: "Project how savings grow until retirement and how long they last afterwards,\n" +
		"compared with the savings a planned monthly expense would require.",
	SilenceUsage:      true,
	PersistentPreRunE: loadRuntime,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Settings file (yaml/json/toml); RETIRE_* env vars override")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from settings)")
}

func loadRuntime(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings(flagSettings)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		s.LogLevel = flagLogLevel
	}

	l, err := newLogger(s.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	settings, logger = s, l
	return nil
}

func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// newEngine builds a projection engine using the solver limits from settings.
func newEngine() *calc.ProjectionEngine {
	engine := calc.NewProjectionEngine()
	engine.Solver = newSolver()
	engine.SetLogger(calc.NewZerologLogger(logger))
	return engine
}

func newSolver() *calc.ContributionSolver {
	return &calc.ContributionSolver{
		MaxIterations: settings.Solver.MaxIterations,
		Tolerance:     settings.Solver.Tolerance,
	}
}
