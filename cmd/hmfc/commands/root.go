// Package commands implements the hmfc cobra command tree: run, list,
// and version, sharing a request-scoped logger stamped with a
// per-invocation correlation ID.
package commands

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hmf-lang/hmfc/internal/config"
)

var (
	jsonLog  bool
	cfgPath  string
	runID    string
	useColor bool
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hmfc",
	Short: "Type-check and elaborate programs from the HMF example battery",
}

// Execute runs the root command, returning any error it produced.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json", false, "emit structured JSON log lines instead of text")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "hmfc.yaml", "path to the optional configuration file")
	cobra.OnInitialize(initLogger)
	rootCmd.AddCommand(runCmd, listCmd, versionCmd)
}

func initLogger() {
	runID = uuid.NewString()
	useColor = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	var handler slog.Handler
	if jsonLog {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	} else {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}
	logger = slog.New(handler).With("run_id", runID)
}

func loadConfig() *config.Config {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Warn("failed to load config, falling back to defaults", "path", cfgPath, "error", err)
		return config.Default()
	}
	return cfg
}

// colorize wraps s in an ANSI SGR code when stdout is a real terminal,
// and returns it unchanged otherwise.
func colorize(code, s string) string {
	if !useColor {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
