package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/questionnaire/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "questionnaire",
	Short: "Fill in questionnaires from the terminal",
	Long: `questionnaire presents a catalog of questions (ratings, free text, single
choice, linear scales and yes/no questions), validates the answers, and delivers
the submitted responses to a file or a local archive.

Catalogs come from built-in presets or from YAML, JSON and TOML files.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// logOutput is the log destination opened for the running command
var logOutput log.Output

// Execute runs the root command
func Execute() error {
	defer closeLogOutput()
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which commands use to stop
// when the process is interrupted
func ExecuteContext(ctx context.Context) error {
	defer closeLogOutput()
	return rootCmd.ExecuteContext(ctx)
}

// closeLogOutput releases the log file, whether or not the command failed
func closeLogOutput() {
	_ = logOutput.Close()
	logOutput = log.Output{}
}

func init() {
	rootCmd.PersistentFlags().String("home", "", "questionnaire home directory (default $QUESTIONNAIRE_HOME or ~/.questionnaire)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")
}

// setupLogging installs the process logger from flags and configuration
func setupLogging(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	cfg, err := log.ConfigFrom(cmdCtx.LogLevel, cmdCtx.LogFormat, cmdCtx.LogFile)
	if err != nil {
		return err
	}
	logOutput = cfg.Output
	logger := log.New(cfg)
	log.SetDefaultLogger(logger)

	logger.Debug("command started", "command", cmd.CommandPath(), "home", cmdCtx.Paths.Home)
	return nil
}
