package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/questionnaire/internal/log"
	"github.com/felixgeelhaar/questionnaire/internal/ux"
)

// CommandContext holds the persistent flags and the configuration a command
// runs with. Flags given on the command line win over the config file.
type CommandContext struct {
	// Output control
	NoColor bool

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string

	// Configuration
	Paths  *ux.Paths
	Config *GlobalConfig
	Logger *log.Logger
}

// NewCommandContext extracts command context from cobra.Command flags and
// loads the global configuration:
//
//	func runCommand(cmd *cobra.Command, args []string) error {
//		cmdCtx, err := NewCommandContext(cmd)
//		if err != nil {
//			return fmt.Errorf("failed to create command context: %w", err)
//		}
//		// Use cmdCtx.Config, cmdCtx.Logger, etc.
//	}
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	flags := cmd.Flags()

	home, err := flags.GetString("home")
	if err != nil {
		return nil, err
	}
	noColor, err := flags.GetBool("no-color")
	if err != nil {
		return nil, err
	}
	logLevel, err := flags.GetString("log-level")
	if err != nil {
		return nil, err
	}
	logFormat, err := flags.GetString("log-format")
	if err != nil {
		return nil, err
	}
	logFile, err := flags.GetString("log-file")
	if err != nil {
		return nil, err
	}

	paths, err := ux.DefaultPaths()
	if err != nil {
		return nil, err
	}
	if home != "" {
		paths = &ux.Paths{Home: home}
	}

	config, err := loadConfig(paths)
	if err != nil {
		return nil, ux.FormatError(err, "loading configuration")
	}

	cmdCtx := &CommandContext{
		NoColor:   noColor || config.Defaults.NoColor,
		LogLevel:  firstNonEmpty(logLevel, config.Logging.Level),
		LogFormat: firstNonEmpty(logFormat, config.Logging.Format),
		LogFile:   firstNonEmpty(logFile, paths.Expand(config.Logging.File)),
		Paths:     paths,
		Config:    config,
		Logger:    log.DefaultLogger(),
	}
	return cmdCtx, nil
}

// ArchivePath returns the archive database to use: the flag value, then the
// configured archive when enabled. Empty means no archive.
func (c *CommandContext) ArchivePath(flag string) string {
	if flag != "" {
		return flag
	}
	if c.Config.Archive.Enabled {
		return c.Paths.Expand(firstNonEmpty(c.Config.Archive.Path, "responses.db"))
	}
	return ""
}

// ReadArchivePath is ArchivePath for commands that only read: the default
// archive location is used even when archiving is disabled.
func (c *CommandContext) ReadArchivePath(flag string) string {
	if p := c.ArchivePath(flag); p != "" {
		return p
	}
	return c.Paths.ArchiveFile()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
