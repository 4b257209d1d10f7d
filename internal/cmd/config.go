package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/ux"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or edit questionnaire configuration",
	Long: `Manage the global configuration stored at ~/.questionnaire/config.yaml
($QUESTIONNAIRE_HOME/config.yaml when set).

Configuration includes:
  • Default mode, style and interface for 'questionnaire run'
  • Default response file format and output path
  • Logging settings
  • The response archive

Examples:
  # View current configuration
  questionnaire config view

  # Get a specific value
  questionnaire config get defaults.style

  # Set a specific value
  questionnaire config set archive.enabled true

  # Show configuration file path
  questionnaire config path
`,
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Display current configuration",
	Long:  `Display the current configuration in the specified format.`,
	RunE:  runConfigView,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration in $EDITOR",
	Long:  `Open the configuration file in your default editor (from $EDITOR environment variable).`,
	RunE:  runConfigEdit,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  `Retrieve the value of a specific configuration key using dot notation (e.g., logging.level).`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a specific configuration value",
	Long:  `Set the value of a specific configuration key using dot notation (e.g., defaults.mode page).`,
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the global configuration file.`,
	RunE:  runConfigPath,
}

var configViewFormat string

func init() {
	configViewCmd.Flags().StringVar(&configViewFormat, "format", "yaml", "output format (yaml, json)")

	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

// GlobalConfig represents the global questionnaire configuration
type GlobalConfig struct {
	Defaults RunDefaults   `yaml:"defaults" json:"defaults"`
	Logging  LoggingConfig `yaml:"logging" json:"logging"`
	Archive  ArchiveConfig `yaml:"archive" json:"archive"`
}

// RunDefaults are used by 'questionnaire run' when a flag is not given
type RunDefaults struct {
	Mode    string `yaml:"mode,omitempty" json:"mode,omitempty"`     // "sequential", "page"; empty follows the catalog
	Style   string `yaml:"style,omitempty" json:"style,omitempty"`   // "compact", "fullscreen", "page"
	UI      string `yaml:"ui,omitempty" json:"ui,omitempty"`         // "tui", "line"
	Format  string `yaml:"format,omitempty" json:"format,omitempty"` // response file format: "yaml", "json"
	NoColor bool   `yaml:"no_color,omitempty" json:"no_color,omitempty"`
	Output  string `yaml:"output,omitempty" json:"output,omitempty"` // response file written after every run
}

// LoggingConfig controls the CLI logger
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty" json:"level,omitempty"`   // "debug", "info", "warn", "error"
	Format string `yaml:"format,omitempty" json:"format,omitempty"` // "text", "json"
	File   string `yaml:"file,omitempty" json:"file,omitempty"`     // empty logs to stderr
}

// ArchiveConfig controls the SQLite response archive
type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Path    string `yaml:"path,omitempty" json:"path,omitempty"` // relative paths live under the home directory
}

// loadConfig loads the global configuration, creating default if it doesn't exist
func loadConfig(paths *ux.Paths) (*GlobalConfig, error) {
	configPath := paths.ConfigFile()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		defaultConfig := defaultGlobalConfig()
		if err := paths.Ensure(); err != nil {
			return nil, err
		}
		if err := saveConfig(defaultConfig, configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := defaultGlobalConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// saveConfig saves the configuration to the file
func saveConfig(config *GlobalConfig, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// defaultGlobalConfig returns the default global configuration
func defaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Defaults: RunDefaults{
			UI:     "tui",
			Format: "yaml",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Archive: ArchiveConfig{
			Enabled: false,
			Path:    "responses.db",
		},
	}
}

func runConfigView(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	formatter, err := ux.NewFormatter(configViewFormat, &ux.FormatterOptions{
		Writer:  cmd.OutOrStdout(),
		NoColor: cmdCtx.NoColor,
	})
	if err != nil {
		return err
	}
	if configViewFormat == "yaml" {
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", cmdCtx.Paths.ConfigFile())
	}
	return formatter.Format(cmdCtx.Config)
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}
	configPath := cmdCtx.Paths.ConfigFile()

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	editorCmd := exec.CommandContext(cmd.Context(), editor, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}

	// Validate the edited config
	if _, err := loadConfig(cmdCtx.Paths); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Configuration may contain errors: %v\n", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Please check and fix the configuration file.\n")
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration updated successfully")
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	value, err := getNestedValue(cmdCtx.Config, args[0])
	if err != nil {
		return ux.FormatError(err, "failed to get value")
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	if err := setNestedValue(cmdCtx.Config, key, value); err != nil {
		return ux.FormatError(err, "failed to set value")
	}

	if err := saveConfig(cmdCtx.Config, cmdCtx.Paths.ConfigFile()); err != nil {
		return ux.FormatError(err, "saving configuration")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Set %s = %s\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cmdCtx.Paths.ConfigFile())
	return nil
}

// getNestedValue retrieves a value from the config using dot notation
func getNestedValue(config *GlobalConfig, key string) (string, error) {
	switch key {
	case "defaults.mode":
		return config.Defaults.Mode, nil
	case "defaults.style":
		return config.Defaults.Style, nil
	case "defaults.ui":
		return config.Defaults.UI, nil
	case "defaults.format":
		return config.Defaults.Format, nil
	case "defaults.no_color":
		return strconv.FormatBool(config.Defaults.NoColor), nil
	case "defaults.output":
		return config.Defaults.Output, nil
	case "logging.level":
		return config.Logging.Level, nil
	case "logging.format":
		return config.Logging.Format, nil
	case "logging.file":
		return config.Logging.File, nil
	case "archive.enabled":
		return strconv.FormatBool(config.Archive.Enabled), nil
	case "archive.path":
		return config.Archive.Path, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// setNestedValue sets a value in the config using dot notation.
// Enumerated values are validated before they are stored.
func setNestedValue(config *GlobalConfig, key, value string) error {
	switch key {
	case "defaults.mode":
		if value != "" {
			if _, err := domain.NewMode(value); err != nil {
				return err
			}
		}
		config.Defaults.Mode = value
	case "defaults.style":
		if value != "" {
			if _, err := domain.NewStyle(value); err != nil {
				return err
			}
		}
		config.Defaults.Style = value
	case "defaults.ui":
		if err := validateUI(value); err != nil {
			return err
		}
		config.Defaults.UI = value
	case "defaults.format":
		if _, err := parseResponseFormat(value); err != nil {
			return err
		}
		config.Defaults.Format = value
	case "defaults.no_color":
		config.Defaults.NoColor = parseBool(value)
	case "defaults.output":
		config.Defaults.Output = value
	case "logging.level":
		config.Logging.Level = strings.ToLower(value)
	case "logging.format":
		config.Logging.Format = strings.ToLower(value)
	case "logging.file":
		config.Logging.File = value
	case "archive.enabled":
		config.Archive.Enabled = parseBool(value)
	case "archive.path":
		config.Archive.Path = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	return nil
}

func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "yes" || s == "1"
}
