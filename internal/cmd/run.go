package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/questionnaire/internal/catalog"
	"github.com/felixgeelhaar/questionnaire/internal/console"
	"github.com/felixgeelhaar/questionnaire/internal/delivery"
	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/log"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
	"github.com/felixgeelhaar/questionnaire/internal/tui"
	"github.com/felixgeelhaar/questionnaire/internal/ux"
)

// Interfaces a questionnaire can be filled in with
const (
	uiTUI  = "tui"
	uiLine = "line"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fill in a questionnaire",
	Long: `Present a questionnaire and deliver the submitted response.

The catalog comes from a built-in preset (--preset) or a catalog file
(--catalog). Sequential questionnaires show one question at a time; page
questionnaires show every question at once. Required questions must be
answered before the questionnaire can be submitted.

Examples:
  # Pick a preset interactively
  questionnaire run

  # Fill in a preset and save the response
  questionnaire run --preset customer-feedback --out response.yaml

  # Use a catalog file on a plain line interface and archive the response
  questionnaire run --catalog survey.toml --ui line --archive responses.db
`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

// runOptions are the settings of one questionnaire run
type runOptions struct {
	Preset  string
	Catalog string
	Mode    string
	Style   string
	UI      string
	Out     string
	Archive string
	Format  string
	NoColor bool
}

var runFlags runOptions

func init() {
	f := runCmd.Flags()
	f.StringVarP(&runFlags.Preset, "preset", "p", "", "built-in preset to fill in")
	f.StringVarP(&runFlags.Catalog, "catalog", "c", "", "catalog file (.yaml, .json, .toml)")
	f.StringVar(&runFlags.Mode, "mode", "", "navigation mode: sequential or page (default from the catalog)")
	f.StringVar(&runFlags.Style, "style", "", "presentation style: compact, fullscreen or page")
	f.StringVar(&runFlags.UI, "ui", "", "interface: tui or line (default tui when interactive)")
	f.StringVarP(&runFlags.Out, "out", "o", "", "write the response to this file")
	f.StringVar(&runFlags.Archive, "archive", "", "store the response in this SQLite archive")
	f.StringVar(&runFlags.Format, "format", "", "response file format: yaml or json")
	runCmd.MarkFlagsMutuallyExclusive("preset", "catalog")

	_ = runCmd.RegisterFlagCompletionFunc("preset", completePresetNames)
	_ = runCmd.RegisterFlagCompletionFunc("mode", fixedCompletions("sequential", "page"))
	_ = runCmd.RegisterFlagCompletionFunc("style", fixedCompletions("compact", "fullscreen", "page"))
	_ = runCmd.RegisterFlagCompletionFunc("ui", fixedCompletions(uiTUI, uiLine))
	_ = runCmd.RegisterFlagCompletionFunc("format", fixedCompletions("yaml", "json"))

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	opts := resolveRunOptions(runFlags, cmdCtx, tui.ShouldPrompt())
	if opts.Preset == "" && opts.Catalog == "" && opts.UI == uiTUI {
		name, err := tui.PickPreset(survey.Presets())
		if err != nil {
			return err
		}
		opts.Preset = name
	}

	_, err = runQuestionnaire(cmd.Context(), opts, cmdCtx.Logger, cmd.InOrStdin(), cmd.OutOrStdout())
	return err
}

// resolveRunOptions fills unset flags from the configuration. The TUI is
// only chosen when a terminal can answer it.
func resolveRunOptions(flags runOptions, cmdCtx *CommandContext, interactive bool) runOptions {
	d := cmdCtx.Config.Defaults
	opts := flags
	opts.Mode = firstNonEmpty(opts.Mode, d.Mode)
	opts.Style = firstNonEmpty(opts.Style, d.Style)
	opts.Format = firstNonEmpty(opts.Format, d.Format, string(delivery.FormatYAML))
	opts.Out = firstNonEmpty(opts.Out, d.Output)
	opts.Archive = cmdCtx.ArchivePath(opts.Archive)
	opts.NoColor = cmdCtx.NoColor

	if opts.UI == "" {
		opts.UI = firstNonEmpty(d.UI, uiTUI)
		if !interactive {
			opts.UI = uiLine
		}
	}
	return opts
}

func validateUI(ui string) error {
	switch ui {
	case uiTUI, uiLine, "":
		return nil
	default:
		return fmt.Errorf("invalid interface %q: must be tui or line", ui)
	}
}

func parseResponseFormat(s string) (delivery.Format, error) {
	if s == "" {
		return delivery.FormatYAML, nil
	}
	return delivery.ParseFormat(s)
}

// runQuestionnaire resolves the catalog, runs a session on the chosen
// interface and delivers the submitted response to the configured sinks
func runQuestionnaire(ctx context.Context, opts runOptions, logger *log.Logger, in io.Reader, out io.Writer) (*delivery.Response, error) {
	if err := validateUI(opts.UI); err != nil {
		return nil, err
	}
	format, err := parseResponseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	src, err := catalog.Resolve(opts.Preset, opts.Catalog)
	if err != nil {
		return nil, err
	}
	mode := src.Mode
	if opts.Mode != "" {
		if mode, err = domain.NewMode(opts.Mode); err != nil {
			return nil, err
		}
	}
	style := domain.Style(opts.Style)
	if style != "" {
		if err := style.Validate(); err != nil {
			return nil, err
		}
	}

	sinks, closeSinks, err := buildSinks(opts, format)
	if err != nil {
		return nil, err
	}
	defer closeSinks()

	dispatcher := delivery.NewDispatcher(logger, sinks...)
	sessionID := uuid.New().String()
	meta := delivery.Meta{
		SessionID:   sessionID,
		Catalog:     src.Catalog,
		Fingerprint: src.Fingerprint,
		Mode:        mode,
	}

	s, err := survey.New(src.Catalog,
		survey.WithID(sessionID),
		survey.WithMode(mode),
		survey.WithLogger(logger),
		survey.WithCompletion(dispatcher.Completion(ctx, meta)),
	)
	if err != nil {
		return nil, err
	}
	logger.Info("questionnaire started", "catalog", src.Catalog.Name(), "origin", src.Origin, "mode", mode, "ui", opts.UI)

	var snap survey.Snapshot
	if opts.UI == uiLine {
		snap, err = console.NewRunner(in, out).Run(ctx, s)
	} else {
		snap, err = tui.Run(ctx, s, style)
	}
	if err != nil {
		return nil, err
	}

	resp, err := dispatcher.Result()
	if err != nil {
		return resp, ux.FormatError(err, "delivering response")
	}
	if err := printSummary(out, src.Catalog, snap, opts); err != nil {
		return resp, err
	}
	if resp != nil {
		fmt.Fprintf(out, "\nResponse %s recorded.\n", resp.ID)
	}
	return resp, nil
}

// buildSinks opens the file and archive sinks opts asks for
func buildSinks(opts runOptions, format delivery.Format) ([]delivery.Sink, func(), error) {
	var sinks []delivery.Sink
	closeFn := func() {}

	if opts.Out != "" {
		sinks = append(sinks, delivery.NewFileSink(opts.Out, format))
	}
	if opts.Archive != "" {
		archive, err := delivery.OpenArchive(opts.Archive)
		if err != nil {
			return nil, closeFn, err
		}
		sinks = append(sinks, archive)
		closeFn = func() { _ = archive.Close() }
	}
	return sinks, closeFn, nil
}

// printSummary shows the submitted answers: styled markdown after the TUI,
// plain markdown after the line interface
func printSummary(out io.Writer, c *survey.Catalog, snap survey.Snapshot, opts runOptions) error {
	sum := survey.Summarize(c, snap)
	if opts.UI == uiLine {
		_, err := fmt.Fprint(out, "\n"+sum.Markdown())
		return err
	}

	style := ""
	if opts.NoColor {
		style = "notty"
	}
	rendered, err := tui.RenderSummary(sum, style, 80)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
