package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/questionnaire/internal/catalog"
	"github.com/felixgeelhaar/questionnaire/internal/delivery"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
	"github.com/felixgeelhaar/questionnaire/internal/tui"
	"github.com/felixgeelhaar/questionnaire/internal/ux"
)

var responsesCmd = &cobra.Command{
	Use:   "responses",
	Short: "Browse archived responses",
	Long: `Browse responses stored in the SQLite archive by 'questionnaire run --archive'
or by runs with archive.enabled set in the configuration.`,
}

var responsesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived responses, newest first",
	Args:  cobra.NoArgs,
	RunE:  runResponsesList,
}

var responsesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one archived response",
	Args:  cobra.ExactArgs(1),
	RunE:  runResponsesShow,
}

var (
	responsesArchive string
	responsesFormat  string
	responsesCatalog string
	responsesLimit   int
)

func init() {
	responsesCmd.PersistentFlags().StringVar(&responsesArchive, "archive", "", "archive database (default from configuration)")
	responsesCmd.PersistentFlags().StringVar(&responsesFormat, "format", "text", "output format (text, json, yaml)")
	responsesListCmd.Flags().StringVar(&responsesCatalog, "catalog", "", "only list responses to this catalog")
	responsesListCmd.Flags().IntVarP(&responsesLimit, "limit", "n", 20, "maximum number of responses (0 for all)")

	responsesCmd.AddCommand(responsesListCmd)
	responsesCmd.AddCommand(responsesShowCmd)
	rootCmd.AddCommand(responsesCmd)
}

type recordList []delivery.Record

func (l recordList) Headers() []string {
	return []string{"ID", "CATALOG", "MODE", "ANSWERED", "SUBMITTED"}
}

func (l recordList) Rows() [][]string {
	rows := make([][]string, len(l))
	for i, r := range l {
		rows[i] = []string{
			r.ID,
			r.Catalog,
			r.Mode,
			strconv.Itoa(r.Answered),
			r.SubmittedAt.Local().Format(time.DateTime),
		}
	}
	return rows
}

func runResponsesList(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	records, err := listResponses(cmd.Context(), cmdCtx.ReadArchivePath(responsesArchive), responsesCatalog, responsesLimit)
	if err != nil {
		return err
	}

	formatter, err := ux.NewFormatter(responsesFormat, &ux.FormatterOptions{
		Writer:  cmd.OutOrStdout(),
		NoColor: cmdCtx.NoColor,
	})
	if err != nil {
		return err
	}
	if len(records) == 0 && responsesFormat == "text" {
		return formatter.Format("No archived responses.")
	}
	return formatter.Format(recordList(records))
}

func listResponses(ctx context.Context, path, catalogName string, limit int) ([]delivery.Record, error) {
	archive, err := delivery.OpenArchive(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	return archive.List(ctx, catalogName, limit)
}

func runResponsesShow(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	archive, err := delivery.OpenArchive(cmdCtx.ReadArchivePath(responsesArchive))
	if err != nil {
		return err
	}
	defer archive.Close()

	r, err := archive.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return showResponse(cmd.OutOrStdout(), r, responsesFormat, cmdCtx.NoColor)
}

// showResponse prints r. Text output renders the answers as a summary,
// using the preset's prompts when the response came from an unchanged preset.
func showResponse(out io.Writer, r delivery.Response, format string, noColor bool) error {
	if format != "text" {
		formatter, err := ux.NewFormatter(format, &ux.FormatterOptions{Writer: out, NoColor: noColor})
		if err != nil {
			return err
		}
		return formatter.Format(r)
	}

	sum := survey.Summarize(presetCatalogFor(r), r.Answers)
	if sum.Title == "" {
		sum.Title = r.Title
	}
	style := ""
	if noColor {
		style = "notty"
	}
	rendered, err := tui.RenderSummary(sum, style, 80)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Response %s\nSession %s, submitted %s\n",
		r.ID, r.SessionID, r.SubmittedAt.Local().Format(time.DateTime))
	_, err = fmt.Fprint(out, rendered)
	return err
}

// presetCatalogFor returns the preset catalog r answered, when its
// fingerprint still matches
func presetCatalogFor(r delivery.Response) *survey.Catalog {
	p, err := survey.LookupPreset(r.Catalog)
	if err != nil {
		return nil
	}
	c, err := p.Catalog()
	if err != nil {
		return nil
	}
	if fp, err := catalog.Fingerprint(c); err != nil || fp != r.Fingerprint {
		return nil
	}
	return c
}
