package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/questionnaire/internal/catalog"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
	"github.com/felixgeelhaar/questionnaire/internal/tui"
	"github.com/felixgeelhaar/questionnaire/internal/ux"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List and export built-in questionnaires",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetsList,
}

var presetsExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Write a preset as a catalog file",
	Long: `Write a built-in preset as a catalog file that can be edited and used
with 'questionnaire run --catalog'. The file format follows the extension
(.yaml, .yml, .json or .toml).`,
	Args: cobra.ExactArgs(1),
	RunE: runPresetsExport,
}

var (
	presetsFormat    string
	presetsExportOut string
	presetsForce     bool
)

func init() {
	presetsListCmd.Flags().StringVar(&presetsFormat, "format", "text", "output format (text, json, yaml)")
	presetsExportCmd.Flags().StringVarP(&presetsExportOut, "out", "o", "", "catalog file to write")
	presetsExportCmd.Flags().BoolVarP(&presetsForce, "force", "f", false, "overwrite an existing file")
	_ = presetsExportCmd.MarkFlagRequired("out")
	presetsExportCmd.ValidArgsFunction = completePresetNames

	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsExportCmd)
	rootCmd.AddCommand(presetsCmd)
}

// presetInfo is the listing form of a preset
type presetInfo struct {
	Name        string `json:"name" yaml:"name"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Mode        string `json:"mode" yaml:"mode"`
	Questions   int    `json:"questions" yaml:"questions"`
	Required    int    `json:"required" yaml:"required"`
}

type presetList []presetInfo

func (l presetList) Headers() []string {
	return []string{"NAME", "TITLE", "MODE", "QUESTIONS"}
}

func (l presetList) Rows() [][]string {
	rows := make([][]string, len(l))
	for i, p := range l {
		rows[i] = []string{p.Name, p.Title, p.Mode, fmt.Sprintf("%d (%d required)", p.Questions, p.Required)}
	}
	return rows
}

func listPresets() presetList {
	presets := survey.Presets()
	list := make(presetList, 0, len(presets))
	for _, p := range presets {
		required := 0
		for _, q := range p.Questions {
			if q.Required {
				required++
			}
		}
		list = append(list, presetInfo{
			Name:        p.Name,
			Title:       p.Title,
			Description: p.Description,
			Mode:        p.Mode.String(),
			Questions:   len(p.Questions),
			Required:    required,
		})
	}
	return list
}

func runPresetsList(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	formatter, err := ux.NewFormatter(presetsFormat, &ux.FormatterOptions{
		Writer:  cmd.OutOrStdout(),
		NoColor: cmdCtx.NoColor,
	})
	if err != nil {
		return err
	}
	return formatter.Format(listPresets())
}

func runPresetsExport(cmd *cobra.Command, args []string) error {
	p, err := survey.LookupPreset(args[0])
	if err != nil {
		return err
	}

	if _, err := os.Stat(presetsExportOut); err == nil && !presetsForce {
		if !tui.ShouldPrompt() || !ux.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
			fmt.Sprintf("%s exists. Overwrite?", presetsExportOut), false) {
			return ux.NewErrorWithSuggestion(
				fmt.Errorf("%s already exists", presetsExportOut),
				"Pass --force to overwrite it")
		}
	}

	if err := exportPreset(p, presetsExportOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported preset %s to %s\n", p.Name, presetsExportOut)
	return nil
}

// exportPreset writes p as a catalog file at path
func exportPreset(p survey.Preset, path string) error {
	doc, err := catalog.FromPreset(p)
	if err != nil {
		return err
	}
	return catalog.SaveDocument(doc, path)
}
