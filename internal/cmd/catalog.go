package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/questionnaire/internal/catalog"
	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Check catalog files",
	Long: `Check catalog files before using them with 'questionnaire run --catalog'.

A catalog file lists questions with an id, a prompt, a type (rating, text,
choice, scale or boolean) and the type's parameters.`,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogValidate,
}

var catalogFingerprintCmd = &cobra.Command{
	Use:   "fingerprint <file>",
	Short: "Print the catalog fingerprint",
	Long: `Print the blake3 fingerprint of a catalog. Responses carry the fingerprint
of the catalog they answered, so two files with the same questions share it
regardless of their format.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogFingerprint,
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogFingerprintCmd)
	rootCmd.AddCommand(catalogCmd)
}

// catalogReport summarises a valid catalog file
type catalogReport struct {
	Path        string
	Name        string
	Title       string
	Mode        domain.Mode
	Questions   int
	Required    string
	Fingerprint string
}

func (r catalogReport) String() string {
	return fmt.Sprintf("✓ %s is valid\n  name:        %s\n  title:       %s\n  mode:        %s\n  questions:   %d (%s required)\n  fingerprint: %s",
		r.Path, r.Name, r.Title, r.Mode, r.Questions, r.Required, r.Fingerprint)
}

// validateCatalogFile loads path and checks every question
func validateCatalogFile(path string) (catalogReport, error) {
	src, err := catalog.Resolve("", path)
	if err != nil {
		return catalogReport{}, err
	}
	c := src.Catalog
	return catalogReport{
		Path:        path,
		Name:        c.Name(),
		Title:       c.Title(),
		Mode:        src.Mode,
		Questions:   c.Len(),
		Required:    requiredCount(c),
		Fingerprint: src.Fingerprint,
	}, nil
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	report, err := validateCatalogFile(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.String())
	return nil
}

func runCatalogFingerprint(cmd *cobra.Command, args []string) error {
	report, err := validateCatalogFile(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.Fingerprint)
	return nil
}

func requiredCount(c *survey.Catalog) string {
	return strconv.Itoa(len(c.Required()))
}
