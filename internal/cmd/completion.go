package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(questionnaire completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ questionnaire completion bash > /etc/bash_completion.d/questionnaire
  # macOS:
  $ questionnaire completion bash > $(brew --prefix)/etc/bash_completion.d/questionnaire

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ questionnaire completion zsh > "${fpath[1]}/_questionnaire"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ questionnaire completion fish | source

  # To load completions for each session, execute once:
  $ questionnaire completion fish > ~/.config/fish/completions/questionnaire.fish

PowerShell:
  PS> questionnaire completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> questionnaire completion powershell > questionnaire.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE:                  runCompletion,
}

func init() {
	rootCmd.AddCommand(completionCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func completePresetNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return survey.PresetNames(), cobra.ShellCompDirectiveNoFileComp
}

func fixedCompletions(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

func runCompletion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch args[0] {
	case "bash":
		return rootCmd.GenBashCompletionV2(out, true)
	case "zsh":
		return rootCmd.GenZshCompletion(out)
	case "fish":
		return rootCmd.GenFishCompletion(out, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(out)
	}
	return nil
}
