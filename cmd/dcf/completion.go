package main

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for dcf.

To load completions:

Bash:
  # Linux:
  $ dcf completion bash > /etc/bash_completion.d/dcf

  # macOS:
  $ dcf completion bash > $(brew --prefix)/etc/bash_completion.d/dcf

  # Current session only:
  $ source <(dcf completion bash)

Zsh:
  # If shell completions are not already enabled, you need to enable them:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # Load completions for every new session:
  $ dcf completion zsh > "${fpath[1]}/_dcf"

  # Current session only:
  $ source <(dcf completion zsh)

Fish:
  $ dcf completion fish > ~/.config/fish/completions/dcf.fish

  # Current session only:
  $ dcf completion fish | source

PowerShell:
  PS> dcf completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletionV2(out, true)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
