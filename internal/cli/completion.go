package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cardgen.

To load completions:

Bash:
  $ source <(cardgen completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ cardgen completion bash > /etc/bash_completion.d/cardgen
  # macOS:
  $ cardgen completion bash > $(brew --prefix)/etc/bash_completion.d/cardgen

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ cardgen completion zsh > "${fpath[1]}/_cardgen"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ cardgen completion fish | source

  # To load completions for each session, execute once:
  $ cardgen completion fish > ~/.config/fish/completions/cardgen.fish

PowerShell:
  PS> cardgen completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> cardgen completion powershell > cardgen.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, w := cmd.Root(), c.Out
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(w, true)
			case "zsh":
				return root.GenZshCompletion(w)
			case "fish":
				return root.GenFishCompletion(w, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}
