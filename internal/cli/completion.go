package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cosmoglyph.

To load completions:

Bash:
  $ source <(cosmoglyph completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ cosmoglyph completion bash > /etc/bash_completion.d/cosmoglyph
  # macOS:
  $ cosmoglyph completion bash > $(brew --prefix)/etc/bash_completion.d/cosmoglyph

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ cosmoglyph completion zsh > "${fpath[1]}/_cosmoglyph"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ cosmoglyph completion fish | source

  # To load completions for each session, execute once:
  $ cosmoglyph completion fish > ~/.config/fish/completions/cosmoglyph.fish

PowerShell:
  PS> cosmoglyph completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> cosmoglyph completion powershell > cosmoglyph.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
