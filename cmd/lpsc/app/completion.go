package app

import (
	"os"

	"github.com/spf13/cobra"
)

// Domain: Shell Completion

// completionCommand generates completion scripts for the shells Cobra
// supports.
func (a *App) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cmd:completion [bash|zsh|fish|powershell]",
		Short: "Generate a shell completion script",
		Long: `Generate a completion script for lpsc and print it to stdout.

Load it directly, for example:

  source <(lpsc cmd:completion bash)
  lpsc cmd:completion zsh > "${fpath[1]}/_lpsc"
  lpsc cmd:completion fish | source
  lpsc cmd:completion powershell | Out-String | Invoke-Expression

Write the output to your shell's completion directory instead to load
it in every session.

Note: The 'cmd:' prefix is reserved for built-in commands.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return a.rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return a.rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return a.rootCmd.GenFishCompletion(os.Stdout, true)
			default:
				return a.rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			}
		},
	}
}
