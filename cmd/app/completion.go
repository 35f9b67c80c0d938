// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `To load completions:

**Bash**:

$ source <(docnav completion bash)

To load completions for each session, execute once:
- Linux:
  $ docnav completion bash > /etc/bash_completion.d/docnav
- MacOS:
  $ docnav completion bash > /usr/local/etc/bash_completion.d/docnav

**Zsh**:

If shell completion is not already enabled in your environment you will need
to enable it.  You can execute the following once:

$ echo "autoload -U compinit; compinit" >> ~/.zshrc

To load completions for each session, execute once:
$ docnav completion zsh > "${fpath[1]}/_docnav"

You will need to start a new shell for this setup to take effect.

**Fish**:

$ docnav completion fish | source

To load completions for each session, execute once:
$ docnav completion fish > ~/.config/fish/completions/docnav.fish
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletion(out)
			}
		},
	}
}
