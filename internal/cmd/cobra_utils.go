package cmd

import (
	"github.com/retrobricks/bricks-cli/internal/settings"
	"github.com/spf13/cobra"
)

func noFilesArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{}, cobra.ShellCompDirectiveNoFileComp
}

func gameKeysArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}
	return settings.GameKeys, cobra.ShellCompDirectiveNoFileComp
}
