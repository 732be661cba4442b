package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/browser"
	"github.com/retrobricks/bricks-cli/internal"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var authorLinks = map[string]string{
	"github":    "https://github.com/SBTopZZZ-LG",
	"linkedin":  "https://www.linkedin.com/in/saumitra-topinkatti-45a577208/",
	"instagram": "https://www.instagram.com/__s_btop_zzz_/",
}

var openFlag string

func init() {
	rootCmd.AddCommand(aboutCmd)
	aboutCmd.Flags().StringVar(&openFlag, "open", "", "Open one of the author's pages in your browser: "+strings.Join(authorLinkNames(), ", "))
	aboutCmd.Flags().Lookup("open").NoOptDefVal = "github"
}

var aboutCmd = &cobra.Command{
	Use:               "about",
	Short:             "Show who made bricks",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fmt.Printf("Bricks %s\n", internal.Emph(version))
		fmt.Println("Game design by SBTopZZZ-LG")
		for _, name := range authorLinkNames() {
			fmt.Printf("  %-10s %s\n", name, internal.Emph(authorLinks[name]))
		}
		if openFlag == "" {
			return nil
		}
		url, err := authorLink(openFlag)
		if err != nil {
			return err
		}
		return browser.OpenURL(url)
	},
}

func authorLinkNames() []string {
	names := maps.Keys(authorLinks)
	slices.Sort(names)
	return names
}

func authorLink(name string) (string, error) {
	url, ok := authorLinks[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("unknown page %s, pick one of %s", name, strings.Join(authorLinkNames(), ", "))
	}
	return url, nil
}
