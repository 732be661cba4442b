package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/retrobricks/bricks-cli/internal"
	"github.com/retrobricks/bricks-cli/internal/flags"
	"github.com/retrobricks/bricks-cli/internal/prompt"
	"github.com/retrobricks/bricks-cli/internal/settings"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
	flags.AddYes(configResetCmd, "Resets the settings without asking for confirmation")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage your game settings",
}

var configShowCmd = &cobra.Command{
	Use:               "show",
	Short:             "Show the game settings",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		game, err := config.Game()
		if err != nil {
			fmt.Println(internal.Warn(err.Error()))
		}
		printGameSettings(os.Stdout, game)
		fmt.Printf("\nSettings file: %s\n", internal.Emph(config.Dir()))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set <setting> <value>",
	Short:             "Set a game setting",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: gameKeysArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		if err := config.SetGameValue(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", args[0], internal.Emph(args[1]))
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:               "reset",
	Short:             "Restore the default game settings",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		if !flags.Yes() {
			ok, err := prompt.Confirm("Are you sure you want to reset the game settings?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Reset cancelled by the user.")
				return nil
			}
		}

		if err := config.ResetGame(); err != nil {
			return err
		}
		fmt.Println("Game settings restored to the defaults.")
		printGameSettings(os.Stdout, settings.DefaultGame())
		return nil
	},
}

func printGameSettings(w io.Writer, game settings.GameSettings) {
	values := game.Values()
	keys := maps.Keys(values)
	slices.Sort(keys)

	tbl := table.New("SETTING", "VALUE").WithWriter(w)
	columnFmt := color.New(color.FgBlue, color.Bold).SprintfFunc()
	tbl.WithFirstColumnFormatter(columnFmt)
	for _, key := range keys {
		value := fmt.Sprint(values[key])
		if key == settings.TickKey {
			value = game.TickTime().String()
		}
		tbl.AddRow(key, value)
	}
	tbl.Print()
}
