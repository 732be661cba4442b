package cmd

import (
	"fmt"
	"os"

	"github.com/athoscouto/codename"
	"github.com/retrobricks/bricks-cli/internal"
	"github.com/retrobricks/bricks-cli/internal/bricks"
	"github.com/retrobricks/bricks-cli/internal/flags"
	"github.com/retrobricks/bricks-cli/internal/prompt"
	"github.com/retrobricks/bricks-cli/internal/settings"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	widthFlag       int
	heightFlag      int
	spawnHeightFlag int
	tickFlag        int
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&widthFlag, settings.WidthKey, settings.DefaultWidth, "Arena width in cells for this run")
	playCmd.Flags().IntVar(&heightFlag, settings.HeightKey, settings.DefaultHeight, "Arena height in cells for this run")
	playCmd.Flags().IntVar(&spawnHeightFlag, settings.SpawnHeightKey, settings.DefaultSpawnHeight, "Rows reserved at the top for spawning for this run")
	playCmd.Flags().IntVar(&tickFlag, settings.TickKey, settings.DefaultTick, "Milliseconds between ticks for this run")
}

var playCmd = &cobra.Command{
	Use:               "play",
	Aliases:           []string{"relax"},
	Short:             "Play a game of bricks",
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
			return fmt.Errorf("%w\nRun %s to restore the defaults", err, internal.Emph("bricks config reset"))
		}
		game = applyGameFlags(cmd, game)
		if err := game.Validate(); err != nil {
			return err
		}

		if !prompt.IsInteractive() {
			return fmt.Errorf("bricks needs an interactive terminal")
		}
		if err := checkTerminalSize(game); err != nil {
			return err
		}

		name, err := sessionName()
		if err != nil {
			return err
		}
		logPath := ""
		if flags.Debug() {
			logPath = config.LogPath()
		}

		result, err := bricks.Start(cmd.Context(), bricks.Options{
			Name:        name,
			Width:       game.Width,
			Height:      game.Height,
			SpawnHeight: game.SpawnHeight,
			TickTime:    game.TickTime(),
		}, logPath)
		if err != nil {
			return err
		}

		printResult(os.Stdout, result)
		if logPath != "" {
			fmt.Printf("Game log written to %s\n", internal.Emph(logPath))
		}
		return nil
	},
}

// applyGameFlags overrides the stored settings with the flags set on the command line
func applyGameFlags(cmd *cobra.Command, game settings.GameSettings) settings.GameSettings {
	if cmd.Flags().Changed(settings.WidthKey) {
		game.Width = widthFlag
	}
	if cmd.Flags().Changed(settings.HeightKey) {
		game.Height = heightFlag
	}
	if cmd.Flags().Changed(settings.SpawnHeightKey) {
		game.SpawnHeight = spawnHeightFlag
	}
	if cmd.Flags().Changed(settings.TickKey) {
		game.Tick = tickFlag
	}
	return game
}

func checkTerminalSize(game settings.GameSettings) error {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("could not get terminal size: %w", err)
	}
	needCols, needRows := bricks.ScreenSize(game.Width, game.Height)
	if cols < needCols || rows < needRows {
		return fmt.Errorf("terminal is %dx%d, a %dx%d arena needs at least %dx%d", cols, rows, game.Width, game.Height, needCols, needRows)
	}
	return nil
}

func sessionName() (string, error) {
	rng, err := codename.DefaultRNG()
	if err != nil {
		return "", err
	}
	return codename.Generate(rng, 0), nil
}
