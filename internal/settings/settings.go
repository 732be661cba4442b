package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/kirsle/configdir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var ErrInvalidSetting = errors.New("invalid setting")

const (
	DefaultWidth       = 9
	DefaultHeight      = 25
	DefaultSpawnHeight = 6
	DefaultTick        = 300

	MinWidth  = 6
	MaxWidth  = 12
	MinHeight = 20
	MaxHeight = 35
	MinTick   = 50
	MaxTick   = 2000

	// spawn rows need this much room below them
	minFallRows = 5
)

const (
	WidthKey       = "width"
	HeightKey      = "height"
	SpawnHeightKey = "spawn-height"
	TickKey        = "tick"
)

// GameKeys lists the game settings in display order
var GameKeys = []string{WidthKey, HeightKey, SpawnHeightKey, TickKey}

type GameSettings struct {
	Width       int `mapstructure:"width"`
	Height      int `mapstructure:"height"`
	SpawnHeight int `mapstructure:"spawn-height"`
	Tick        int `mapstructure:"tick"`
}

type Settings struct {
	dir string
}

func DefaultGame() GameSettings {
	return GameSettings{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		SpawnHeight: DefaultSpawnHeight,
		Tick:        DefaultTick,
	}
}

func ReadSettings() (*Settings, error) {
	configPath := configdir.LocalConfig("bricks")
	configPathFlag := viper.GetString("config-path")
	if len(configPathFlag) > 0 {
		configPath = configPathFlag
	}
	err := configdir.MakePath(configPath)
	if err != nil {
		return nil, err
	}

	for key, value := range DefaultGame().Values() {
		viper.SetDefault(gameKey(key), value)
	}

	viper.SetConfigName("settings")
	viper.SetConfigType("json")
	viper.AddConfigPath(configPath)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Force config creation
			if err := viper.SafeWriteConfig(); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	return &Settings{dir: configPath}, nil
}

func gameKey(key string) string {
	return "game." + key
}

func isGameKey(key string) bool {
	for _, k := range GameKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Dir returns the directory holding the settings file
func (s *Settings) Dir() string {
	return s.dir
}

// LogPath returns where the game log is written in debug mode
func (s *Settings) LogPath() string {
	return filepath.Join(s.dir, "bricks.log")
}

func (s *Settings) rawGame() (GameSettings, error) {
	raw := make(map[string]interface{}, len(GameKeys))
	for _, key := range GameKeys {
		raw[key] = viper.Get(gameKey(key))
	}
	game := GameSettings{}
	if err := mapstructure.WeakDecode(raw, &game); err != nil {
		return game, fmt.Errorf("%w: %s", ErrInvalidSetting, err)
	}
	return game, nil
}

// Game returns the stored game settings
func (s *Settings) Game() (GameSettings, error) {
	game, err := s.rawGame()
	if err != nil {
		return game, err
	}
	return game, game.Validate()
}

// SetGameValue parses, validates and stores one game setting
func (s *Settings) SetGameValue(key string, value string) error {
	if !isGameKey(key) {
		return fmt.Errorf("%w: unknown setting %s", ErrInvalidSetting, key)
	}
	game, err := s.rawGame()
	if err != nil {
		game = DefaultGame()
	}
	if err := mapstructure.WeakDecode(map[string]interface{}{key: value}, &game); err != nil {
		return fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidSetting, key, value)
	}
	if err := game.Validate(); err != nil {
		return err
	}

	viper.Set(gameKey(key), game.Values()[key])
	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("error saving settings: %s", err)
	}
	return nil
}

// ResetGame restores the default game settings
func (s *Settings) ResetGame() error {
	for key, value := range DefaultGame().Values() {
		viper.Set(gameKey(key), value)
	}
	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("error saving settings: %s", err)
	}
	return nil
}

// Values maps every game key to its value
func (g GameSettings) Values() map[string]int {
	return map[string]int{
		WidthKey:       g.Width,
		HeightKey:      g.Height,
		SpawnHeightKey: g.SpawnHeight,
		TickKey:        g.Tick,
	}
}

// TickTime returns the tick period
func (g GameSettings) TickTime() time.Duration {
	return time.Duration(g.Tick) * time.Millisecond
}

func (g GameSettings) Validate() error {
	if g.Width < MinWidth || g.Width > MaxWidth {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidSetting, WidthKey, MinWidth, MaxWidth, g.Width)
	}
	if g.Height < MinHeight || g.Height > MaxHeight {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidSetting, HeightKey, MinHeight, MaxHeight, g.Height)
	}
	if g.SpawnHeight < 1 || g.SpawnHeight > g.Height-minFallRows {
		return fmt.Errorf("%w: %s must be between 1 and %d, got %d", ErrInvalidSetting, SpawnHeightKey, g.Height-minFallRows, g.SpawnHeight)
	}
	if g.Tick < MinTick || g.Tick > MaxTick {
		return fmt.Errorf("%w: %s must be between %d and %d milliseconds, got %d", ErrInvalidSetting, TickKey, MinTick, MaxTick, g.Tick)
	}
	return nil
}
