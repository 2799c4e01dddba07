package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

// Game - the board to play. Preset wins over explicit dimensions when both are set.
// Dimensions have no defaults: a zero is passed on and rejected when the game is built.
type Game struct {
	Preset    string `yaml:"preset" env:"GAME_PRESET" env-default:""`
	Rows      int    `yaml:"rows" env:"GAME_ROWS"`
	Columns   int    `yaml:"columns" env:"GAME_COLUMNS"`
	WinLength int    `yaml:"win-length" env:"GAME_WIN_LENGTH"`
	// Moves is a ";"-separated script such as "0,0;1,1". When empty the moves are read from stdin.
	Moves string `yaml:"moves" env:"GAME_MOVES" env-default:""`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// LoadEnv - builds the configuration from environment variables and defaults only.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

func (that *Game) IsScripted() bool {
	return that.Moves != ""
}
