package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	OpponentHuman = "human"
	OpponentBot   = "bot"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Opponent string  `yaml:"opponent" env:"OPPONENT" env-default:"human" validate:"oneof=human bot"`
	Bot      Bot     `yaml:"bot"`
	Console  Console `yaml:"console"`
}

type Bot struct {
	Name string `yaml:"name" env:"BOT_NAME" env-default:"Bot" validate:"required,max=32"`
	Seed uint64 `yaml:"seed" env:"BOT_SEED" env-default:"0"`
}

type Console struct {
	Color bool `yaml:"color" env:"CONSOLE_COLOR" env-default:"true"`
}

// MustLoad - loads configuration from the yml file if it exists, otherwise from the environment.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	if err = validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) WithBot() bool {
	return that.Opponent == OpponentBot
}
