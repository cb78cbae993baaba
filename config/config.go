package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogConsole bool   `env:"LOG_CONSOLE" envDefault:"true"`

	// DemoCurrency is the currency the walkthrough charges in.
	DemoCurrency string `env:"DEMO_CURRENCY" envDefault:"USD"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
