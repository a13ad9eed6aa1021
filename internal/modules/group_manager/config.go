package group_manager

import (
	"errors"
	"time"
)

// ErrMissingSeedFile is returned when the memory store is selected without a seed file.
var ErrMissingSeedFile = errors.New("GROUP_STORE_SEED_FILE is required for the memory group store")

// Config holds the group manager module configuration.
type Config struct {
	SearchChannels []string      `env:"GROUP_SEARCH_CHANNELS"    envDefault:"bot-commands,permanent-testing" envSeparator:","`
	WaitWindow     time.Duration `env:"GROUP_SEARCH_WAIT_WINDOW" envDefault:"60s"`
	StoreDriver    string        `env:"GROUP_STORE_DRIVER"       envDefault:"sqlite"`
	StoreDSN       string        `env:"GROUP_STORE_DSN"          envDefault:"yesbot.db"`
	StoreSeedFile  string        `env:"GROUP_STORE_SEED_FILE"`
}

func (c *Config) validate() error {
	if c.StoreDriver == "memory" && c.StoreSeedFile == "" {
		return ErrMissingSeedFile
	}
	return nil
}
