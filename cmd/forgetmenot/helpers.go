package main

import (
	"fmt"

	"github.com/surfmuggle/forgetmenot/internal/config"
	"github.com/surfmuggle/forgetmenot/internal/database"
	"github.com/surfmuggle/forgetmenot/internal/deck"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newRepository builds the deck repository selected by the configuration.
// The returned closer releases the underlying storage.
func newRepository(cfg *config.Config) (deck.Repository, func() error, error) {
	if cfg.Decks.Storage == "mysql" {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open > %w", err)
		}
		return deck.NewSQLRepository(db), db.Close, nil
	}

	repository, err := deck.NewYAMLRepository(cfg.Decks.Directory)
	if err != nil {
		return nil, nil, fmt.Errorf("deck.NewYAMLRepository(%s) > %w", cfg.Decks.Directory, err)
	}
	return repository, func() error { return nil }, nil
}
