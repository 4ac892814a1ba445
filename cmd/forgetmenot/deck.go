package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/surfmuggle/forgetmenot/internal/database"
	"github.com/surfmuggle/forgetmenot/internal/deck"
	"github.com/surfmuggle/forgetmenot/schemas"
)

func newDeckCommand() *cobra.Command {
	deckCommand := &cobra.Command{
		Use:   "deck",
		Short: "Manage decks",
	}

	deckCommand.AddCommand(newDeckListCommand())
	deckCommand.AddCommand(newDeckImportCommand())
	deckCommand.AddCommand(newDeckMigrateCommand())

	return deckCommand
}

func newDeckMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the MySQL tables used by the mysql storage backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			entries, err := schemas.Migrations.ReadDir("migrations")
			if err != nil {
				return fmt.Errorf("schemas.Migrations.ReadDir > %w", err)
			}
			sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

			for _, entry := range entries {
				content, err := schemas.Migrations.ReadFile("migrations/" + entry.Name())
				if err != nil {
					return fmt.Errorf("schemas.Migrations.ReadFile(%s) > %w", entry.Name(), err)
				}
				if _, err := db.ExecContext(cmd.Context(), string(content)); err != nil {
					return fmt.Errorf("db.ExecContext(%s) > %w", entry.Name(), err)
				}
				fmt.Printf("Applied %s\n", entry.Name())
			}
			return nil
		},
	}
}

func newDeckListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all decks with their card counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			repository, closeRepository, err := newRepository(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepository()
			}()

			decks, err := repository.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("repository.FindAll > %w", err)
			}
			if len(decks) == 0 {
				fmt.Println("No decks found. Import one with: forgetmenot deck import <name> <file>")
				return nil
			}

			for _, d := range decks {
				fmt.Printf("%s (%d cards, test method %s)\n", d.Name, len(d.Cards), d.ExercisePreference.TestMethod)
			}
			return nil
		},
	}
}

func newDeckImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <name> <file>",
		Short: "Import a deck from a Q:/A: text file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			repository, closeRepository, err := newRepository(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepository()
			}()

			name, path := args[0], args[1]
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("os.Open(%s) > %w", path, err)
			}
			defer func() {
				_ = file.Close()
			}()

			imported, err := deck.NewImporter(repository).Import(cmd.Context(), name, file)
			if err != nil {
				return fmt.Errorf("importer.Import(%s) > %w", name, err)
			}

			fmt.Printf("Imported deck %s with %d cards\n", imported.Name, len(imported.Cards))
			return nil
		},
	}
}
