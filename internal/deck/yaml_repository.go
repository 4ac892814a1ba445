package deck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/surfmuggle/forgetmenot/internal/entity"
)

// YAMLRepository stores one deck per YAML file under a directory. The file
// name is the deck name.
type YAMLRepository struct {
	directory string
}

// NewYAMLRepository creates a YAMLRepository rooted at directory, creating
// it if necessary.
func NewYAMLRepository(directory string) (*YAMLRepository, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}
	return &YAMLRepository{directory: directory}, nil
}

// FindAll loads every deck file in the directory, sorted by deck name.
func (r *YAMLRepository) FindAll(_ context.Context) ([]*entity.Deck, error) {
	entries, err := os.ReadDir(r.directory)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", r.directory, err)
	}

	decks := make([]*entity.Deck, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yml") {
			continue
		}
		deck, err := r.readDeckFile(filepath.Join(r.directory, entry.Name()))
		if err != nil {
			return nil, err
		}
		decks = append(decks, deck)
	}
	sort.Slice(decks, func(i, j int) bool { return decks[i].Name < decks[j].Name })
	return decks, nil
}

// FindByName loads a single deck file.
func (r *YAMLRepository) FindByName(_ context.Context, name string) (*entity.Deck, error) {
	path := r.deckPath(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%q: %w", name, ErrDeckNotFound)
	}
	return r.readDeckFile(path)
}

// Save writes the deck, overwriting any previous file.
func (r *YAMLRepository) Save(_ context.Context, deck *entity.Deck) error {
	file, err := os.Create(r.deckPath(deck.Name))
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", r.deckPath(deck.Name), err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewEncoder(file).Encode(deck); err != nil {
		return fmt.Errorf("yaml.NewEncoder().Encode() > %w", err)
	}
	return nil
}

func (r *YAMLRepository) readDeckFile(path string) (*entity.Deck, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var deck entity.Deck
	if err := yaml.NewDecoder(file).Decode(&deck); err != nil {
		return nil, fmt.Errorf("yaml.NewDecoder().Decode(%s) > %w", path, err)
	}
	return &deck, nil
}

func (r *YAMLRepository) deckPath(name string) string {
	return filepath.Join(r.directory, name+".yml")
}
