// Package testutil provides shared test helpers for creating config files and deck fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/surfmuggle/forgetmenot/internal/entity"
)

// SetupTestConfig creates a minimal config file and all required directories for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	decksDir := filepath.Join(tmpDir, "decks")
	reportsDir := filepath.Join(tmpDir, "reports")
	require.NoError(t, os.MkdirAll(decksDir, 0755))
	require.NoError(t, os.MkdirAll(reportsDir, 0755))

	configContent := fmt.Sprintf(`decks:
  directory: %s
  storage: yaml
outputs:
  report_directory: %s
`, decksDir, reportsDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// DecksDirectory returns the decks directory SetupTestConfig created under tmpDir.
func DecksDirectory(tmpDir string) string {
	return filepath.Join(tmpDir, "decks")
}

// CreateDeckFile writes a deck fixture in the repository's YAML layout.
func CreateDeckFile(t *testing.T, decksDir string, deck *entity.Deck) string {
	t.Helper()

	content, err := yaml.Marshal(deck)
	require.NoError(t, err)

	path := filepath.Join(decksDir, deck.Name+".yml")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

// NewManualDeck builds an in-memory deck fixture with manual testing enabled.
func NewManualDeck(id int64, name string, cards ...*entity.Card) *entity.Deck {
	return &entity.Deck{
		ID:    id,
		Name:  name,
		Cards: cards,
		ExercisePreference: entity.ExercisePreference{
			TestMethod:          entity.TestMethodManual,
			CardReverse:         entity.CardReverseOff,
			IsQuestionDisplayed: true,
		},
	}
}
