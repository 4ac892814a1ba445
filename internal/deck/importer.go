package deck

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/surfmuggle/forgetmenot/internal/entity"
)

// ErrDeckAlreadyExists is returned when importing under a taken deck name.
var ErrDeckAlreadyExists = errors.New("deck already exists")

// DefaultExercisePreference is applied to imported decks until the user
// edits it.
func DefaultExercisePreference() entity.ExercisePreference {
	return entity.ExercisePreference{
		TestMethod:          entity.TestMethodManual,
		CardReverse:         entity.CardReverseOff,
		IsQuestionDisplayed: true,
	}
}

// Importer turns parsed deck text into a persisted deck.
type Importer struct {
	repository Repository
}

// NewImporter creates an Importer writing through repository.
func NewImporter(repository Repository) *Importer {
	return &Importer{repository: repository}
}

// Import parses the deck text and saves it under name. Deck and card IDs
// continue from the highest IDs already in the repository, so card IDs stay
// unique across decks.
func (i *Importer) Import(ctx context.Context, name string, r io.Reader) (*entity.Deck, error) {
	existing, err := i.repository.FindByName(ctx, name)
	if err != nil && !errors.Is(err, ErrDeckNotFound) {
		return nil, fmt.Errorf("repository.FindByName(%s) > %w", name, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%q: %w", name, ErrDeckAlreadyExists)
	}

	prototypes, err := ParseCards(r)
	if err != nil {
		return nil, fmt.Errorf("ParseCards() > %w", err)
	}

	decks, err := i.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository.FindAll() > %w", err)
	}
	nextDeckID, nextCardID := nextIDs(decks)

	deck := &entity.Deck{
		ID:                 nextDeckID,
		Name:               name,
		ExercisePreference: DefaultExercisePreference(),
	}
	for _, prototype := range prototypes {
		deck.Cards = append(deck.Cards, &entity.Card{
			ID:       nextCardID,
			Question: prototype.Question,
			Answer:   prototype.Answer,
		})
		nextCardID++
	}

	if err := i.repository.Save(ctx, deck); err != nil {
		return nil, fmt.Errorf("repository.Save(%s) > %w", name, err)
	}
	return deck, nil
}

func nextIDs(decks []*entity.Deck) (deckID int64, cardID int64) {
	deckID, cardID = 1, 1
	for _, deck := range decks {
		if deck.ID >= deckID {
			deckID = deck.ID + 1
		}
		for _, card := range deck.Cards {
			if card.ID >= cardID {
				cardID = card.ID + 1
			}
		}
	}
	return deckID, cardID
}
