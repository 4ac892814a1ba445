package deck

import (
	"context"
	"errors"

	"github.com/surfmuggle/forgetmenot/internal/entity"
)

// ErrDeckNotFound is returned when a deck cannot be located by name or ID.
var ErrDeckNotFound = errors.New("deck not found")

//go:generate mockgen -source=repository.go -destination=../mocks/deck/mock_repository.go -package=mock_deck Repository

// Repository persists decks. Saving a deck also persists the card fields an
// exercise session mutates: lap, level of knowledge, learned flag and last
// answered time.
type Repository interface {
	FindAll(ctx context.Context) ([]*entity.Deck, error)
	FindByName(ctx context.Context, name string) (*entity.Deck, error)
	Save(ctx context.Context, deck *entity.Deck) error
}
