package exercise

import (
	"fmt"
	"math/rand"

	"github.com/surfmuggle/forgetmenot/internal/entity"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func newTestCard(id int64, question, answer string) *entity.Card {
	return &entity.Card{
		ID:       id,
		Question: question,
		Answer:   answer,
	}
}

func newTestDeck(id int64, preference entity.ExercisePreference, cards ...*entity.Card) *entity.Deck {
	return &entity.Deck{
		ID:                 id,
		Name:               fmt.Sprintf("deck-%d", id),
		Cards:              cards,
		ExercisePreference: preference,
	}
}

func newTestBase(card *entity.Card, deck *entity.Deck) *Base {
	return &Base{
		ID:                      entity.NewOccurrenceID(),
		Card:                    card,
		Deck:                    deck,
		InitialLevelOfKnowledge: card.LevelOfKnowledge,
	}
}

func allowAnything(*entity.Card, *entity.IntervalScheme) bool { return true }

func cardIDs(exerciseCards []ExerciseCard) []int64 {
	ids := make([]int64, 0, len(exerciseCards))
	for _, exerciseCard := range exerciseCards {
		ids = append(ids, exerciseCard.Base().Card.ID)
	}
	return ids
}
