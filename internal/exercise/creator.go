package exercise

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/surfmuggle/forgetmenot/internal/entity"
)

// ErrNoCardAvailable is returned by StateCreator.Create when filtering
// leaves zero eligible cards across all selected decks.
var ErrNoCardAvailable = errors.New("no card is ready for exercise")

// CardFilter decides whether a card is currently available for exercise.
// The interval package provides the default implementation.
type CardFilter func(card *entity.Card, scheme *entity.IntervalScheme) bool

// State is the live state of one exercise session. It is created once by
// StateCreator, mutated by Exercise for the session's duration and then
// discarded. The underlying cards outlive it.
type State struct {
	ExerciseCards     []ExerciseCard
	CurrentPosition   int
	QuestionSelection string
	AnswerSelection   string
}

// StateCreator builds the initial session state from the selected decks.
type StateCreator struct {
	globalState *entity.GlobalState
	filter      CardFilter
	newID       func() string
	random      *rand.Rand
}

// NewStateCreator creates a StateCreator drawing cards from globalState.
// filter decides per-card eligibility.
func NewStateCreator(globalState *entity.GlobalState, filter CardFilter) *StateCreator {
	return &StateCreator{
		globalState: globalState,
		filter:      filter,
		newID:       entity.NewOccurrenceID,
		random:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Create builds a session over the given decks. Walking mode forces every
// card into a manual test because quiz and entry tests require visual or
// typed interaction.
func (c *StateCreator) Create(deckIDs []int64, isWalkingMode bool) (*State, error) {
	selected := make(map[int64]bool, len(deckIDs))
	for _, id := range deckIDs {
		selected[id] = true
	}

	perDeck := make([][]ExerciseCard, 0, len(deckIDs))
	for _, deck := range c.globalState.Decks {
		if !selected[deck.ID] {
			continue
		}

		cards := make([]*entity.Card, 0, len(deck.Cards))
		for _, card := range deck.Cards {
			if c.filter(card, deck.ExercisePreference.IntervalScheme) {
				cards = append(cards, card)
			}
		}
		if deck.ExercisePreference.RandomOrder {
			c.random.Shuffle(len(cards), func(i, j int) {
				cards[i], cards[j] = cards[j], cards[i]
			})
		}
		// Stable: the shuffle order among equal laps is preserved.
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].Lap < cards[j].Lap
		})

		exerciseCards := make([]ExerciseCard, 0, len(cards))
		for _, card := range cards {
			exerciseCards = append(exerciseCards, c.toExerciseCard(card, deck, isWalkingMode))
		}
		if len(exerciseCards) > 0 {
			perDeck = append(perDeck, exerciseCards)
		}
	}

	exerciseCards := interleaveShallow(perDeck)
	if len(exerciseCards) == 0 {
		return nil, ErrNoCardAvailable
	}
	return &State{ExerciseCards: exerciseCards}, nil
}

func (c *StateCreator) toExerciseCard(
	card *entity.Card,
	deck *entity.Deck,
	isWalkingMode bool,
) ExerciseCard {
	var isReverse bool
	switch deck.ExercisePreference.CardReverse {
	case entity.CardReverseOff:
		isReverse = false
	case entity.CardReverseOn:
		isReverse = true
	case entity.CardReverseEveryOtherLap:
		isReverse = card.Lap%2 == 1
	}

	base := &Base{
		ID:                      c.newID(),
		Card:                    card,
		Deck:                    deck,
		IsReverse:               isReverse,
		IsQuestionDisplayed:     deck.ExercisePreference.IsQuestionDisplayed,
		InitialLevelOfKnowledge: card.LevelOfKnowledge,
	}

	switch deck.ExercisePreference.TestMethod {
	case entity.TestMethodOff:
		return NewOffTestExerciseCard(base)
	case entity.TestMethodManual:
		return NewManualTestExerciseCard(base)
	case entity.TestMethodQuiz:
		if isWalkingMode {
			return NewManualTestExerciseCard(base)
		}
		variants := ComposeQuizVariants(c.random, card, deck, isReverse)
		return NewQuizTestExerciseCard(base, variants)
	case entity.TestMethodEntry:
		if isWalkingMode {
			return NewManualTestExerciseCard(base)
		}
		return NewEntryTestExerciseCard(base)
	default:
		panic(fmt.Sprintf("unknown test method %q", deck.ExercisePreference.TestMethod))
	}
}

// interleaveShallow merges the per-deck lists round-robin, preserving each
// deck's internal relative order. Plain concatenation would produce long
// monotonous runs from a single deck when several decks are selected.
func interleaveShallow(lists [][]ExerciseCard) []ExerciseCard {
	total := 0
	for _, list := range lists {
		total += len(list)
	}
	merged := make([]ExerciseCard, 0, total)
	for len(merged) < total {
		for i, list := range lists {
			if len(list) == 0 {
				continue
			}
			merged = append(merged, list[0])
			lists[i] = list[1:]
		}
	}
	return merged
}
