package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfmuggle/forgetmenot/internal/entity"
)

func TestStateCreatorCreate(t *testing.T) {
	t.Run("single card manual deck", func(t *testing.T) {
		card := newTestCard(1, "q", "a")
		deck := newTestDeck(1, entity.ExercisePreference{TestMethod: entity.TestMethodManual}, card)
		creator := NewStateCreator(&entity.GlobalState{Decks: []*entity.Deck{deck}}, allowAnything)

		state, err := creator.Create([]int64{1}, false)

		require.NoError(t, err)
		require.Len(t, state.ExerciseCards, 1)
		assert.Equal(t, 0, state.CurrentPosition)
		manualCard, ok := state.ExerciseCards[0].(*ManualTestExerciseCard)
		require.True(t, ok)
		assert.Equal(t, card, manualCard.Base().Card)
		assert.NotEmpty(t, manualCard.Base().ID)
	})

	t.Run("no eligible card fails", func(t *testing.T) {
		card := newTestCard(1, "q", "a")
		deck := newTestDeck(1, entity.ExercisePreference{TestMethod: entity.TestMethodManual}, card)
		never := func(*entity.Card, *entity.IntervalScheme) bool { return false }
		creator := NewStateCreator(&entity.GlobalState{Decks: []*entity.Deck{deck}}, never)

		state, err := creator.Create([]int64{1}, false)

		require.ErrorIs(t, err, ErrNoCardAvailable)
		assert.Nil(t, state)
	})

	t.Run("unselected decks are ignored", func(t *testing.T) {
		deck1 := newTestDeck(1, entity.ExercisePreference{TestMethod: entity.TestMethodManual}, newTestCard(1, "q1", "a1"))
		deck2 := newTestDeck(2, entity.ExercisePreference{TestMethod: entity.TestMethodManual}, newTestCard(2, "q2", "a2"))
		creator := NewStateCreator(&entity.GlobalState{Decks: []*entity.Deck{deck1, deck2}}, allowAnything)

		state, err := creator.Create([]int64{2}, false)

		require.NoError(t, err)
		assert.Equal(t, []int64{2}, cardIDs(state.ExerciseCards))
	})

	t.Run("cards are sorted by lap ascending", func(t *testing.T) {
		card1 := newTestCard(1, "q1", "a1")
		card1.Lap = 2
		card2 := newTestCard(2, "q2", "a2")
		card3 := newTestCard(3, "q3", "a3")
		card3.Lap = 1
		deck := newTestDeck(1, entity.ExercisePreference{TestMethod: entity.TestMethodManual}, card1, card2, card3)
		creator := NewStateCreator(&entity.GlobalState{Decks: []*entity.Deck{deck}}, allowAnything)

		state, err := creator.Create([]int64{1}, false)

		require.NoError(t, err)
		assert.Equal(t, []int64{2, 3, 1}, cardIDs(state.ExerciseCards))
	})

	t.Run("learned filter applies per card", func(t *testing.T) {
		card1 := newTestCard(1, "q1", "a1")
		card1.IsLearned = true
		card2 := newTestCard(2, "q2", "a2")
		deck := newTestDeck(1, entity.ExercisePreference{TestMethod: entity.TestMethodManual}, card1, card2)
		notLearned := func(card *entity.Card, _ *entity.IntervalScheme) bool { return !card.IsLearned }
		creator := NewStateCreator(&entity.GlobalState{Decks: []*entity.Deck{deck}}, notLearned)

		state, err := creator.Create([]int64{1}, false)

		require.NoError(t, err)
		assert.Equal(t, []int64{2}, cardIDs(state.ExerciseCards))
	})
}

func TestStateCreatorCardReverse(t *testing.T) {
	tests := []struct {
		name              string
		cardReverse       entity.CardReverse
		lap               int
		expectedIsReverse bool
	}{
		{name: "off", cardReverse: entity.CardReverseOff, lap: 1, expectedIsReverse: false},
		{name: "on", cardReverse: entity.CardReverseOn, lap: 0, expectedIsReverse: true},
		{name: "every other lap with even lap", cardReverse: entity.CardReverseEveryOtherLap, lap: 2, expectedIsReverse: false},
		{name: "every other lap with odd lap", cardReverse: entity.CardReverseEveryOtherLap, lap: 3, expectedIsReverse: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := newTestCard(1, "q", "a")
			card.Lap = tt.lap
			card.LevelOfKnowledge = 4
			deck := newTestDeck(1, entity.ExercisePreference{
				TestMethod:  entity.TestMethodManual,
				CardReverse: tt.cardReverse,
			}, card)
			creator := NewStateCreator(&entity.GlobalState{Decks: []*entity.Deck{deck}}, allowAnything)

			state, err := creator.Create([]int64{1}, false)

			require.NoError(t, err)
			base := state.ExerciseCards[0].Base()
			assert.Equal(t, tt.expectedIsReverse, base.IsReverse)
			assert.Equal(t, 4, base.InitialLevelOfKnowledge, "level of knowledge is snapshotted")
		})
	}
}

func TestStateCreatorTestMethods(t *testing.T) {
	tests := []struct {
		name          string
		testMethod    entity.TestMethod
		isWalkingMode bool
		assertKind    func(t *testing.T, exerciseCard ExerciseCard)
	}{
		{
			name:       "off",
			testMethod: entity.TestMethodOff,
			assertKind: func(t *testing.T, exerciseCard ExerciseCard) {
				assert.IsType(t, &OffTestExerciseCard{}, exerciseCard)
			},
		},
		{
			name:       "manual",
			testMethod: entity.TestMethodManual,
			assertKind: func(t *testing.T, exerciseCard ExerciseCard) {
				assert.IsType(t, &ManualTestExerciseCard{}, exerciseCard)
			},
		},
		{
			name:       "quiz",
			testMethod: entity.TestMethodQuiz,
			assertKind: func(t *testing.T, exerciseCard ExerciseCard) {
				quizCard, ok := exerciseCard.(*QuizTestExerciseCard)
				require.True(t, ok)
				assert.Len(t, quizCard.Variants, QuizVariantCount)
			},
		},
		{
			name:       "entry",
			testMethod: entity.TestMethodEntry,
			assertKind: func(t *testing.T, exerciseCard ExerciseCard) {
				assert.IsType(t, &EntryTestExerciseCard{}, exerciseCard)
			},
		},
		{
			name:          "walking mode forces quiz to manual",
			testMethod:    entity.TestMethodQuiz,
			isWalkingMode: true,
			assertKind: func(t *testing.T, exerciseCard ExerciseCard) {
				assert.IsType(t, &ManualTestExerciseCard{}, exerciseCard)
			},
		},
		{
			name:          "walking mode forces entry to manual",
			testMethod:    entity.TestMethodEntry,
			isWalkingMode: true,
			assertKind: func(t *testing.T, exerciseCard ExerciseCard) {
				assert.IsType(t, &ManualTestExerciseCard{}, exerciseCard)
			},
		},
		{
			name:          "walking mode keeps off test",
			testMethod:    entity.TestMethodOff,
			isWalkingMode: true,
			assertKind: func(t *testing.T, exerciseCard ExerciseCard) {
				assert.IsType(t, &OffTestExerciseCard{}, exerciseCard)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := newTestCard(1, "q", "a")
			deck := newTestDeck(1, entity.ExercisePreference{TestMethod: tt.testMethod}, card)
			creator := NewStateCreator(&entity.GlobalState{Decks: []*entity.Deck{deck}}, allowAnything)

			state, err := creator.Create([]int64{1}, tt.isWalkingMode)

			require.NoError(t, err)
			require.Len(t, state.ExerciseCards, 1)
			tt.assertKind(t, state.ExerciseCards[0])
		})
	}
}

func TestInterleaveShallow(t *testing.T) {
	deck1 := newTestDeck(1, entity.ExercisePreference{TestMethod: entity.TestMethodManual},
		newTestCard(1, "q1", "a1"), newTestCard(2, "q2", "a2"), newTestCard(3, "q3", "a3"))
	deck2 := newTestDeck(2, entity.ExercisePreference{TestMethod: entity.TestMethodManual},
		newTestCard(4, "q4", "a4"))
	creator := NewStateCreator(&entity.GlobalState{Decks: []*entity.Deck{deck1, deck2}}, allowAnything)

	state, err := creator.Create([]int64{1, 2}, false)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4, 2, 3}, cardIDs(state.ExerciseCards),
		"decks are merged round-robin, each deck keeping its internal order")
}
