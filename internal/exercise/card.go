// Package exercise implements the exercise session engine: building an
// ordered test sequence from a pool of decks, tracking answer correctness,
// recomputing levels of knowledge and re-queueing wrong answers for retest
// within the same session.
package exercise

import "github.com/surfmuggle/forgetmenot/internal/entity"

// Base is the per-session wrapper around one occurrence of a card. The same
// card can appear multiple times across retest cycles; each occurrence has
// its own ID.
type Base struct {
	ID                               string
	Card                             *entity.Card
	Deck                             *entity.Deck
	IsReverse                        bool
	IsQuestionDisplayed              bool
	IsAnswerCorrect                  *bool
	InitialLevelOfKnowledge          int
	IsLevelOfKnowledgeEditedManually bool
}

// Question returns the text shown as the question for this occurrence,
// honoring the frozen reverse flag.
func (b *Base) Question() string {
	if b.IsReverse {
		return b.Card.Answer
	}
	return b.Card.Question
}

// Answer returns the text expected as the answer for this occurrence.
func (b *Base) Answer() string {
	if b.IsReverse {
		return b.Card.Question
	}
	return b.Card.Answer
}

// ExerciseCard is the tagged variant over Base: exactly one of the four test
// methods. The implementing set is sealed within this package.
type ExerciseCard interface {
	Base() *Base
	sealed()
}

// OffTestExerciseCard is an occurrence without testing; the answer is simply
// shown.
type OffTestExerciseCard struct {
	base *Base
}

func NewOffTestExerciseCard(base *Base) *OffTestExerciseCard {
	return &OffTestExerciseCard{base: base}
}

func (c *OffTestExerciseCard) Base() *Base { return c.base }
func (c *OffTestExerciseCard) sealed()     {}

// ManualTestExerciseCard is an occurrence where the user self-reports
// remember/not-remember.
type ManualTestExerciseCard struct {
	base *Base
}

func NewManualTestExerciseCard(base *Base) *ManualTestExerciseCard {
	return &ManualTestExerciseCard{base: base}
}

func (c *ManualTestExerciseCard) Base() *Base { return c.base }
func (c *ManualTestExerciseCard) sealed()     {}

// QuizTestExerciseCard is an occurrence tested by multiple choice. Variants
// always has length 4; a nil entry means "no such option".
type QuizTestExerciseCard struct {
	base                 *Base
	Variants             []*entity.Card
	SelectedVariantIndex *int
}

func NewQuizTestExerciseCard(base *Base, variants []*entity.Card) *QuizTestExerciseCard {
	return &QuizTestExerciseCard{base: base, Variants: variants}
}

func (c *QuizTestExerciseCard) Base() *Base { return c.base }
func (c *QuizTestExerciseCard) sealed()     {}

// EntryTestExerciseCard is an occurrence tested by typing the answer.
type EntryTestExerciseCard struct {
	base       *Base
	UserAnswer *string
}

func NewEntryTestExerciseCard(base *Base) *EntryTestExerciseCard {
	return &EntryTestExerciseCard{base: base}
}

func (c *EntryTestExerciseCard) Base() *Base { return c.base }
func (c *EntryTestExerciseCard) sealed()     {}
