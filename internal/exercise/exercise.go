package exercise

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/surfmuggle/forgetmenot/internal/entity"
	"github.com/surfmuggle/forgetmenot/internal/speech"
)

var bracketedText = regexp.MustCompile(`\[[^\[\]]*\]`)

// Exercise owns the live session state. All mutation goes through its
// methods; callers must serialize calls, there is no internal locking.
type Exercise struct {
	state                *State
	speaker              speech.Speaker
	currentExerciseCard  ExerciseCard
	currentPronunciation entity.Pronunciation

	now    func() time.Time
	newID  func() string
	random *rand.Rand
}

// New creates an engine over state and positions it on the current card.
// Auto-speak of the first question fires here if enabled.
func New(state *State, speaker speech.Speaker) *Exercise {
	e := &Exercise{
		state:   state,
		speaker: speaker,
		now:     time.Now,
		newID:   entity.NewOccurrenceID,
		random:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	e.SetCurrentPosition(state.CurrentPosition)
	return e
}

// State returns the session state the engine operates on.
func (e *Exercise) State() *State { return e.state }

// CurrentExerciseCard returns the occurrence at the current position.
func (e *Exercise) CurrentExerciseCard() ExerciseCard { return e.currentExerciseCard }

// SetCurrentPosition moves the cursor. Positions past the end are ignored.
func (e *Exercise) SetCurrentPosition(position int) {
	if position >= len(e.state.ExerciseCards) {
		return
	}
	e.state.CurrentPosition = position
	e.currentExerciseCard = e.state.ExerciseCards[position]
	e.setCurrentPronunciation()
	if e.currentPronunciation.QuestionAutoSpeak {
		e.speakQuestion()
	}
}

func (e *Exercise) setCurrentPronunciation() {
	pronunciation := e.currentExerciseCard.Base().Deck.ExercisePreference.Pronunciation
	if e.currentExerciseCard.Base().IsReverse {
		pronunciation = pronunciation.Reversed()
	}
	e.currentPronunciation = pronunciation
}

// ShowQuestion marks the current card's question as displayed. Idempotent.
func (e *Exercise) ShowQuestion() {
	e.currentExerciseCard.Base().IsQuestionDisplayed = true
}

// SetQuestionSelection highlights a substring of the question for selective
// pronunciation. Clears any answer selection.
func (e *Exercise) SetQuestionSelection(selection string) {
	e.state.QuestionSelection = selection
	e.state.AnswerSelection = ""
}

// SetAnswerSelection highlights a substring of the answer for selective
// pronunciation. Clears any question selection.
func (e *Exercise) SetAnswerSelection(selection string) {
	e.state.AnswerSelection = selection
	e.state.QuestionSelection = ""
}

// SetIsCardLearned flags the underlying card; exercise-card state is not
// affected.
func (e *Exercise) SetIsCardLearned(isLearned bool) {
	e.currentExerciseCard.Base().Card.IsLearned = isLearned
}

// Speak pronounces, in priority order: the question selection, the answer
// selection, the answer once the card is answered, otherwise the question.
func (e *Exercise) Speak() {
	switch {
	case e.state.QuestionSelection != "":
		e.speak(e.state.QuestionSelection, e.currentPronunciation.QuestionLanguage)
	case e.state.AnswerSelection != "":
		e.speak(e.state.AnswerSelection, e.currentPronunciation.AnswerLanguage)
	case e.isAnswered():
		e.speakAnswer()
	default:
		e.speakQuestion()
	}
}

func (e *Exercise) isAnswered() bool {
	return e.currentExerciseCard.Base().IsAnswerCorrect != nil
}

func (e *Exercise) speakQuestion() {
	e.speak(e.currentExerciseCard.Base().Question(), e.currentPronunciation.QuestionLanguage)
}

func (e *Exercise) speakAnswer() {
	e.speak(e.currentExerciseCard.Base().Answer(), e.currentPronunciation.AnswerLanguage)
}

func (e *Exercise) speak(text, language string) {
	if e.currentPronunciation.DoNotSpeakTextInBrackets {
		text = strings.TrimSpace(bracketedText.ReplaceAllString(text, " "))
	}
	e.speaker.Speak(text, language)
}

// SetLevelOfKnowledge overrides the current card's score manually, which
// suppresses automatic recomputation for this occurrence from now on.
func (e *Exercise) SetLevelOfKnowledge(levelOfKnowledge int) {
	e.currentExerciseCard.Base().Card.LevelOfKnowledge = levelOfKnowledge
	e.currentExerciseCard.Base().IsLevelOfKnowledgeEditedManually = true
}

// Answer processes an answer submission. An answer kind that doesn't match
// the current exercise-card variant is silently ignored: the UI should never
// produce it, but stale or duplicate events must not corrupt the session.
func (e *Exercise) Answer(answer Answer) {
	switch a := answer.(type) {
	case Show:
		if _, ok := e.currentExerciseCard.(*OffTestExerciseCard); ok {
			e.setAnswerCorrect()
		}
	case Remember:
		if _, ok := e.currentExerciseCard.(*ManualTestExerciseCard); ok {
			e.setAnswerCorrect()
		}
	case NotRemember:
		if _, ok := e.currentExerciseCard.(*ManualTestExerciseCard); ok {
			e.setAnswerWrong()
		}
	case Variant:
		if card, ok := e.currentExerciseCard.(*QuizTestExerciseCard); ok {
			e.checkVariant(card, a.Index)
		}
	case Entry:
		if card, ok := e.currentExerciseCard.(*EntryTestExerciseCard); ok {
			e.checkEntry(card, a.UserAnswer)
		}
	}
}

func (e *Exercise) checkVariant(quizCard *QuizTestExerciseCard, variantIndex int) {
	if quizCard.SelectedVariantIndex != nil ||
		variantIndex < 0 || variantIndex >= len(quizCard.Variants) {
		return
	}
	quizCard.SelectedVariantIndex = &variantIndex
	selected := quizCard.Variants[variantIndex]
	if selected != nil && selected.ID == quizCard.base.Card.ID {
		e.setAnswerCorrect()
	} else {
		e.setAnswerWrong()
	}
}

func (e *Exercise) checkEntry(entryCard *EntryTestExerciseCard, userAnswer string) {
	if entryCard.UserAnswer != nil {
		return
	}
	entryCard.UserAnswer = &userAnswer
	// Case-sensitive comparison after trimming surrounding whitespace.
	if strings.TrimSpace(userAnswer) == strings.TrimSpace(entryCard.base.Answer()) {
		e.setAnswerCorrect()
	} else {
		e.setAnswerWrong()
	}
}

// Correctness is terminal: once an occurrence has been answered, later
// answers on the same occurrence are ignored.
func (e *Exercise) setAnswerCorrect() {
	base := e.currentExerciseCard.Base()
	if base.IsAnswerCorrect != nil {
		return
	}
	e.speakAnswerIfNeeded()
	e.incrementLapIfAnsweredForTheFirstTime()
	isCorrect := true
	base.IsAnswerCorrect = &isCorrect
	e.ShowQuestion()
	e.updateLevelOfKnowledge()
	e.deleteAllRetestedCards()
	e.updateLastAnsweredAt()
}

func (e *Exercise) setAnswerWrong() {
	base := e.currentExerciseCard.Base()
	if base.IsAnswerCorrect != nil {
		return
	}
	e.speakAnswerIfNeeded()
	e.incrementLapIfAnsweredForTheFirstTime()
	isCorrect := false
	base.IsAnswerCorrect = &isCorrect
	e.ShowQuestion()
	e.updateLevelOfKnowledge()
	e.addExerciseCardToRetestIfNeeded()
	e.updateLastAnsweredAt()
}

func (e *Exercise) speakAnswerIfNeeded() {
	if e.currentPronunciation.AnswerAutoSpeak && !e.isAnswered() {
		e.speakAnswer()
	}
}

// The lap counter grows once per card per session: a retest of an already
// answered card must not count as another review cycle.
func (e *Exercise) incrementLapIfAnsweredForTheFirstTime() {
	cardID := e.currentExerciseCard.Base().Card.ID
	for _, exerciseCard := range e.state.ExerciseCards {
		if exerciseCard.Base().Card.ID == cardID && exerciseCard.Base().IsAnswerCorrect != nil {
			return
		}
	}
	e.currentExerciseCard.Base().Card.Lap++
}

func (e *Exercise) updateLevelOfKnowledge() {
	base := e.currentExerciseCard.Base()
	if base.IsLevelOfKnowledgeEditedManually {
		return
	}
	numberOfCorrect, numberOfWrong := 0, 0
	for _, exerciseCard := range e.state.ExerciseCards {
		if exerciseCard.Base().Card.ID != base.Card.ID {
			continue
		}
		switch isCorrect := exerciseCard.Base().IsAnswerCorrect; {
		case isCorrect == nil:
		case *isCorrect:
			numberOfCorrect++
		default:
			numberOfWrong++
		}
	}
	if numberOfWrong > 0 {
		base.Card.LevelOfKnowledge = max(0, base.InitialLevelOfKnowledge-numberOfWrong)
	} else if numberOfCorrect > 0 {
		base.Card.LevelOfKnowledge = base.InitialLevelOfKnowledge + 1
	}
}

// A correct answer supersedes any pending retest: every later occurrence of
// the same card is removed.
func (e *Exercise) deleteAllRetestedCards() {
	if !e.hasExerciseCardToRetest() {
		return
	}
	cardID := e.currentExerciseCard.Base().Card.ID
	filtered := make([]ExerciseCard, 0, len(e.state.ExerciseCards))
	for i, exerciseCard := range e.state.ExerciseCards {
		if exerciseCard.Base().Card.ID == cardID && i > e.state.CurrentPosition {
			continue
		}
		filtered = append(filtered, exerciseCard)
	}
	e.state.ExerciseCards = filtered
}

// A wrong answer appends one fresh retest occurrence unless one is already
// pending later in the list.
func (e *Exercise) addExerciseCardToRetestIfNeeded() {
	if e.hasExerciseCardToRetest() {
		return
	}
	current := e.currentExerciseCard.Base()
	base := &Base{
		ID:                               e.newID(),
		Card:                             current.Card,
		Deck:                             current.Deck,
		IsReverse:                        current.IsReverse,
		IsQuestionDisplayed:              current.Deck.ExercisePreference.IsQuestionDisplayed,
		InitialLevelOfKnowledge:          current.InitialLevelOfKnowledge,
		IsLevelOfKnowledgeEditedManually: current.IsLevelOfKnowledgeEditedManually,
	}
	var retested ExerciseCard
	switch e.currentExerciseCard.(type) {
	case *OffTestExerciseCard:
		retested = NewOffTestExerciseCard(base)
	case *ManualTestExerciseCard:
		retested = NewManualTestExerciseCard(base)
	case *QuizTestExerciseCard:
		variants := ComposeQuizVariants(e.random, base.Card, base.Deck, base.IsReverse)
		retested = NewQuizTestExerciseCard(base, variants)
	case *EntryTestExerciseCard:
		retested = NewEntryTestExerciseCard(base)
	default:
		panic(fmt.Sprintf("unknown exercise card type %T", e.currentExerciseCard))
	}
	e.state.ExerciseCards = append(e.state.ExerciseCards, retested)
}

func (e *Exercise) hasExerciseCardToRetest() bool {
	cardID := e.currentExerciseCard.Base().Card.ID
	for _, exerciseCard := range e.state.ExerciseCards[e.state.CurrentPosition+1:] {
		if exerciseCard.Base().Card.ID == cardID {
			return true
		}
	}
	return false
}

func (e *Exercise) updateLastAnsweredAt() {
	answeredAt := e.now()
	e.currentExerciseCard.Base().Card.LastAnsweredAt = &answeredAt
}
