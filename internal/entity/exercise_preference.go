package entity

import "time"

// TestMethod selects how a card is tested during an exercise.
type TestMethod string

const (
	TestMethodOff    TestMethod = "off"
	TestMethodManual TestMethod = "manual"
	TestMethodQuiz   TestMethod = "quiz"
	TestMethodEntry  TestMethod = "entry"
)

// CardReverse controls whether question and answer are swapped.
type CardReverse string

const (
	CardReverseOff           CardReverse = "off"
	CardReverseOn            CardReverse = "on"
	CardReverseEveryOtherLap CardReverse = "every_other_lap"
)

// ExercisePreference is the per-deck configuration a session is built from.
// It is read at session-build time; the relevant values are frozen into each
// exercise card so later edits don't alter an in-progress session.
type ExercisePreference struct {
	TestMethod          TestMethod      `yaml:"test_method"`
	CardReverse         CardReverse     `yaml:"card_reverse"`
	RandomOrder         bool            `yaml:"random_order"`
	IsQuestionDisplayed bool            `yaml:"is_question_displayed"`
	Pronunciation       Pronunciation   `yaml:"pronunciation"`
	IntervalScheme      *IntervalScheme `yaml:"interval_scheme,omitempty"`
}

// Pronunciation holds the text-to-speech settings for both sides of a card.
type Pronunciation struct {
	QuestionLanguage         string `yaml:"question_language"`
	QuestionAutoSpeak        bool   `yaml:"question_auto_speak"`
	AnswerLanguage           string `yaml:"answer_language"`
	AnswerAutoSpeak          bool   `yaml:"answer_auto_speak"`
	DoNotSpeakTextInBrackets bool   `yaml:"do_not_speak_text_in_brackets"`
}

// Reversed returns the pronunciation with question and answer sides swapped.
func (p Pronunciation) Reversed() Pronunciation {
	return Pronunciation{
		QuestionLanguage:         p.AnswerLanguage,
		QuestionAutoSpeak:        p.AnswerAutoSpeak,
		AnswerLanguage:           p.QuestionLanguage,
		AnswerAutoSpeak:          p.QuestionAutoSpeak,
		DoNotSpeakTextInBrackets: p.DoNotSpeakTextInBrackets,
	}
}

// IntervalScheme maps a level of knowledge to the minimum time that has to
// pass since the last answer before a card becomes available again.
type IntervalScheme struct {
	ID        int64      `yaml:"id"`
	Intervals []Interval `yaml:"intervals"`
}

// Interval is one step of an interval scheme.
type Interval struct {
	LevelOfKnowledge int           `yaml:"level_of_knowledge"`
	Value            time.Duration `yaml:"value"`
}
