// Package entity holds the domain model shared across the application:
// decks, cards and the exercise preferences that drive a session.
package entity

import "time"

// Card is a question/answer pair together with its learning metadata.
// Lap, LevelOfKnowledge, IsLearned and LastAnsweredAt are the durable side
// effects of an exercise session and are persisted by a deck repository.
type Card struct {
	ID                               int64      `db:"id" yaml:"id"`
	Question                         string     `db:"question" yaml:"question"`
	Answer                           string     `db:"answer" yaml:"answer"`
	Lap                              int        `db:"lap" yaml:"lap"`
	LevelOfKnowledge                 int        `db:"level_of_knowledge" yaml:"level_of_knowledge"`
	IsLevelOfKnowledgeEditedManually bool       `db:"is_level_of_knowledge_edited_manually" yaml:"is_level_of_knowledge_edited_manually"`
	IsLearned                        bool       `db:"is_learned" yaml:"is_learned"`
	LastAnsweredAt                   *time.Time `db:"last_answered_at" yaml:"last_answered_at,omitempty"`
}

// Deck is a named collection of cards plus the exercise preference that
// determines how its cards behave during a session.
type Deck struct {
	ID                 int64              `yaml:"id"`
	Name               string             `yaml:"name"`
	Cards              []*Card            `yaml:"cards"`
	ExercisePreference ExercisePreference `yaml:"exercise_preference"`
}

// GlobalState is the in-memory root of all decks available to a session.
type GlobalState struct {
	Decks []*Deck
}

// FindDeck returns the deck with the given ID, or nil.
func (s *GlobalState) FindDeck(id int64) *Deck {
	for _, deck := range s.Decks {
		if deck.ID == id {
			return deck
		}
	}
	return nil
}
