package deck

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/surfmuggle/forgetmenot/internal/entity"
)

// SQLRepository persists decks in MySQL via sqlx. Besides the Repository
// interface it offers SaveCards for the narrow post-session update of the
// mutated card rows.
type SQLRepository struct {
	db *sqlx.DB
}

// NewSQLRepository creates a SQLRepository over an open connection.
func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

type deckRow struct {
	ID                       int64  `db:"id"`
	Name                     string `db:"name"`
	TestMethod               string `db:"test_method"`
	CardReverse              string `db:"card_reverse"`
	RandomOrder              bool   `db:"random_order"`
	IsQuestionDisplayed      bool   `db:"is_question_displayed"`
	QuestionLanguage         string `db:"question_language"`
	QuestionAutoSpeak        bool   `db:"question_auto_speak"`
	AnswerLanguage           string `db:"answer_language"`
	AnswerAutoSpeak          bool   `db:"answer_auto_speak"`
	DoNotSpeakTextInBrackets bool   `db:"do_not_speak_text_in_brackets"`
}

type intervalRow struct {
	DeckID           int64 `db:"deck_id"`
	LevelOfKnowledge int   `db:"level_of_knowledge"`
	Seconds          int64 `db:"seconds"`
}

// FindAll loads all decks with their cards and interval schemes.
func (r *SQLRepository) FindAll(ctx context.Context) ([]*entity.Deck, error) {
	var rows []deckRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM decks ORDER BY name"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(decks) > %w", err)
	}

	decks := make([]*entity.Deck, 0, len(rows))
	for _, row := range rows {
		deck, err := r.loadDeck(ctx, row)
		if err != nil {
			return nil, err
		}
		decks = append(decks, deck)
	}
	return decks, nil
}

// FindByName loads a single deck with its cards and interval scheme.
func (r *SQLRepository) FindByName(ctx context.Context, name string) (*entity.Deck, error) {
	var row deckRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM decks WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", name, ErrDeckNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(deck) > %w", err)
	}
	return r.loadDeck(ctx, row)
}

func (r *SQLRepository) loadDeck(ctx context.Context, row deckRow) (*entity.Deck, error) {
	var cards []*entity.Card
	if err := r.db.SelectContext(ctx, &cards,
		"SELECT id, question, answer, lap, level_of_knowledge, is_level_of_knowledge_edited_manually, is_learned, last_answered_at FROM cards WHERE deck_id = ? ORDER BY id",
		row.ID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(cards) > %w", err)
	}

	var intervalRows []intervalRow
	if err := r.db.SelectContext(ctx, &intervalRows,
		"SELECT deck_id, level_of_knowledge, seconds FROM intervals WHERE deck_id = ? ORDER BY level_of_knowledge",
		row.ID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(intervals) > %w", err)
	}
	var scheme *entity.IntervalScheme
	if len(intervalRows) > 0 {
		scheme = &entity.IntervalScheme{ID: row.ID}
		for _, step := range intervalRows {
			scheme.Intervals = append(scheme.Intervals, entity.Interval{
				LevelOfKnowledge: step.LevelOfKnowledge,
				Value:            time.Duration(step.Seconds) * time.Second,
			})
		}
	}

	return &entity.Deck{
		ID:    row.ID,
		Name:  row.Name,
		Cards: cards,
		ExercisePreference: entity.ExercisePreference{
			TestMethod:          entity.TestMethod(row.TestMethod),
			CardReverse:         entity.CardReverse(row.CardReverse),
			RandomOrder:         row.RandomOrder,
			IsQuestionDisplayed: row.IsQuestionDisplayed,
			Pronunciation: entity.Pronunciation{
				QuestionLanguage:         row.QuestionLanguage,
				QuestionAutoSpeak:        row.QuestionAutoSpeak,
				AnswerLanguage:           row.AnswerLanguage,
				AnswerAutoSpeak:          row.AnswerAutoSpeak,
				DoNotSpeakTextInBrackets: row.DoNotSpeakTextInBrackets,
			},
			IntervalScheme: scheme,
		},
	}, nil
}

// Save upserts the deck row and all of its cards and interval steps.
func (r *SQLRepository) Save(ctx context.Context, deck *entity.Deck) error {
	preference := deck.ExercisePreference
	pronunciation := preference.Pronunciation
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO decks (id, name, test_method, card_reverse, random_order, is_question_displayed,
			question_language, question_auto_speak, answer_language, answer_auto_speak, do_not_speak_text_in_brackets)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE name = VALUES(name), test_method = VALUES(test_method),
			card_reverse = VALUES(card_reverse), random_order = VALUES(random_order),
			is_question_displayed = VALUES(is_question_displayed),
			question_language = VALUES(question_language), question_auto_speak = VALUES(question_auto_speak),
			answer_language = VALUES(answer_language), answer_auto_speak = VALUES(answer_auto_speak),
			do_not_speak_text_in_brackets = VALUES(do_not_speak_text_in_brackets)`,
		deck.ID, deck.Name, preference.TestMethod, preference.CardReverse,
		preference.RandomOrder, preference.IsQuestionDisplayed,
		pronunciation.QuestionLanguage, pronunciation.QuestionAutoSpeak,
		pronunciation.AnswerLanguage, pronunciation.AnswerAutoSpeak,
		pronunciation.DoNotSpeakTextInBrackets); err != nil {
		return fmt.Errorf("db.ExecContext(upsert deck) > %w", err)
	}

	for _, card := range deck.Cards {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO cards (id, deck_id, question, answer, lap, level_of_knowledge,
				is_level_of_knowledge_edited_manually, is_learned, last_answered_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE question = VALUES(question), answer = VALUES(answer),
				lap = VALUES(lap), level_of_knowledge = VALUES(level_of_knowledge),
				is_level_of_knowledge_edited_manually = VALUES(is_level_of_knowledge_edited_manually),
				is_learned = VALUES(is_learned), last_answered_at = VALUES(last_answered_at)`,
			card.ID, deck.ID, card.Question, card.Answer, card.Lap, card.LevelOfKnowledge,
			card.IsLevelOfKnowledgeEditedManually, card.IsLearned, card.LastAnsweredAt); err != nil {
			return fmt.Errorf("db.ExecContext(upsert card %d) > %w", card.ID, err)
		}
	}

	if _, err := r.db.ExecContext(ctx, "DELETE FROM intervals WHERE deck_id = ?", deck.ID); err != nil {
		return fmt.Errorf("db.ExecContext(delete intervals) > %w", err)
	}
	if preference.IntervalScheme != nil {
		for _, step := range preference.IntervalScheme.Intervals {
			if _, err := r.db.ExecContext(ctx,
				"INSERT INTO intervals (deck_id, level_of_knowledge, seconds) VALUES (?, ?, ?)",
				deck.ID, step.LevelOfKnowledge, int64(step.Value/time.Second)); err != nil {
				return fmt.Errorf("db.ExecContext(insert interval) > %w", err)
			}
		}
	}
	return nil
}

// SaveCards updates only the session-mutated fields of the given cards.
func (r *SQLRepository) SaveCards(ctx context.Context, cards []*entity.Card) error {
	for _, card := range cards {
		if _, err := r.db.ExecContext(ctx,
			`UPDATE cards SET lap = ?, level_of_knowledge = ?,
				is_level_of_knowledge_edited_manually = ?, is_learned = ?, last_answered_at = ?
			WHERE id = ?`,
			card.Lap, card.LevelOfKnowledge, card.IsLevelOfKnowledgeEditedManually,
			card.IsLearned, card.LastAnsweredAt, card.ID); err != nil {
			return fmt.Errorf("db.ExecContext(update card %d) > %w", card.ID, err)
		}
	}
	return nil
}
