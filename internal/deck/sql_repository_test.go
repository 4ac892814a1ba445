package deck

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfmuggle/forgetmenot/internal/entity"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return sqlx.NewDb(db, "sqlmock"), mock
}

func deckColumns() []string {
	return []string{
		"id", "name", "test_method", "card_reverse", "random_order", "is_question_displayed",
		"question_language", "question_auto_speak", "answer_language", "answer_auto_speak",
		"do_not_speak_text_in_brackets",
	}
}

func cardColumns() []string {
	return []string{
		"id", "question", "answer", "lap", "level_of_knowledge",
		"is_level_of_knowledge_edited_manually", "is_learned", "last_answered_at",
	}
}

func TestSQLRepositoryFindByName(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repository := NewSQLRepository(db)

	answeredAt := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT \\* FROM decks WHERE name = \\?").
		WithArgs("german").
		WillReturnRows(sqlmock.NewRows(deckColumns()).
			AddRow(1, "german", "quiz", "off", true, true, "en", false, "de", true, false))
	mock.ExpectQuery("SELECT (.+) FROM cards WHERE deck_id = \\?").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(cardColumns()).
			AddRow(11, "question", "answer", 2, 3, false, false, answeredAt).
			AddRow(12, "another", "answer two", 0, 0, false, true, nil))
	mock.ExpectQuery("SELECT (.+) FROM intervals WHERE deck_id = \\?").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"deck_id", "level_of_knowledge", "seconds"}).
			AddRow(1, 0, 28800).
			AddRow(1, 1, 86400))

	loaded, err := repository.FindByName(ctx, "german")

	require.NoError(t, err)
	assert.Equal(t, int64(1), loaded.ID)
	assert.Equal(t, entity.TestMethodQuiz, loaded.ExercisePreference.TestMethod)
	assert.True(t, loaded.ExercisePreference.RandomOrder)
	require.Len(t, loaded.Cards, 2)
	assert.Equal(t, int64(11), loaded.Cards[0].ID)
	require.NotNil(t, loaded.Cards[0].LastAnsweredAt)
	assert.Equal(t, answeredAt, *loaded.Cards[0].LastAnsweredAt)
	assert.Nil(t, loaded.Cards[1].LastAnsweredAt)
	require.NotNil(t, loaded.ExercisePreference.IntervalScheme)
	assert.Equal(t, []entity.Interval{
		{LevelOfKnowledge: 0, Value: 8 * time.Hour},
		{LevelOfKnowledge: 1, Value: 24 * time.Hour},
	}, loaded.ExercisePreference.IntervalScheme.Intervals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepositoryFindByNameNotFound(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repository := NewSQLRepository(db)

	mock.ExpectQuery("SELECT \\* FROM decks WHERE name = \\?").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(deckColumns()))

	_, err := repository.FindByName(ctx, "missing")

	assert.ErrorIs(t, err, ErrDeckNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepositorySaveCards(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repository := NewSQLRepository(db)

	answeredAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	card := &entity.Card{
		ID:               11,
		Question:         "question",
		Answer:           "answer",
		Lap:              3,
		LevelOfKnowledge: 4,
		LastAnsweredAt:   &answeredAt,
	}
	mock.ExpectExec("UPDATE cards SET").
		WithArgs(3, 4, false, false, answeredAt, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repository.SaveCards(ctx, []*entity.Card{card}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepositorySave(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repository := NewSQLRepository(db)

	deck := &entity.Deck{
		ID:   1,
		Name: "german",
		Cards: []*entity.Card{
			{ID: 11, Question: "question", Answer: "answer"},
		},
		ExercisePreference: DefaultExercisePreference(),
	}

	mock.ExpectExec("INSERT INTO decks").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO cards").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("DELETE FROM intervals WHERE deck_id = \\?").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repository.Save(ctx, deck))
	assert.NoError(t, mock.ExpectationsWereMet())
}
