package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfmuggle/forgetmenot/internal/entity"
)

func TestCalculateStatistics(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	answeredRecently := now.Add(-time.Hour)
	answeredLongAgo := now.Add(-30 * 24 * time.Hour)

	tests := []struct {
		name  string
		decks []*entity.Deck
		want  StatisticsResult
	}{
		{
			name:  "no decks",
			decks: nil,
			want: StatisticsResult{
				Decks: []DeckStatistics{},
			},
		},
		{
			name: "counts learned, answered and available cards",
			decks: []*entity.Deck{
				{
					Name: "french",
					Cards: []*entity.Card{
						{ID: 1, LevelOfKnowledge: 2, LastAnsweredAt: &answeredRecently},
						{ID: 2, LevelOfKnowledge: 4, IsLearned: true},
						{ID: 3},
					},
					ExercisePreference: entity.ExercisePreference{
						IntervalScheme: &entity.IntervalScheme{
							Intervals: []entity.Interval{
								{LevelOfKnowledge: 0, Value: 8 * time.Hour},
							},
						},
					},
				},
			},
			want: StatisticsResult{
				Decks: []DeckStatistics{
					{
						DeckName:       "french",
						TotalCards:     3,
						LearnedCards:   1,
						AnsweredCards:  1,
						AvailableCards: 1, // never answered card; recent one waits, learned one never
						AverageLevel:   2,
					},
				},
				Aggregate: AggregateStatistics{
					TotalCards:     3,
					LearnedCards:   1,
					AnsweredCards:  1,
					AvailableCards: 1,
				},
			},
		},
		{
			name: "decks are sorted by name and aggregated",
			decks: []*entity.Deck{
				{
					Name: "spanish",
					Cards: []*entity.Card{
						{ID: 1, LevelOfKnowledge: 6, LastAnsweredAt: &answeredLongAgo},
					},
				},
				{
					Name: "french",
					Cards: []*entity.Card{
						{ID: 2},
						{ID: 3, LevelOfKnowledge: 2},
					},
				},
			},
			want: StatisticsResult{
				Decks: []DeckStatistics{
					{
						DeckName:       "french",
						TotalCards:     2,
						AvailableCards: 2,
						AverageLevel:   1,
					},
					{
						DeckName:       "spanish",
						TotalCards:     1,
						AnsweredCards:  1,
						AvailableCards: 1,
						AverageLevel:   6,
					},
				},
				Aggregate: AggregateStatistics{
					TotalCards:     3,
					AnsweredCards:  1,
					AvailableCards: 3,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateStatistics(tt.decks, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRendererRender(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	result := StatisticsResult{
		Decks: []DeckStatistics{
			{DeckName: "french", TotalCards: 10, LearnedCards: 3, AnsweredCards: 7, AvailableCards: 2, AverageLevel: 2.5},
		},
		Aggregate: AggregateStatistics{TotalCards: 10, LearnedCards: 3, AnsweredCards: 7, AvailableCards: 2},
	}

	t.Run("built-in template", func(t *testing.T) {
		renderer, err := NewRenderer("")
		require.NoError(t, err)

		got, err := renderer.Render(result, now)
		require.NoError(t, err)

		assert.Contains(t, got, "# Learning report 2026-09-01")
		assert.Contains(t, got, "| french | 10 | 3 | 7 | 2 | 2.5 |")
		assert.Contains(t, got, "Total: 10 cards, 3 learned, 7 answered, 2 available for exercise")
	})

	t.Run("custom template file", func(t *testing.T) {
		templatePath := filepath.Join(t.TempDir(), "report.md.tmpl")
		require.NoError(t, os.WriteFile(templatePath,
			[]byte("Report for {{.Date}}: {{.Aggregate.TotalCards}} cards\n"), 0644))

		renderer, err := NewRenderer(templatePath)
		require.NoError(t, err)

		got, err := renderer.Render(result, now)
		require.NoError(t, err)
		assert.Equal(t, "Report for 2026-09-01: 10 cards\n", got)
	})

	t.Run("missing template file", func(t *testing.T) {
		_, err := NewRenderer(filepath.Join(t.TempDir(), "missing.tmpl"))
		assert.Error(t, err)
	})

	t.Run("malformed template", func(t *testing.T) {
		templatePath := filepath.Join(t.TempDir(), "broken.tmpl")
		require.NoError(t, os.WriteFile(templatePath, []byte("{{.Date"), 0644))

		_, err := NewRenderer(templatePath)
		assert.Error(t, err)
	})
}

func TestRendererWriteReport(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	directory := t.TempDir()

	renderer, err := NewRenderer("")
	require.NoError(t, err)

	path, err := renderer.WriteReport(directory, StatisticsResult{}, now)
	require.NoError(t, err)
	assert.Contains(t, path, "report-2026-09-01.md")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Learning report 2026-09-01")
}
