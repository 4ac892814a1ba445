// Package report summarizes learning progress across decks.
package report

import (
	"sort"
	"time"

	"github.com/surfmuggle/forgetmenot/internal/entity"
	"github.com/surfmuggle/forgetmenot/internal/interval"
)

// DeckStatistics holds progress numbers for one deck
type DeckStatistics struct {
	DeckName       string
	TotalCards     int     // All cards in the deck
	LearnedCards   int     // Cards excluded from future sessions
	AnsweredCards  int     // Cards answered at least once
	AvailableCards int     // Cards ready for exercise right now
	AverageLevel   float64 // Mean level of knowledge over all cards
}

// AggregateStatistics holds totals across all decks
type AggregateStatistics struct {
	TotalCards     int
	LearnedCards   int
	AnsweredCards  int
	AvailableCards int
}

// StatisticsResult holds both per-deck and aggregate statistics
type StatisticsResult struct {
	Decks     []DeckStatistics
	Aggregate AggregateStatistics
}

// CalculateStatistics calculates learning statistics for the given decks.
// Availability is evaluated against each deck's interval scheme at now.
func CalculateStatistics(decks []*entity.Deck, now time.Time) StatisticsResult {
	result := StatisticsResult{
		Decks: make([]DeckStatistics, 0, len(decks)),
	}

	for _, deck := range decks {
		stats := DeckStatistics{
			DeckName:   deck.Name,
			TotalCards: len(deck.Cards),
		}

		var levelSum int
		for _, card := range deck.Cards {
			levelSum += card.LevelOfKnowledge
			if card.IsLearned {
				stats.LearnedCards++
			}
			if card.LastAnsweredAt != nil {
				stats.AnsweredCards++
			}
			if interval.IsCardAvailableForExercise(card, deck.ExercisePreference.IntervalScheme, now) {
				stats.AvailableCards++
			}
		}
		if stats.TotalCards > 0 {
			stats.AverageLevel = float64(levelSum) / float64(stats.TotalCards)
		}

		result.Decks = append(result.Decks, stats)
		result.Aggregate.TotalCards += stats.TotalCards
		result.Aggregate.LearnedCards += stats.LearnedCards
		result.Aggregate.AnsweredCards += stats.AnsweredCards
		result.Aggregate.AvailableCards += stats.AvailableCards
	}

	sort.Slice(result.Decks, func(i, j int) bool {
		return result.Decks[i].DeckName < result.Decks[j].DeckName
	})

	return result
}
