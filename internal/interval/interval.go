// Package interval decides when a card becomes available for exercise again,
// based on its deck's interval scheme and the time of the last answer.
package interval

import (
	"time"

	"github.com/surfmuggle/forgetmenot/internal/entity"
)

// IsCardAvailableForExercise reports whether the card may appear in a
// session at the given time. Learned cards are never available. A card that
// has never been answered, or a deck without an interval scheme, is always
// available. Otherwise the interval matching the card's level of knowledge
// must have elapsed since the last answer.
func IsCardAvailableForExercise(
	card *entity.Card,
	scheme *entity.IntervalScheme,
	now time.Time,
) bool {
	if card.IsLearned {
		return false
	}
	if scheme == nil || len(scheme.Intervals) == 0 {
		return true
	}
	if card.LastAnsweredAt == nil {
		return true
	}
	return now.Sub(*card.LastAnsweredAt) >= intervalFor(scheme, card.LevelOfKnowledge)
}

// intervalFor returns the waiting time for a level of knowledge. Levels
// below the scheme's first step reuse the first step; levels above the last
// step reuse the last one.
func intervalFor(scheme *entity.IntervalScheme, levelOfKnowledge int) time.Duration {
	value := scheme.Intervals[0].Value
	for _, step := range scheme.Intervals {
		if step.LevelOfKnowledge > levelOfKnowledge {
			break
		}
		value = step.Value
	}
	return value
}
