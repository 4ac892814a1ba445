package exercise

import (
	"math/rand"

	"github.com/surfmuggle/forgetmenot/internal/entity"
)

// QuizVariantCount is the fixed number of variant slots on a quiz card.
const QuizVariantCount = 4

// ComposeQuizVariants produces the variant slots for a quiz test: one slot
// holds the correct card, the remaining ones hold distractors drawn from the
// same deck. Distractors whose visible answer text collides with an already
// chosen one are skipped. If fewer than three distinct distractors exist,
// the remaining slots stay nil. Slot order is randomized by random.
func ComposeQuizVariants(random *rand.Rand, card *entity.Card, deck *entity.Deck, isReverse bool) []*entity.Card {
	answerOf := func(c *entity.Card) string {
		if isReverse {
			return c.Question
		}
		return c.Answer
	}

	candidates := make([]*entity.Card, 0, len(deck.Cards))
	for _, c := range deck.Cards {
		if c.ID != card.ID {
			candidates = append(candidates, c)
		}
	}
	random.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	variants := make([]*entity.Card, 0, QuizVariantCount)
	variants = append(variants, card)
	seenAnswers := map[string]bool{answerOf(card): true}
	for _, candidate := range candidates {
		if len(variants) == QuizVariantCount {
			break
		}
		if seenAnswers[answerOf(candidate)] {
			continue
		}
		seenAnswers[answerOf(candidate)] = true
		variants = append(variants, candidate)
	}
	for len(variants) < QuizVariantCount {
		variants = append(variants, nil)
	}

	random.Shuffle(len(variants), func(i, j int) {
		variants[i], variants[j] = variants[j], variants[i]
	})
	return variants
}
