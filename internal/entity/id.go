package entity

import gonanoid "github.com/matoous/go-nanoid/v2"

// NewOccurrenceID generates a globally-unique identifier for one appearance
// of a card within a session. Distinct from the card ID: the same card can
// appear several times across retest cycles.
func NewOccurrenceID() string {
	return gonanoid.Must()
}
