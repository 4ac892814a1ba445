// Package deck loads, stores and imports decks of cards.
package deck

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// CardPrototype is one parsed card of an imported deck text, before IDs are
// assigned by a repository.
type CardPrototype struct {
	Ordinal  int
	Question string
	Answer   string
}

var (
	questionMarker = regexp.MustCompile(`^[ \t]*Q:[ \t]*$`)
	answerMarker   = regexp.MustCompile(`^[ \t]*A:[ \t]*$`)
)

// ParseCards reads the plain-text deck format: each card is a block of a
// `Q:` marker line, one or more question lines, an `A:` marker line and one
// or more answer lines. Blank lines between blocks are ignored. A malformed
// block fails the whole import.
func ParseCards(r io.Reader) ([]CardPrototype, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	const (
		beforeFirstCard = iota
		inQuestion
		inAnswer
	)
	section := beforeFirstCard
	var prototypes []CardPrototype
	var question, answer []string

	finishCard := func() error {
		ordinal := len(prototypes)
		questionText := strings.TrimSpace(strings.Join(question, "\n"))
		answerText := strings.TrimSpace(strings.Join(answer, "\n"))
		if questionText == "" {
			return fmt.Errorf("card %d has no question", ordinal+1)
		}
		if section != inAnswer {
			return fmt.Errorf("card %d has no answer section", ordinal+1)
		}
		if answerText == "" {
			return fmt.Errorf("card %d has no answer", ordinal+1)
		}
		prototypes = append(prototypes, CardPrototype{
			Ordinal:  ordinal,
			Question: questionText,
			Answer:   answerText,
		})
		question, answer = nil, nil
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		switch {
		case questionMarker.MatchString(line):
			if section != beforeFirstCard {
				if err := finishCard(); err != nil {
					return nil, err
				}
			}
			section = inQuestion
		case answerMarker.MatchString(line):
			if section != inQuestion {
				return nil, fmt.Errorf("unexpected answer marker at card %d", len(prototypes)+1)
			}
			section = inAnswer
		case section == beforeFirstCard:
			if strings.TrimSpace(line) != "" {
				return nil, fmt.Errorf("text before the first question marker: %q", line)
			}
		case section == inQuestion:
			question = append(question, line)
		default:
			answer = append(answer, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Err() > %w", err)
	}

	if section == beforeFirstCard {
		return nil, fmt.Errorf("no cards found")
	}
	if err := finishCard(); err != nil {
		return nil, err
	}
	return prototypes, nil
}
