package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/surfmuggle/forgetmenot/internal/deck"
	"github.com/surfmuggle/forgetmenot/internal/entity"
	"github.com/surfmuggle/forgetmenot/internal/exercise"
	"github.com/surfmuggle/forgetmenot/internal/interval"
	"github.com/surfmuggle/forgetmenot/internal/speech"
)

// ExerciseSessionCLI walks the user through one exercise session and
// persists the mutated decks when the session ends.
type ExerciseSessionCLI struct {
	*InteractiveExerciseCLI
	exercise   *exercise.Exercise
	repository deck.Repository
	decks      []*entity.Deck
}

// NewExerciseSessionCLI loads decks from the repository and builds a session
// over them. deckNames selects decks by name; empty selects all. Walking
// mode turns every card into a manual test.
func NewExerciseSessionCLI(
	ctx context.Context,
	repository deck.Repository,
	deckNames []string,
	isWalkingMode bool,
	speaker speech.Speaker,
) (*ExerciseSessionCLI, error) {
	decks, err := repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository.FindAll > %w", err)
	}

	selected, err := selectDecks(decks, deckNames)
	if err != nil {
		return nil, err
	}
	deckIDs := make([]int64, 0, len(selected))
	for _, d := range selected {
		deckIDs = append(deckIDs, d.ID)
	}

	now := time.Now()
	creator := exercise.NewStateCreator(
		&entity.GlobalState{Decks: decks},
		func(card *entity.Card, scheme *entity.IntervalScheme) bool {
			return interval.IsCardAvailableForExercise(card, scheme, now)
		},
	)
	state, err := creator.Create(deckIDs, isWalkingMode)
	if err != nil {
		return nil, fmt.Errorf("creator.Create(%v) > %w", deckIDs, err)
	}

	return &ExerciseSessionCLI{
		InteractiveExerciseCLI: newInteractiveExerciseCLI(),
		exercise:               exercise.New(state, speaker),
		repository:             repository,
		decks:                  selected,
	}, nil
}

func selectDecks(decks []*entity.Deck, deckNames []string) ([]*entity.Deck, error) {
	if len(deckNames) == 0 {
		return decks, nil
	}

	byName := make(map[string]*entity.Deck, len(decks))
	for _, d := range decks {
		byName[d.Name] = d
	}

	selected := make([]*entity.Deck, 0, len(deckNames))
	for _, name := range deckNames {
		d, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("deck %q: %w", name, deck.ErrDeckNotFound)
		}
		selected = append(selected, d)
	}
	return selected, nil
}

func (r *ExerciseSessionCLI) Session(ctx context.Context) error {
	state := r.exercise.State()
	if state.CurrentPosition >= len(state.ExerciseCards) {
		r.printSummary()
		if err := r.saveDecks(ctx); err != nil {
			return err
		}
		return errEnd
	}

	card := r.exercise.CurrentExerciseCard()
	base := card.Base()

	fmt.Fprintf(r.stdoutWriter, "[%d/%d] %s (lap %d, level %d)\n",
		state.CurrentPosition+1,
		len(state.ExerciseCards),
		base.Deck.Name,
		base.Card.Lap,
		base.Card.LevelOfKnowledge,
	)
	if base.IsQuestionDisplayed {
		_, _ = r.bold.Fprintf(r.stdoutWriter, "%s\n", base.Question())
	}

	var err error
	switch c := card.(type) {
	case *exercise.OffTestExerciseCard:
		err = r.askOff(base)
	case *exercise.ManualTestExerciseCard:
		err = r.askManual(base)
	case *exercise.QuizTestExerciseCard:
		err = r.askQuiz(c)
	case *exercise.EntryTestExerciseCard:
		err = r.askEntry(base)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(r.stdoutWriter)
	next := state.CurrentPosition + 1
	if next < len(state.ExerciseCards) {
		r.exercise.SetCurrentPosition(next)
	} else {
		state.CurrentPosition = next
	}
	return nil
}

// readInput reads one line and handles the session commands that are valid
// at any prompt. It keeps prompting until the user enters something that is
// not a command.
func (r *ExerciseSessionCLI) readInput() (string, error) {
	for {
		line, err := r.stdinReader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		line = strings.TrimSpace(line)

		switch {
		case line == ":s":
			r.exercise.Speak()
			continue
		case line == ":l":
			base := r.exercise.CurrentExerciseCard().Base()
			r.exercise.SetIsCardLearned(!base.Card.IsLearned)
			fmt.Fprintf(r.stdoutWriter, "learned: %t\n", base.Card.IsLearned)
			continue
		case strings.HasPrefix(line, ":level "):
			level, convErr := strconv.Atoi(strings.TrimPrefix(line, ":level "))
			if convErr != nil {
				fmt.Fprintln(r.stdoutWriter, "usage: :level <number>")
				continue
			}
			r.exercise.SetLevelOfKnowledge(level)
			continue
		}
		return line, nil
	}
}

func (r *ExerciseSessionCLI) askOff(base *exercise.Base) error {
	if !base.IsQuestionDisplayed {
		_, _ = r.bold.Fprintf(r.stdoutWriter, "%s\n", base.Question())
	}
	fmt.Fprint(r.stdoutWriter, "Press enter to show the answer: ")
	if _, err := r.readInput(); err != nil {
		return err
	}

	r.exercise.Answer(exercise.Show{})
	_, _ = r.italic.Fprintf(r.stdoutWriter, "%s\n", base.Answer())
	return nil
}

func (r *ExerciseSessionCLI) askManual(base *exercise.Base) error {
	for {
		fmt.Fprint(r.stdoutWriter, "Do you remember the answer? [y/n]: ")
		input, err := r.readInput()
		if err != nil {
			return err
		}

		switch strings.ToLower(input) {
		case "y":
			r.exercise.Answer(exercise.Remember{})
		case "n":
			r.exercise.Answer(exercise.NotRemember{})
		default:
			continue
		}
		r.printResult(base)
		return nil
	}
}

func (r *ExerciseSessionCLI) askQuiz(card *exercise.QuizTestExerciseCard) error {
	base := card.Base()
	for i, variant := range card.Variants {
		if variant == nil {
			continue
		}
		text := variant.Answer
		if base.IsReverse {
			text = variant.Question
		}
		fmt.Fprintf(r.stdoutWriter, "  %d. %s\n", i+1, text)
	}

	for {
		fmt.Fprintf(r.stdoutWriter, "Your choice [1-%d]: ", exercise.QuizVariantCount)
		input, err := r.readInput()
		if err != nil {
			return err
		}

		choice, convErr := strconv.Atoi(input)
		if convErr != nil || choice < 1 || choice > exercise.QuizVariantCount {
			continue
		}
		r.exercise.Answer(exercise.Variant{Index: choice - 1})
		r.printResult(base)
		return nil
	}
}

func (r *ExerciseSessionCLI) askEntry(base *exercise.Base) error {
	fmt.Fprint(r.stdoutWriter, "Type the answer: ")
	input, err := r.readInput()
	if err != nil {
		return err
	}

	r.exercise.Answer(exercise.Entry{UserAnswer: input})
	r.printResult(base)
	return nil
}

func (r *ExerciseSessionCLI) printResult(base *exercise.Base) {
	if base.IsAnswerCorrect != nil && *base.IsAnswerCorrect {
		fmt.Fprint(r.stdoutWriter, "✅ ")
		_, _ = color.New(color.FgGreen).Fprintf(r.stdoutWriter, `It's correct. The answer of %s is "%s"`,
			r.bold.Sprintf("%s", base.Question()),
			r.italic.Sprintf("%s", base.Answer()),
		)
	} else {
		fmt.Fprint(r.stdoutWriter, "❌ ")
		_, _ = color.New(color.FgRed).Fprintf(r.stdoutWriter, `It's wrong. The answer of %s is "%s"`,
			r.bold.Sprintf("%s", base.Question()),
			r.italic.Sprintf("%s", base.Answer()),
		)
	}
	fmt.Fprintln(r.stdoutWriter)
}

func (r *ExerciseSessionCLI) printSummary() {
	var correct, wrong int
	for _, card := range r.exercise.State().ExerciseCards {
		base := card.Base()
		if base.IsAnswerCorrect == nil {
			continue
		}
		if *base.IsAnswerCorrect {
			correct++
		} else {
			wrong++
		}
	}
	fmt.Fprintln(r.stdoutWriter, "No more cards to practice!")
	fmt.Fprintf(r.stdoutWriter, "Answered %d cards: %d correct, %d wrong\n", correct+wrong, correct, wrong)
}

func (r *ExerciseSessionCLI) saveDecks(ctx context.Context) error {
	for _, d := range r.decks {
		if err := r.repository.Save(ctx, d); err != nil {
			return fmt.Errorf("repository.Save(%s) > %w", d.Name, err)
		}
	}
	return nil
}
