package exercise

// Answer is an answer submission, one of Show, Remember, NotRemember,
// Variant or Entry. Each kind is only relevant for the matching
// exercise-card variant.
type Answer interface {
	isAnswer()
}

// Show reveals the answer of an off-test card and counts as correct.
type Show struct{}

// Remember is a manual-test self-report that the card was remembered.
type Remember struct{}

// NotRemember is a manual-test self-report that the card was not remembered.
type NotRemember struct{}

// Variant selects one of the quiz options by index.
type Variant struct {
	Index int
}

// Entry submits the typed answer of an entry-test card.
type Entry struct {
	UserAnswer string
}

func (Show) isAnswer()        {}
func (Remember) isAnswer()    {}
func (NotRemember) isAnswer() {}
func (Variant) isAnswer()     {}
func (Entry) isAnswer()       {}
