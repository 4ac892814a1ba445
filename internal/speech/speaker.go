// Package speech defines the text-to-speech capability the exercise engine
// talks to. Implementations live in subpackages; the engine only issues
// fire-and-forget speak requests and never waits for playback.
package speech

//go:generate mockgen -source=speaker.go -destination=../mocks/speech/mock_speaker.go -package=mock_speech Speaker

// Speaker pronounces text in the given language. A new call is expected to
// interrupt any playback still in progress.
type Speaker interface {
	Speak(text string, language string)
}

// NopSpeaker is a Speaker that does nothing. Used when no TTS backend is
// configured.
type NopSpeaker struct{}

func (NopSpeaker) Speak(string, string) {}
