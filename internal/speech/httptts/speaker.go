package httptts

import (
	"context"
	"log/slog"
	"time"
)

const defaultSpeakTimeout = 10 * time.Second

// Speaker pronounces text without blocking the caller.
// Failures are logged and never interrupt an exercise.
type Speaker struct {
	client  *Client
	timeout time.Duration
}

func NewSpeaker(client *Client) *Speaker {
	return &Speaker{
		client:  client,
		timeout: defaultSpeakTimeout,
	}
}

func (speaker *Speaker) Speak(text, language string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), speaker.timeout)
		defer cancel()

		if err := speaker.client.Synthesize(ctx, text, language); err != nil {
			slog.Default().Warn("failed to synthesize speech",
				"language", language,
				"error", err)
		}
	}()
}
