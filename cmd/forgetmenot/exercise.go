package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surfmuggle/forgetmenot/internal/cli"
	"github.com/surfmuggle/forgetmenot/internal/speech"
	"github.com/surfmuggle/forgetmenot/internal/speech/httptts"
)

const speechRetryAttempts = 2

func newExerciseCommand() *cobra.Command {
	var walkingMode bool

	command := &cobra.Command{
		Use:   "exercise [deck...]",
		Short: "Start an exercise session over the given decks (all decks when omitted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			repository, closeRepository, err := newRepository(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepository()
			}()

			var speaker speech.Speaker = speech.NopSpeaker{}
			if cfg.Speech.Endpoint != "" {
				client := httptts.NewClient(cfg.Speech.Endpoint, cfg.Speech.APIKey, speechRetryAttempts)
				defer func() {
					_ = client.Close()
				}()
				speaker = httptts.NewSpeaker(client)
			}

			sessionCLI, err := cli.NewExerciseSessionCLI(
				cmd.Context(),
				repository,
				args,
				walkingMode,
				speaker,
			)
			if err != nil {
				return err
			}

			fmt.Println("Exercise session started!")
			fmt.Println("Commands: :s speak, :l toggle learned, :level <n> set level of knowledge")
			fmt.Println()
			return sessionCLI.Run(context.Background(), sessionCLI)
		},
	}

	command.Flags().BoolVar(&walkingMode, "walking-mode", false, "Answer every card by voice-free manual testing")

	return command
}
