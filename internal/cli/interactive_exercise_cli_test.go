package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_cli "github.com/surfmuggle/forgetmenot/internal/mocks/cli"
)

func TestInteractiveExerciseCLI_Run(t *testing.T) {
	tests := []struct {
		name            string
		sessionResults  []error
		wantErr         bool
		wantErrorString string
	}{
		{
			name:           "Session loop ends cleanly on errEnd",
			sessionResults: []error{nil, nil, errEnd},
		},
		{
			name:            "Session error is propagated",
			sessionResults:  []error{nil, errors.New("broken pipe")},
			wantErr:         true,
			wantErrorString: "broken pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			session := mock_cli.NewMockSession(ctrl)
			calls := make([]any, 0, len(tt.sessionResults))
			for _, result := range tt.sessionResults {
				calls = append(calls, session.EXPECT().Session(gomock.Any()).Return(result))
			}
			gomock.InOrder(calls...)

			cli := newInteractiveExerciseCLI()
			cli.stdoutWriter = &bytes.Buffer{}

			err := cli.Run(context.Background(), session)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorString)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
