package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/alecthomas/assert/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/tally/internal/posting"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "posting error",
			err:  &posting.Error{Kind: posting.KindUnbalancedPosting, Message: "The sum of the postings must be zero (off by 3 USD)"},
			want: "UnbalancedPosting: The sum of the postings must be zero (off by 3 USD)",
		},
		{
			name: "wrapped posting error",
			err:  fmt.Errorf("record 2: %w", &posting.Error{Kind: posting.KindInvalidHeader, Message: "Primary amount must be a positive number"}),
			want: "InvalidHeader: Primary amount must be a positive number",
		},
		{
			name: "plain error",
			err:  errors.New("invalid transaction ID: x"),
			want: "Invalid transaction ID: x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestCancelled(t *testing.T) {
	assert.True(t, Cancelled(terminal.InterruptErr))
	assert.True(t, Cancelled(fmt.Errorf("input cancelled: %w", huh.ErrUserAborted)))
	assert.False(t, Cancelled(errors.New("interrupted by nothing")))
}
