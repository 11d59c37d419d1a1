package errhandler

import (
	"errors"
	"os"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/tally/internal/posting"
	"github.com/hashicorp/go-multierror"
	"github.com/pterm/pterm"
)

// HandleError prints err for the terminal user. Cancelled prompts exit cleanly.
func HandleError(err error) {
	if Cancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			pterm.Error.Println(Message(e))
		}
		return
	}

	pterm.Error.Println(Message(err))
}

// Cancelled reports whether err comes from the user aborting a prompt.
func Cancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted)
}

// Message renders err as one line, prefixed with the posting failure kind if any.
func Message(err error) string {
	var perr *posting.Error
	if errors.As(err, &perr) {
		return string(perr.Kind) + ": " + perr.Message
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
