package workflow

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/samzong/gsc/internal/committype"
	"github.com/samzong/gsc/internal/message"
	"github.com/samzong/gsc/internal/ui"
)

// ErrPromptCanceled is returned when the user aborts a prompt.
var ErrPromptCanceled = errors.New("commit canceled")

// InteractivePrompter collects the commit type, subject and optional body
// through terminal prompts.
type InteractivePrompter struct {
	ErrWriter io.Writer
}

// Ask runs the three prompts in order. The subject prompt re-asks until the
// input is non-empty after trimming.
func (p *InteractivePrompter) Ask(catalog committype.Catalog, defaults PromptDefaults) (message.Answer, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return message.Answer{}, errors.New("stdin is not a terminal, gsc needs an interactive session")
	}

	width := catalog.LabelWidth()
	maxLine := ui.TerminalWidth() - 4
	options := make([]huh.Option[string], 0, catalog.Len())
	for _, ct := range catalog.Types() {
		row := ui.ClampLine(committype.Row(ct, width), maxLine)
		options = append(options, huh.NewOption(row, ct.Label))
	}

	selected := defaults.Type
	if _, ok := catalog.Lookup(selected); !ok {
		selected = catalog.Types()[0].Label
	}
	if err := huh.NewSelect[string]().
		Title("Commit type").
		Options(options...).
		Value(&selected).
		Run(); err != nil {
		return message.Answer{}, promptErr(err)
	}

	subject := defaults.Subject
	if err := huh.NewInput().
		Title("Commit subject").
		Validate(message.ValidateSubject).
		Value(&subject).
		Run(); err != nil {
		return message.Answer{}, promptErr(err)
	}

	var body string
	if err := huh.NewText().
		Title("Commit description (optional)").
		Value(&body).
		Run(); err != nil {
		return message.Answer{}, promptErr(err)
	}

	return message.Answer{Type: selected, Subject: subject, Body: body}, nil
}

func promptErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrPromptCanceled
	}
	return fmt.Errorf("prompt failed: %w", err)
}
