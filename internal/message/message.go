// Package message validates the answers collected by the guided prompt and
// composes the final commit message text.
package message

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samzong/gsc/internal/committype"
)

// ErrEmptySubject rejects a subject that is empty after trimming. The prompt
// re-asks on this error instead of accepting a silent default.
var ErrEmptySubject = errors.New("commit subject cannot be empty")

// Answer holds the raw prompt answers for one commit.
type Answer struct {
	Type    string
	Subject string
	Body    string
}

// ValidateSubject reports whether input is usable as a commit subject.
func ValidateSubject(input string) error {
	if strings.TrimSpace(input) == "" {
		return ErrEmptySubject
	}
	return nil
}

// Normalize trims the answer fields, enforcing the non-empty subject rule.
func Normalize(a Answer) (Answer, error) {
	if err := ValidateSubject(a.Subject); err != nil {
		return Answer{}, err
	}
	return Answer{
		Type:    strings.TrimSpace(a.Type),
		Subject: strings.TrimSpace(a.Subject),
		Body:    strings.TrimSpace(a.Body),
	}, nil
}

// Compose builds the final commit message from a normalized answer:
// "<type>: <symbol> <subject>", plus a blank line and the body when the body
// is non-empty. The answer's type must come from the catalog.
func Compose(catalog committype.Catalog, a Answer) (string, error) {
	normalized, err := Normalize(a)
	if err != nil {
		return "", err
	}

	ct, ok := catalog.Lookup(normalized.Type)
	if !ok {
		return "", fmt.Errorf("unknown commit type %q", normalized.Type)
	}

	header := fmt.Sprintf("%s: %s %s", ct.Label, ct.Symbol, normalized.Subject)
	if normalized.Body == "" {
		return header, nil
	}
	return header + "\n\n" + normalized.Body, nil
}

// Dedent strips the common leading whitespace shared by every non-blank line,
// so multi-line bodies assembled from indented literals reach git without
// accidental indentation.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")

	margin := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if margin == -1 || indent < margin {
			margin = indent
		}
	}
	if margin <= 0 {
		return s
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = line[margin:]
	}
	return strings.Join(lines, "\n")
}
