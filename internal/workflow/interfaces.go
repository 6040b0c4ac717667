// Package workflow orchestrates the sync-and-commit flow: status check,
// remote reconciliation, guided message collection, commit, push.
package workflow

import (
	"context"

	"github.com/samzong/gsc/internal/committype"
	"github.com/samzong/gsc/internal/git"
	"github.com/samzong/gsc/internal/message"
)

// GitClient abstracts repository operations for testability.
type GitClient interface {
	Status(ctx context.Context) (git.Status, error)
	CurrentBranch(ctx context.Context) (string, error)
	Fetch(ctx context.Context, remote, branch string) error
	ChangedFiles(ctx context.Context, branch, remoteRef string) ([]string, error)
	StashSave(ctx context.Context) error
	Pull(ctx context.Context, remote, branch string) error
	StashPop(ctx context.Context) (string, error)
	StagedDiff(ctx context.Context) (string, error)
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string, files []string) error
	Push(ctx context.Context, remote, branch string) error
}

// PromptDefaults seeds the guided prompts.
type PromptDefaults struct {
	Type    string
	Subject string
}

// Prompter collects the structured commit answers.
type Prompter interface {
	Ask(catalog committype.Catalog, defaults PromptDefaults) (message.Answer, error)
}

// Suggester produces an optional subject prefill from the staged changes.
type Suggester interface {
	SuggestSubject(ctx context.Context, changedFiles []string, diff string) (string, error)
}
