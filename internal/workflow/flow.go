package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samzong/gsc/internal/committype"
	"github.com/samzong/gsc/internal/git"
	"github.com/samzong/gsc/internal/message"
	"github.com/samzong/gsc/internal/ui"
)

// ErrNoPendingChanges means neither the working tree nor the staging area has
// anything to commit.
var ErrNoPendingChanges = errors.New("no changes detected in the working tree or staging area")

// ErrMergeConflict means restoring stashed changes after the sync pull left
// the working tree conflicted.
var ErrMergeConflict = errors.New("merge conflict while syncing with the remote, resolve the conflicts and run gsc again")

// Options configures a Flow run.
type Options struct {
	Remote      string
	DefaultType string
	DryRun      bool
	Suggest     bool
	OutWriter   io.Writer
	ErrWriter   io.Writer
}

// Flow runs the workflow end to end. States advance strictly forward:
// status checked, synced, prompted, committed, pushed; aborts never leave a
// half-made commit behind.
type Flow struct {
	git      GitClient
	catalog  committype.Catalog
	opts     Options
	syncer   *Syncer
	prompter Prompter
	suggest  Suggester
}

// New creates a Flow over the given repository client and catalog.
func New(gitClient GitClient, catalog committype.Catalog, opts Options) *Flow {
	if opts.OutWriter == nil {
		opts.OutWriter = os.Stdout
	}
	if opts.ErrWriter == nil {
		opts.ErrWriter = os.Stderr
	}
	return &Flow{
		git:      gitClient,
		catalog:  catalog,
		opts:     opts,
		syncer:   NewSyncer(gitClient, opts.Remote),
		prompter: &InteractivePrompter{ErrWriter: opts.ErrWriter},
	}
}

// SetPrompter replaces the interactive prompter, for tests or scripted runs.
func (f *Flow) SetPrompter(p Prompter) {
	f.prompter = p
}

// SetSuggester installs the optional subject suggester.
func (f *Flow) SetSuggester(s Suggester) {
	f.suggest = s
}

// Syncer exposes the reconciliation component, letting callers swap the
// conflict detection strategy.
func (f *Flow) Syncer() *Syncer {
	return f.syncer
}

// Run executes the workflow. Explicit files scope the final commit only; they
// play no part in staging decisions.
func (f *Flow) Run(ctx context.Context, files []string) error {
	status, err := f.git.Status(ctx)
	if err != nil {
		return err
	}
	if !status.HasWorkingTreeChanges() && !status.HasStagedChanges() {
		return ErrNoPendingChanges
	}

	branch, err := f.git.CurrentBranch(ctx)
	if err != nil {
		return err
	}

	outcome, err := f.syncer.Reconcile(ctx, status, branch)
	if err != nil {
		return err
	}
	switch outcome {
	case OutcomeConflict:
		return ErrMergeConflict
	case OutcomeFetchUnavailable:
		fmt.Fprintln(f.opts.ErrWriter, ui.Warn(fmt.Sprintf(
			"could not fetch %s/%s, committing without syncing", f.opts.Remote, branch)))
	case OutcomeUpdated:
		fmt.Fprintln(f.opts.OutWriter, ui.Info("Pulled remote changes, local changes restored."))
	case OutcomeUpToDate:
		fmt.Fprintln(f.opts.OutWriter, ui.Info(fmt.Sprintf("Branch %s is up to date with %s.", branch, f.opts.Remote)))
	}

	defaults := PromptDefaults{Type: f.opts.DefaultType}
	if f.opts.Suggest {
		defaults.Subject = f.suggestSubject(ctx, status)
	}

	answer, err := f.prompter.Ask(f.catalog, defaults)
	if err != nil {
		return err
	}

	msg, err := message.Compose(f.catalog, answer)
	if err != nil {
		return err
	}
	msg = message.Dedent(msg)

	if f.opts.DryRun {
		fmt.Fprintln(f.opts.OutWriter, ui.Info("Dry run, would commit with message:"))
		fmt.Fprintln(f.opts.OutWriter, msg)
		return nil
	}

	if status.HasWorkingTreeChanges() {
		if err := f.git.AddAll(ctx); err != nil {
			return err
		}
	}
	if err := f.git.Commit(ctx, msg, files); err != nil {
		return err
	}
	fmt.Fprintln(f.opts.OutWriter, ui.Success("Committed:"))
	fmt.Fprintln(f.opts.OutWriter, msg)

	spin := ui.NewSpinner(fmt.Sprintf("Pushing %s to %s...", branch, f.opts.Remote))
	spin.Start()
	err = f.git.Push(ctx, f.opts.Remote, branch)
	spin.Stop()
	if err != nil {
		return err
	}
	fmt.Fprintln(f.opts.OutWriter, ui.Success(fmt.Sprintf("Pushed %s to %s.", branch, f.opts.Remote)))
	return nil
}

// suggestSubject asks the configured model for a subject prefill. Failures
// only cost the prefill, never the run.
func (f *Flow) suggestSubject(ctx context.Context, status git.Status) string {
	if f.suggest == nil {
		return ""
	}

	diff, err := f.git.StagedDiff(ctx)
	if err != nil || diff == "" {
		return ""
	}

	subject, err := f.suggest.SuggestSubject(ctx, status.StagedFiles(), diff)
	if err != nil {
		fmt.Fprintln(f.opts.ErrWriter, ui.Warn("subject suggestion unavailable: "+err.Error()))
		return ""
	}
	return subject
}
