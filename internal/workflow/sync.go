package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/samzong/gsc/internal/git"
	"github.com/samzong/gsc/internal/ui"
)

// Outcome is the result of reconciling the local branch with its remote.
type Outcome int

const (
	// OutcomeUpToDate means local and remote agree (possibly after a plain
	// fast-forward pull when the working tree was clean).
	OutcomeUpToDate Outcome = iota
	// OutcomeUpdated means the stash, pull, unstash cycle ran and the local
	// changes were restored cleanly.
	OutcomeUpdated
	// OutcomeConflict means restoring the stash hit a merge conflict; the
	// working tree is left conflicted for manual resolution.
	OutcomeConflict
	// OutcomeFetchUnavailable means the remote could not be fetched (no
	// tracking branch, network down); the caller decides how to proceed.
	OutcomeFetchUnavailable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUpToDate:
		return "up to date"
	case OutcomeUpdated:
		return "updated"
	case OutcomeConflict:
		return "conflict"
	case OutcomeFetchUnavailable:
		return "fetch unavailable"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// DefaultConflictDetector looks for git's conflict marker in stash-pop output.
func DefaultConflictDetector(output string) bool {
	return strings.Contains(output, "CONFLICT")
}

// Syncer reconciles the current branch with its remote counterpart before a
// commit, so the push at the end of the workflow does not create divergent
// history.
type Syncer struct {
	git    GitClient
	remote string

	// DetectConflict decides whether a stash-pop result indicates a merge
	// conflict. Swappable so the detection strategy can evolve apart from
	// the workflow.
	DetectConflict func(output string) bool
}

// NewSyncer creates a Syncer for the given remote.
func NewSyncer(gitClient GitClient, remote string) *Syncer {
	return &Syncer{
		git:            gitClient,
		remote:         remote,
		DetectConflict: DefaultConflictDetector,
	}
}

// Reconcile fetches the remote counterpart of branch and brings the local
// branch up to date:
//
//  1. A failed fetch yields OutcomeFetchUnavailable, never an error.
//  2. No file differences between local and remote yields OutcomeUpToDate.
//  3. Differences with a clean working tree are resolved by a plain pull.
//  4. Otherwise local changes are stashed, the pull runs, and the stash is
//     restored; conflict markers in the restore output yield OutcomeConflict
//     with the working tree left for manual resolution.
//
// Any diff, stash or pull failure is fatal and returned as an error.
func (s *Syncer) Reconcile(ctx context.Context, status git.Status, branch string) (Outcome, error) {
	spin := ui.NewSpinner(fmt.Sprintf("Syncing with %s/%s...", s.remote, branch))
	spin.Start()
	defer spin.Stop()

	if err := s.git.Fetch(ctx, s.remote, branch); err != nil {
		return OutcomeFetchUnavailable, nil
	}

	remoteRef := s.remote + "/" + branch
	changed, err := s.git.ChangedFiles(ctx, branch, remoteRef)
	if err != nil {
		return OutcomeUpToDate, err
	}
	if len(changed) == 0 {
		return OutcomeUpToDate, nil
	}

	if !status.HasWorkingTreeChanges() {
		spin.UpdateMessage("Fast-forwarding...")
		if err := s.git.Pull(ctx, s.remote, branch); err != nil {
			return OutcomeUpToDate, err
		}
		return OutcomeUpToDate, nil
	}

	spin.UpdateMessage("Stashing local changes and pulling...")
	if err := s.git.StashSave(ctx); err != nil {
		return OutcomeUpToDate, err
	}
	if err := s.git.Pull(ctx, s.remote, branch); err != nil {
		return OutcomeUpToDate, err
	}

	out, popErr := s.git.StashPop(ctx)
	if s.DetectConflict(out) {
		// Markers stay in the files; no automatic resolution.
		return OutcomeConflict, nil
	}
	if popErr != nil {
		return OutcomeUpToDate, popErr
	}
	return OutcomeUpdated, nil
}
