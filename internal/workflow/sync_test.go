package workflow

import (
	"context"
	"testing"

	"github.com/samzong/gsc/internal/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileFetchUnavailable(t *testing.T) {
	fake := &fakeGit{fetchErr: errBoom}
	syncer := NewSyncer(fake, "origin")

	outcome, err := syncer.Reconcile(context.Background(), git.Status{}, "main")

	require.NoError(t, err, "a failed fetch is not a hard failure")
	assert.Equal(t, OutcomeFetchUnavailable, outcome)
	assert.False(t, fake.called("pull origin/main"))
	assert.False(t, fake.called("stash save"))
}

func TestReconcileUpToDate(t *testing.T) {
	fake := &fakeGit{changedFiles: nil}
	syncer := NewSyncer(fake, "origin")

	outcome, err := syncer.Reconcile(context.Background(), git.Status{}, "main")

	require.NoError(t, err)
	assert.Equal(t, OutcomeUpToDate, outcome)
	assert.True(t, fake.called("fetch origin/main"))
	assert.True(t, fake.called("diff main origin/main"))
	assert.False(t, fake.called("pull origin/main"))
}

func TestReconcileBehindWithCleanTree(t *testing.T) {
	fake := &fakeGit{changedFiles: []string{"a.go"}}
	syncer := NewSyncer(fake, "origin")

	status := git.NewStatus(nil, []string{"b.go"})
	outcome, err := syncer.Reconcile(context.Background(), status, "main")

	require.NoError(t, err)
	assert.Equal(t, OutcomeUpToDate, outcome)
	assert.True(t, fake.called("pull origin/main"))
	assert.False(t, fake.called("stash save"), "clean tree must not trigger the stash cycle")
	assert.False(t, fake.called("stash pop"))
}

func TestReconcileBehindWithLocalChanges(t *testing.T) {
	fake := &fakeGit{
		changedFiles: []string{"a.go"},
		popOutput:    "Dropped refs/stash@{0}",
	}
	syncer := NewSyncer(fake, "origin")

	status := git.NewStatus([]string{"b.go"}, nil)
	outcome, err := syncer.Reconcile(context.Background(), status, "main")

	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)
	assert.Equal(t, []string{
		"fetch origin/main",
		"diff main origin/main",
		"stash save",
		"pull origin/main",
		"stash pop",
	}, fake.calls)
}

func TestReconcileConflictOnPop(t *testing.T) {
	fake := &fakeGit{
		changedFiles: []string{"a.go"},
		popOutput:    "Auto-merging a.go\nCONFLICT (content): Merge conflict in a.go",
		popErr:       errBoom,
	}
	syncer := NewSyncer(fake, "origin")

	status := git.NewStatus([]string{"a.go"}, nil)
	outcome, err := syncer.Reconcile(context.Background(), status, "main")

	require.NoError(t, err, "a conflicted pop is an outcome, not an error")
	assert.Equal(t, OutcomeConflict, outcome)
}

func TestReconcileFatalErrors(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeGit
	}{
		{
			name: "diff failure",
			fake: &fakeGit{changedErr: errBoom},
		},
		{
			name: "pull failure with clean tree",
			fake: &fakeGit{changedFiles: []string{"a.go"}, pullErr: errBoom},
		},
		{
			name: "stash failure",
			fake: &fakeGit{changedFiles: []string{"a.go"}, stashErr: errBoom},
		},
		{
			name: "pop failure without conflict marker",
			fake: &fakeGit{changedFiles: []string{"a.go"}, popOutput: "error: unmerged index", popErr: errBoom},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncer := NewSyncer(tt.fake, "origin")

			// A dirty tree drives the test through the stash cycle except in
			// the clean-tree pull case.
			status := git.NewStatus([]string{"b.go"}, nil)
			if tt.name == "pull failure with clean tree" {
				status = git.NewStatus(nil, []string{"b.go"})
			}

			_, err := syncer.Reconcile(context.Background(), status, "main")
			assert.ErrorIs(t, err, errBoom)
		})
	}
}

func TestReconcileCustomConflictDetector(t *testing.T) {
	fake := &fakeGit{
		changedFiles: []string{"a.go"},
		popOutput:    "merge failed: divergent edits",
	}
	syncer := NewSyncer(fake, "origin")
	syncer.DetectConflict = func(out string) bool {
		return out == "merge failed: divergent edits"
	}

	status := git.NewStatus([]string{"a.go"}, nil)
	outcome, err := syncer.Reconcile(context.Background(), status, "main")

	require.NoError(t, err)
	assert.Equal(t, OutcomeConflict, outcome)
}

func TestDefaultConflictDetector(t *testing.T) {
	assert.True(t, DefaultConflictDetector("CONFLICT (content): Merge conflict in a.go"))
	assert.False(t, DefaultConflictDetector("Dropped refs/stash@{0}"))
	assert.False(t, DefaultConflictDetector(""))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "up to date", OutcomeUpToDate.String())
	assert.Equal(t, "updated", OutcomeUpdated.String())
	assert.Equal(t, "conflict", OutcomeConflict.String())
	assert.Equal(t, "fetch unavailable", OutcomeFetchUnavailable.String())
}
