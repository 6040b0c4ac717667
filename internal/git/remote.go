package git

import (
	"context"
	"fmt"

	"github.com/samzong/gsc/internal/gitutil"
	"github.com/samzong/gsc/internal/stringsutil"
)

const stashMessage = "gsc: auto stash before sync"

// Fetch updates the remote-tracking ref for branch. Callers decide whether a
// failure (no tracking branch, network down) is fatal.
func (c *Client) Fetch(ctx context.Context, remote, branch string) error {
	res, err := c.runner.RunLogged(ctx, "fetch", remote, branch)
	if err != nil {
		return gitutil.WrapGitError(fmt.Sprintf("failed to fetch %s/%s", remote, branch), res, err)
	}
	return nil
}

// ChangedFiles lists the files whose content differs between branch and its
// remote counterpart.
func (c *Client) ChangedFiles(ctx context.Context, branch, remoteRef string) ([]string, error) {
	res, err := c.runner.RunLogged(ctx, "diff", "--name-only", branch, remoteRef)
	if err != nil {
		return nil, gitutil.WrapGitError(fmt.Sprintf("failed to diff %s against %s", branch, remoteRef), res, err)
	}
	return stringsutil.SplitNonEmpty(res.StdoutString(true), "\n"), nil
}

// StashSave shelves local modifications before pulling.
func (c *Client) StashSave(ctx context.Context) error {
	// --include-untracked keeps the shelf symmetric with Status, which counts
	// untracked files as working-tree changes; otherwise an untracked-only
	// tree would stash nothing and the later pop would fail.
	res, err := c.runner.RunLogged(ctx, "stash", "push", "--include-untracked", "-m", stashMessage)
	if err != nil {
		return gitutil.WrapGitError("failed to stash local changes", res, err)
	}
	return nil
}

// Pull brings branch up to date with remote.
func (c *Client) Pull(ctx context.Context, remote, branch string) error {
	res, err := c.runner.RunLogged(ctx, "pull", remote, branch)
	if err != nil {
		return gitutil.WrapGitError(fmt.Sprintf("failed to pull %s/%s", remote, branch), res, err)
	}
	return nil
}

// StashPop restores the shelf and returns the textual result of the restore.
// A conflicted pop exits non-zero while still applying what it can, so both
// the output and the error are returned; the caller inspects the output for
// conflict markers before deciding whether the error is fatal.
func (c *Client) StashPop(ctx context.Context) (string, error) {
	res, err := c.runner.RunLogged(ctx, "stash", "pop")
	if err != nil {
		return res.Combined(), gitutil.WrapGitError("failed to restore stashed changes", res, err)
	}
	return res.Combined(), nil
}
