// Package git provides the repository client used by the commit workflow.
// Every operation shells out through gitcmd; the client carries no global
// state, so tests and multi-repo callers construct their own.
package git

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/samzong/gsc/internal/gitcmd"
	"github.com/samzong/gsc/internal/gitutil"
)

// ErrNotARepository is returned when the working directory is not inside a
// git work tree.
var ErrNotARepository = errors.New("not a git repository (run gsc inside a repository)")

// Options configures a Client.
type Options struct {
	Verbose bool
	Dir     string
	Logger  io.Writer
}

// Client runs git operations against a single repository.
type Client struct {
	runner gitcmd.Runner
}

// NewClient creates a Client bound to the repository at opts.Dir (the current
// directory when empty).
func NewClient(opts Options) *Client {
	return &Client{runner: gitcmd.Runner{
		Verbose: opts.Verbose,
		Dir:     opts.Dir,
		Logger:  opts.Logger,
	}}
}

// IsGitRepository reports whether the client's directory is inside a work tree.
func (c *Client) IsGitRepository() bool {
	res, err := c.runner.Run(context.Background(), "rev-parse", "--is-inside-work-tree")
	return err == nil && res.StdoutString(true) == "true"
}

// CheckGitRepository returns ErrNotARepository when outside a work tree.
func (c *Client) CheckGitRepository() error {
	if !c.IsGitRepository() {
		return ErrNotARepository
	}
	return nil
}

// CurrentBranch returns the name of the checked-out branch.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	res, err := c.runner.RunLogged(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", gitutil.WrapGitError("failed to resolve current branch", res, err)
	}

	branch := res.StdoutString(true)
	if branch == "" || branch == "HEAD" {
		return "", errors.New("detached HEAD: check out a branch before committing")
	}
	return branch, nil
}

// AddAll stages the entire working tree.
func (c *Client) AddAll(ctx context.Context) error {
	res, err := c.runner.RunLogged(ctx, "add", ".")
	if err != nil {
		return gitutil.WrapGitError("failed to stage changes", res, err)
	}
	return nil
}

// Commit records a commit with message. When files is non-empty the commit is
// scoped to those paths; otherwise everything staged is committed.
func (c *Client) Commit(ctx context.Context, message string, files []string) error {
	args := []string{"commit", "-m", message}
	if len(files) > 0 {
		args = append(args, "--")
		args = append(args, files...)
	}

	res, err := c.runner.RunLogged(ctx, args...)
	if err != nil {
		return gitutil.WrapGitError("failed to commit", res, err)
	}
	return nil
}

// Push pushes branch to remote.
func (c *Client) Push(ctx context.Context, remote, branch string) error {
	res, err := c.runner.RunLogged(ctx, "push", remote, branch)
	if err != nil {
		return gitutil.WrapGitError(fmt.Sprintf("failed to push %s to %s", branch, remote), res, err)
	}
	return nil
}
