package git

import (
	"context"
	"strings"

	"github.com/samzong/gsc/internal/gitutil"
	"github.com/samzong/gsc/internal/stringsutil"
)

// Status is an immutable snapshot of pending changes, taken once per run.
type Status struct {
	workingTree map[string]struct{}
	staged      map[string]struct{}
}

// NewStatus builds a snapshot from explicit file lists. The Client produces
// snapshots by parsing porcelain output; this constructor serves callers that
// already know the sets, such as test doubles.
func NewStatus(workingTree, staged []string) Status {
	status := Status{
		workingTree: make(map[string]struct{}, len(workingTree)),
		staged:      make(map[string]struct{}, len(staged)),
	}
	for _, f := range workingTree {
		status.workingTree[f] = struct{}{}
	}
	for _, f := range staged {
		status.staged[f] = struct{}{}
	}
	return status
}

// HasWorkingTreeChanges reports whether any file is modified or untracked in
// the working tree.
func (s Status) HasWorkingTreeChanges() bool {
	return len(s.workingTree) > 0
}

// HasStagedChanges reports whether the index holds anything to commit.
func (s Status) HasStagedChanges() bool {
	return len(s.staged) > 0
}

// WorkingTreeFiles returns the working-tree changed paths in no particular order.
func (s Status) WorkingTreeFiles() []string {
	return keys(s.workingTree)
}

// StagedFiles returns the staged paths in no particular order.
func (s Status) StagedFiles() []string {
	return keys(s.staged)
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

// StagedDiff returns the diff of the staging area against HEAD.
func (c *Client) StagedDiff(ctx context.Context) (string, error) {
	res, err := c.runner.RunLogged(ctx, "diff", "--cached")
	if err != nil {
		return "", gitutil.WrapGitError("failed to read staged diff", res, err)
	}
	return res.StdoutString(false), nil
}

// Status queries the repository for pending changes.
func (c *Client) Status(ctx context.Context) (Status, error) {
	res, err := c.runner.RunLogged(ctx, "status", "--porcelain")
	if err != nil {
		return Status{}, gitutil.WrapGitError("failed to read repository status", res, err)
	}
	return parseStatus(res.StdoutString(false)), nil
}

// parseStatus reads `git status --porcelain` output. Each line is "XY path",
// X the index state and Y the working-tree state; untracked files are "??".
func parseStatus(output string) Status {
	status := Status{
		workingTree: make(map[string]struct{}),
		staged:      make(map[string]struct{}),
	}

	for _, line := range stringsutil.SplitNonEmpty(output, "\n") {
		if len(line) < 4 {
			continue
		}
		index, tree := line[0], line[1]
		path := strings.TrimSpace(line[3:])
		// Renames read "R  old -> new"; the new path is the one that matters.
		if i := strings.Index(path, " -> "); i >= 0 {
			path = path[i+len(" -> "):]
		}
		if path == "" {
			continue
		}

		if index == '?' {
			status.workingTree[path] = struct{}{}
			continue
		}
		if index != ' ' {
			status.staged[path] = struct{}{}
		}
		if tree != ' ' {
			status.workingTree[path] = struct{}{}
		}
	}
	return status
}
