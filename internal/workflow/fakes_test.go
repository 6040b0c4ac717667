package workflow

import (
	"context"
	"errors"

	"github.com/samzong/gsc/internal/committype"
	"github.com/samzong/gsc/internal/git"
	"github.com/samzong/gsc/internal/message"
)

// fakeGit records the operations the workflow performs and plays back
// configured results.
type fakeGit struct {
	status       git.Status
	statusErr    error
	branch       string
	fetchErr     error
	changedFiles []string
	changedErr   error
	stashErr     error
	pullErr      error
	popOutput    string
	popErr       error
	stagedDiff   string
	addAllErr    error
	commitErr    error
	pushErr      error

	calls         []string
	commitMessage string
	commitFiles   []string
}

func (f *fakeGit) record(op string) {
	f.calls = append(f.calls, op)
}

func (f *fakeGit) called(op string) bool {
	for _, c := range f.calls {
		if c == op {
			return true
		}
	}
	return false
}

func (f *fakeGit) Status(context.Context) (git.Status, error) {
	f.record("status")
	return f.status, f.statusErr
}

func (f *fakeGit) CurrentBranch(context.Context) (string, error) {
	f.record("branch")
	if f.branch == "" {
		return "main", nil
	}
	return f.branch, nil
}

func (f *fakeGit) Fetch(_ context.Context, remote, branch string) error {
	f.record("fetch " + remote + "/" + branch)
	return f.fetchErr
}

func (f *fakeGit) ChangedFiles(_ context.Context, branch, remoteRef string) ([]string, error) {
	f.record("diff " + branch + " " + remoteRef)
	return f.changedFiles, f.changedErr
}

func (f *fakeGit) StashSave(context.Context) error {
	f.record("stash save")
	return f.stashErr
}

func (f *fakeGit) Pull(_ context.Context, remote, branch string) error {
	f.record("pull " + remote + "/" + branch)
	return f.pullErr
}

func (f *fakeGit) StashPop(context.Context) (string, error) {
	f.record("stash pop")
	return f.popOutput, f.popErr
}

func (f *fakeGit) StagedDiff(context.Context) (string, error) {
	f.record("staged diff")
	return f.stagedDiff, nil
}

func (f *fakeGit) AddAll(context.Context) error {
	f.record("add all")
	return f.addAllErr
}

func (f *fakeGit) Commit(_ context.Context, msg string, files []string) error {
	f.record("commit")
	f.commitMessage = msg
	f.commitFiles = files
	return f.commitErr
}

func (f *fakeGit) Push(_ context.Context, remote, branch string) error {
	f.record("push " + remote + "/" + branch)
	return f.pushErr
}

// fakePrompter returns a canned answer and remembers whether it was invoked.
type fakePrompter struct {
	answer   message.Answer
	err      error
	asked    bool
	defaults PromptDefaults
}

func (p *fakePrompter) Ask(_ committype.Catalog, defaults PromptDefaults) (message.Answer, error) {
	p.asked = true
	p.defaults = defaults
	return p.answer, p.err
}

// fakeSuggester returns a canned subject.
type fakeSuggester struct {
	subject string
	err     error
	called  bool
}

func (s *fakeSuggester) SuggestSubject(context.Context, []string, string) (string, error) {
	s.called = true
	return s.subject, s.err
}

var errBoom = errors.New("boom")
