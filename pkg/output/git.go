package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/distroforge/distroforge/pkg/dockerfile"
)

// GitWriter maintains one branch per matrix tag in a local repository,
// each branch holding exactly that cell's Dockerfile. Repository
// mutations are serialized; go-git worktrees are not safe for concurrent
// checkouts.
type GitWriter struct {
	repo *git.Repository
	mu   sync.Mutex
}

// OpenGit opens the repository at path, initializing it (with an empty
// root commit, so branches have a parent to fork from) when none exists.
func OpenGit(path string) (*GitWriter, error) {
	repo, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(path, false)
	}
	if err != nil {
		return nil, fmt.Errorf("opening git repository %s: %w", path, err)
	}

	w := &GitWriter{repo: repo}
	if _, err := repo.Head(); errors.Is(err, plumbing.ErrReferenceNotFound) {
		if err := w.rootCommit(); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func (w *GitWriter) rootCommit() error {
	wt, err := w.repo.Worktree()
	if err != nil {
		return err
	}
	_, err = wt.Commit("initialize output repository", &git.CommitOptions{
		Author:            signature(),
		AllowEmptyCommits: true,
	})
	return err
}

// WriteBranch checks out the tag's branch (creating it if new), replaces
// its Dockerfile with contents and commits. Unchanged cells produce no
// new commit.
func (w *GitWriter) WriteBranch(tag, contents string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	wt, err := w.repo.Worktree()
	if err != nil {
		return err
	}

	branch := plumbing.NewBranchReferenceName(tag)
	_, err = w.repo.Reference(branch, true)
	create := errors.Is(err, plumbing.ErrReferenceNotFound)
	if err != nil && !create {
		return fmt.Errorf("resolving branch %s: %w", tag, err)
	}
	if err := wt.Checkout(&git.CheckoutOptions{Branch: branch, Create: create, Force: true}); err != nil {
		return fmt.Errorf("checking out %s: %w", tag, err)
	}

	path := filepath.Join(wt.Filesystem.Root(), "Dockerfile")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if _, err := wt.Add("Dockerfile"); err != nil {
		return err
	}

	status, err := wt.Status()
	if err != nil {
		return err
	}
	if status.IsClean() {
		return nil
	}

	_, err = wt.Commit(fmt.Sprintf("update %s", tag), &git.CommitOptions{Author: signature()})
	return err
}

// WriteAll writes every matrix cell to its branch in deterministic order.
func (w *GitWriter) WriteAll(m map[string]dockerfile.Dockerfile) error {
	for _, tag := range Tags(m) {
		if err := w.WriteBranch(tag, m[tag].Render()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func signature() *object.Signature {
	return &object.Signature{
		Name:  "distroforge",
		Email: "distroforge@localhost",
		When:  time.Now(),
	}
}
