package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/require"

	"github.com/distroforge/distroforge/pkg/dockerfile"
)

func sampleMatrix() map[string]dockerfile.Dockerfile {
	return map[string]dockerfile.Dockerfile{
		"debian-12-x86_64-3.12.4": dockerfile.Join(
			dockerfile.FromImage("debian", "bookworm"),
			dockerfile.Runf("true"),
		),
		"alpine-3.20-x86_64-3.12.4": dockerfile.Join(
			dockerfile.FromImage("alpine", "3.20"),
			dockerfile.Runf("true"),
		),
	}
}

func TestTagsSorted(t *testing.T) {
	tags := Tags(sampleMatrix())
	require.Equal(t, []string{"alpine-3.20-x86_64-3.12.4", "debian-12-x86_64-3.12.4"}, tags)
}

func TestWriteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	m := sampleMatrix()
	require.NoError(t, WriteDir(dir, m))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, len(m))

	data, err := os.ReadFile(filepath.Join(dir, "Dockerfile.debian-12-x86_64-3.12.4"))
	require.NoError(t, err)
	require.Equal(t, "FROM debian:bookworm\nRUN true\n", string(data))
}

func TestGitWriterBranches(t *testing.T) {
	dir := t.TempDir()
	w, err := OpenGit(dir)
	require.NoError(t, err)

	m := sampleMatrix()
	require.NoError(t, w.WriteAll(m))

	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	for tag := range m {
		ref, err := repo.Reference(plumbing.NewBranchReferenceName(tag), true)
		require.NoError(t, err)
		require.False(t, ref.Hash().IsZero())
	}

	// Re-running against unchanged contents is a no-op, not an error.
	before, err := repo.Reference(plumbing.NewBranchReferenceName("debian-12-x86_64-3.12.4"), true)
	require.NoError(t, err)
	require.NoError(t, w.WriteAll(m))
	after, err := repo.Reference(plumbing.NewBranchReferenceName("debian-12-x86_64-3.12.4"), true)
	require.NoError(t, err)
	require.Equal(t, before.Hash(), after.Hash())
}

func TestOpenGitExisting(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenGit(dir)
	require.NoError(t, err)

	// Opening again reuses the repository.
	w, err := OpenGit(dir)
	require.NoError(t, err)
	require.NoError(t, w.WriteBranch("some-tag", "FROM scratch\n"))
}
