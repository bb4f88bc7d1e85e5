// Package output writes generated matrices to their targets: a plain
// directory of Dockerfiles, or one git branch per matrix tag. The core
// hands over final rendered text; nothing here re-interprets it.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/distroforge/distroforge/pkg/dockerfile"
)

// Tags returns the matrix tags in deterministic order.
func Tags(m map[string]dockerfile.Dockerfile) []string {
	tags := make([]string, 0, len(m))
	for tag := range m {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// WriteDir writes one "Dockerfile.<tag>" file per matrix cell into dir,
// creating it if needed. Cells go to distinct paths, so writes fan out;
// the contents of each file are written in a single call.
func WriteDir(dir string, m map[string]dockerfile.Dockerfile) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	var eg errgroup.Group
	for _, tag := range Tags(m) {
		path := filepath.Join(dir, "Dockerfile."+tag)
		text := m[tag].Render() + "\n"
		eg.Go(func() error {
			if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			return nil
		})
	}
	return eg.Wait()
}
