package content

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// CollectSources walks root once and returns every regular file below it in lexical walk
// order, with remote paths relative to root using forward slashes. Symlinks to regular files
// are collected under the link's own path; other symlinks are not followed. Entries that are
// not collected come back as skipped or failed results and do not stop the walk.
func CollectSources(fs afero.Fs, root string) ([]Source, []Result) {
	var (
		sources  []Source
		rejected []Result
	)

	_ = afero.Walk(fs, root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			rejected = append(rejected, Result{
				Path:    remotePath(root, path),
				Outcome: OutcomeFailed,
				Err:     fmt.Errorf("error accessing path %s: %w", path, walkErr),
			})
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := fs.Stat(path)
			switch {
			case err != nil:
				rejected = append(rejected, Result{
					Path:    remotePath(root, path),
					Outcome: OutcomeSkipped,
					Err:     fmt.Errorf("broken symlink %s: %w", path, err),
				})
				return nil
			case !target.Mode().IsRegular():
				rejected = append(rejected, Result{
					Path:    remotePath(root, path),
					Outcome: OutcomeSkipped,
					Err:     fmt.Errorf("symlink %s does not point to a regular file", path),
				})
				return nil
			}
			info = target
		}

		if !info.Mode().IsRegular() {
			if !info.IsDir() {
				rejected = append(rejected, Result{
					Path:    remotePath(root, path),
					Outcome: OutcomeSkipped,
					Err:     fmt.Errorf("%s is not a regular file", path),
				})
			}
			return nil
		}

		sources = append(sources, Source{
			LocalPath:  path,
			RemotePath: remotePath(root, path),
		})
		return nil
	})

	return sources, rejected
}

func remotePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}
