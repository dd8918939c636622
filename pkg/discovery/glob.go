package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// expandGlob matches a glob pattern against the filesystem and returns
// absolute paths of matching files, in lexical walk order. Directories
// never match; skipDir prunes whole subtrees during the walk. A pattern
// whose literal base does not exist yields no matches and no error.
func expandGlob(pattern, cwd string, skipDir func(string) bool) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	abs := pattern
	if !filepath.IsAbs(filepath.FromSlash(abs)) {
		abs = filepath.ToSlash(filepath.Join(cwd, filepath.FromSlash(abs)))
	}

	base, glob := doublestar.SplitPattern(abs)
	baseDir := filepath.FromSlash(base)

	info, err := os.Stat(baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", baseDir, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	var matches []string
	err = filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != baseDir && skipDir(path) {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return err
		}

		ok, err := doublestar.Match(glob, filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("matching %q: %w", pattern, err)
		}
		if ok {
			matches = append(matches, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("expanding %q: %w", pattern, err)
	}

	return matches, nil
}
