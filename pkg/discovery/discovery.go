package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/suuzee/lintpath/pkg/ignore"
	"github.com/suuzee/lintpath/pkg/pathutil"
)

// ResolvePatterns normalizes a pattern list for file collection: empty
// strings are dropped and directory paths are rewritten into
// extension-filtered glob patterns. Order is preserved.
func ResolvePatterns(patterns []string, opts Options) []string {
	conv := pathutil.NewConverter(opts.Cwd, opts.Extensions)

	resolved := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		resolved = append(resolved, conv.Convert(pattern))
	}

	return resolved
}

// ListFiles expands patterns into an ordered, deduplicated list of file
// records. A pattern naming an existing regular file resolves directly
// (symlinks followed); anything else is glob-expanded. Directly named
// files that match an ignore rule are reported with Ignored set, while
// glob-discovered ignored files are silently dropped.
//
// The first pattern to yield a filename wins: later patterns can neither
// re-add it nor change its Ignored flag.
func ListFiles(patterns []string, opts Options) ([]FileRecord, error) {
	// Absolutize once so walk paths, realpath-resolved direct paths, and
	// the ignore engine base all share the same absolute prefix.
	cwd, err := filepath.Abs(opts.Cwd)
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	c := &collector{
		opts:    opts,
		cwd:     cwd,
		seen:    make(map[string]bool),
		engines: make(map[bool]*ignore.Engine),
	}

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}

		resolved := filepath.FromSlash(pattern)
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(cwd, resolved)
		}

		info, err := os.Stat(resolved)
		if err == nil && info.Mode().IsRegular() {
			if err := c.addDirect(resolved); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat %s: %w", resolved, err)
		}

		if err := c.addGlob(pattern); err != nil {
			return nil, err
		}
	}

	return c.files, nil
}

// collector accumulates file records for one ListFiles call. The engine
// memo is scoped to the call, keyed by the effective dotfiles flag, so at
// most two engines are built regardless of pattern count.
type collector struct {
	opts    Options
	cwd     string
	files   []FileRecord
	seen    map[string]bool
	engines map[bool]*ignore.Engine
}

// addDirect records a directly named file, symlink-resolved.
func (c *collector) addDirect(resolved string) error {
	eng, err := c.engine(c.opts.Dotfiles != nil && *c.opts.Dotfiles)
	if err != nil {
		return err
	}

	real, err := filepath.EvalSymlinks(resolved)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", resolved, err)
	}

	c.add(real, true, eng)
	return nil
}

// addGlob expands one glob pattern and records the surviving matches.
func (c *collector) addGlob(pattern string) error {
	dotfiles := pathutil.IsDotfilePattern(pattern)
	if c.opts.Dotfiles != nil {
		dotfiles = *c.opts.Dotfiles
	}

	eng, err := c.engine(dotfiles)
	if err != nil {
		return err
	}

	matches, err := expandGlob(pattern, c.cwd, eng.SkipDir)
	if err != nil {
		return err
	}

	for _, match := range matches {
		c.add(match, false, eng)
	}

	return nil
}

// add classifies one absolute filename and records it unless policy drops
// it. Only recorded filenames enter the seen set: a glob match dropped as
// ignored can still surface when a later pattern names it directly.
func (c *collector) add(filename string, isDirectPath bool, eng *ignore.Engine) {
	if c.seen[filename] {
		return
	}

	matchesIgnore := eng.Match(filename, ignore.TierDefault) ||
		(c.opts.Ignore && eng.Match(filename, ignore.TierCustom))

	switch {
	case matchesIgnore && isDirectPath && c.opts.Ignore:
		c.record(filename, true)
	case !matchesIgnore || (isDirectPath && !c.opts.Ignore):
		c.record(filename, false)
	}
}

func (c *collector) record(filename string, ignored bool) {
	c.seen[filename] = true
	c.files = append(c.files, FileRecord{Filename: filename, Ignored: ignored})
}

// engine returns the memoized ignore engine for a dotfiles variant.
func (c *collector) engine(dotfiles bool) (*ignore.Engine, error) {
	if eng, ok := c.engines[dotfiles]; ok {
		return eng, nil
	}

	eng, err := ignore.New(ignore.Options{
		Cwd:            c.cwd,
		Dotfiles:       dotfiles,
		Ignore:         c.opts.Ignore,
		IgnoreFilePath: c.opts.IgnoreFilePath,
		IgnorePattern:  c.opts.IgnorePattern,
	})
	if err != nil {
		return nil, fmt.Errorf("building ignore rules: %w", err)
	}

	c.engines[dotfiles] = eng
	return eng, nil
}
