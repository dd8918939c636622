// Package pathutil provides path-to-glob conversion and pattern helpers
// for file discovery.
package pathutil

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// dotfilePattern matches glob patterns that explicitly target dotfiles:
// a path segment starting with "." whose next character is neither another
// dot nor a separator. Relative markers ("./", "../") never match.
var dotfilePattern = regexp.MustCompile(`(?:^\.|[/\\]\.)[^/\\.].*`)

// Converter rewrites directory paths into extension-filtered glob patterns.
// Non-directory inputs pass through unchanged.
type Converter struct {
	cwd    string
	suffix string
}

// NewConverter creates a Converter for the given working directory and
// extension list. An empty cwd defaults to the process working directory,
// an empty extension list defaults to [".js"]. Leading dots on extensions
// are optional.
func NewConverter(cwd string, extensions []string) *Converter {
	// filepath.Abs also resolves the empty default to the process
	// working directory.
	if abs, err := filepath.Abs(cwd); err == nil {
		cwd = abs
	}

	if len(extensions) == 0 {
		extensions = []string{".js"}
	}

	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}

	var suffix string
	if len(exts) == 1 {
		suffix = "/**/*." + exts[0]
	} else {
		suffix = "/**/*.{" + strings.Join(exts, ",") + "}"
	}

	return &Converter{cwd: cwd, suffix: suffix}
}

// Convert rewrites pathname into a glob pattern matching all files with the
// configured extensions under it, if pathname is an existing directory.
// Anything else (files, globs, missing paths) is returned unchanged.
// The result always uses forward slashes.
func (c *Converter) Convert(pathname string) string {
	resolved := pathname
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(c.cwd, resolved)
	}

	if info, err := os.Stat(resolved); err == nil && info.IsDir() {
		pathname = trimTrailingSeparator(pathname) + c.suffix
	}

	return filepath.ToSlash(pathname)
}

// trimTrailingSeparator strips at most one trailing path separator.
func trimTrailingSeparator(pathname string) string {
	if n := len(pathname); n > 0 && (pathname[n-1] == '/' || pathname[n-1] == '\\') {
		return pathname[:n-1]
	}
	return pathname
}

// IsDotfilePattern reports whether a glob pattern explicitly targets
// dotfiles. This is a pure predicate over the pattern text; it never
// touches the filesystem.
func IsDotfilePattern(pattern string) bool {
	return dotfilePattern.MatchString(pattern)
}
