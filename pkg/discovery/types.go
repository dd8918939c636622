// Package discovery resolves path and glob patterns into the deduplicated,
// ordered list of files a downstream tool should process.
package discovery

// Options controls pattern resolution and file collection.
//
// The zero value disables ignore handling; use DefaultOptions for the
// standard behavior.
type Options struct {
	// Cwd is the base directory for resolving relative patterns.
	// Empty defaults to the process working directory.
	Cwd string

	// Extensions filters files when a directory is expanded into a glob.
	// Empty defaults to [".js"].
	Extensions []string

	// Ignore enables custom ignore rules and the reporting of directly
	// named ignored files.
	Ignore bool

	// IgnoreFilePath is an explicit ignore file path. Empty means a
	// discoverable ignore file in Cwd, if any.
	IgnoreFilePath string

	// IgnorePattern is an inline ignore rule.
	IgnorePattern string

	// Dotfiles forces dotfile matching on or off for glob expansion.
	// Nil derives it per pattern from the pattern text.
	Dotfiles *bool
}

// DefaultOptions returns the standard options: ignore handling on,
// everything else derived.
func DefaultOptions() Options {
	return Options{Ignore: true}
}

// FileRecord is one discovered file.
type FileRecord struct {
	// Filename is the absolute path of the file.
	Filename string `json:"filename"`

	// Ignored reports that the file was named directly but matches an
	// ignore rule. Glob-discovered ignored files are never recorded.
	Ignored bool `json:"ignored"`
}
