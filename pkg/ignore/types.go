// Package ignore provides two-tier gitignore-style path exclusion for
// file discovery: built-in default rules and user-supplied custom rules.
package ignore

// Tier selects which rule set a query runs against.
type Tier int

const (
	// TierDefault is the built-in rule set (dependency directories, and
	// dotfiles unless dotfile matching is enabled).
	TierDefault Tier = iota

	// TierCustom is the user-supplied rule set (ignore file + inline pattern).
	TierCustom
)

// IgnoreFileName is the ignore file discovered in the working directory
// when no explicit path is configured.
const IgnoreFileName = ".lintignore"

// Options configures engine construction.
type Options struct {
	// Cwd is the base directory rules are anchored to. Paths outside it
	// never match. Empty defaults to the process working directory.
	Cwd string

	// Dotfiles disables the default dotfile-exclusion rule.
	Dotfiles bool

	// Ignore enables custom-rule checking. When false the engine still
	// answers TierCustom queries, but its directory pruning only applies
	// default rules.
	Ignore bool

	// IgnoreFilePath is an explicit ignore file. When set, a read failure
	// is an error. When empty, IgnoreFileName in Cwd is loaded if present.
	IgnoreFilePath string

	// IgnorePattern is an inline rule appended after file rules.
	IgnorePattern string
}
