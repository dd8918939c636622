package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// defaultRules are always excluded regardless of user configuration.
var defaultRules = []string{
	"node_modules/",
	"bower_components/",
}

// Engine answers tiered ignore queries for absolute paths.
type Engine struct {
	base          string
	defaultRules  *gitignore.GitIgnore
	customRules   *gitignore.GitIgnore
	ignoreEnabled bool

	// customHasNegation disables custom-rule directory pruning, since a
	// negated rule may resurface files inside an excluded directory.
	customHasNegation bool
}

// New builds an engine from opts. Custom rules come from the configured
// ignore file (or a discovered one) followed by the inline pattern.
func New(opts Options) (*Engine, error) {
	base := opts.Cwd
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		base = wd
	}

	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolving base directory: %w", err)
	}

	defaults := make([]string, 0, len(defaultRules)+1)
	defaults = append(defaults, defaultRules...)
	if !opts.Dotfiles {
		defaults = append(defaults, ".*")
	}

	custom, err := loadCustomRules(abs, opts)
	if err != nil {
		return nil, err
	}

	eng := &Engine{
		base:          abs,
		defaultRules:  gitignore.CompileIgnoreLines(defaults...),
		customRules:   gitignore.CompileIgnoreLines(custom...),
		ignoreEnabled: opts.Ignore,
	}

	for _, line := range custom {
		if strings.HasPrefix(line, "!") {
			eng.customHasNegation = true
			break
		}
	}

	return eng, nil
}

// Match reports whether absPath matches a rule in the given tier.
// Paths outside the engine's base directory never match.
func (e *Engine) Match(absPath string, tier Tier) bool {
	rel, ok := e.relative(absPath)
	if !ok {
		return false
	}

	if tier == TierDefault {
		return e.defaultRules.MatchesPath(rel)
	}

	return e.customRules.MatchesPath(rel)
}

// SkipDir reports whether glob expansion may prune the whole directory.
// This is an optimization only: files are still classified individually,
// so pruning must never skip a directory that could contain kept files.
func (e *Engine) SkipDir(absDir string) bool {
	rel, ok := e.relative(absDir)
	if !ok {
		return false
	}

	if !strings.HasSuffix(rel, "/") {
		rel += "/"
	}

	if e.defaultRules.MatchesPath(rel) {
		return true
	}

	if e.ignoreEnabled && !e.customHasNegation {
		return e.customRules.MatchesPath(rel)
	}

	return false
}

// Base returns the absolute base directory rules are anchored to.
func (e *Engine) Base() string {
	return e.base
}

// relative converts absPath to a slash-separated path relative to base.
func (e *Engine) relative(absPath string) (string, bool) {
	rel, err := filepath.Rel(e.base, absPath)
	if err != nil {
		return "", false
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	return filepath.ToSlash(rel), true
}

// loadCustomRules reads the ignore file (explicit or discovered) and
// appends the inline pattern.
func loadCustomRules(base string, opts Options) ([]string, error) {
	var lines []string

	path := opts.IgnoreFilePath
	discovered := false
	if path == "" {
		path = filepath.Join(base, IgnoreFileName)
		discovered = true
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		lines = parseRuleLines(string(data))
	case discovered && os.IsNotExist(err):
		// No discoverable ignore file is fine.
	default:
		return nil, fmt.Errorf("reading ignore file %s: %w", path, err)
	}

	if pattern := strings.TrimSpace(opts.IgnorePattern); pattern != "" {
		lines = append(lines, pattern)
	}

	return lines, nil
}

// parseRuleLines splits ignore file content into rule lines, dropping
// blanks and comments.
func parseRuleLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
