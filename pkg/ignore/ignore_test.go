package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func newEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	eng, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return eng
}

func TestMatch_DefaultRules(t *testing.T) {
	dir := t.TempDir()
	eng := newEngine(t, Options{Cwd: dir, Ignore: true})

	inModules := filepath.Join(dir, "node_modules", "pkg", "index.js")
	if !eng.Match(inModules, TierDefault) {
		t.Errorf("Match(%s, TierDefault) = false, want true", inModules)
	}

	plain := filepath.Join(dir, "src", "a.js")
	if eng.Match(plain, TierDefault) {
		t.Errorf("Match(%s, TierDefault) = true, want false", plain)
	}
}

func TestMatch_DotfilesRule(t *testing.T) {
	dir := t.TempDir()
	dotfile := filepath.Join(dir, ".hidden.js")

	eng := newEngine(t, Options{Cwd: dir, Ignore: true})
	if !eng.Match(dotfile, TierDefault) {
		t.Error("dotfile should match default rules when dotfile matching is off")
	}

	eng = newEngine(t, Options{Cwd: dir, Dotfiles: true, Ignore: true})
	if eng.Match(dotfile, TierDefault) {
		t.Error("dotfile should not match default rules when dotfile matching is on")
	}
}

func TestMatch_InlinePattern(t *testing.T) {
	dir := t.TempDir()
	eng := newEngine(t, Options{Cwd: dir, Ignore: true, IgnorePattern: "ignored.js"})

	target := filepath.Join(dir, "src", "ignored.js")
	if !eng.Match(target, TierCustom) {
		t.Errorf("Match(%s, TierCustom) = false, want true", target)
	}
	if eng.Match(target, TierDefault) {
		t.Errorf("Match(%s, TierDefault) = true, want false", target)
	}
}

func TestMatch_DiscoveredIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	content := "# build artifacts\ndist/\n\n*.min.js\n"
	if err := os.WriteFile(filepath.Join(dir, IgnoreFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	eng := newEngine(t, Options{Cwd: dir, Ignore: true})

	if !eng.Match(filepath.Join(dir, "dist", "a.js"), TierCustom) {
		t.Error("dist/a.js should match discovered ignore file rules")
	}
	if !eng.Match(filepath.Join(dir, "lib", "b.min.js"), TierCustom) {
		t.Error("lib/b.min.js should match *.min.js")
	}
	if eng.Match(filepath.Join(dir, "lib", "b.js"), TierCustom) {
		t.Error("lib/b.js should not match any custom rule")
	}
}

func TestMatch_ExplicitIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.txt")
	if err := os.WriteFile(path, []byte("vendor/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	eng := newEngine(t, Options{Cwd: dir, Ignore: true, IgnoreFilePath: path})
	if !eng.Match(filepath.Join(dir, "vendor", "x.js"), TierCustom) {
		t.Error("vendor/x.js should match explicit ignore file rules")
	}
}

func TestNew_MissingExplicitIgnoreFile(t *testing.T) {
	dir := t.TempDir()

	_, err := New(Options{Cwd: dir, Ignore: true, IgnoreFilePath: filepath.Join(dir, "nope")})
	if err == nil {
		t.Error("New() should fail for an unreadable explicit ignore file")
	}
}

func TestNew_MissingDiscoveredIgnoreFile(t *testing.T) {
	dir := t.TempDir()

	if _, err := New(Options{Cwd: dir, Ignore: true}); err != nil {
		t.Errorf("New() error = %v, want nil when no ignore file exists", err)
	}
}

func TestMatch_OutsideBase(t *testing.T) {
	dir := t.TempDir()
	eng := newEngine(t, Options{Cwd: filepath.Join(dir, "project"), Ignore: true, IgnorePattern: "*"})

	outside := filepath.Join(dir, "elsewhere", "node_modules", "a.js")
	if eng.Match(outside, TierDefault) || eng.Match(outside, TierCustom) {
		t.Error("paths outside the base directory should never match")
	}
}

func TestSkipDir(t *testing.T) {
	dir := t.TempDir()
	eng := newEngine(t, Options{Cwd: dir, Ignore: true, IgnorePattern: "build/"})

	if !eng.SkipDir(filepath.Join(dir, "node_modules")) {
		t.Error("node_modules should be prunable via default rules")
	}
	if !eng.SkipDir(filepath.Join(dir, "build")) {
		t.Error("build should be prunable via custom rules")
	}
	if eng.SkipDir(filepath.Join(dir, "src")) {
		t.Error("src should not be pruned")
	}
}

func TestSkipDir_CustomDisabledWithoutIgnore(t *testing.T) {
	dir := t.TempDir()
	eng := newEngine(t, Options{Cwd: dir, Ignore: false, IgnorePattern: "build/"})

	if eng.SkipDir(filepath.Join(dir, "build")) {
		t.Error("custom rules should not prune when ignore handling is disabled")
	}
	if !eng.SkipDir(filepath.Join(dir, "node_modules")) {
		t.Error("default rules should still prune when ignore handling is disabled")
	}
}

func TestSkipDir_NegationDisablesCustomPruning(t *testing.T) {
	dir := t.TempDir()
	content := "build/\n!build/keep.js\n"
	if err := os.WriteFile(filepath.Join(dir, IgnoreFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	eng := newEngine(t, Options{Cwd: dir, Ignore: true})
	if eng.SkipDir(filepath.Join(dir, "build")) {
		t.Error("custom rules with negations must not prune directories")
	}
}

func TestParseRuleLines(t *testing.T) {
	lines := parseRuleLines("# comment\r\n\r\nfoo/\n  \n!foo/bar.js\n")

	want := []string{"foo/", "!foo/bar.js"}
	if len(lines) != len(want) {
		t.Fatalf("parseRuleLines() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("parseRuleLines()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}
