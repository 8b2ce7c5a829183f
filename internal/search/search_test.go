package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"resweep/internal/pattern"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSearchState_SelectionWrap(t *testing.T) {
	s := &SearchState{Matches: []*Match{
		NewMatch("a", 1, "x", "y"),
		NewMatch("b", 1, "x", "y"),
		NewMatch("c", 1, "x", "y"),
	}}
	start := s.Selected
	for i := 0; i < len(s.Matches); i++ {
		s.MoveDown()
	}
	if s.Selected != start {
		t.Fatalf("n MoveDown calls should be identity, got %d want %d", s.Selected, start)
	}
	for i := 0; i < len(s.Matches); i++ {
		s.MoveUp()
	}
	if s.Selected != start {
		t.Fatalf("n MoveUp calls should be identity, got %d want %d", s.Selected, start)
	}
}

func TestSearchState_ToggleAll(t *testing.T) {
	s := &SearchState{Matches: []*Match{
		NewMatch("a", 1, "x", "y"),
		NewMatch("b", 1, "x", "y"),
	}}
	s.Matches[0].Included = false

	s.ToggleAll()
	for _, m := range s.Matches {
		if !m.Included {
			t.Fatalf("expected all included after toggling a mixed set")
		}
	}

	s.ToggleAll()
	for _, m := range s.Matches {
		if m.Included {
			t.Fatalf("expected all excluded after toggling an all-included set")
		}
	}
}

func TestHasBlockedExtension(t *testing.T) {
	cases := map[string]bool{
		"a.png": true, "a.GIF": true, "a.jpeg": true, "a.svg": true,
		"a.pdf": true, "a.txt": false, "a.go": false,
	}
	for name, want := range cases {
		if got := hasBlockedExtension(name); got != want {
			t.Errorf("hasBlockedExtension(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLooksBinary(t *testing.T) {
	if looksBinary([]byte("plain ascii text")) {
		t.Fatalf("ascii text should not sniff as binary")
	}
	if !looksBinary([]byte("abc\x00def")) {
		t.Fatalf("a NUL byte should sniff as binary")
	}
}

func scanFileCollect(t *testing.T, q *Query, path string) []*Match {
	t.Helper()
	out := make(chan *Match, 64)
	scanFile(context.Background(), testLogger(), q, path, out)
	close(out)
	var got []*Match
	for m := range out {
		got = append(got, m)
	}
	return got
}

func TestScanFile_RegexWordMatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	content := "For testing purposes\nAlso for testing\nsomething\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := pattern.Compile(`\b\w+ing\b`, pattern.Regex)
	if err != nil {
		t.Fatal(err)
	}
	q := &Query{Search: p, Replacement: "VERB", Root: dir}

	got := scanFileCollect(t, q, path)
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}
	want := []string{"For VERB purposes", "Also for VERB", "VERB"}
	for i, m := range got {
		if m.ProposedReplacement != want[i] {
			t.Errorf("line %d: got %q, want %q", i+1, m.ProposedReplacement, want[i])
		}
	}
}

func TestScanFile_BlockedExtensionProducesNoMatches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.gif")
	if err := os.WriteFile(path, []byte("testing\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, _ := pattern.Compile("testing", pattern.Literal)
	q := &Query{Search: p, Root: dir}

	if got := scanFileCollect(t, q, path); len(got) != 0 {
		t.Fatalf("expected 0 matches for a blocked extension, got %d", len(got))
	}
}

func TestScanFile_BinaryFirstLineProducesNoMatches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	content := append([]byte("testing\x00binary"), []byte("\nmore testing\n")...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	p, _ := pattern.Compile("testing", pattern.Literal)
	q := &Query{Search: p, Root: dir}

	if got := scanFileCollect(t, q, path); len(got) != 0 {
		t.Fatalf("expected 0 matches once the first line sniffs as binary, got %d", len(got))
	}
}

func TestScanFile_PathFilter(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "dir2"), 0o755); err != nil {
		t.Fatal(err)
	}
	matchPath := filepath.Join(dir, "dir2", "file.txt")
	skipPath := filepath.Join(dir, "file.txt")
	os.WriteFile(matchPath, []byte("testing\n"), 0o644)
	os.WriteFile(skipPath, []byte("testing\n"), 0o644)

	search, _ := pattern.Compile("testing", pattern.Literal)
	filter, _ := pattern.Compile("dir2", pattern.Literal)
	q := &Query{Search: search, PathFilter: filter, Root: dir}

	if got := scanFileCollect(t, q, matchPath); len(got) != 1 {
		t.Fatalf("expected the dir2 file to match, got %d matches", len(got))
	}
	if got := scanFileCollect(t, q, skipPath); len(got) != 0 {
		t.Fatalf("expected the root-level file to be filtered out, got %d matches", len(got))
	}
}

func TestWalk_HiddenExclusionAndVCSSkip(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "visible.txt"), []byte("testing\n"), 0o644)
	os.WriteFile(filepath.Join(dir, ".hidden.txt"), []byte("testing\n"), 0o644)
	os.MkdirAll(filepath.Join(dir, ".git"), 0o755)
	os.WriteFile(filepath.Join(dir, ".git", "config.txt"), []byte("testing\n"), 0o644)

	search, _ := pattern.Compile("testing", pattern.Literal)
	q := &Query{Search: search, Root: dir, IncludeHidden: false}

	var paths []string
	for m := range Walk(context.Background(), q, testLogger()) {
		paths = append(paths, filepath.Base(m.Path))
	}
	if len(paths) != 1 || paths[0] != "visible.txt" {
		t.Fatalf("expected only visible.txt to be scanned, got %v", paths)
	}

	q.IncludeHidden = true
	paths = nil
	for m := range Walk(context.Background(), q, testLogger()) {
		paths = append(paths, filepath.Base(m.Path))
	}
	foundHidden := false
	for _, p := range paths {
		if p == ".hidden.txt" {
			foundHidden = true
		}
		if p == "config.txt" {
			t.Fatalf(".git contents must never be scanned, even with hidden files included")
		}
	}
	if !foundHidden {
		t.Fatalf("expected .hidden.txt to be scanned once include_hidden is true, got %v", paths)
	}
}

func TestWalk_RootIgnoreCascadesToNestedFiles(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*.log\nbuild/\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("testing\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "skip.log"), []byte("testing\n"), 0o644)

	os.MkdirAll(filepath.Join(dir, "nested"), 0o755)
	os.WriteFile(filepath.Join(dir, "nested", "deep.log"), []byte("testing\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "nested", "deep.txt"), []byte("testing\n"), 0o644)

	os.MkdirAll(filepath.Join(dir, "build", "out"), 0o755)
	os.WriteFile(filepath.Join(dir, "build", "artifact.txt"), []byte("testing\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "build", "out", "artifact.txt"), []byte("testing\n"), 0o644)

	search, _ := pattern.Compile("testing", pattern.Literal)
	q := &Query{Search: search, Root: dir, IncludeHidden: true}

	var paths []string
	for m := range Walk(context.Background(), q, testLogger()) {
		paths = append(paths, m.Path)
	}

	want := map[string]bool{
		filepath.Join(dir, "keep.txt"):           true,
		filepath.Join(dir, "nested", "deep.txt"): true,
	}
	for _, p := range paths {
		if !want[p] {
			t.Fatalf("unexpected scanned path %q (root .gitignore should have excluded it): %v", p, paths)
		}
	}
	if len(paths) != len(want) {
		t.Fatalf("expected exactly %v, got %v", want, paths)
	}
}

func TestWalk_CancellationStopsEarly(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 50; i++ {
		os.WriteFile(filepath.Join(dir, fmt.Sprintf("file%02d.txt", i)), []byte("testing\n"), 0o644)
	}
	search, _ := pattern.Compile("testing", pattern.Literal)
	q := &Query{Search: search, Root: dir}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := Walk(ctx, q, testLogger())
	count := 0
	for range ch {
		count++
	}
	if count == 50 {
		t.Fatalf("expected cancellation to suppress at least some matches")
	}
}
