package search

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	gitignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// workerPoolSize bounds the number of files scanned concurrently (§5:
// "a fixed-size pool of worker threads processes file entries
// concurrently").
const workerPoolSize = 16

// vcsDirs are version-control metadata directories always excluded,
// regardless of hidden-file policy or ignore-file contents (§4.3, §6).
var vcsDirs = map[string]bool{
	".git": true, ".hg": true, ".svn": true,
}

// ignoreFileNames are the standard VCS ignore-file conventions honored
// per directory, in precedence order (later entries augment earlier
// ones, matching how git treats .gitignore and .git/info/exclude).
var ignoreFileNames = []string{".gitignore", ".ignore"}

// Walk traverses root in parallel, honoring ignore files and the hidden
// file policy, and returns a channel of Match events. The channel is
// closed once every worker has finished and drained — the completion
// sentinel required by §4.6, realized as an idiomatic Go channel close
// so the consumer can simply range over it.
//
// Cancelling ctx aborts in-flight scanner sends (§5 cancellation); the
// channel is still closed so the reducer's range loop terminates
// cleanly.
func Walk(ctx context.Context, q *Query, log *slog.Logger) <-chan *Match {
	out := make(chan *Match)

	go func() {
		defer close(out)

		cache, err := lru.New[string, *gitignore.GitIgnore](256)
		if err != nil {
			log.Error("walker: failed to allocate ignore-matcher cache", "error", err)
			return
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workerPoolSize)

		walkErr := filepath.WalkDir(q.Root, func(path string, d fs.DirEntry, err error) error {
			if gctx.Err() != nil {
				return filepath.SkipAll
			}
			if err != nil {
				// Traversal errors (permission denied, broken symlink) are
				// skipped silently per §4.3.
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			name := d.Name()
			if d.IsDir() {
				if path != q.Root && vcsDirs[name] {
					return filepath.SkipDir
				}
				if path != q.Root && !q.IncludeHidden && isHiddenName(name) {
					return filepath.SkipDir
				}
				if path != q.Root && isIgnored(q.Root, path, true, cache, log) {
					return filepath.SkipDir
				}
				return nil
			}

			if !q.IncludeHidden && isHiddenName(name) {
				return nil
			}
			if isIgnored(q.Root, path, false, cache, log) {
				return nil
			}

			g.Go(func() error {
				scanFile(gctx, log, q, path, out)
				return nil
			})
			return nil
		})
		if walkErr != nil && walkErr != filepath.SkipAll {
			log.Warn("walker: traversal stopped early", "error", walkErr)
		}

		_ = g.Wait()
	}()

	return out
}

func isHiddenName(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// isIgnored tests path against the full ignore-file stack from root down
// to the entry's own directory — not just the nearest directory — so a
// root .gitignore cascades to every descendant the way git itself
// applies it (§4.3/§6 "standard VCS ignore conventions"). Each ancestor
// directory's matcher is compiled from that directory's own ignore
// files only and matched against path relative to that ancestor; a hit
// at any level ignores the entry. isDir requests directory-pattern
// matching (a trailing slash appended to the relative path, per
// go-gitignore's convention for patterns like "build/" that only match
// directories) so directory-only rules actually prune traversal.
func isIgnored(root, path string, isDir bool, cache *lru.Cache[string, *gitignore.GitIgnore], log *slog.Logger) bool {
	dir := filepath.Dir(path)
	for _, ancestor := range ancestorChain(root, dir) {
		matcher, ok := cache.Get(ancestor)
		if !ok {
			matcher = compileIgnoreMatcher(ancestor, log)
			cache.Add(ancestor, matcher)
		}
		if matcher == nil {
			continue
		}
		rel, err := filepath.Rel(ancestor, path)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if isDir {
			rel += "/"
		}
		if matcher.MatchesPath(rel) {
			return true
		}
	}
	return false
}

// ancestorChain returns root, then each directory between root and dir
// inclusive, in descent order — the precedence order ignore files are
// consulted in (a root .gitignore first, then each nested directory's).
// isIgnored stops at the first hit, so a nested ignore file cannot
// re-include an entry an ancestor's ignore file already matched.
func ancestorChain(root, dir string) []string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return []string{root}
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	chain := make([]string, 0, len(parts)+1)
	cur := root
	chain = append(chain, cur)
	for _, p := range parts {
		cur = filepath.Join(cur, p)
		chain = append(chain, cur)
	}
	return chain
}

func compileIgnoreMatcher(dir string, log *slog.Logger) *gitignore.GitIgnore {
	var lines []string
	for _, name := range ignoreFileNames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		lines = append(lines, strings.Split(string(data), "\n")...)
	}
	if len(lines) == 0 {
		return nil
	}
	m := gitignore.CompileIgnoreLines(lines...)
	if m == nil {
		log.Debug("walker: ignore file compiled to nothing", "dir", dir)
	}
	return m
}
