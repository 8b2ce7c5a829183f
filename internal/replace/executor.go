// Package replace implements the replacement executor: atomic per-file
// rewrites of included matches, followed by a folded tally of outcomes.
package replace

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"resweep/internal/search"
)

// tmpSuffix is appended to the target path to build the sibling rewrite
// file. Per §9's open question, a pre-existing file of that exact name
// is silently overwritten; collision avoidance is out of scope.
const tmpSuffix = ".tmp"

// Execute groups a SearchState's included matches by file and rewrites
// each file atomically, then folds outcomes (including excluded and
// never-visited matches) into a Stats. The runID correlates this run's
// log lines, mirroring the teacher's transaction-ID convention.
func Execute(ctx context.Context, state *search.SearchState, log *slog.Logger) *Stats {
	runID := uuid.NewString()
	log = log.With("replace_run", runID)

	byPath := make(map[string][]*search.Match)
	for _, m := range state.Matches {
		if !m.Included {
			continue
		}
		byPath[m.Path] = append(byPath[m.Path], m)
	}

	for path, matches := range byPath {
		select {
		case <-ctx.Done():
			markAllError(matches, ctx.Err().Error())
			continue
		default:
		}
		if err := rewriteFile(path, matches); err != nil {
			log.Warn("replace: rewrite failed", "path", path, "error", err)
			markAllError(matches, err.Error())
		}
	}

	return foldStats(state.Matches)
}

func markAllError(matches []*search.Match, msg string) {
	for _, m := range matches {
		m.Outcome = &search.Outcome{Success: false, Err: msg}
	}
}

// rewriteFile implements the per-file atomic rewrite algorithm (§4.5):
// stream the source line by line, substitute matched lines whose current
// content still equals what the scanner captured, write a sibling temp
// file, then rename it over the source. Each match whose line is reached
// gets an Outcome; a match whose line number lies past the end of the
// file keeps a nil Outcome. On error, the caller overwrites every
// match's Outcome with the rewrite error instead.
func rewriteFile(path string, matches []*search.Match) (err error) {
	byLine := make(map[int]*search.Match, len(matches))
	for _, m := range matches {
		byLine[m.LineNumber] = m
	}

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer src.Close()

	tmpPath := path + tmpSuffix
	dst, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmpPath, err)
	}
	closed := false
	defer func() {
		if !closed {
			dst.Close()
		}
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	reader := bufio.NewScanner(src)
	reader.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	writer := bufio.NewWriter(dst)

	lineNumber := 0
	for reader.Scan() {
		lineNumber++
		line := reader.Text()

		if m, ok := byLine[lineNumber]; ok {
			if line == m.OriginalLine {
				if _, err = writer.WriteString(m.ProposedReplacement); err != nil {
					return fmt.Errorf("writing %s: %w", tmpPath, err)
				}
				m.Outcome = &search.Outcome{Success: true}
			} else {
				if _, err = writer.WriteString(line); err != nil {
					return fmt.Errorf("writing %s: %w", tmpPath, err)
				}
				m.Outcome = &search.Outcome{Success: false, Err: "File changed since last search"}
			}
		} else if _, err = writer.WriteString(line); err != nil {
			return fmt.Errorf("writing %s: %w", tmpPath, err)
		}
		if _, err = writer.WriteString("\n"); err != nil {
			return fmt.Errorf("writing %s: %w", tmpPath, err)
		}
	}
	if err = reader.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err = writer.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", tmpPath, err)
	}
	if err = dst.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", tmpPath, err)
	}
	closed = true
	if err = dst.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming %s over %s: %w", tmpPath, path, err)
	}
	return nil
}
