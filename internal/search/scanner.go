package search

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// binaryExtensions is the hard-coded blocklist of known-binary extensions
// (§4.4 step 2). Matched case-insensitively, without the leading dot.
var binaryExtensions = map[string]bool{
	"png": true, "gif": true, "jpg": true, "jpeg": true,
	"ico": true, "svg": true, "pdf": true,
}

func hasBlockedExtension(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return binaryExtensions[ext]
}

// looksBinary sniffs a line's raw bytes for a NUL byte, the same test
// common VCS tools use to distinguish text from binary content. Per §9,
// this only ever runs against the first line.
func looksBinary(line []byte) bool {
	return bytes.IndexByte(line, 0) != -1
}

// scanFile implements §4.4 for one file entry: path filter, extension
// blocklist, then a buffered line-by-line scan producing a Match per
// matching line. It never returns an error to the caller — I/O failures
// are logged and treated as "no matches in this file" (§7 FileOpen/Read).
//
// A send failure on out (because the consumer side has gone away) is
// cancellation, not an error: the scan stops and returns immediately
// without logging (§4.4 step 4, §9 "exceptions across thread boundaries").
func scanFile(ctx context.Context, log *slog.Logger, q *Query, path string, out chan<- *Match) {
	if q.PathFilter != nil {
		rel, err := filepath.Rel(q.Root, path)
		if err != nil {
			return
		}
		if !q.PathFilter.PathMatches(rel) {
			return
		}
	}
	if hasBlockedExtension(path) {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Warn("scanner: open failed", "path", path, "error", err)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Bytes()

		if lineNumber == 1 && looksBinary(line) {
			return
		}

		lineStr := string(line)
		if !q.Search.Matches(lineStr) {
			continue
		}
		m := NewMatch(path, lineNumber, lineStr, q.Search.ReplaceAll(lineStr, q.Replacement))
		if !trySend(ctx, out, m) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Warn("scanner: read failed", "path", path, "error", err)
	}
}

// trySend publishes m on out, returning false if the context was
// canceled first. The channel itself is never closed by a sender, so a
// plain send never fails except by blocking forever past cancellation —
// this select is what makes that block cancellable.
func trySend(ctx context.Context, out chan<- *Match, m *Match) bool {
	select {
	case out <- m:
		return true
	case <-ctx.Done():
		return false
	}
}
