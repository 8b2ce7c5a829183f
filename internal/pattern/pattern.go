// Package pattern compiles and evaluates the three search-pattern modes:
// literal substring, basic regex, and advanced regex (lookaround and
// backreferences).
package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// Mode selects which engine a Pattern compiles against.
type Mode int

const (
	// Literal treats the search text as a plain substring, no metacharacters.
	Literal Mode = iota
	// Regex uses Go's RE2-based stdlib engine: leftmost-first, non-overlapping.
	Regex
	// AdvancedRegex uses a backtracking engine supporting lookaround and
	// backreferences, at the cost of no complexity guarantees.
	AdvancedRegex
)

func (m Mode) String() string {
	switch m {
	case Literal:
		return "literal"
	case Regex:
		return "regex"
	case AdvancedRegex:
		return "advanced-regex"
	default:
		return "unknown"
	}
}

// InvalidPatternError reports a compile failure for a search or path
// pattern, carrying both a short field annotation and a longer detail
// string for the modal popup.
type InvalidPatternError struct {
	Mode  Mode
	Text  string
	Short string
	Long  string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid %s pattern %q: %s", e.Mode, e.Text, e.Long)
}

// Pattern is an immutable compiled search or path filter. Construct one
// with Compile; the zero value is not usable.
type Pattern struct {
	mode    Mode
	raw     string
	re      *regexp.Regexp
	re2     *regexp2.Regexp
	literal string
}

// Compile builds a Pattern from text under the given mode. A compile
// failure returns *InvalidPatternError.
func Compile(text string, mode Mode) (*Pattern, error) {
	switch mode {
	case Literal:
		return &Pattern{mode: Literal, raw: text, literal: text}, nil
	case Regex:
		re, err := regexp.Compile(text)
		if err != nil {
			return nil, &InvalidPatternError{
				Mode: mode, Text: text,
				Short: "invalid regex",
				Long:  err.Error(),
			}
		}
		return &Pattern{mode: Regex, raw: text, re: re}, nil
	case AdvancedRegex:
		re2, err := regexp2.Compile(text, regexp2.None)
		if err != nil {
			return nil, &InvalidPatternError{
				Mode: mode, Text: text,
				Short: "invalid advanced regex",
				Long:  err.Error(),
			}
		}
		return &Pattern{mode: AdvancedRegex, raw: text, re2: re2}, nil
	default:
		return nil, &InvalidPatternError{Mode: mode, Text: text, Short: "unknown mode", Long: "unrecognized pattern mode"}
	}
}

// Mode reports which engine compiled this pattern.
func (p *Pattern) Mode() Mode { return p.mode }

// Raw returns the original, uncompiled pattern text.
func (p *Pattern) Raw() string { return p.raw }

// Matches reports whether line contains at least one occurrence.
func (p *Pattern) Matches(line string) bool {
	switch p.mode {
	case Literal:
		return strings.Contains(line, p.literal)
	case Regex:
		return p.re.MatchString(line)
	case AdvancedRegex:
		ok, err := p.re2.MatchString(line)
		return err == nil && ok
	default:
		return false
	}
}

// ReplaceAll substitutes every non-overlapping match in line with the
// expansion of template. For Regex and AdvancedRegex modes, template may
// contain backreferences in the engine's own expansion syntax ($1, ${name}).
func (p *Pattern) ReplaceAll(line, template string) string {
	switch p.mode {
	case Literal:
		if p.literal == "" {
			return line
		}
		return strings.ReplaceAll(line, p.literal, template)
	case Regex:
		return p.re.ReplaceAllString(line, template)
	case AdvancedRegex:
		out, err := p.re2.ReplaceFunc(line, func(m regexp2.Match) string {
			return expandRegexp2Template(m, template)
		}, -1, -1)
		if err != nil {
			return line
		}
		return out
	default:
		return line
	}
}

// expandRegexp2Template performs a minimal $1/${name} substitution against
// a regexp2 match, mirroring the subset of stdlib regexp's Expand syntax
// that regexp2 doesn't implement natively.
func expandRegexp2Template(m regexp2.Match, template string) string {
	var b strings.Builder
	runes := []rune(template)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '$' || i == len(runes)-1 {
			b.WriteRune(runes[i])
			continue
		}
		i++
		if runes[i] == '{' {
			j := i + 1
			for j < len(runes) && runes[j] != '}' {
				j++
			}
			name := string(runes[i+1 : j])
			writeGroup(&b, m, name)
			i = j
			continue
		}
		j := i
		for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
			j++
		}
		if j == i {
			b.WriteRune('$')
			b.WriteRune(runes[i])
			continue
		}
		writeGroup(&b, m, string(runes[i:j]))
		i = j - 1
	}
	return b.String()
}

func writeGroup(b *strings.Builder, m regexp2.Match, name string) {
	g := m.GroupByName(name)
	if g == nil {
		b.WriteString(m.GroupByNumber(0).String())
		return
	}
	if len(g.Captures) == 0 {
		return
	}
	b.WriteString(g.String())
}

// PathMatches tests a pattern against a path relative to root, always
// using forward slashes regardless of host OS separator conventions.
func (p *Pattern) PathMatches(relPath string) bool {
	return p.Matches(filepathToSlash(relPath))
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
