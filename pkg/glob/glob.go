// Package glob implements the restricted glob dialect used by the
// --include and --exclude filters.
//
// Supported syntax:
//   - `**/` matches zero or more complete path segments
//   - a trailing `**` matches the remainder of the path unconditionally
//   - `*` matches any run of characters within a single segment
//   - `?` matches exactly one character, excluding `/`
//   - `{a,b,c}` matches if any comma-separated alternative matches;
//     alternatives may themselves contain the full glob syntax
//   - `[...]` is a character class; a leading `!` negates, and a `]`
//     directly after the opening bracket is literal
//
// A pattern without a `/` is matched against the final path segment only,
// so a bare `*.js` matches JavaScript files at any depth. A pattern with a
// `/` is matched against the full slash-normalized path. Matching always
// covers the entire target string: `*.js` does not match `index.jsx`.
package glob

import (
	"regexp"
	"strings"
)

// Matcher is a compiled glob pattern.
type Matcher struct {
	re       *regexp.Regexp
	basename bool
}

// Compile translates a glob pattern into a Matcher. Malformed patterns
// degrade to literal interpretation (an unterminated `{` matches a literal
// `{`) rather than failing; an error is only possible when a character
// class does not survive regexp compilation.
func Compile(pattern string) (*Matcher, error) {
	re, err := regexp.Compile("^" + translate(pattern) + "$")
	if err != nil {
		return nil, err
	}
	return &Matcher{
		re:       re,
		basename: !strings.Contains(pattern, "/"),
	}, nil
}

// Match reports whether the matcher accepts the slash-normalized relative
// path. Patterns without a `/` are checked against the basename only.
func (m *Matcher) Match(path string) bool {
	if m.basename {
		if i := strings.LastIndexByte(path, '/'); i >= 0 {
			path = path[i+1:]
		}
	}
	return m.re.MatchString(path)
}

// Match is a convenience wrapper compiling pattern and matching it against
// path in one call. Patterns that fail to compile match nothing.
func Match(pattern, path string) bool {
	m, err := Compile(pattern)
	if err != nil {
		return false
	}
	return m.Match(path)
}

// translate converts one glob pattern into an unanchored regexp body.
// It is applied recursively to brace alternatives.
func translate(pattern string) string {
	var sb strings.Builder
	for i := 0; i < len(pattern); {
		switch pattern[i] {
		case '*':
			if strings.HasPrefix(pattern[i:], "**/") {
				// Zero or more complete segments, each with its slash.
				sb.WriteString(`(?:[^/]*/)*`)
				i += 3
			} else if pattern[i:] == "**" {
				sb.WriteString(`.*`)
				i += 2
			} else {
				sb.WriteString(`[^/]*`)
				i++
			}
		case '?':
			sb.WriteString(`[^/]`)
			i++
		case '{':
			end := closingBrace(pattern, i)
			if end < 0 {
				sb.WriteString(`\{`)
				i++
				continue
			}
			sb.WriteString(`(?:`)
			for j, alt := range splitAlternatives(pattern[i+1 : end]) {
				if j > 0 {
					sb.WriteByte('|')
				}
				sb.WriteString(translate(alt))
			}
			sb.WriteByte(')')
			i = end + 1
		case '[':
			end := closingBracket(pattern, i)
			if end < 0 {
				sb.WriteString(`\[`)
				i++
				continue
			}
			sb.WriteString(bracketExpression(pattern[i : end+1]))
			i = end + 1
		default:
			j := i
			for j < len(pattern) && !strings.ContainsRune("*?{[", rune(pattern[j])) {
				j++
			}
			sb.WriteString(regexp.QuoteMeta(pattern[i:j]))
			i = j
		}
	}
	return sb.String()
}

// closingBrace returns the index of the brace closing the group opened at
// open, honoring nested groups, or -1 when the group is unterminated.
func closingBrace(pattern string, open int) int {
	depth := 0
	for i := open; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitAlternatives splits a brace group body on top-level commas.
func splitAlternatives(body string) []string {
	var alts []string
	depth := 0
	start := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				alts = append(alts, body[start:i])
				start = i + 1
			}
		}
	}
	return append(alts, body[start:])
}

// closingBracket returns the index of the `]` terminating the character
// class opened at open, or -1 when the class is unterminated. Per POSIX
// convention a `]` immediately after `[` (or `[!`) is literal.
func closingBracket(pattern string, open int) int {
	i := open + 1
	if i < len(pattern) && pattern[i] == '!' {
		i++
	}
	if i < len(pattern) && pattern[i] == ']' {
		i++
	}
	for ; i < len(pattern); i++ {
		if pattern[i] == ']' {
			return i
		}
	}
	return -1
}

// bracketExpression rewrites a glob character class, brackets included,
// into its regexp form: `!` negation becomes `^`, and a literal leading
// `]` is escaped so the regexp engine does not treat it as a terminator.
func bracketExpression(class string) string {
	body := class[1 : len(class)-1]
	negate := strings.HasPrefix(body, "!")
	if negate {
		body = body[1:]
	}
	if strings.HasPrefix(body, "]") {
		body = `\]` + body[1:]
	}
	if negate {
		return "[^" + body + "]"
	}
	return "[" + body + "]"
}
