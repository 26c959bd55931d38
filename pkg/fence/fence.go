// Package fence picks code-fence delimiters that cannot collide with the
// content they wrap.
package fence

import "strings"

// minLen is the conventional Markdown minimum fence length.
const minLen = 3

// Choose returns a backtick fence strictly longer than the longest backtick
// run in content, and never shorter than three. Wrapping content in the
// returned fence is therefore always unambiguous, including for content
// made entirely of backticks.
func Choose(content string) string {
	maxRun := 0
	run := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '`' {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 0
		}
	}

	n := maxRun + 1
	if n < minLen {
		n = minLen
	}
	return strings.Repeat("`", n)
}
