// Package token estimates how many LLM tokens a document will consume.
package token

import "fmt"

// Count is a token estimate together with the method that produced it.
type Count struct {
	Tokens int
	Method string
}

// String renders the count for the document trailer,
// e.g. "~1234 tokens (heuristic-chars/4)".
func (c Count) String() string {
	return fmt.Sprintf("~%d tokens (%s)", c.Tokens, c.Method)
}

// Counter produces a token estimate for text. The default implementation is
// a character heuristic; an exact tokenizer can be substituted behind the
// same interface.
type Counter interface {
	Count(text string) Count
}

// Heuristic approximates one token per four bytes of text, rounding up.
// Close enough for sizing prompts without a tokenizer dependency.
type Heuristic struct{}

const heuristicMethod = "heuristic-chars/4"

// Count implements Counter.
func (Heuristic) Count(text string) Count {
	return CountBytes(int64(len(text)))
}

// CountBytes is the byte-length form of the heuristic, usable when the text
// was streamed and only its size is known.
func CountBytes(n int64) Count {
	return Count{
		Tokens: int((n + 3) / 4),
		Method: heuristicMethod,
	}
}
