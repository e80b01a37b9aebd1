/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020 Leandro Motta Barros                                          *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package span gives every diagnostic-bearing piece of the compiler a common
// way to point back at the source text: a byte-offset range that is cheap to
// copy, cheap to compare, and independent of however the source is stored.
package span

import "fmt"

// A FreeSpan is a half-open byte range [Start, End) into some source text.
// It is "free" in the sense that it doesn't borrow or own the text itself;
// resolving it to an actual slice is the caller's job (see Anchor).
type FreeSpan struct {
	Start int
	End    int
}

// New builds a FreeSpan from a start/end byte pair.
func New(start, end int) FreeSpan {
	return FreeSpan{Start: start, End: end}
}

// Join returns the smallest span enclosing both a and b.
func Join(a, b FreeSpan) FreeSpan {
	start := a.Start
	if b.Start < start {
		start = b.Start
	}
	end := a.End
	if b.End > end {
		end = b.End
	}
	return FreeSpan{Start: start, End: end}
}

// Anchor resolves the span against source, returning the byte slice it
// covers. Panics if the span falls outside of source -- a span is only ever
// meaningful against the exact text it was produced from.
func (s FreeSpan) Anchor(source string) string {
	return source[s.Start:s.End]
}

// Len returns the number of bytes covered by the span.
func (s FreeSpan) Len() int {
	return s.End - s.Start
}

func (s FreeSpan) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
