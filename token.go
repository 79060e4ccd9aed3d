// Copyright (c) 2026 Neomantra Corp

package elucidator

import "fmt"

// token is a slice of source text tagged with its character-indexed,
// end-exclusive span within that source. ColumnEnd - ColumnStart always
// equals the rune count of Data.
type token struct {
	data        string
	columnStart int
	columnEnd   int
}

func newToken(data string, columnStart int) token {
	return token{
		data:        data,
		columnStart: columnStart,
		columnEnd:   columnStart + len([]rune(data)),
	}
}

func (t token) String() string {
	return fmt.Sprintf("cols %d-%d: %q", t.columnStart, t.columnEnd, t.data)
}

func (t token) parsingError(reason ParsingFailure) *ParsingError {
	return &ParsingError{
		Offender:    t.data,
		ColumnStart: t.columnStart,
		ColumnEnd:   t.columnEnd,
		Reason:      reason,
	}
}
