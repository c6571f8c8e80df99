package tokenizer

import "sort"

// Position is a 1-based line and column (in bytes) plus the 0-based offset
type Position struct {
	Line   int
	Column int
	Offset int
}

// LineIndex converts byte offsets into line/column positions
type LineIndex struct {
	lineStarts []int
}

// NewLineIndex records the start offset of every line in src
func NewLineIndex(src string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{lineStarts: starts}
}

// Position returns the location of offset
func (li *LineIndex) Position(offset int) Position {
	// Index of the last line starting at or before offset
	line := sort.Search(len(li.lineStarts), func(i int) bool {
		return li.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	return Position{
		Line:   line + 1,
		Column: offset - li.lineStarts[line] + 1,
		Offset: offset,
	}
}
