package tokenizer

import "fmt"

// Range is a half-open [Start, End) byte interval in the source
type Range struct {
	Start int
	End   int
}

// EmptyRange is the range preceding the first token
var EmptyRange = Range{}

// Next returns the range immediately following r that spans text
func (r Range) Next(text string) Range {
	return Range{Start: r.End, End: r.End + len(text)}
}

// Len returns the number of bytes covered
func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
