package tokenizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLineIndex(t *testing.T) {
	src := "ab\ncd\n\nx"
	index := NewLineIndex(src)

	tests := []struct {
		offset   int
		expected Position
	}{
		{0, Position{Line: 1, Column: 1, Offset: 0}},
		{2, Position{Line: 1, Column: 3, Offset: 2}},
		{3, Position{Line: 2, Column: 1, Offset: 3}},
		{4, Position{Line: 2, Column: 2, Offset: 4}},
		{6, Position{Line: 3, Column: 1, Offset: 6}},
		{7, Position{Line: 4, Column: 1, Offset: 7}},
		{8, Position{Line: 4, Column: 2, Offset: 8}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.expected, index.Position(tt.offset)); diff != "" {
			t.Errorf("Position(%d) mismatch (-expected +actual):\n%s", tt.offset, diff)
		}
	}
}

func TestLineIndexEmptySource(t *testing.T) {
	got := NewLineIndex("").Position(0)
	if got != (Position{Line: 1, Column: 1}) {
		t.Errorf("unexpected position %+v", got)
	}
}
