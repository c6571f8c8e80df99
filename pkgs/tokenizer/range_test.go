package tokenizer

import "testing"

func TestRangeNext(t *testing.T) {
	tests := []struct {
		name     string
		start    Range
		text     string
		expected Range
	}{
		{"from empty", EmptyRange, "var", Range{0, 3}},
		{"contiguous", Range{0, 3}, " ", Range{3, 4}},
		{"multi-byte text", Range{4, 6}, "\"é\"", Range{6, 10}},
		{"empty text", Range{2, 5}, "", Range{5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Next(tt.text)
			if got != tt.expected {
				t.Errorf("%s.Next(%q) = %s, expected %s", tt.start, tt.text, got, tt.expected)
			}
			if got.Len() != len(tt.text) {
				t.Errorf("Len() = %d, expected %d", got.Len(), len(tt.text))
			}
		})
	}
}

func TestRangeString(t *testing.T) {
	if s := (Range{3, 7}).String(); s != "[3,7)" {
		t.Errorf("String() = %q", s)
	}
	if EmptyRange != (Range{}) {
		t.Errorf("EmptyRange = %s", EmptyRange)
	}
}

func TestTokenRanges(t *testing.T) {
	tokens, err := newTestTokenizer().RawTokens("a >>= 0x1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []Range{{0, 1}, {1, 2}, {2, 5}, {5, 6}, {6, 9}}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, tok := range tokens {
		if tok.Range != expected[i] {
			t.Errorf("token %d (%q) range %s, expected %s", i, tok.Text, tok.Range, expected[i])
		}
	}
}
