// Package tokenio serializes token streams for tools that sit downstream of
// the tokenizer: text listings, JSON, YAML and CBOR dumps, stream digests
// and schema checks of JSON dumps.
package tokenio

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	lexerrors "github.com/aledsdavies/eslex/pkgs/errors"
	"github.com/aledsdavies/eslex/pkgs/tokenizer"
)

// Format names an output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatCBOR}

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q (want one of text, json, yaml, cbor)", name)
}

// StreamVersion is the dump format version written into every stream.
// Readers accept any version with the same major number.
const StreamVersion = "v1.0.0"

// Stream forms
const (
	FormRaw   = "raw"
	FormFinal = "final"
)

// Record is the serialized form of one token. Kind is the category name for
// raw streams and the terminal tag for final streams; Range is only set on
// raw streams.
type Record struct {
	Kind  string `json:"kind" yaml:"kind" cbor:"kind"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty" cbor:"text,omitempty"`
	Value any    `json:"value" yaml:"value" cbor:"value"`
	Range []int  `json:"range,omitempty" yaml:"range,omitempty,flow" cbor:"range,omitempty"`
}

// Stream is a serializable token sequence
type Stream struct {
	Version string   `json:"version" yaml:"version" cbor:"version"`
	Form    string   `json:"form" yaml:"form" cbor:"form"`
	Tokens  []Record `json:"tokens" yaml:"tokens" cbor:"tokens"`
}

// FromRaw converts scanner output
func FromRaw(tokens []tokenizer.RawToken) Stream {
	records := make([]Record, len(tokens))
	for i, tok := range tokens {
		records[i] = Record{
			Kind:  tok.Category.String(),
			Text:  tok.Text,
			Value: tok.Value,
			Range: []int{tok.Range.Start, tok.Range.End},
		}
	}
	return Stream{Version: StreamVersion, Form: FormRaw, Tokens: records}
}

// FromFinal converts finalized output
func FromFinal(tokens []tokenizer.FinalToken) Stream {
	records := make([]Record, len(tokens))
	for i, tok := range tokens {
		records[i] = Record{Kind: tok.Tag.String(), Value: tok.Value}
	}
	return Stream{Version: StreamVersion, Form: FormFinal, Tokens: records}
}

// WithoutTrivia drops whitespace and comment tokens
func WithoutTrivia(tokens []tokenizer.RawToken) []tokenizer.RawToken {
	out := make([]tokenizer.RawToken, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Category == tokenizer.WHITESPACE || tok.Category == tokenizer.COMMENT {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Encode writes s to w in the given format
func Encode(w io.Writer, s Stream, format Format) error {
	var err error
	switch format {
	case FormatText:
		err = encodeText(w, s)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(jsonSafe(s))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(s); err == nil {
			err = enc.Close()
		}
	case FormatCBOR:
		err = canonicalCBOR.NewEncoder(w).Encode(s)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return lexerrors.NewEncodeError(string(format), err)
	}
	return nil
}

// encodeText writes one token per line: kind, range (raw only), value
func encodeText(w io.Writer, s Stream) error {
	for _, rec := range s.Tokens {
		var err error
		if len(rec.Range) == 2 {
			_, err = fmt.Fprintf(w, "%-10s [%d,%d) %s\n", rec.Kind, rec.Range[0], rec.Range[1], formatValue(rec.Value))
		} else {
			_, err = fmt.Fprintf(w, "%-12s %s\n", rec.Kind, formatValue(rec.Value))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// jsonSafe spells non-finite numbers as strings, which JSON cannot carry.
// Literals such as 1e999 evaluate to an infinity.
func jsonSafe(s Stream) Stream {
	out := s
	out.Tokens = make([]Record, len(s.Tokens))
	for i, rec := range s.Tokens {
		if f, ok := rec.Value.(float64); ok {
			switch {
			case math.IsInf(f, 1):
				rec.Value = "Infinity"
			case math.IsInf(f, -1):
				rec.Value = "-Infinity"
			case math.IsNaN(f):
				rec.Value = "NaN"
			}
		}
		out.Tokens[i] = rec
	}
	return out
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}

var canonicalCBOR = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// Integers decode as int64, matching what the tokenizer produces
var streamDecoder = func() cbor.DecMode {
	dm, err := cbor.DecOptions{IntDec: cbor.IntDecConvertSigned}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

// DecodeCBOR reads a stream written with FormatCBOR
func DecodeCBOR(data []byte) (Stream, error) {
	var s Stream
	if err := streamDecoder.Unmarshal(data, &s); err != nil {
		return Stream{}, lexerrors.NewInputError("invalid CBOR token stream", err)
	}
	return s, nil
}
