package tokenizer

import (
	"log/slog"
	"time"
	"unicode/utf8"

	lexerrors "github.com/aledsdavies/eslex/pkgs/errors"
)

// CategoryTelemetry holds per-category telemetry
type CategoryTelemetry struct {
	Category  Category
	Count     int
	TotalTime time.Duration
	AvgTime   time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
}

// DebugEvent holds debug tracing information (development only)
type DebugEvent struct {
	Timestamp time.Time
	Event     string // "enter_scan", "candidate", "match", "regex_flag"
	Offset    int
	Context   string
}

// Scanner walks one input from left to right. A Scanner is not safe for
// concurrent use; create one per call.
type Scanner struct {
	table  *ruleTable
	logger *slog.Logger

	// Scan state
	input        string
	position     int
	regexAllowed bool
	rng          Range

	// Telemetry (nil when disabled)
	telemetryMode TelemetryMode
	telemetry     map[Category]*CategoryTelemetry

	// Debug (nil when disabled)
	debugLevel  DebugLevel
	debugEvents []DebugEvent
}

// Init resets the scanner with new input
func (s *Scanner) Init(input string) {
	s.input = input
	s.position = 0
	s.regexAllowed = true
	s.rng = EmptyRange

	for k := range s.telemetry {
		delete(s.telemetry, k)
	}
	if s.debugEvents != nil {
		s.debugEvents = s.debugEvents[:0]
	}
}

// Scan tokenizes the whole input. On failure no tokens are returned.
func (s *Scanner) Scan() ([]RawToken, error) {
	s.logger.Debug("[TOKENIZER] scan start", "bytes", len(s.input))
	s.recordDebugEvent("enter_scan", "")

	var tokens []RawToken
	for s.position < len(s.input) {
		var start time.Time
		if s.telemetryMode >= TelemetryTiming {
			start = time.Now()
		}

		token, err := s.next()
		if err != nil {
			s.logger.Debug("[TOKENIZER] scan failed", "offset", s.position, "error", err)
			return nil, err
		}

		if s.telemetryMode > TelemetryOff {
			var elapsed time.Duration
			if s.telemetryMode >= TelemetryTiming {
				elapsed = time.Since(start)
			}
			s.recordTelemetry(token.Category, elapsed)
		}
		tokens = append(tokens, token)
	}

	s.logger.Debug("[TOKENIZER] scan done", "tokens", len(tokens))
	return tokens, nil
}

// next matches one token at the current position
func (s *Scanner) next() (RawToken, error) {
	candidates := s.table.index.candidates(s.input[s.position])
	if len(candidates) == 0 {
		return RawToken{}, s.failure(lexerrors.NewUnmatchedCharacterError)
	}

	var best *Rule
	var text string
	for _, rule := range candidates {
		if rule.Category == REGEXP && !s.regexAllowed {
			continue
		}
		matched := rule.match(s.input, s.position)
		if s.debugLevel >= DebugDetailed {
			s.recordDebugEvent("candidate", rule.Category.String()+" "+matched)
		}
		// Only a strictly longer match displaces an earlier rule
		if matched != "" && len(matched) > len(text) {
			best, text = rule, matched
		}
	}
	if best == nil {
		return RawToken{}, s.failure(lexerrors.NewNoRuleMatchedError)
	}

	var value any = text
	if best.Transform != nil {
		v, err := best.Transform(text)
		if err != nil {
			return RawToken{}, lexerrors.NewMalformedLiteralError(s.position, text, err)
		}
		value = v
	}
	s.recordDebugEvent("match", best.Category.String()+" "+text)

	// Whitespace never changes the regex/division context
	if best.Category != WHITESPACE {
		s.regexAllowed = followableByRegex(best.Category, text)
		if s.debugLevel > DebugOff && !s.regexAllowed {
			s.recordDebugEvent("regex_flag", "division expected")
		}
	}

	s.rng = s.rng.Next(text)
	s.position += len(text)
	return RawToken{Category: best.Category, Text: text, Value: value, Range: s.rng}, nil
}

// followableByRegex decides from the raw category and text whether a '/'
// after this token starts a regular expression.
func followableByRegex(cat Category, text string) bool {
	switch cat {
	case WORD:
		return impliesRegex(text)
	case NUMBER:
		return false
	case SYMBOL:
		return text != ")" && text != "]" && text != "}"
	default:
		return true
	}
}

func (s *Scanner) failure(build func(offset int, ch rune, line, column int) *lexerrors.LexError) error {
	ch, _ := utf8.DecodeRuneInString(s.input[s.position:])
	pos := NewLineIndex(s.input).Position(s.position)
	return build(s.position, ch, pos.Line, pos.Column)
}

func (s *Scanner) recordTelemetry(cat Category, elapsed time.Duration) {
	telemetry, exists := s.telemetry[cat]
	if !exists {
		telemetry = &CategoryTelemetry{Category: cat, MinTime: elapsed, MaxTime: elapsed}
		s.telemetry[cat] = telemetry
	}

	telemetry.Count++

	if s.telemetryMode >= TelemetryTiming {
		telemetry.TotalTime += elapsed
		telemetry.AvgTime = telemetry.TotalTime / time.Duration(telemetry.Count)
		if elapsed < telemetry.MinTime {
			telemetry.MinTime = elapsed
		}
		if elapsed > telemetry.MaxTime {
			telemetry.MaxTime = elapsed
		}
	}
}

func (s *Scanner) recordDebugEvent(event, context string) {
	if s.debugLevel == DebugOff || s.debugEvents == nil {
		return
	}
	s.debugEvents = append(s.debugEvents, DebugEvent{
		Timestamp: time.Now(),
		Event:     event,
		Offset:    s.position,
		Context:   context,
	})
}

// Telemetry returns a copy of the per-category telemetry, or nil when off
func (s *Scanner) Telemetry() map[Category]*CategoryTelemetry {
	if s.telemetryMode == TelemetryOff || s.telemetry == nil {
		return nil
	}
	result := make(map[Category]*CategoryTelemetry, len(s.telemetry))
	for k, v := range s.telemetry {
		telemetryCopy := *v
		result[k] = &telemetryCopy
	}
	return result
}

// DebugEvents returns a copy of the recorded debug events, or nil when off
func (s *Scanner) DebugEvents() []DebugEvent {
	if s.debugLevel == DebugOff || s.debugEvents == nil {
		return nil
	}
	result := make([]DebugEvent, len(s.debugEvents))
	copy(result, s.debugEvents)
	return result
}
