// Package tokenizer splits ECMAScript-like source into classified tokens.
//
// The engine is a table of regular-expression rules indexed by the byte each
// rule can start with. At every position the scanner tries the candidate
// rules for the current byte and keeps the longest match, earliest rule
// winning ties. Whether a '/' opens a regular expression literal or is the
// division operator is decided from the previous non-whitespace token.
//
// Dispatch is over ASCII only. A token may not start with a byte >= 0x80 or
// with a control byte other than tab, newline, form feed and carriage
// return; such input fails with an UNMATCHED_CHARACTER error. Non-ASCII text
// inside strings, comments and regular expressions is accepted as-is.
// Ranges and offsets are byte offsets.
package tokenizer

import (
	"log/slog"
	"os"
	"sync"
)

// Opt represents a tokenizer configuration option
type Opt func(*Config)

// TelemetryMode controls telemetry collection
type TelemetryMode int

const (
	TelemetryOff    TelemetryMode = iota // Zero overhead (default)
	TelemetryBasic                       // Token counts only
	TelemetryTiming                      // Token counts + timing per category
)

// DebugLevel controls debug tracing (development only)
type DebugLevel int

const (
	DebugOff      DebugLevel = iota // No debug info (default)
	DebugPaths                      // Token-level tracing
	DebugDetailed                   // Candidate-level tracing
)

// Config holds tokenizer configuration
type Config struct {
	telemetry TelemetryMode
	debug     DebugLevel
	logger    *slog.Logger
}

// WithTelemetryBasic enables basic telemetry (token counts only)
func WithTelemetryBasic() Opt {
	return func(c *Config) {
		c.telemetry = TelemetryBasic
	}
}

// WithTelemetryTiming enables timing telemetry (counts + timing per category)
func WithTelemetryTiming() Opt {
	return func(c *Config) {
		c.telemetry = TelemetryTiming
	}
}

// WithDebugPaths enables token-level debug tracing
func WithDebugPaths() Opt {
	return func(c *Config) {
		c.debug = DebugPaths
	}
}

// WithDebugDetailed additionally traces every candidate rule tried
func WithDebugDetailed() Opt {
	return func(c *Config) {
		c.debug = DebugDetailed
	}
}

// WithLogger replaces the default stderr logger
func WithLogger(logger *slog.Logger) Opt {
	return func(c *Config) {
		c.logger = logger
	}
}

// Tokenizer holds the shared rule table and per-call configuration.
// It is safe for concurrent use: all scan state lives in a Scanner.
type Tokenizer struct {
	table  *ruleTable
	config Config
}

// New creates a tokenizer. The rule table is compiled once per process.
func New(opts ...Opt) *Tokenizer {
	config := Config{}
	for _, opt := range opts {
		opt(&config)
	}
	if config.logger == nil {
		config.logger = defaultLogger()
	}
	return &Tokenizer{table: defaultTable(), config: config}
}

// NewScanner creates a scanner over input using this tokenizer's rules
func (t *Tokenizer) NewScanner(input string) *Scanner {
	s := &Scanner{
		table:         t.table,
		logger:        t.config.logger,
		telemetryMode: t.config.telemetry,
		debugLevel:    t.config.debug,
	}
	if s.telemetryMode > TelemetryOff {
		s.telemetry = make(map[Category]*CategoryTelemetry)
	}
	if s.debugLevel > DebugOff {
		s.debugEvents = make([]DebugEvent, 0, 256)
	}
	s.Init(input)
	return s
}

// RawTokens returns every token of input, whitespace and comments included
func (t *Tokenizer) RawTokens(input string) ([]RawToken, error) {
	return t.NewScanner(input).Scan()
}

// Tokenize returns the finalized (tag, value) stream for input
func (t *Tokenizer) Tokenize(input string) ([]FinalToken, error) {
	raw, err := t.RawTokens(input)
	if err != nil {
		return nil, err
	}
	return FinalizeAll(raw), nil
}

var defaultTokenizer = sync.OnceValue(func() *Tokenizer { return New() })

// RawTokens tokenizes input with the default tokenizer
func RawTokens(input string) ([]RawToken, error) {
	return defaultTokenizer().RawTokens(input)
}

// Tokenize tokenizes and finalizes input with the default tokenizer
func Tokenize(input string) ([]FinalToken, error) {
	return defaultTokenizer().Tokenize(input)
}

// defaultLogger logs to stderr at Info, or Debug when ESLEX_DEBUG_LEXER is set
func defaultLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("ESLEX_DEBUG_LEXER") != "" {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove timestamp and level for cleaner output
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
