// Package dictionary builds the word graph searched by the solver from
// "surface,reading" records.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"shiritori/kana"
	"shiritori/model"
)

// ErrMalformedLine is wrapped by MalformedLineError.
var ErrMalformedLine = errors.New("malformed dictionary line")

// MalformedLineError reports a record that is not "surface,reading".
type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s %d: %q", ErrMalformedLine, e.Line, e.Text)
}

func (e *MalformedLineError) Unwrap() error {
	return ErrMalformedLine
}

type options struct {
	logger        *zap.Logger
	skipMalformed bool
}

// Option configures Build.
type Option func(*options)

// WithLogger sets the logger used while building.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// SkipMalformed makes Build log and skip malformed lines instead of failing.
func SkipMalformed(skip bool) Option {
	return func(o *options) { o.skipMalformed = skip }
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// stats counts what a build did with each line.
type stats struct {
	Lines     int
	Stored    int
	Replaced  int
	Short     int
	Nasal     int
	Duplicate int
	Malformed int
}

// BuildFile builds a graph from the dictionary at path.
func BuildFile(path string, opts ...Option) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	g, err := Build(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Build reads "surface,reading" lines from r. Blank lines are ignored.
func Build(r io.Reader, opts ...Option) (*Graph, error) {
	o := newOptions(opts)
	o.logger.Info("START generating graph")

	g := NewGraph()
	var st stats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		st.Lines++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		surface, reading, err := parseLine(line, st.Lines)
		if err != nil {
			if !o.skipMalformed {
				return nil, err
			}
			st.Malformed++
			o.logger.Warn("skipping malformed line", zap.Int("line", st.Lines), zap.String("text", line))
			continue
		}
		insert(g, surface, reading, &st)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	o.logger.Info("FINISH generating graph",
		zap.Int("lines", st.Lines),
		zap.Int("words", g.Len()),
		zap.Int("stored", st.Stored),
		zap.Int("replaced", st.Replaced),
		zap.Int("duplicates", st.Duplicate),
		zap.Int("short", st.Short),
		zap.Int("nasal", st.Nasal),
		zap.Int("malformed", st.Malformed))
	return g, nil
}

func parseLine(line string, n int) (surface, reading string, err error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return "", "", &MalformedLineError{Line: n, Text: line}
	}
	return strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]), nil
}

func insert(g *Graph, surface, reading string, st *stats) {
	// single-symbol words cannot chain
	if utf8.RuneCountInString(reading) < 2 {
		st.Short++
		return
	}
	normalized := kana.NormalizeReading(reading)
	if utf8.RuneCountInString(normalized) < 2 {
		st.Short++
		return
	}
	if last, _ := utf8.DecodeLastRuneInString(normalized); last == kana.Nasal {
		st.Nasal++
		return
	}

	w, err := model.NewWord(surface, reading)
	if err != nil {
		// unreachable: normalized is non-empty katakana
		st.Short++
		return
	}
	_, existed := g.Lookup(w.First, w.Last, w.Bits)
	switch {
	case !g.Insert(w):
		st.Duplicate++
	case existed:
		st.Replaced++
	default:
		st.Stored++
	}
}
