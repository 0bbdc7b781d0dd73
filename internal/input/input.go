// Package input reads sample points for integration from the supported
// sources: a sampled function, manually entered pairs, or a text file of
// whitespace separated "x y" lines.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/san-kum/simpson/internal/models"
	"github.com/san-kum/simpson/internal/quad"
)

var (
	ErrTooFewPoints = errors.New("input: at least 2 data points are required")
	ErrBadPair      = errors.New("input: expected a pair of numbers")
	ErrBadRange     = errors.New("input: end time must be after start time")
	ErrBadIntervals = errors.New("input: interval count must be positive")
)

type Source int

const (
	SourceFunction Source = iota
	SourceManual
	SourceFile
)

var sourceNames = []string{"function", "manual", "file"}

func (s Source) String() string {
	if int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return fmt.Sprintf("source(%d)", int(s))
}

func ParseSource(name string) (Source, error) {
	for i, n := range sourceNames {
		if n == name {
			return Source(i), nil
		}
	}
	return SourceFunction, fmt.Errorf("unknown source: %s (available: %v)", name, sourceNames)
}

// Points are index-aligned samples.
type Points struct {
	X []float64
	Y []float64
}

func (p Points) Len() int { return len(p.X) }

// LineError reports a malformed line in a points file.
type LineError struct {
	Line    int
	Text    string
	Wrapped error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Wrapped)
}

func (e *LineError) Unwrap() error {
	return e.Wrapped
}

// FromFunction samples f on n intervals of [start, end].
func FromFunction(f models.Integrand, start, end float64, n int) (Points, error) {
	if end <= start {
		return Points{}, fmt.Errorf("%w: [%g, %g]", ErrBadRange, start, end)
	}
	if n < 1 {
		return Points{}, fmt.Errorf("%w: %d", ErrBadIntervals, n)
	}
	x, y := quad.Sample(f.Eval, start, end, n)
	return Points{X: x, Y: y}, nil
}

// ParsePairs parses manual entries of the form "x,y" or "x y".
func ParsePairs(pairs []string) (Points, error) {
	var (
		p    Points
		merr *multierror.Error
	)
	for i, raw := range pairs {
		x, y, err := parsePair(strings.ReplaceAll(raw, ",", " "))
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("point %d %q: %w", i+1, raw, err))
			continue
		}
		p.X = append(p.X, x)
		p.Y = append(p.Y, y)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return Points{}, err
	}
	if p.Len() < 2 {
		return Points{}, ErrTooFewPoints
	}
	return p, nil
}

func LoadFile(path string) (Points, error) {
	f, err := os.Open(path)
	if err != nil {
		return Points{}, fmt.Errorf("cannot open data file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses "x y" lines. Blank lines and lines starting with '#' are
// skipped; every malformed line is reported.
func Read(r io.Reader) (Points, error) {
	var (
		p    Points
		merr *multierror.Error
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		x, y, err := parsePair(text)
		if err != nil {
			merr = multierror.Append(merr, &LineError{Line: line, Text: text, Wrapped: err})
			continue
		}
		p.X = append(p.X, x)
		p.Y = append(p.Y, y)
	}
	if err := sc.Err(); err != nil {
		return Points{}, err
	}
	if err := merr.ErrorOrNil(); err != nil {
		return Points{}, err
	}
	if p.Len() < 2 {
		return Points{}, ErrTooFewPoints
	}
	return p, nil
}

func parsePair(s string) (float64, float64, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, ErrBadPair
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadPair, err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadPair, err)
	}
	return x, y, nil
}
