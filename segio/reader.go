package segio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lowerbound/minima/segcover"
	"github.com/lowerbound/minima/trace"
)

var (
	// ErrParse indicates a malformed count line or segment line.
	ErrParse = errors.New("segio: malformed input")

	// ErrPrematureEOF indicates the input ended before the declared number
	// of segments was read.
	ErrPrematureEOF = errors.New("segio: unexpected end of input")
)

// ReadIntervals parses the interval input format from r.
//
// The first non-empty line must hold the declared segment count N. Each
// following data line holds two integers a b, normalized to (min, max) so the
// solver downstream only ever sees Start <= End. Blank lines are skipped and
// do not count toward N. Errors:
//
//   - ErrParse (wrapped, with the line number) for a non-numeric count line,
//     an empty input, or a data line that does not parse as two integers.
//   - ErrPrematureEOF when EOF arrives before N data lines were read.
//
// A final count differing from N without an early EOF is a non-fatal
// condition reported to sink as a warning.
func ReadIntervals(r io.Reader, sink trace.Sink) ([]segcover.Interval, error) {
	log := trace.OrNop(sink)
	sc := bufio.NewScanner(r)

	// Count header: first non-empty line.
	declared := -1
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			log.Errorf("invalid segment count at line %d: %q", line, text)

			return nil, fmt.Errorf("%w: segment count at line %d: %q", ErrParse, line, text)
		}
		declared = n
		break
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("segio: read: %w", err)
	}
	if declared < 0 {
		log.Errorf("input is empty")

		return nil, fmt.Errorf("%w: input is empty", ErrParse)
	}
	log.Infof("header declares %d segments", declared)

	segments := make([]segcover.Interval, 0, declared)
	skipped := 0
	for len(segments) < declared && sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			skipped++
			log.Debugf("skipped blank line %d", line)
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			log.Errorf("invalid segment data at line %d: %q", line, text)

			return nil, fmt.Errorf("%w: segment data at line %d: %q", ErrParse, line, text)
		}
		a, errA := strconv.Atoi(fields[0])
		b, errB := strconv.Atoi(fields[1])
		if errA != nil || errB != nil {
			log.Errorf("invalid numeric data at line %d: %q", line, text)

			return nil, fmt.Errorf("%w: numeric data at line %d: %q", ErrParse, line, text)
		}

		// Normalize here so the solver's own validation never fires on
		// file-fed input.
		if a > b {
			a, b = b, a
		}
		segments = append(segments, segcover.Interval{Start: a, End: b})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("segio: read: %w", err)
	}
	if len(segments) < declared {
		log.Errorf("unexpected end of input after line %d: read %d of %d segments", line, len(segments), declared)

		return nil, fmt.Errorf("%w: read %d of %d segments", ErrPrematureEOF, len(segments), declared)
	}

	log.Infof("read %d segments (%d blank lines skipped)", len(segments), skipped)
	if len(segments) != declared {
		// Distinct from the fatal premature-EOF case: the stream had enough
		// lines, the accumulated count just disagrees with the header.
		log.Warnf("segment count mismatch: expected %d, got %d", declared, len(segments))
	}

	return segments, nil
}

// LoadIntervals opens path and delegates to ReadIntervals.
func LoadIntervals(path string, sink trace.Sink) ([]segcover.Interval, error) {
	log := trace.OrNop(sink)
	log.Infof("reading segments from file: %s", path)

	f, err := os.Open(path)
	if err != nil {
		log.Errorf("input file not available: %v", err)

		return nil, fmt.Errorf("segio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadIntervals(f, sink)
}

// ReadSequence parses the flat sequence format from r: the first line holds a
// leading length token (skipped, not enforced) followed by integer values,
// and continuation lines hold further values.
func ReadSequence(r io.Reader, sink trace.Sink) ([]int, error) {
	log := trace.OrNop(sink)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var seq []int
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if line == 1 {
			if len(fields) == 0 {
				log.Errorf("first line is empty")

				return nil, fmt.Errorf("%w: first line is empty", ErrParse)
			}
			fields = fields[1:] // leading token is the declared length
		}
		for _, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				log.Errorf("invalid numeric data at line %d: %q", line, tok)

				return nil, fmt.Errorf("%w: numeric data at line %d: %q", ErrParse, line, tok)
			}
			seq = append(seq, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("segio: read: %w", err)
	}
	if line == 0 {
		log.Errorf("input is empty")

		return nil, fmt.Errorf("%w: input is empty", ErrParse)
	}

	log.Infof("read %d values", len(seq))

	return seq, nil
}
