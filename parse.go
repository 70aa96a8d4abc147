package intersect

import (
	"errors"
	"fmt"
	"io"
	stdStrconv "strconv"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

var (
	// ErrFormat is returned when the input is malformed.
	ErrFormat = errors.New("bad format")

	// ErrBound is returned when a coordinate exceeds MaxCoordinate in absolute value.
	ErrBound = errors.New("coordinate out of bound")
)

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// isDigits returns true if b is an optionally signed sequence of decimal digits.
func isDigits(b []byte) bool {
	if 0 < len(b) && (b[0] == '+' || b[0] == '-') {
		b = b[1:]
	}
	for _, c := range b {
		if c < '0' || '9' < c {
			return false
		}
	}
	return 0 < len(b)
}

type segmentParser struct {
	z *parse.Input
}

// next returns the next whitespace-separated token, or nil at the end of the input.
func (p *segmentParser) next() []byte {
	for isWhitespace(p.z.Peek(0)) {
		p.z.Move(1)
	}
	p.z.Skip()
	for c := p.z.Peek(0); c != 0 && !isWhitespace(c); c = p.z.Peek(0) {
		p.z.Move(1)
	}
	if tok := p.z.Shift(); 0 < len(tok) {
		return tok
	}
	return nil
}

func (p *segmentParser) integer() (int64, error) {
	tok := p.next()
	if tok == nil {
		if err := p.z.Err(); err != nil && err != io.EOF {
			return 0, err
		}
		return 0, fmt.Errorf("%w: unexpected end of input", ErrFormat)
	}
	i, n := strconv.ParseInt(tok)
	if n == 0 && isDigits(tok) {
		// overflows int64
		return 0, fmt.Errorf("%w: %s", ErrBound, tok)
	} else if n == 0 || n != len(tok) {
		return 0, fmt.Errorf("%w: invalid integer %q", ErrFormat, tok)
	}
	return i, nil
}

func (p *segmentParser) coord() (int32, error) {
	i, err := p.integer()
	if err != nil {
		return 0, err
	} else if !inBound(i) {
		return 0, fmt.Errorf("%w: %d", ErrBound, i)
	}
	return int32(i), nil
}

// ParseSegments parses a segment count n followed by n segments given as four integers x1 y1 x2 y2. Numbers are separated by any whitespace, content after the last segment is ignored.
func ParseSegments(r io.Reader) ([]Segment, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	p := segmentParser{z}
	n, err := p.integer()
	if err != nil {
		return nil, fmt.Errorf("segment count: %w", err)
	} else if n < 0 {
		return nil, fmt.Errorf("segment count: %w: negative count %d", ErrFormat, n)
	}

	segs := make([]Segment, 0, min(n, 1<<16))
	for i := int64(0); i < n; i++ {
		var c [4]int32
		for j := range c {
			if c[j], err = p.coord(); err != nil {
				return nil, fmt.Errorf("segment %d: %w", i+1, err)
			}
		}
		segs = append(segs, Seg(c[0], c[1], c[2], c[3]))
	}
	return segs, nil
}

// WriteSegments writes the segments in the format read by ParseSegments.
func WriteSegments(w io.Writer, segs []Segment) error {
	buf := stdStrconv.AppendInt(nil, int64(len(segs)), 10)
	buf = append(buf, '\n')
	for _, s := range segs {
		a, b := s.Left(), s.Right()
		buf = stdStrconv.AppendInt(buf, int64(a.X), 10)
		buf = append(buf, ' ')
		buf = stdStrconv.AppendInt(buf, int64(a.Y), 10)
		buf = append(buf, ' ')
		buf = stdStrconv.AppendInt(buf, int64(b.X), 10)
		buf = append(buf, ' ')
		buf = stdStrconv.AppendInt(buf, int64(b.Y), 10)
		buf = append(buf, '\n')
	}
	_, err := w.Write(buf)
	return err
}
