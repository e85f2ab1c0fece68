package dupnum

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Interval is an inclusive range of unsigned integers.
type Interval struct {
	Start uint64
	End   uint64
}

// ParseInterval parses a "start-end" token.
func ParseInterval(s string) (Interval, error) {
	start, end, found := strings.Cut(s, "-")
	if !found {
		return Interval{}, fmt.Errorf("%w: not a range string: %q", ErrInvalidRange, s)
	}
	lo, err := parseBound(start)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: bad start in %q: %v", ErrInvalidRange, s, err)
	}
	hi, err := parseBound(end)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: bad end in %q: %v", ErrInvalidRange, s, err)
	}
	if lo > hi {
		return Interval{}, fmt.Errorf("%w: start greater than end in %q", ErrInvalidRange, s)
	}
	return Interval{Start: lo, End: hi}, nil
}

// ParseIntervals parses comma separated "start-end" tokens. The first bad
// token fails the whole input.
func ParseIntervals(text string) ([]Interval, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	tokens := strings.Split(text, ",")
	out := make([]Interval, 0, len(tokens))
	for _, tok := range tokens {
		iv, err := ParseInterval(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}

// parseBound only accepts plain ASCII digits, so "+5" and "-" are rejected.
func parseBound(s string) (uint64, error) {
	if s == "" {
		return 0, errors.New("empty bound")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit %q", s[i])
		}
	}
	return strconv.ParseUint(s, 10, 64)
}

// Generator returns a generator over the interval.
func (iv Interval) Generator() (*Generator, error) {
	return New(iv.Start, iv.End)
}

func (iv Interval) String() string {
	return strconv.FormatUint(iv.Start, 10) + "-" + strconv.FormatUint(iv.End, 10)
}

// Tally returns how many duplicated numbers the intervals hold and their sum.
// The sum wraps on 64-bit overflow.
func Tally(intervals []Interval) (count, sum uint64, err error) {
	for _, iv := range intervals {
		g, err := iv.Generator()
		if err != nil {
			return 0, 0, err
		}
		for n, ok := g.Next(); ok; n, ok = g.Next() {
			count++
			sum += n
		}
	}
	return count, sum, nil
}

// Sum adds up every duplicated number in the intervals.
func Sum(intervals []Interval) (uint64, error) {
	_, sum, err := Tally(intervals)
	return sum, err
}

// Count returns the number of duplicated numbers in the intervals.
func Count(intervals []Interval) (uint64, error) {
	count, _, err := Tally(intervals)
	return count, err
}
