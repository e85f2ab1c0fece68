// Package dupnum generates the numbers whose decimal form is a digit-block
// written twice, such as 11, 1010 or 446446.
package dupnum

import (
	"errors"
	"fmt"
	"math/bits"
)

var ErrInvalidRange = errors.New("invalid range")

// Generator yields the duplicated numbers of an interval in ascending order.
// Once Next reports false it keeps reporting false.
type Generator struct {
	end     uint64
	block   uint64
	ceiling uint64
	done    bool
}

// New returns a Generator positioned at the first duplicated number >= start.
func New(start, end uint64) (*Generator, error) {
	if start > end {
		return nil, fmt.Errorf("%w: start %d greater than end %d", ErrInvalidRange, start, end)
	}

	// odd lengths round up: no n-digit duplicate exists for odd n
	d := (Digits(start) + 1) / 2
	if d == 0 {
		return nil, fmt.Errorf("%w: zero block length for %d", ErrInvalidRange, start)
	}
	block := pow10(d - 1)
	g := &Generator{end: end, block: block, ceiling: block * 10}

	// replay Next until the first value in range, then step back onto it
	for {
		saved := *g
		n, ok := g.Next()
		if !ok {
			return g, nil
		}
		if n >= start {
			*g = saved
			return g, nil
		}
	}
}

// NewFromString parses "start-end" and calls New.
func NewFromString(s string) (*Generator, error) {
	iv, err := ParseInterval(s)
	if err != nil {
		return nil, err
	}
	return iv.Generator()
}

// Next returns the next duplicated number, or false when the interval is
// exhausted.
func (g *Generator) Next() (uint64, bool) {
	if g.done {
		return 0, false
	}

	n, ok := g.current()
	if !ok || n > g.end {
		g.done = true
		return 0, false
	}

	g.block++
	if g.block >= g.ceiling {
		g.ceiling *= 10
	}
	return n, true
}

// current computes block*ceiling + block, reporting false on overflow.
func (g *Generator) current() (uint64, bool) {
	hi, lo := bits.Mul64(g.block, g.ceiling)
	if hi != 0 {
		return 0, false
	}
	n, carry := bits.Add64(lo, g.block, 0)
	if carry != 0 {
		return 0, false
	}
	return n, true
}

// Collect drains the generator into a slice.
func (g *Generator) Collect() []uint64 {
	var out []uint64
	for n, ok := g.Next(); ok; n, ok = g.Next() {
		out = append(out, n)
	}
	return out
}

// Digits returns the decimal digit count of n; Digits(0) is 1.
func Digits(n uint64) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
