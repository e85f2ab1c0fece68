package main

import (
	"fmt"
	"strings"
)

func init() {
	register(3, day3a, notSolved)
}

// joltage returns the largest two digit number made of two digits of bank
// taken in order.
func joltage(bank string) (uint64, error) {
	if len(bank) < 2 {
		return 0, fmt.Errorf("bank too short: %q", bank)
	}
	best, first := -1, -1
	for i := 0; i < len(bank); i++ {
		c := bank[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid input: %q", c)
		}
		d := int(c - '0')
		if first >= 0 && first*10+d > best {
			best = first*10 + d
		}
		if d > first {
			first = d
		}
	}
	return uint64(best), nil
}

func day3a(input string) (Answer, error) {
	var sum uint64
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		j, err := joltage(line)
		if err != nil {
			return unsolved, err
		}
		sum += j
	}
	return answer(sum), nil
}
