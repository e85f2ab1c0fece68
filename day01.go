package main

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(1, day1a, notSolved)
}

const (
	dialSize  = 100
	dialStart = 50
)

type rotation struct {
	left  bool
	steps uint16
}

func parseRotation(line string) (rotation, error) {
	if len(line) < 2 {
		return rotation{}, fmt.Errorf("invalid rotation: %q", line)
	}
	var r rotation
	switch line[0] {
	case 'L':
		r.left = true
	case 'R':
	default:
		return rotation{}, fmt.Errorf("invalid direction: %q", line[:1])
	}
	steps, err := strconv.ParseUint(line[1:], 10, 16)
	if err != nil || steps == 0 {
		return rotation{}, fmt.Errorf("invalid steps: %q", line[1:])
	}
	r.steps = uint16(steps)
	return r, nil
}

// spin turns the dial from pos and returns the new position in [0, dialSize)
func (r rotation) spin(pos int) int {
	if r.left {
		pos -= int(r.steps)
	} else {
		pos += int(r.steps)
	}
	pos %= dialSize
	if pos < 0 {
		pos += dialSize
	}
	return pos
}

func day1a(input string) (Answer, error) {
	pos := dialStart
	var zeros uint64
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r, err := parseRotation(line)
		if err != nil {
			return unsolved, err
		}
		pos = r.spin(pos)
		if pos == 0 {
			zeros++
		}
	}
	return answer(zeros), nil
}
