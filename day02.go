package main

import (
	"fmt"

	"github.com/iochen/aoc/utils/dupnum"
)

func init() {
	// blocks repeated more than twice are not supported, so part two stays open
	register(2, day2a, notSolved)
}

func day2a(input string) (Answer, error) {
	intervals, err := dupnum.ParseIntervals(input)
	if err != nil {
		return unsolved, fmt.Errorf("invalid input: %w", err)
	}
	sum, err := dupnum.Sum(intervals)
	if err != nil {
		return unsolved, err
	}
	return answer(sum), nil
}
