package main

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownDay = errors.New("unknown day")

// Answer is the result of one part of a puzzle.
// Parts that are not solved yet report Solved=false.
type Answer struct {
	Value  uint64 `json:"value"`
	Solved bool   `json:"solved"`
}

func answer(v uint64) Answer {
	return Answer{Value: v, Solved: true}
}

var unsolved = Answer{}

func (a Answer) String() string {
	if !a.Solved {
		return "-"
	}
	return fmt.Sprint(a.Value)
}

// Part solves one part of a day from the raw puzzle input.
type Part func(input string) (Answer, error)

type Solution struct {
	Day     int
	PartOne Part
	PartTwo Part
}

var solutions = map[int]*Solution{}

func register(day int, one, two Part) {
	if _, ok := solutions[day]; ok {
		panic(fmt.Sprintf("day %d registered twice", day))
	}
	solutions[day] = &Solution{Day: day, PartOne: one, PartTwo: two}
}

func lookup(day int) (*Solution, error) {
	s, ok := solutions[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// days returns registered days in ascending order
func days() []int {
	out := make([]int, 0, len(solutions))
	for d := range solutions {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

func notSolved(string) (Answer, error) {
	return unsolved, nil
}
