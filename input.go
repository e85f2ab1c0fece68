package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// InputSource loads the puzzle input of a day.
type InputSource interface {
	Load(ctx context.Context, day int) ([]byte, error)
}

func inputName(day int) string {
	return fmt.Sprintf("%02d.txt", day)
}

// DirSource reads inputs from files named NN.txt in a directory.
type DirSource string

func (dir DirSource) Load(_ context.Context, day int) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(string(dir), inputName(day)))
	if err != nil {
		return nil, fmt.Errorf("load input of day %d: %w", day, err)
	}
	return b, nil
}
