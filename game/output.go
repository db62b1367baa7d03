// SPDX-License-Identifier: MIT

package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultRounds is the number of rounds written to an output file.
const DefaultRounds = 50

// OutputExt is the suffix of round-output files.
const OutputExt = ".output"

// WriteRounds writes seeds, one id per line, rounds times. rounds ≤ 0
// means DefaultRounds.
func WriteRounds(w io.Writer, seeds SeedSet, rounds int) error {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < rounds; i++ {
		if err := writeSeeds(bw, seeds); err != nil {
			return fmt.Errorf("WriteRounds: round %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// WriteRoundsFile asks sel for a seed set once per round and writes the
// rounds to "<dir>/<game name>.output". Each selection is validated against
// g before it is written. The rounds go to a temporary file in dir that is
// renamed into place only after every round succeeded, so a failed call
// leaves no output behind. It returns the file path.
func WriteRoundsFile(ctx context.Context, dir string, g *Game, sel Selector, rounds int) (path string, err error) {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	f, err := os.CreateTemp(dir, g.Name()+OutputExt+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("WriteRoundsFile: %w", err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	bw := bufio.NewWriter(f)
	for i := 0; i < rounds; i++ {
		seeds, err := sel.SelectSeeds(ctx, g)
		if err != nil {
			return "", fmt.Errorf("WriteRoundsFile(%s): round %d: %w", g.Name(), i, err)
		}
		if err := seeds.Validate(g); err != nil {
			return "", fmt.Errorf("WriteRoundsFile: round %d: %w", i, err)
		}
		if err := writeSeeds(bw, seeds); err != nil {
			return "", fmt.Errorf("WriteRoundsFile(%s): %w", g.Name(), err)
		}
	}
	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("WriteRoundsFile(%s): %w", g.Name(), err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("WriteRoundsFile(%s): %w", g.Name(), err)
	}
	path = filepath.Join(dir, g.Name()+OutputExt)
	if err := os.Rename(f.Name(), path); err != nil {
		return "", fmt.Errorf("WriteRoundsFile(%s): %w", g.Name(), err)
	}

	return path, nil
}

func writeSeeds(w *bufio.Writer, seeds SeedSet) error {
	for _, id := range seeds {
		if _, err := w.WriteString(id + "\n"); err != nil {
			return err
		}
	}

	return nil
}
