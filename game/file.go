// SPDX-License-Identifier: MIT

package game

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/pandemaniac/core"
)

// ParseName extracts players, seeds and id from a graph-file name of the
// form "<players>.<seeds>.<id>[.ext…]". Any directory part is ignored.
//
// Errors:
//   - ErrBadGameName when there are fewer than three components, players or
//     seeds is not a positive integer, or id is empty.
func ParseName(name string) (players, seeds int, id string, err error) {
	base := filepath.Base(name)
	parts := strings.SplitN(base, ".", 4)
	if len(parts) < 3 {
		return 0, 0, "", fmt.Errorf("ParseName(%q): %w", name, ErrBadGameName)
	}
	if players, err = strconv.Atoi(parts[0]); err != nil || players <= 0 {
		return 0, 0, "", fmt.Errorf("ParseName(%q): players %q: %w", name, parts[0], ErrBadGameName)
	}
	if seeds, err = strconv.Atoi(parts[1]); err != nil || seeds <= 0 {
		return 0, 0, "", fmt.Errorf("ParseName(%q): seeds %q: %w", name, parts[1], ErrBadGameName)
	}
	if parts[2] == "" {
		return 0, 0, "", fmt.Errorf("ParseName(%q): empty id: %w", name, ErrBadGameName)
	}

	return players, seeds, parts[2], nil
}

// Read builds a Game from a graph listing read from r; name supplies the
// players/seeds/id triple.
func Read(name string, r io.Reader) (*Game, error) {
	players, seeds, id, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	adj, err := core.ReadAdjacency(r)
	if err != nil {
		return nil, fmt.Errorf("Read(%q): %w", name, err)
	}
	g, err := core.NewGraph(adj)
	if err != nil {
		return nil, fmt.Errorf("Read(%q): %w", name, err)
	}

	return New(id, g, players, seeds)
}

// Load opens path and reads it with Read, naming the game after the file.
func Load(path string) (*Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	return Read(filepath.Base(path), f)
}

// Write stores the game's original listing as JSON under
// "<dir>/<name>.json" and returns the path.
func Write(dir string, g *Game) (string, error) {
	data, err := json.Marshal(g.Graph.Source())
	if err != nil {
		return "", fmt.Errorf("Write(%s): %w", g.Name(), err)
	}
	path := filepath.Join(dir, g.Name()+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("Write(%s): %w", g.Name(), err)
	}

	return path, nil
}
