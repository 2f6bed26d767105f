package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned for a strategy name outside bfs, dfs, dijkstra and astar.
var ErrUnknownStrategy = errors.New("engine: unknown strategy")

// Strategy names one of the four search algorithms.
type Strategy int

const (
	BFS Strategy = iota
	DFS
	Dijkstra
	AStar
)

var strategyNames = [...]string{
	BFS:      "bfs",
	DFS:      "dfs",
	Dijkstra: "dijkstra",
	AStar:    "astar",
}

// String returns the lower-case name accepted by ParseStrategy.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Strategies lists every strategy in the order Compare runs them.
func Strategies() []Strategy {
	return []Strategy{BFS, DFS, Dijkstra, AStar}
}

// ParseStrategy maps a case-insensitive name to a Strategy. "a*" is an alias of astar.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "a*" {
		return AStar, nil
	}
	for i, n := range strategyNames {
		if n == key {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
