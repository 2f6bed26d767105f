// Package gridgraph models a square grid of unit cells with a fixed set of
// blocked cells, and exposes it as an implicit graph for path search.
//
// What:
//
//   - Cell is an (X, Y) coordinate; comparable, usable as a map key.
//   - Config carries the side length and the obstacle list; DefaultConfig
//     returns the 20×20 reference layout with its 36 predefined obstacles.
//   - Grid is built once by NewGrid and never mutated afterwards.
//   - Neighbors yields orthogonal moves in the fixed order +x, −x, +y, −y.
//   - Manhattan is the admissible, consistent heuristic for 4-way movement.
//   - Reachable flood-fills the component of a cell.
//   - Render draws the grid, its obstacles and a path as ASCII.
//
// Why:
//
//   - Every search strategy shares one neighbor order, so ties break the same
//     way on every run and traces are reproducible.
//   - Obstacles live in a row-major bitmap: O(1) membership with no hashing.
//
// Complexity:
//
//   - NewGrid:   O(N² + K), Memory: O(N²)   (K = number of obstacles).
//   - Neighbors: O(1).
//   - Reachable: O(N²), Memory: O(N²).
//
// Errors:
//
//   - ErrInvalidConfiguration: non-positive size or an obstacle out of bounds.
//   - ErrInvalidEndpoint: a start/end cell that is out of bounds or blocked.
package gridgraph
