// Package gridsearch provides shortest-path search over static binary occupancy grids.
//
// Two interchangeable engines are available:
//
//   - AStar: classic expand-one-cell-at-a-time A*.
//   - JPS: Jump Point Search, which scans straight and diagonal rays and only
//     pushes jump points onto the frontier.
//
// Both engines share the same frontier, movement rules and heuristics, so for
// any grid and pair of endpoints they agree on reachability and path cost.
//
// It exposes three entry points:
//
//   - FindPath: run one search to completion and get a Result.
//   - Stepper: iterate a search one expansion at a time to drive debugging tools.
//   - FindPaths: run many independent queries on a shared grid with a worker pool.
package gridsearch
