package gridsearch

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	cells := make([]byte, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		for _, ch := range row {
			cells = append(cells, byte(ch-'0'))
		}
	}
	grid, err := NewGrid(len(rows[0]), len(rows), cells)
	require.NoError(t, err)
	return grid
}

// requireDensePath checks that path is a chain of legal unit moves from
// source to target whose length matches cost.
func requireDensePath(t *testing.T, grid *Grid, corners CornerPolicy, path []Cell, source, target Cell, cost float64) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, source, path[0])
	require.Equal(t, target, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		d, ok := directionBetween(path[i-1], path[i])
		require.True(t, ok, "repeated cell %v", path[i])
		require.Equal(t, path[i], path[i-1].Step(d), "not a unit step: %v -> %v", path[i-1], path[i])
		require.True(t, grid.CanStep(path[i-1], d, corners), "illegal step %v -> %v", path[i-1], path[i])
	}
	require.InDelta(t, cost, PathCost(path), 1e-9)
}

var engines = []Engine{AStar, JPS}

func TestFindPath_Scenarios(t *testing.T) {
	open5 := []string{"11111", "11111", "11111", "11111", "11111"}
	centerBlocked := []string{"11111", "11111", "11011", "11111", "11111"}
	deadEnd := []string{"1111011", "0000011"}

	tests := []struct {
		name      string
		rows      []string
		source    Cell
		target    Cell
		wantFound bool
		wantCost  float64
	}{
		{
			name:      "A open diagonal",
			rows:      open5,
			source:    Cell{0, 0},
			target:    Cell{4, 4},
			wantFound: true,
			wantCost:  4 * Sqrt2,
		},
		{
			name:      "B blocked center detour",
			rows:      centerBlocked,
			source:    Cell{0, 0},
			target:    Cell{4, 4},
			wantFound: true,
			wantCost:  3*Sqrt2 + 2,
		},
		{
			name:      "C dead end corridor",
			rows:      deadEnd,
			source:    Cell{0, 0},
			target:    Cell{6, 0},
			wantFound: false,
		},
		{
			name:      "straight line",
			rows:      open5,
			source:    Cell{0, 2},
			target:    Cell{4, 2},
			wantFound: true,
			wantCost:  4,
		},
		{
			name:      "knight move",
			rows:      open5,
			source:    Cell{0, 0},
			target:    Cell{1, 2},
			wantFound: true,
			wantCost:  1 + Sqrt2,
		},
		{
			name:      "source equals target",
			rows:      open5,
			source:    Cell{3, 1},
			target:    Cell{3, 1},
			wantFound: true,
			wantCost:  0,
		},
		{
			name:      "enclosed target",
			rows:      []string{"11111", "11111", "11111", "11100", "11101"},
			source:    Cell{0, 0},
			target:    Cell{4, 4},
			wantFound: false,
		},
	}
	for _, tt := range tests {
		for _, engine := range engines {
			t.Run(fmt.Sprintf("%s/%s", tt.name, engine), func(t *testing.T) {
				grid := gridFromRows(t, tt.rows...)
				result, err := FindPath(context.Background(), grid, tt.source, tt.target, WithEngine(engine))
				require.NoError(t, err)
				assert.Equal(t, tt.wantFound, result.Found)
				assert.Positive(t, result.Expanded)
				if !tt.wantFound {
					assert.Nil(t, result.Path)
					return
				}
				assert.InDelta(t, tt.wantCost, result.Cost, 1e-9)
				requireDensePath(t, grid, CornerIfOneOpen, result.Path, tt.source, tt.target, tt.wantCost)
			})
		}
	}
}

func TestFindPath_ScenarioAPaths(t *testing.T) {
	grid, err := NewOpenGrid(5, 5)
	require.NoError(t, err)
	diagonal := []Cell{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}

	for _, engine := range engines {
		t.Run(engine.String(), func(t *testing.T) {
			dense, err := FindPath(context.Background(), grid, Cell{0, 0}, Cell{4, 4}, WithEngine(engine))
			require.NoError(t, err)
			assert.Equal(t, diagonal, dense.Path)

			sparse, err := FindPath(context.Background(), grid, Cell{0, 0}, Cell{4, 4},
				WithEngine(engine), WithReconstruction(Sparse))
			require.NoError(t, err)
			assert.Equal(t, []Cell{{0, 0}, {4, 4}}, sparse.Path)
			assert.InDelta(t, dense.Cost, sparse.Cost, 1e-12)
		})
	}
}

func TestFindPath_ScenarioBPaths(t *testing.T) {
	grid := gridFromRows(t, "11111", "11111", "11011", "11111", "11111")
	detour := []Cell{{0, 0}, {1, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 4}}

	for _, engine := range engines {
		t.Run(engine.String(), func(t *testing.T) {
			dense, err := FindPath(context.Background(), grid, Cell{0, 0}, Cell{4, 4}, WithEngine(engine))
			require.NoError(t, err)
			assert.Equal(t, detour, dense.Path)
			assert.InDelta(t, 3*Sqrt2+2, dense.Cost, 1e-9)
			assert.Equal(t, 6, dense.Expanded)
		})
	}

	// A* keeps only the turns; JPS keeps every jump point, and here each
	// cell of the detour is one
	sparse, err := FindPath(context.Background(), grid, Cell{0, 0}, Cell{4, 4},
		WithEngine(AStar), WithReconstruction(Sparse))
	require.NoError(t, err)
	assert.Equal(t, []Cell{{0, 0}, {1, 1}, {1, 2}, {3, 4}, {4, 4}}, sparse.Path)

	sparse, err = FindPath(context.Background(), grid, Cell{0, 0}, Cell{4, 4},
		WithEngine(JPS), WithReconstruction(Sparse))
	require.NoError(t, err)
	assert.Equal(t, detour, sparse.Path)
	assert.InDelta(t, 3*Sqrt2+2, PathCost(sparse.Path), 1e-9)
}

func TestFindPath_SourceEqualsTarget(t *testing.T) {
	grid, err := NewOpenGrid(3, 3)
	require.NoError(t, err)
	for _, engine := range engines {
		for _, mode := range []Reconstruction{Dense, Sparse} {
			result, err := FindPath(context.Background(), grid, Cell{1, 1}, Cell{1, 1},
				WithEngine(engine), WithReconstruction(mode))
			require.NoError(t, err)
			assert.True(t, result.Found)
			assert.Equal(t, []Cell{{1, 1}}, result.Path)
			assert.Zero(t, result.Cost)
		}
	}
}

func TestFindPath_FourWay(t *testing.T) {
	grid, err := NewOpenGrid(5, 5)
	require.NoError(t, err)

	result, err := FindPath(context.Background(), grid, Cell{0, 0}, Cell{4, 4},
		WithMovement(FourWay), WithHeuristic(Manhattan))
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, 8.0, result.Cost)
	assert.Len(t, result.Path, 9)
	for i := 1; i < len(result.Path); i++ {
		d, _ := directionBetween(result.Path[i-1], result.Path[i])
		assert.False(t, d.IsDiagonal())
	}
}

func TestFindPath_CornerPolicy(t *testing.T) {
	// The only way from (0,0) to (1,1) passes between (1,0) and (0,1).
	squeeze := []string{"10", "01"}
	// One orthogonal neighbour of the diagonal is blocked.
	corner := []string{"10", "11"}

	tests := []struct {
		name      string
		rows      []string
		policy    CornerPolicy
		wantFound bool
		wantCost  float64
	}{
		{name: "squeeze one-open", rows: squeeze, policy: CornerIfOneOpen, wantFound: false},
		{name: "squeeze never", rows: squeeze, policy: CornerNever, wantFound: false},
		{name: "corner one-open", rows: corner, policy: CornerIfOneOpen, wantFound: true, wantCost: Sqrt2},
		{name: "corner never", rows: corner, policy: CornerNever, wantFound: true, wantCost: 2},
	}
	for _, tt := range tests {
		for _, engine := range engines {
			t.Run(fmt.Sprintf("%s/%s", tt.name, engine), func(t *testing.T) {
				grid := gridFromRows(t, tt.rows...)
				result, err := FindPath(context.Background(), grid, Cell{0, 0}, Cell{1, 1},
					WithEngine(engine), WithCornerPolicy(tt.policy))
				require.NoError(t, err)
				assert.Equal(t, tt.wantFound, result.Found)
				if tt.wantFound {
					assert.InDelta(t, tt.wantCost, result.Cost, 1e-9)
					requireDensePath(t, grid, tt.policy, result.Path, Cell{0, 0}, Cell{1, 1}, tt.wantCost)
				}
			})
		}
	}
}

func TestFindPath_Errors(t *testing.T) {
	grid := gridFromRows(t, "111", "101", "111")

	tests := []struct {
		name    string
		grid    *Grid
		source  Cell
		target  Cell
		options []Option
		wantErr error
	}{
		{name: "negative source", grid: grid, source: Cell{-1, 0}, target: Cell{2, 2}, wantErr: ErrInvalidEndpoint},
		{name: "target out of bounds", grid: grid, source: Cell{0, 0}, target: Cell{3, 0}, wantErr: ErrInvalidEndpoint},
		{name: "blocked source", grid: grid, source: Cell{1, 1}, target: Cell{2, 2}, wantErr: ErrInvalidEndpoint},
		{name: "blocked target", grid: grid, source: Cell{0, 0}, target: Cell{1, 1}, wantErr: ErrInvalidEndpoint},
		{name: "nil grid", source: Cell{0, 0}, target: Cell{1, 1}, wantErr: ErrInvalidOptions},
		{
			name: "jps four way", grid: grid, source: Cell{0, 0}, target: Cell{2, 2},
			options: []Option{WithEngine(JPS), WithMovement(FourWay)}, wantErr: ErrInvalidOptions,
		},
		{
			name: "negative budget", grid: grid, source: Cell{0, 0}, target: Cell{2, 2},
			options: []Option{WithMaxExpansions(-1)}, wantErr: ErrInvalidOptions,
		},
		{
			name: "unknown engine", grid: grid, source: Cell{0, 0}, target: Cell{2, 2},
			options: []Option{WithEngine(Engine(7))}, wantErr: ErrInvalidOptions,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FindPath(context.Background(), tt.grid, tt.source, tt.target, tt.options...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Zero(t, result.Expanded)
			assert.False(t, result.Found)
		})
	}
}

func TestFindPath_Budget(t *testing.T) {
	grid := gridFromRows(t, "11111", "11111", "11011", "11111", "11111")

	// the target is the sixth cell finalized by both engines, and reaching it
	// is checked before the budget
	tests := []struct {
		limit     int
		wantFound bool
	}{
		{limit: 2},
		{limit: 4},
		{limit: 5, wantFound: true},
		{limit: 6, wantFound: true},
		{limit: 1000, wantFound: true},
	}
	for _, engine := range engines {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/%d", engine, tt.limit), func(t *testing.T) {
				result, err := FindPath(context.Background(), grid, Cell{0, 0}, Cell{4, 4},
					WithEngine(engine), WithMaxExpansions(tt.limit))
				if !tt.wantFound {
					require.Error(t, err)
					assert.True(t, errors.Is(err, ErrBudgetExceeded), "got %v", err)
					assert.Equal(t, tt.limit+1, result.Expanded)
					assert.False(t, result.Found)
					return
				}
				require.NoError(t, err)
				assert.True(t, result.Found)
				assert.Equal(t, 6, result.Expanded)
			})
		}
	}
}

func TestFindPath_Canceled(t *testing.T) {
	grid, err := NewOpenGrid(10, 10)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, engine := range engines {
		_, err := FindPath(ctx, grid, Cell{0, 0}, Cell{9, 9}, WithEngine(engine))
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestFindPath_Idempotent(t *testing.T) {
	grid := gridFromRows(t, "11111", "11111", "11011", "11111", "11111")
	for _, engine := range engines {
		first, err := FindPath(context.Background(), grid, Cell{0, 0}, Cell{4, 4}, WithEngine(engine))
		require.NoError(t, err)
		second, err := FindPath(context.Background(), grid, Cell{0, 0}, Cell{4, 4}, WithEngine(engine))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func randomGrid(r *rand.Rand, width, height int, density float64) []byte {
	cells := make([]byte, width*height)
	for i := range cells {
		if r.Float64() >= density {
			cells[i] = Passable
		}
	}
	return cells
}

func randomOpenCell(r *rand.Rand, grid *Grid) (Cell, bool) {
	for attempt := 0; attempt < 100; attempt++ {
		c := Cell{r.Intn(grid.Width()), r.Intn(grid.Height())}
		if grid.IsPassable(c) {
			return c, true
		}
	}
	return Cell{}, false
}

func TestFindPath_EnginesAgree(t *testing.T) {
	heuristics := []HeuristicKind{Octile, Euclidean, Zero}
	policies := []CornerPolicy{CornerIfOneOpen, CornerNever}
	ctx := context.Background()

	for _, policy := range policies {
		for _, heuristic := range heuristics {
			t.Run(fmt.Sprintf("%s/%s", policy, heuristic), func(t *testing.T) {
				r := rand.New(rand.NewSource(42))
				for trial := 0; trial < 120; trial++ {
					width, height := 4+r.Intn(14), 4+r.Intn(14)
					grid, err := NewGrid(width, height, randomGrid(r, width, height, 0.1+0.3*r.Float64()))
					require.NoError(t, err)
					source, ok1 := randomOpenCell(r, grid)
					target, ok2 := randomOpenCell(r, grid)
					if !ok1 || !ok2 {
						continue
					}

					base := []Option{WithHeuristic(heuristic), WithCornerPolicy(policy)}
					astar, err := FindPath(ctx, grid, source, target, append(base, WithEngine(AStar))...)
					require.NoError(t, err)
					jps, err := FindPath(ctx, grid, source, target, append(base, WithEngine(JPS))...)
					require.NoError(t, err)
					jpsSparse, err := FindPath(ctx, grid, source, target, append(base, WithEngine(JPS), WithReconstruction(Sparse))...)
					require.NoError(t, err)

					msg := fmt.Sprintf("trial %d %v -> %v\n%s", trial, source, target, grid)
					require.Equal(t, astar.Found, jps.Found, msg)
					if !astar.Found {
						continue
					}
					require.InDelta(t, astar.Cost, jps.Cost, 1e-9, msg)
					requireDensePath(t, grid, policy, astar.Path, source, target, astar.Cost)
					requireDensePath(t, grid, policy, jps.Path, source, target, jps.Cost)
					require.InDelta(t, jps.Cost, PathCost(jpsSparse.Path), 1e-9, msg)
					require.Equal(t, densify(jpsSparse.Path), jps.Path, msg)
				}
			})
		}
	}
}
