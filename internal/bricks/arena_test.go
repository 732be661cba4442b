package bricks

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestArena creates an arena spawning the given kinds in turn
func newTestArena(t *testing.T, width int, height int, spawnHeight int, kinds ...ShapeKind) *Arena {
	t.Helper()
	arena, err := NewArena(width, height, spawnHeight)
	require.NoError(t, err)
	next := 0
	arena.nextShape = func() *Shape {
		shape := NewShape(kinds[next%len(kinds)])
		next++
		return shape
	}
	return arena
}

// advanceUntil advances until the arena reports want, failing after limit ticks
func advanceUntil(t *testing.T, arena *Arena, want State, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		if arena.Advance() == want {
			return i
		}
	}
	t.Fatalf("arena did not reach state %d in %d ticks", want, limit)
	return 0
}

func requireShapeStamped(t *testing.T, arena *Arena) {
	t.Helper()
	require.Equal(t, len(arena.current.points), arena.grid.Count(BlockObject))
	for _, cell := range arena.current.Cells() {
		blockType, ok := arena.grid.Get(cell.Row, cell.Col)
		require.True(t, ok)
		require.Equal(t, BlockObject, blockType)
	}
}

func TestNewArenaRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		width, height, spawnHeight int
	}{
		{4, 25, 6},
		{9, 4, 1},
		{9, 25, -1},
		{9, 25, 25},
	}
	for _, tt := range tests {
		_, err := NewArena(tt.width, tt.height, tt.spawnHeight)
		require.True(t, errors.Is(err, ErrInvalidArena), "%dx%d spawn %d", tt.width, tt.height, tt.spawnHeight)
	}
}

func TestNewArenaIsEmptyAndRunning(t *testing.T) {
	arena, err := NewArena(9, 25, 6)
	require.NoError(t, err)
	require.True(t, arena.IsRunning())
	require.Equal(t, 0, arena.Score())

	snapshot := arena.Snapshot()
	require.False(t, snapshot.HasCurrent)
	require.Len(t, snapshot.Cells, 25)
	require.Len(t, snapshot.Cells[0], 9)

	// nothing to move before the first tick
	require.False(t, arena.MoveLeft())
	require.False(t, arena.RotateClockwise())
}

func TestFirstAdvanceSpawnsAndFalls(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, ShapeLine)
	require.Equal(t, StateFalling, arena.Advance())
	// spawned at (3/2, 9/2), then fell one row in the same tick
	require.Equal(t, Point{2, 4}, arena.current.Center())
	requireShapeStamped(t, arena)

	snapshot := arena.Snapshot()
	require.True(t, snapshot.HasCurrent)
	require.Equal(t, ShapeLine, snapshot.Current)
	require.False(t, snapshot.Locked)
}

func TestSpawnUsesDeclaredWidth(t *testing.T) {
	arena := newTestArena(t, 10, 25, 6, ShapeTallL)
	arena.Advance()
	require.Equal(t, Point{3, 5}, arena.current.Center())
}

func TestMoveLeftThenRightRestoresCenter(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, ShapeTriangle)
	arena.Advance()
	center := arena.current.Center()

	require.True(t, arena.MoveLeft())
	require.Equal(t, center.Col-1, arena.current.Center().Col)
	requireShapeStamped(t, arena)
	require.True(t, arena.MoveRight())
	require.Equal(t, center, arena.current.Center())
	requireShapeStamped(t, arena)

	require.True(t, arena.MoveRight())
	require.True(t, arena.MoveLeft())
	require.Equal(t, center, arena.current.Center())
	requireShapeStamped(t, arena)
}

func TestMoveRejectedAtWall(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, ShapeLine)
	arena.Advance()

	for i := 0; i < 4; i++ {
		require.True(t, arena.MoveLeft())
	}
	require.Equal(t, 0, arena.current.Center().Col)

	before := arena.grid.Types()
	require.False(t, arena.MoveLeft())
	require.Equal(t, before, arena.grid.Types())
	require.Equal(t, 0, arena.current.Center().Col)

	// the horizontal line would poke out at column -1
	require.False(t, arena.RotateClockwise())
	require.Equal(t, before, arena.grid.Types())
	requireShapeStamped(t, arena)
}

func TestMoveRejectedByGround(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, ShapeLine)
	arena.Advance()
	center := arena.current.Center()
	arena.grid.Set(center.Row+1, center.Col+1, BlockGround)

	before := arena.grid.Types()
	require.False(t, arena.MoveRight())
	require.Equal(t, before, arena.grid.Types())
	require.Equal(t, center, arena.current.Center())

	require.True(t, arena.MoveLeft())
	requireShapeStamped(t, arena)
}

func TestRotationRejectedByGround(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, ShapeLine)
	arena.Advance()
	center := arena.current.Center()
	arena.grid.Set(center.Row, center.Col-1, BlockGround)

	points := arena.current.Points()
	before := arena.grid.Types()
	require.False(t, arena.RotateClockwise())
	require.False(t, arena.RotateCounterClockwise())
	require.Equal(t, before, arena.grid.Types())
	require.Equal(t, points, arena.current.Points())
}

func TestRotateFourTimesRestoresGrid(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, ShapeTallL)
	arena.Advance()
	before := arena.grid.Types()

	for i := 0; i < 4; i++ {
		require.True(t, arena.RotateClockwise())
		requireShapeStamped(t, arena)
	}
	require.Equal(t, before, arena.grid.Types())

	for i := 0; i < 4; i++ {
		require.True(t, arena.RotateCounterClockwise())
		requireShapeStamped(t, arena)
	}
	require.Equal(t, before, arena.grid.Types())
}

func TestLockedControlsRejectInput(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, ShapePlus)
	arena.Advance()
	arena.lockControls = true

	before := arena.grid.Types()
	require.False(t, arena.MoveLeft())
	require.False(t, arena.MoveRight())
	require.False(t, arena.RotateClockwise())
	require.False(t, arena.RotateCounterClockwise())
	require.Equal(t, before, arena.grid.Types())
}

func TestAdvanceFallsOneRowPerTickUntilLanding(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, ShapeLine)

	require.Equal(t, StateFalling, arena.Advance())
	for row := 2; row < 23; row++ {
		require.Equal(t, row, arena.current.Center().Row)
		require.False(t, arena.Snapshot().Locked)
		requireShapeStamped(t, arena)
		require.Equal(t, StateFalling, arena.Advance())
	}

	// the bottom cell reached the last row
	require.Equal(t, 23, arena.current.Center().Row)
	require.True(t, arena.Snapshot().Locked)
	require.False(t, arena.MoveLeft())
}

func TestLandingOnGroundLocksControls(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, ShapeLine)
	arena.grid.Set(10, 4, BlockGround)

	advanceUntil(t, arena, StateFalling, 1)
	for !arena.Snapshot().Locked {
		require.Equal(t, StateFalling, arena.Advance())
	}
	require.Equal(t, Point{8, 4}, arena.current.Center())
	require.Equal(t, StateSettled, arena.Advance())
}

func TestShapeTurnedOntoFloorLocksControls(t *testing.T) {
	tests := []struct {
		name      string
		groundRow int
		lastRow   int
		extra     int
	}{
		{name: "floor", groundRow: -1, lastRow: 22},
		{name: "ground", groundRow: 24, lastRow: 21, extra: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arena := newTestArena(t, 9, 25, 6, ShapeTallL)
			if tt.groundRow >= 0 {
				for col := 0; col < 9; col++ {
					arena.grid.Set(tt.groundRow, col, BlockGround)
				}
			}

			for arena.current == nil || arena.current.Center().Row < tt.lastRow {
				require.Equal(t, StateFalling, arena.Advance())
				requireShapeStamped(t, arena)
				require.False(t, arena.Snapshot().Locked)
			}

			require.True(t, arena.MoveLeft())
			requireShapeStamped(t, arena)
			// the long arm now reaches the last free row
			require.True(t, arena.RotateClockwise())
			requireShapeStamped(t, arena)
			require.Equal(t, BlockObject, arena.Snapshot().Cells[tt.lastRow+2][3])
			require.False(t, arena.Snapshot().Locked)

			require.Equal(t, StateFalling, arena.Advance())
			require.True(t, arena.Snapshot().Locked)
			require.False(t, arena.MoveRight())
			require.False(t, arena.MoveLeft())
			require.False(t, arena.RotateCounterClockwise())
			require.Equal(t, 4, arena.grid.Count(BlockObject))

			advanceUntil(t, arena, StateSettled, 3)
			require.Equal(t, 0, arena.grid.Count(BlockObject))
			require.Equal(t, 4+tt.extra, arena.grid.Count(BlockGround))
		})
	}
}

func TestLineSettles(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, ShapeLine)

	ticks := advanceUntil(t, arena, StateSettled, 100)
	require.Equal(t, 23, ticks)

	snapshot := arena.Snapshot()
	require.Equal(t, 100, snapshot.Score)
	require.Equal(t, 0, snapshot.Streak)
	require.Equal(t, 1, snapshot.Pieces)
	// a vertical line stands three rows tall
	require.Equal(t, 3, snapshot.GroundHeight)
	require.True(t, snapshot.Running)
	require.True(t, snapshot.Locked)
	require.Equal(t, 0, arena.grid.Count(BlockObject))
	require.Equal(t, 3, arena.grid.Count(BlockGround))
	for row := 22; row < 25; row++ {
		require.Equal(t, BlockGround, snapshot.Cells[row][4])
	}

	// the next tick spawns a new shape
	require.Equal(t, StateFalling, arena.Advance())
	require.False(t, arena.Snapshot().Locked)
	require.Equal(t, 3, arena.grid.Count(BlockObject))
}

func TestStreakBonus(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, ShapeLine)
	for row := 10; row < 25; row++ {
		arena.grid.Set(row, 0, BlockGround)
	}
	arena.groundHeight = arena.grid.HeightOfGround()
	require.Equal(t, 15, arena.groundHeight)

	advanceUntil(t, arena, StateSettled, 100)
	require.Equal(t, 100+50, arena.Score())
	require.Equal(t, 1, arena.Snapshot().Streak)

	advanceUntil(t, arena, StateSettled, 100)
	require.Equal(t, 100+50+100+100, arena.Score())
	require.Equal(t, 2, arena.Snapshot().Streak)
	require.Equal(t, 15, arena.Snapshot().GroundHeight)
}

func TestStreakResetsWhenHeightChanges(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, ShapeLine)
	arena.grid.Set(24, 0, BlockGround)
	arena.groundHeight = 1

	advanceUntil(t, arena, StateSettled, 100)
	require.Equal(t, 0, arena.Snapshot().Streak)
	require.Equal(t, 100, arena.Score())
	require.Equal(t, 3, arena.Snapshot().GroundHeight)
}

func TestGameOverLatches(t *testing.T) {
	arena := newTestArena(t, 5, 8, 4, ShapeLine)

	require.Equal(t, 6, advanceUntil(t, arena, StateSettled, 20))
	require.Equal(t, 3, arena.Snapshot().GroundHeight)
	require.True(t, arena.IsRunning())

	advanceUntil(t, arena, StateGameOver, 20)
	require.False(t, arena.IsRunning())
	require.Equal(t, 6, arena.Snapshot().GroundHeight)
	require.Equal(t, 200, arena.Score())

	before := arena.grid.Types()
	require.Equal(t, StateGameOver, arena.Advance())
	require.False(t, arena.MoveLeft())
	require.False(t, arena.MoveRight())
	require.False(t, arena.RotateClockwise())
	require.False(t, arena.RotateCounterClockwise())
	require.Equal(t, before, arena.grid.Types())
	require.Equal(t, 200, arena.Score())
}

func TestBlockedSpawnEndsGame(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, ShapeLine)
	arena.grid.Set(1, 4, BlockGround)

	require.Equal(t, StateGameOver, arena.Advance())
	require.False(t, arena.IsRunning())
	require.Equal(t, 0, arena.grid.Count(BlockObject))
}

func TestSnapshotIsCopy(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, ShapeL)
	arena.Advance()
	snapshot := arena.Snapshot()
	snapshot.Cells[24][0] = BlockGround
	require.Equal(t, 0, arena.grid.Count(BlockGround))
}

func TestConcurrentInputAndTicks(t *testing.T) {
	arena := newTestArena(t, 9, 25, 6, Kinds()...)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000 && arena.IsRunning(); i++ {
			arena.Advance()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			switch i % 4 {
			case 0:
				arena.MoveLeft()
			case 1:
				arena.RotateClockwise()
			case 2:
				arena.MoveRight()
			case 3:
				arena.RotateCounterClockwise()
			}
		}
	}()
	wg.Wait()

	arena.mu.Lock()
	defer arena.mu.Unlock()
	objects := arena.grid.Count(BlockObject)
	if arena.generateNew || arena.current == nil {
		require.Equal(t, 0, objects)
	} else {
		require.Equal(t, len(arena.current.points), objects)
	}
}
