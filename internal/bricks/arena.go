package bricks

import (
	"errors"
	"fmt"
)

// ErrInvalidArena is returned for arena dimensions a shape cannot spawn in
var ErrInvalidArena = errors.New("invalid arena")

// NewArena creates a game session on an empty width x height grid.
// The game ends once the ground height reaches height - spawnHeight.
func NewArena(width int, height int, spawnHeight int) (*Arena, error) {
	if width < minArenaWidth || height < minArenaHeight {
		return nil, fmt.Errorf("%w: %dx%d is smaller than %dx%d", ErrInvalidArena, width, height, minArenaWidth, minArenaHeight)
	}
	if spawnHeight < 0 || spawnHeight >= height {
		return nil, fmt.Errorf("%w: spawn height %d must be within [0, %d)", ErrInvalidArena, spawnHeight, height)
	}

	return &Arena{
		grid:        NewGrid(width, height),
		nextShape:   NewCatalog(nil).Random,
		spawnHeight: spawnHeight,
		generateNew: true,
	}, nil
}

// MoveLeft moves the falling shape one column left and reports whether it moved
func (arena *Arena) MoveLeft() bool {
	return arena.transform((*Shape).EmulateMoveLeft, (*Shape).MoveLeft)
}

// MoveRight moves the falling shape one column right and reports whether it moved
func (arena *Arena) MoveRight() bool {
	return arena.transform((*Shape).EmulateMoveRight, (*Shape).MoveRight)
}

// RotateClockwise rotates the falling shape clockwise and reports whether it rotated
func (arena *Arena) RotateClockwise() bool {
	return arena.transform((*Shape).EmulateRotateClockwise, (*Shape).RotateClockwise)
}

// RotateCounterClockwise rotates the falling shape counter-clockwise and reports whether it rotated
func (arena *Arena) RotateCounterClockwise() bool {
	return arena.transform((*Shape).EmulateRotateCounterClockwise, (*Shape).RotateCounterClockwise)
}

// transform validates the emulated offsets against the grid, then clears the shape,
// commits the change and stamps it again. Nothing is written when validation fails.
func (arena *Arena) transform(emulate func(*Shape) []Point, commit func(*Shape)) bool {
	arena.mu.Lock()
	defer arena.mu.Unlock()

	if arena.gameOver || arena.lockControls || arena.current == nil {
		return false
	}

	shape := arena.current
	for _, cell := range absolutePoints(shape.Center(), emulate(shape)) {
		blockType, ok := arena.grid.Get(cell.Row, cell.Col)
		if !ok || blockType == BlockGround {
			return false
		}
	}

	arena.stamp(shape, BlockAir)
	commit(shape)
	arena.stamp(shape, BlockObject)
	return true
}

// stamp writes the block type on every cell of the shape, skipping cells off the grid
func (arena *Arena) stamp(shape *Shape, blockType BlockType) {
	for _, cell := range shape.Cells() {
		_ = arena.grid.Set(cell.Row, cell.Col, blockType)
	}
}

// Advance runs one tick: spawn a shape when needed, let object cells fall one row,
// and settle them into ground when nothing moved.
func (arena *Arena) Advance() State {
	arena.mu.Lock()
	defer arena.mu.Unlock()

	if arena.gameOver {
		return StateGameOver
	}

	if arena.generateNew {
		if !arena.spawn() {
			arena.gameOver = true
			return StateGameOver
		}
	}
	if arena.current == nil {
		panic("bricks: advancing an arena without a falling shape")
	}

	if arena.fall() {
		return StateFalling
	}

	arena.grid.solidify()
	arena.updateScore()
	arena.pieces++
	arena.lockControls = true
	arena.generateNew = true

	if arena.groundHeight >= arena.grid.height-arena.spawnHeight {
		arena.gameOver = true
		return StateGameOver
	}
	return StateSettled
}

// spawn places a random shape at the spawn point. It fails when the shape does not fit.
func (arena *Arena) spawn() bool {
	shape := arena.nextShape()
	shape.SetCenter(Point{Row: shape.Width() / 2, Col: arena.grid.width / 2})

	for _, cell := range shape.Cells() {
		blockType, ok := arena.grid.Get(cell.Row, cell.Col)
		if !ok || blockType != BlockAir {
			return false
		}
	}

	arena.stamp(shape, BlockObject)
	arena.current = shape
	arena.generateNew = false
	arena.lockControls = false
	return true
}

// fall scans bottom to top, right to left, and drops every object cell with air below by one row.
// Controls lock as soon as a cell rests on the bottom row or on ground, before any cell of
// the shape can fall on its own.
func (arena *Arena) fall() bool {
	grid := arena.grid
	moved := false
	// a rotation or move can put a cell on the bottom row without a swap
	for j := 0; j < grid.width; j++ {
		if grid.cells[grid.height-1][j].Type == BlockObject {
			arena.lockControls = true
		}
	}
	for i := grid.height - 1; i > 0; i-- {
		for j := grid.width - 1; j >= 0; j-- {
			if grid.cells[i-1][j].Type != BlockObject {
				continue
			}

			switch grid.cells[i][j].Type {
			case BlockAir:
				grid.swapDown(i-1, j)

				center := arena.current.Center()
				if center.Row == i-1 && center.Col == j {
					arena.current.SetCenter(Point{Row: i, Col: j})
				}

				if i == grid.height-1 || grid.cells[i+1][j].Type == BlockGround {
					arena.lockControls = true
				}
				moved = true
			case BlockGround:
				arena.lockControls = true
			}
		}
	}
	return moved
}

// updateScore awards the settle points, with a streak bonus while the ground height stays put
func (arena *Arena) updateScore() {
	height := arena.grid.HeightOfGround()
	if height == arena.groundHeight {
		arena.streak++
		arena.score += streakBonus * arena.streak
	} else {
		arena.streak = 0
	}
	arena.groundHeight = height
	arena.score += settleScore
}

// Score returns the score
func (arena *Arena) Score() int {
	arena.mu.Lock()
	defer arena.mu.Unlock()
	return arena.score
}

// IsRunning returns false once the game is over
func (arena *Arena) IsRunning() bool {
	arena.mu.Lock()
	defer arena.mu.Unlock()
	return !arena.gameOver
}

// Snapshot copies the arena state for rendering
func (arena *Arena) Snapshot() Snapshot {
	arena.mu.Lock()
	defer arena.mu.Unlock()

	snapshot := Snapshot{
		Cells:        arena.grid.Types(),
		Score:        arena.score,
		GroundHeight: arena.groundHeight,
		Streak:       arena.streak,
		Pieces:       arena.pieces,
		Running:      !arena.gameOver,
		Locked:       arena.lockControls,
	}
	if arena.current != nil {
		snapshot.Current = arena.current.Kind()
		snapshot.HasCurrent = true
	}
	return snapshot
}
