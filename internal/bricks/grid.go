package bricks

// NewGrid creates a grid with every cell set to air
func NewGrid(width int, height int) *Grid {
	grid := &Grid{width: width, height: height}
	grid.cells = make([][]Cell, height)
	for i := 0; i < height; i++ {
		grid.cells[i] = make([]Cell, width)
		for j := 0; j < width; j++ {
			grid.cells[i][j] = Cell{Glyph: glyphVacant, Type: BlockAir}
		}
	}
	return grid
}

// Width returns the number of columns
func (grid *Grid) Width() int {
	return grid.width
}

// Height returns the number of rows
func (grid *Grid) Height() int {
	return grid.height
}

// InBounds checks if the position is on the grid
func (grid *Grid) InBounds(row int, col int) bool {
	return row >= 0 && row < grid.height && col >= 0 && col < grid.width
}

// Get returns the block type at the position, ok is false when it is off the grid
func (grid *Grid) Get(row int, col int) (blockType BlockType, ok bool) {
	if !grid.InBounds(row, col) {
		return BlockAir, false
	}
	return grid.cells[row][col].Type, true
}

// Set sets the block type at the position and reports whether it was on the grid
func (grid *Grid) Set(row int, col int, blockType BlockType) bool {
	if !grid.InBounds(row, col) {
		return false
	}
	glyph := glyphOccupy
	if blockType == BlockAir {
		glyph = glyphVacant
	}
	grid.cells[row][col] = Cell{Glyph: glyph, Type: blockType}
	return true
}

// Cell returns the cell at the position
func (grid *Grid) Cell(row int, col int) (Cell, bool) {
	if !grid.InBounds(row, col) {
		return Cell{}, false
	}
	return grid.cells[row][col], true
}

// swapDown exchanges a cell with the one directly below it
func (grid *Grid) swapDown(row int, col int) {
	grid.cells[row][col], grid.cells[row+1][col] = grid.cells[row+1][col], grid.cells[row][col]
}

// solidify turns every object cell into ground, keeping its glyph
func (grid *Grid) solidify() {
	for i := 0; i < grid.height; i++ {
		for j := 0; j < grid.width; j++ {
			if grid.cells[i][j].Type == BlockObject {
				grid.cells[i][j].Type = BlockGround
			}
		}
	}
}

// HeightOfGround returns the distance from the bottom to the topmost ground row, 0 without ground
func (grid *Grid) HeightOfGround() int {
	for i := 0; i < grid.height; i++ {
		for j := 0; j < grid.width; j++ {
			if grid.cells[i][j].Type == BlockGround {
				return grid.height - i
			}
		}
	}
	return 0
}

// Count returns the number of cells with the block type
func (grid *Grid) Count(blockType BlockType) int {
	count := 0
	for i := 0; i < grid.height; i++ {
		for j := 0; j < grid.width; j++ {
			if grid.cells[i][j].Type == blockType {
				count++
			}
		}
	}
	return count
}

// Types returns a copy of the block types, row major
func (grid *Grid) Types() [][]BlockType {
	types := make([][]BlockType, grid.height)
	for i := 0; i < grid.height; i++ {
		types[i] = make([]BlockType, grid.width)
		for j := 0; j < grid.width; j++ {
			types[i][j] = grid.cells[i][j].Type
		}
	}
	return types
}
