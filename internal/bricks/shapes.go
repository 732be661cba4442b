package bricks

import (
	"math/rand"
	"time"
)

type randSource interface {
	Intn(n int) int
}

type shapeDefinition struct {
	name    string
	offsets []Point
	width   int
}

// shapeDefinitions holds the offsets of every shape, the origin (0,0) excluded
var shapeDefinitions = [numShapeKinds]shapeDefinition{
	ShapeL: {
		name:    "L",
		offsets: []Point{{0, 1}, {1, 0}},
		width:   3,
	},
	ShapeTallL: {
		name:    "TallL",
		offsets: []Point{{0, 1}, {0, 2}, {1, 0}},
		width:   5,
	},
	ShapeTallLInverted: {
		name:    "TallLInverted",
		offsets: []Point{{0, 1}, {0, 2}, {-1, 0}},
		width:   5,
	},
	ShapeLine: {
		name:    "Line",
		offsets: []Point{{-1, 0}, {1, 0}},
		width:   3,
	},
	ShapeTriangle: {
		name:    "Triangle",
		offsets: []Point{{-1, 0}, {1, 0}, {0, 1}},
		width:   3,
	},
	ShapePlus: {
		name:    "Plus",
		offsets: []Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}},
		width:   3,
	},
}

// Kinds returns every shape kind in catalog order
func Kinds() []ShapeKind {
	kinds := make([]ShapeKind, numShapeKinds)
	for i := range kinds {
		kinds[i] = ShapeKind(i)
	}
	return kinds
}

// String returns the shape name
func (kind ShapeKind) String() string {
	if kind < 0 || kind >= numShapeKinds {
		return "Unknown"
	}
	return shapeDefinitions[kind].name
}

// Offsets returns the local offsets of the kind, origin excluded
func (kind ShapeKind) Offsets() []Point {
	return clonePoints(shapeDefinitions[kind].offsets)
}

// Width returns the declared width of the kind
func (kind ShapeKind) Width() int {
	return shapeDefinitions[kind].width
}

// NewCatalog creates a catalog drawing from the given source, or a time seeded one when nil
func NewCatalog(source *rand.Rand) *Catalog {
	if source == nil {
		source = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Catalog{rand: source}
}

// Random returns a new shape, every kind being equally likely
func (catalog *Catalog) Random() *Shape {
	catalog.mu.Lock()
	kind := ShapeKind(catalog.rand.Intn(int(numShapeKinds)))
	catalog.mu.Unlock()
	return NewShape(kind)
}
