package bricks

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell"
)

const (
	boardXOffset = 4
	boardYOffset = 2
	panelWidth   = 20
	panelHeight  = 19

	minArenaWidth  = 5
	minArenaHeight = 5

	settleScore = 100
	streakBonus = 50

	glyphVacant = '⬜'
	glyphOccupy = '⬛'

	logFlags = log.Ldate | log.Ltime | log.LUTC | log.Lshortfile

	colorBlank  = tcell.ColorBlack
	colorObject = tcell.ColorAqua
	colorGround = tcell.ColorSilver
)

const (
	// BlockAir is an empty cell
	BlockAir BlockType = iota
	// BlockObject is a cell of the falling shape
	BlockObject
	// BlockGround is a settled cell
	BlockGround
)

const (
	// ShapeL is the three cell L
	ShapeL ShapeKind = iota
	// ShapeTallL is the four cell L
	ShapeTallL
	// ShapeTallLInverted is the four cell L hanging upwards
	ShapeTallLInverted
	// ShapeLine is the three cell vertical line
	ShapeLine
	// ShapeTriangle is the four cell T
	ShapeTriangle
	// ShapePlus is the five cell plus
	ShapePlus

	numShapeKinds
)

const (
	// StateFalling means the shape is still moving down
	StateFalling State = iota
	// StateSettled means the shape turned into ground and a new one spawns on the next tick
	StateSettled
	// StateGameOver means the ground reached the spawn area
	StateGameOver
)

const (
	engineModeRun engineMode = iota
	engineModeStopped
	engineModeGameOver
	engineModePaused
)

type (
	engineMode int

	// BlockType tags the occupancy of a cell
	BlockType int
	// ShapeKind is one of the playable shapes
	ShapeKind int
	// State is the outcome of an arena tick
	State int

	// Point is a (row, col) pair, either an offset or an absolute grid position
	Point struct {
		Row int
		Col int
	}

	// Cell is one grid position. Glyph is cosmetic.
	Cell struct {
		Glyph rune
		Type  BlockType
	}

	// Shape is a falling piece: local offsets around an origin plus an absolute center
	Shape struct {
		kind   ShapeKind
		points []Point
		center Point
		width  int
	}

	// Catalog picks random shapes
	Catalog struct {
		mu   sync.Mutex
		rand randSource
	}

	// Grid is the height x width cell matrix
	Grid struct {
		width  int
		height int
		cells  [][]Cell
	}

	// Arena is one game session. Every exported method holds the arena lock for its whole duration.
	Arena struct {
		mu           sync.Mutex
		grid         *Grid
		current      *Shape
		nextShape    func() *Shape
		spawnHeight  int
		generateNew  bool
		lockControls bool
		gameOver     bool
		score        int
		groundHeight int
		streak       int
		pieces       int
	}

	// Snapshot is a read-only copy of an arena for rendering
	Snapshot struct {
		Cells        [][]BlockType
		Score        int
		GroundHeight int
		Streak       int
		Pieces       int
		Running      bool
		Locked       bool
		Current      ShapeKind
		HasCurrent   bool
	}

	// View is the display engine
	View struct {
		mu     sync.Mutex
		screen tcell.Screen
	}

	// Ranking holds the ranking scores
	Ranking struct {
		mu     sync.Mutex
		scores []uint64
	}

	// Options configures a game
	Options struct {
		Name        string
		Width       int
		Height      int
		SpawnHeight int
		TickTime    time.Duration
	}

	// Result sums up a play session
	Result struct {
		Name         string
		Games        int
		Score        int
		BestScore    int
		GroundHeight int
		Pieces       int
		Duration     time.Duration
	}

	// Engine drives an arena from terminal input and a ticker
	Engine struct {
		mu       sync.Mutex
		options  Options
		screen   tcell.Screen
		view     *View
		logger   *log.Logger
		ranking  *Ranking
		arena    atomic.Pointer[Arena]
		session  string
		mode     engineMode
		games    int
		started  time.Time
		chanStop chan struct{}
		stopOnce sync.Once
	}

	// EventGame is an game event
	EventGame struct {
		when time.Time
	}
)

// When returns event when
func (EventGame *EventGame) When() time.Time {
	return EventGame.when
}
