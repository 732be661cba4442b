package bricks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// EventEngineStopRun stop the run of the engine
type EventEngineStopRun struct {
	EventGame
}

// NewEngine creates a new engine playing on an initialized screen
func NewEngine(screen tcell.Screen, options Options, logger *log.Logger) (*Engine, error) {
	if options.TickTime <= 0 {
		return nil, fmt.Errorf("tick time must be positive, got %s", options.TickTime)
	}

	engine := &Engine{
		options:  options,
		screen:   screen,
		view:     NewView(screen),
		logger:   logger,
		ranking:  NewRanking(),
		chanStop: make(chan struct{}),
		started:  time.Now(),
	}
	if err := engine.NewGame(); err != nil {
		return nil, err
	}
	return engine, nil
}

// Run runs the input actor and the tick actor until the player quits or ctx is done
func (engine *Engine) Run(ctx context.Context) error {
	engine.logger.Println("Engine Run start")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case <-ctx.Done():
		case <-engine.chanStop:
		}
		engine.Stop()
		// wakes up PollEvent in runInput
		if err := engine.screen.PostEvent(&EventEngineStopRun{EventGame{when: time.Now()}}); err != nil {
			engine.logger.Println("Engine Run post stop event:", err)
		}
		return nil
	})
	g.Go(engine.runInput)
	g.Go(func() error {
		return engine.runTicks(ctx)
	})

	engine.refreshScreen()
	err := g.Wait()

	engine.logger.Println("Engine Run end")
	return err
}

// runInput handles key events until the stop event arrives
func (engine *Engine) runInput() error {
	for {
		event := engine.screen.PollEvent()
		switch eventType := event.(type) {
		case nil:
			// screen finalized
			return nil
		case *tcell.EventKey:
			engine.ProcessEventKey(eventType)
			engine.refreshScreen()
		case *EventEngineStopRun:
			return nil
		case *tcell.EventResize:
			engine.screen.Sync()
			engine.refreshScreen()
		default:
			engine.logger.Printf("event type %T", eventType)
		}
	}
}

// runTicks advances the arena every tick time
func (engine *Engine) runTicks(ctx context.Context) error {
	ticker := time.NewTicker(engine.options.TickTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-engine.chanStop:
			return nil
		case <-ticker.C:
			engine.tick()
		}
	}
}

// Stop the game
func (engine *Engine) Stop() {
	engine.stopOnce.Do(func() {
		engine.setMode(engineModeStopped)
		close(engine.chanStop)
	})
}

// Pause the game
func (engine *Engine) Pause() {
	engine.switchMode(engineModeRun, engineModePaused)
}

// UnPause the game
func (engine *Engine) UnPause() {
	engine.switchMode(engineModePaused, engineModeRun)
}

// NewGame replaces the arena with a fresh one
func (engine *Engine) NewGame() error {
	arena, err := NewArena(engine.options.Width, engine.options.Height, engine.options.SpawnHeight)
	if err != nil {
		return err
	}

	session := uuid.NewString()
	engine.arena.Store(arena)

	engine.mu.Lock()
	engine.session = session
	engine.games++
	engine.mode = engineModeRun
	engine.mu.Unlock()

	engine.logger.Printf("Engine NewGame session %s %dx%d spawn height %d", session, engine.options.Width, engine.options.Height, engine.options.SpawnHeight)
	return nil
}

// Arena returns the arena being played
func (engine *Engine) Arena() *Arena {
	return engine.arena.Load()
}

// tick advances the arena unless the game is paused or over
func (engine *Engine) tick() {
	if engine.getMode() != engineModeRun {
		return
	}
	engine.advance()
	engine.refreshScreen()
}

// advance runs one arena tick and handles its outcome
func (engine *Engine) advance() {
	arena := engine.Arena()
	switch arena.Advance() {
	case StateSettled:
		snapshot := arena.Snapshot()
		engine.logger.Printf("Engine settle session %s score %d height %d streak %d", engine.sessionID(), snapshot.Score, snapshot.GroundHeight, snapshot.Streak)
	case StateGameOver:
		engine.GameOver()
	}
}

// GameOver sets the engine to game over and ranks the score, once per game
func (engine *Engine) GameOver() {
	engine.mu.Lock()
	if engine.mode == engineModeGameOver || engine.mode == engineModeStopped {
		engine.mu.Unlock()
		return
	}
	engine.mode = engineModeGameOver
	session := engine.session
	engine.mu.Unlock()

	score := engine.Arena().Score()
	place := engine.ranking.InsertScore(uint64(score))
	engine.logger.Printf("Engine GameOver session %s score %d %s", session, score, placeText(place))
}

// Result sums up the games played so far
func (engine *Engine) Result() Result {
	snapshot := engine.Arena().Snapshot()

	engine.mu.Lock()
	games := engine.games
	engine.mu.Unlock()

	best := int(engine.ranking.Best())
	if snapshot.Score > best {
		best = snapshot.Score
	}
	return Result{
		Name:         engine.options.Name,
		Games:        games,
		Score:        snapshot.Score,
		BestScore:    best,
		GroundHeight: snapshot.GroundHeight,
		Pieces:       snapshot.Pieces,
		Duration:     time.Since(engine.started),
	}
}

// placeText describes a ranking place as returned by InsertScore
func placeText(place int) string {
	if place < 0 {
		return "unranked"
	}
	return fmt.Sprintf("place %d", place+1)
}

func (engine *Engine) refreshScreen() {
	mode := engine.getMode()
	if mode == engineModeStopped {
		return
	}
	engine.view.refreshScreen(frame{
		name:     engine.options.Name,
		mode:     mode,
		snapshot: engine.Arena().Snapshot(),
		scores:   engine.ranking.Scores(),
	})
}

func (engine *Engine) getMode() engineMode {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.mode
}

func (engine *Engine) setMode(mode engineMode) {
	engine.mu.Lock()
	engine.mode = mode
	engine.mu.Unlock()
}

// switchMode changes the mode only when it currently is from
func (engine *Engine) switchMode(from engineMode, to engineMode) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.mode == from {
		engine.mode = to
	}
}

func (engine *Engine) sessionID() string {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.session
}
