package bricks

import (
	"runtime"

	"github.com/gdamore/tcell"
)

// ProcessEventKey process the key input event
func (engine *Engine) ProcessEventKey(eventKey *tcell.EventKey) {
	if eventKey.Key() == tcell.KeyCtrlL {
		// Ctrl l (lower case L) to log stack trace
		buffer := make([]byte, 1<<16)
		length := runtime.Stack(buffer, true)
		engine.logger.Println("Stack trace")
		engine.logger.Println(string(buffer[:length]))
		return
	}

	switch eventKey.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		engine.Stop()
		return
	}

	switch engine.getMode() {

	// game over
	case engineModeGameOver:

		if eventKey.Key() == tcell.KeyRune {
			switch eventKey.Rune() {
			case 'q':
				engine.Stop()
			case ' ':
				if err := engine.NewGame(); err != nil {
					engine.logger.Println("Engine NewGame error:", err)
				}
			}
		}

	// paused
	case engineModePaused:

		switch eventKey.Rune() {
		case 'q':
			engine.Stop()
		case 'p':
			engine.UnPause()
		}

	// run
	case engineModeRun:

		arena := engine.Arena()
		switch eventKey.Key() {
		case tcell.KeyUp:
			arena.RotateClockwise()
		case tcell.KeyDown:
			engine.advance()
		case tcell.KeyLeft:
			arena.MoveLeft()
		case tcell.KeyRight:
			arena.MoveRight()
		case tcell.KeyRune:
			switch eventKey.Rune() {
			case 'q':
				engine.Stop()
			case 'z':
				arena.RotateCounterClockwise()
			case 'x':
				arena.RotateClockwise()
			case 'p':
				engine.Pause()
			}
		}
	}

}
