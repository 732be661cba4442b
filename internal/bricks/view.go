package bricks

import (
	"fmt"

	"github.com/gdamore/tcell"
)

// frame is everything the view needs for one refresh
type frame struct {
	name     string
	mode     engineMode
	snapshot Snapshot
	scores   []uint64
}

// NewView creates a view drawing on an initialized screen
func NewView(screen tcell.Screen) *View {
	screen.Clear()
	return &View{screen: screen}
}

// refreshScreen draws the frame and shows it
func (view *View) refreshScreen(frame frame) {
	view.mu.Lock()
	defer view.mu.Unlock()

	switch frame.mode {

	case engineModeRun:
		view.drawBoardBoarder(frame.snapshot)
		view.drawTexts(frame)
		view.drawBoard(frame.snapshot)
		view.screen.Show()

	case engineModePaused:
		view.screen.Fill(' ', tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack))
		view.drawBoardBoarder(frame.snapshot)
		view.drawTexts(frame)
		view.drawPaused(frame.snapshot)
		view.screen.Show()

	case engineModeGameOver:
		view.drawBoardBoarder(frame.snapshot)
		view.drawTexts(frame)
		view.drawBoard(frame.snapshot)
		view.drawGameOver(frame.snapshot)
		view.drawRankingScores(frame)
		view.screen.Show()
	}
}

// drawBoardBoarder draws the board boarder
func (view *View) drawBoardBoarder(snapshot Snapshot) {
	width, height := snapshotSize(snapshot)
	xOffset := boardXOffset
	yOffset := boardYOffset
	xEnd := boardXOffset + width*2 + 4
	yEnd := boardYOffset + height + 2
	styleBoarder := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray)
	styleBoard := tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(colorBlank)
	for x := xOffset; x < xEnd; x++ {
		for y := yOffset; y < yEnd; y++ {
			if x == xOffset || x == xOffset+1 || x == xEnd-1 || x == xEnd-2 || y == yOffset || y == yEnd-1 {
				view.screen.SetContent(x, y, ' ', nil, styleBoarder)
			} else {
				view.screen.SetContent(x, y, ' ', nil, styleBoard)
			}
		}
	}
}

// drawBoard draws every occupied cell
func (view *View) drawBoard(snapshot Snapshot) {
	for row, cells := range snapshot.Cells {
		for col, blockType := range cells {
			switch blockType {
			case BlockObject:
				view.drawBlock(col, row, colorObject)
			case BlockGround:
				view.drawBlock(col, row, colorGround)
			}
		}
	}
}

// drawBlock draws a block two columns wide
func (view *View) drawBlock(x int, y int, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color).Background(color).Dim(true)
	view.screen.SetContent(2*x+boardXOffset+2, y+boardYOffset+1, '▄', nil, style)
	view.screen.SetContent(2*x+boardXOffset+3, y+boardYOffset+1, '▄', nil, style)
}

// drawTexts draws the side panel
func (view *View) drawTexts(frame frame) {
	width, _ := snapshotSize(frame.snapshot)
	xOffset := boardXOffset + width*2 + 8
	yOffset := boardYOffset

	if frame.name != "" {
		view.drawText(xOffset, yOffset, frame.name, tcell.ColorWhite, tcell.ColorBlack)
		yOffset += 2
	}

	view.drawText(xOffset, yOffset, "SCORE: ", tcell.ColorLightGray, tcell.ColorDarkBlue)
	view.drawText(xOffset+8, yOffset, fmt.Sprintf("%7d", frame.snapshot.Score), tcell.ColorBlack, tcell.ColorLightGray)

	yOffset += 2

	view.drawText(xOffset, yOffset, "HEIGHT:", tcell.ColorLightGray, tcell.ColorDarkBlue)
	view.drawText(xOffset+8, yOffset, fmt.Sprintf("%7d", frame.snapshot.GroundHeight), tcell.ColorBlack, tcell.ColorLightGray)

	yOffset += 2

	view.drawText(xOffset, yOffset, "STREAK:", tcell.ColorLightGray, tcell.ColorDarkBlue)
	view.drawText(xOffset+8, yOffset, fmt.Sprintf("%7d", frame.snapshot.Streak), tcell.ColorBlack, tcell.ColorLightGray)

	yOffset += 2

	view.drawText(xOffset, yOffset, "PIECES:", tcell.ColorLightGray, tcell.ColorDarkBlue)
	view.drawText(xOffset+8, yOffset, fmt.Sprintf("%7d", frame.snapshot.Pieces), tcell.ColorBlack, tcell.ColorLightGray)

	yOffset += 2

	view.drawText(xOffset, yOffset, "←    - left", tcell.ColorLightGray, tcell.ColorBlack)
	yOffset++
	view.drawText(xOffset, yOffset, "→    - right", tcell.ColorLightGray, tcell.ColorBlack)
	yOffset++
	view.drawText(xOffset, yOffset, "↓    - soft drop", tcell.ColorLightGray, tcell.ColorBlack)
	yOffset++
	view.drawText(xOffset, yOffset, "↑    - rotate right", tcell.ColorLightGray, tcell.ColorBlack)
	yOffset++
	view.drawText(xOffset, yOffset, "z    - rotate left", tcell.ColorLightGray, tcell.ColorBlack)
	yOffset++
	view.drawText(xOffset, yOffset, "x    - rotate right", tcell.ColorLightGray, tcell.ColorBlack)
	yOffset++
	view.drawText(xOffset, yOffset, "p    - pause", tcell.ColorLightGray, tcell.ColorBlack)
	yOffset++
	view.drawText(xOffset, yOffset, "q    - quit", tcell.ColorLightGray, tcell.ColorBlack)
}

// drawPaused draws Paused
func (view *View) drawPaused(snapshot Snapshot) {
	_, height := snapshotSize(snapshot)
	yOffset := (height+1)/2 + boardYOffset
	view.drawTextCenter(snapshot, yOffset, "Paused", tcell.ColorWhite, tcell.ColorBlack)
}

// drawGameOver draws GAME OVER
func (view *View) drawGameOver(snapshot Snapshot) {
	yOffset := boardYOffset + 2
	view.drawTextCenter(snapshot, yOffset, " GAME OVER", tcell.ColorWhite, tcell.ColorBlack)
	yOffset += 2
	view.drawTextCenter(snapshot, yOffset, "sbar for new game", tcell.ColorWhite, tcell.ColorBlack)
}

// drawRankingScores draws the ranking scores
func (view *View) drawRankingScores(frame frame) {
	yOffset := boardYOffset + 6
	for index, line := range frame.scores {
		view.drawTextCenter(frame.snapshot, yOffset+index, fmt.Sprintf("%1d: %6d", index+1, line), tcell.ColorWhite, tcell.ColorBlack)
	}
}

// drawText draws the provided text
func (view *View) drawText(x int, y int, text string, fg tcell.Color, bg tcell.Color) {
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	index := 0
	for _, char := range text {
		view.screen.SetContent(x+index, y, char, nil, style)
		index++
	}
}

// drawTextCenter draws text in the center of the board
func (view *View) drawTextCenter(snapshot Snapshot, y int, text string, fg tcell.Color, bg tcell.Color) {
	width, _ := snapshotSize(snapshot)
	xOffset := width - (len(text)+1)/2 + boardXOffset + 2
	view.drawText(xOffset, y, text, fg, bg)
}

func snapshotSize(snapshot Snapshot) (width int, height int) {
	height = len(snapshot.Cells)
	if height > 0 {
		width = len(snapshot.Cells[0])
	}
	return width, height
}

// ScreenSize returns the terminal size needed to draw an arena of the given dimensions
func ScreenSize(width int, height int) (cols int, rows int) {
	cols = boardXOffset + width*2 + 8 + panelWidth
	rows = boardYOffset + height + 3
	if panelRows := boardYOffset + panelHeight; panelRows > rows {
		rows = panelRows
	}
	return cols, rows
}
