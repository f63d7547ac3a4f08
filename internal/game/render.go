package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/resource-rush/internal/core"
)

const (
	cellWidth  = 4 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = GridSize*cellWidth + 1
	boardH = GridSize*cellHeight + 1

	minScreenW = boardW + 4
	minScreenH = hudHeight + 1 + boardH + 1

	noticeWrap   = 40 // Notification text wraps at this width at most
	noticeMargin = 6  // Box border and padding around wrapped text
)

// Cell glyphs.
const (
	glyphPlayer   = '@'
	glyphTarget   = 'S'
	glyphResource = '*'
	glyphPenalty  = '~'
	glyphMissing  = '#'
	glyphMine     = 'X'
	glyphEmpty    = '.'
)

// boardOrigin returns the top-left corner of the board frame.
func (g *Game) boardOrigin() (int, int) {
	return (g.screenW - boardW) / 2, hudHeight + 1
}

// cellAt maps a screen position to the board cell under it. Clicks on the
// frame lines do not select a cell.
func (g *Game) cellAt(p core.Point) (Coord, bool) {
	bx, by := g.boardOrigin()
	dx, dy := p.X-bx, p.Y-by
	if dx <= 0 || dy <= 0 || dx >= boardW-1 || dy >= boardH-1 {
		return Coord{}, false
	}
	if dx%cellWidth == 0 || dy%cellHeight == 0 {
		return Coord{}, false
	}
	return C(dx/cellWidth, dy/cellHeight), true
}

// cellCenter returns the screen position of a cell's glyph.
func (g *Game) cellCenter(c Coord) (int, int) {
	bx, by := g.boardOrigin()
	return bx + c.X*cellWidth + cellWidth/2, by + c.Y*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderNotice(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws level, lives, moves and gift progress above the board.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	bx, _ := g.boardOrigin()

	dst.DrawTextCentered(0, "SANTA'S RESOURCE RUSH")

	levelStr := fmt.Sprintf("Level %d of %d", s.Level(), s.MaxLevels())
	dst.DrawText(bx, 1, levelStr)

	lives := strings.Repeat("♥", core.FloorZero(s.Lives()))
	livesX := bx + boardW - len([]rune(lives))
	dst.DrawTextColored(livesX, 1, lives, core.ColorRed)

	movesColor := core.ColorDefault
	if s.Moves() <= 3 {
		movesColor = core.ColorOrange
	}
	dst.DrawTextColored(bx, 2, fmt.Sprintf("Moves: %d", s.Moves()), movesColor)

	gifts := fmt.Sprintf("Gifts: %d/%d ", s.Collected(), s.Required())
	dots := progressDots(s.Collected(), s.Required())
	giftsX := bx + boardW - len(gifts) - len([]rune(dots))
	dst.DrawText(giftsX, 2, gifts)
	dst.DrawTextColored(giftsX+len(gifts), 2, dots, core.ColorMagenta)
}

// progressDots renders one dot per required gift, filled when collected.
func progressDots(collected, required int) string {
	filled := core.Clamp(collected, 0, required)
	return strings.Repeat("●", filled) + strings.Repeat("○", required-filled)
}

// renderBoard draws the frame, the cells and the legal-move highlights.
func (g *Game) renderBoard(dst *core.Screen) {
	g.renderFrame(dst)

	s := g.session
	grid := s.Grid()
	for y := range GridSize {
		for x := range GridSize {
			c := C(x, y)
			r, col := g.glyph(grid, c)
			cx, cy := g.cellCenter(c)
			dst.SetColored(cx, cy, r, col)
		}
	}

	for _, c := range s.ValidMoves() {
		cx, cy := g.cellCenter(c)
		dst.SetColored(cx-1, cy, '[', core.ColorBrightGreen)
		dst.SetColored(cx+1, cy, ']', core.ColorBrightGreen)
	}
}

// renderFrame draws the grid lines between cells.
func (g *Game) renderFrame(dst *core.Screen) {
	bx, by := g.boardOrigin()
	for y := range GridSize + 1 {
		for x := range GridSize + 1 {
			px := bx + x*cellWidth
			py := by + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == GridSize:
				corner = '┐'
			case y == GridSize && x == 0:
				corner = '└'
			case y == GridSize && x == GridSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == GridSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == GridSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < GridSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < GridSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// glyph returns the rune and color for a cell. Hidden mines draw as empty.
func (g *Game) glyph(grid *Grid, c Coord) (rune, core.Color) {
	if c == g.session.Player() {
		return glyphPlayer, core.ColorBrightGreen
	}
	if grid.Revealed.Has(c) {
		return glyphMine, core.ColorBrightRed
	}
	switch grid.RoleAt(c) {
	case RoleTarget:
		return glyphTarget, core.ColorYellow
	case RoleMissing:
		return glyphMissing, core.ColorGray
	case RolePenalty:
		return glyphPenalty, core.ColorBrightCyan
	case RoleResource:
		return glyphResource, core.ColorMagenta
	default:
		return glyphEmpty, core.ColorGray
	}
}

// noticeLines returns the text lines of the open notification box.
func (g *Game) noticeLines() []string {
	n := g.session.Notice()
	if n == nil {
		return nil
	}
	lines := []string{n.Title, ""}
	width := max(min(noticeWrap, g.screenW-noticeMargin), 1)
	lines = append(lines, wrap(n.Message, width)...)
	lines = append(lines, "", "[ "+n.Button+" ]")
	return lines
}

// noticeRect returns the bounds of the notification box, centered on the board.
func (g *Game) noticeRect() core.Rect {
	lines := g.noticeLines()
	if len(lines) == 0 {
		return core.Rect{}
	}
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	bx, by := g.boardOrigin()
	boxW := maxLen + 4
	boxH := len(lines) + 2
	centerX := bx + boardW/2
	centerY := by + boardH/2
	return core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)
}

// renderNotice draws the open notification as a modal box.
func (g *Game) renderNotice(dst *core.Screen) {
	n := g.session.Notice()
	if n == nil {
		return
	}
	box := g.noticeRect()
	dst.FillRect(box, ' ')
	dst.DrawBox(box, noticeColor(n.Kind))

	centerX := box.X + box.W/2
	for i, line := range g.noticeLines() {
		x := centerX - len([]rune(line))/2
		switch {
		case i == 0:
			dst.DrawTextColored(x, box.Y+1+i, line, noticeColor(n.Kind))
		case strings.HasPrefix(line, "[ "):
			dst.DrawTextColored(x, box.Y+1+i, line, core.ColorBrightGreen)
		default:
			dst.DrawText(x, box.Y+1+i, line)
		}
	}
}

func noticeColor(k NoticeKind) core.Color {
	switch k {
	case NoticeMine, NoticeGameOver:
		return core.ColorBrightRed
	case NoticePenalty, NoticeRetry:
		return core.ColorOrange
	case NoticeLevelComplete:
		return core.ColorGreen
	case NoticeVictory:
		return core.ColorYellow
	default:
		return core.ColorWhite
	}
}

// wrap breaks text into lines of at most width runes at word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && len([]rune(cur.String()))+1+len([]rune(word)) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
