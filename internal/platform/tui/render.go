package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vkuksa/termsnake/internal/core"
	"github.com/vkuksa/termsnake/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Menu and chrome styles shared by the home and difficulty screens.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	factStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("6")).Width(46)
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Board layout: two HUD rows on top, then the bordered grid.
const boardHUDRows = 2

// renderBoard draws the HUD, border, snake, food, and any phase overlay into
// a screen buffer sized for the grid.
func renderBoard(g *game.Game, highScore int) *core.Screen {
	size := g.GridSize()
	s := core.NewScreen(size+2, size+2+boardHUDRows)

	hud := fmt.Sprintf(" Score: %d  Best: %d  [%s]", g.Score(), highScore, g.Difficulty())
	s.DrawText(0, 0, hud)
	s.DrawHLine(0, 1, s.Width(), '─')

	s.DrawBox(0, boardHUDRows, size+2, size+2)

	for i, seg := range g.Snake() {
		r, c := 'o', core.ColorGreen
		if i == 0 {
			r, c = 'O', core.ColorBrightGreen
		}
		s.SetCell(1+seg.X, boardHUDRows+1+seg.Y, r, c)
	}

	if food := g.Food(); food.X >= 0 && food.Y >= 0 {
		s.SetCell(1+food.X, boardHUDRows+1+food.Y, '*', core.ColorRed)
	}

	switch g.Phase() {
	case game.PhaseCountdown:
		drawOverlay(s, g.CountdownLabel(), "Get ready")
	case game.PhasePaused:
		drawOverlay(s, "Paused", "space to continue")
	case game.PhaseGameOver:
		drawOverlay(s, "Game Over", "enter to play again")
	}

	return s
}

// drawOverlay draws a centered two-line message box over the board.
func drawOverlay(s *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (s.Width() - boxW) / 2
	boxY := (s.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			s.Set(x, y, ' ')
		}
	}
	s.DrawBox(boxX, boxY, boxW, boxH)

	s.DrawTextCentered(boxY+1, line1)
	s.DrawTextCentered(boxY+3, line2)
}
