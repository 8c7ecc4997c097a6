package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkuksa/termsnake/internal/core"
	"github.com/vkuksa/termsnake/internal/storage"
)

const maxScoreboardRows = 50

// ScoreboardModel shows the recorded rounds in a scrollable table.
type ScoreboardModel struct {
	tbl    table.Model
	width  int
	height int
	err    error
}

// NewScoreboardModel loads the top rounds and builds the table.
// store may be nil; the board then shows an empty table.
func NewScoreboardModel(store *storage.Store, width, height int) *ScoreboardModel {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Difficulty", Width: 12},
		{Title: "Date", Width: 18},
	}

	var rows []table.Row
	var loadErr error
	if store != nil {
		entries, err := store.TopScores(maxScoreboardRows)
		if err != nil {
			loadErr = err
		}
		for i, e := range entries {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d", e.Score),
				e.Difficulty,
				e.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 12)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("11"))
	tbl.SetStyles(styles)

	return &ScoreboardModel{
		tbl:    tbl,
		width:  width,
		height: height,
		err:    loadErr,
	}
}

// Resize updates the layout dimensions.
func (m *ScoreboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// HandleAction scrolls the table. Only up/down are meaningful here; the
// parent model handles back and quit.
func (m *ScoreboardModel) HandleAction(action core.Action) {
	switch action {
	case core.ActionUp:
		m.tbl.MoveUp(1)
	case core.ActionDown:
		m.tbl.MoveDown(1)
	}
}

// View renders the scoreboard centered on screen.
func (m *ScoreboardModel) View() string {
	title := titleStyle.Render("High Scores")

	var body string
	switch {
	case m.err != nil:
		body = subtitleStyle.Render("Scores unavailable: " + m.err.Error())
	case len(m.tbl.Rows()) == 0:
		body = subtitleStyle.Render("No rounds recorded yet. Go play one!")
	default:
		body = m.tbl.View()
	}

	footer := subtitleStyle.Render("esc: back  |  q: quit")

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", body, "", footer)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
