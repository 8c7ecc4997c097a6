// Package game implements the snake simulation and the menu/play state
// machine as pure logic. All transitions are driven by the caller (input or
// timer expiry); nothing in here schedules anything or touches the terminal.
package game

import (
	"math/rand"

	"github.com/vkuksa/termsnake/internal/core"
)

const initialLength = 3

// TickResult reports what happened during one simulation step.
type TickResult struct {
	Moved    bool
	AteFood  bool
	GameOver bool
}

// Game holds the full state of one player session: the current phase plus the
// round state (snake, food, score) that is reset on every round start.
type Game struct {
	phase      Phase
	gridSize   int
	rng        *rand.Rand
	difficulty Difficulty

	snake []core.Point // head at index 0
	dir   core.Direction
	food  core.Point
	score int

	countdownStep int
}

// New creates a game on a square grid in the home phase.
func New(gridSize int, seed int64) *Game {
	return &Game{
		phase:    PhaseHome,
		gridSize: gridSize,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// GridSize returns the grid side length.
func (g *Game) GridSize() int {
	return g.gridSize
}

// Score returns the current round score.
func (g *Game) Score() int {
	return g.score
}

// Difficulty returns the difficulty chosen for the current round.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// Direction returns the snake's current heading.
func (g *Game) Direction() core.Direction {
	return g.dir
}

// Food returns the current food position.
func (g *Game) Food() core.Point {
	return g.food
}

// Snake returns a copy of the body segments, head first.
func (g *Game) Snake() []core.Point {
	out := make([]core.Point, len(g.snake))
	copy(out, g.snake)
	return out
}

// Play moves from the home screen to difficulty selection.
// Returns false if the game is not on the home screen.
func (g *Game) Play() bool {
	if g.phase != PhaseHome {
		return false
	}
	g.phase = PhaseIdle
	return true
}

// StartRound begins a new round at the given difficulty: the snake, food,
// score and direction are reset and the countdown starts.
// Returns false unless the game is in difficulty selection.
func (g *Game) StartRound(d Difficulty) bool {
	if g.phase != PhaseIdle {
		return false
	}
	g.difficulty = d
	g.resetRound()
	g.phase = PhaseCountdown
	g.countdownStep = 0
	return true
}

// resetRound places a fresh snake in the middle of the grid heading right and
// spawns the first food.
func (g *Game) resetRound() {
	g.score = 0
	g.dir = core.DirRight

	cx, cy := g.gridSize/2, g.gridSize/2
	g.snake = make([]core.Point, 0, initialLength)
	for i := 0; i < initialLength; i++ {
		g.snake = append(g.snake, core.Point{X: cx - i, Y: cy})
	}

	g.placeFood()
}

// CountdownLabel returns the label currently displayed during the countdown.
func (g *Game) CountdownLabel() string {
	if g.countdownStep < 0 || g.countdownStep >= len(CountdownLabels) {
		return ""
	}
	return CountdownLabels[g.countdownStep]
}

// AdvanceCountdown moves to the next countdown label, transitioning to
// playing after the last one. Returns false outside the countdown phase.
func (g *Game) AdvanceCountdown() bool {
	if g.phase != PhaseCountdown {
		return false
	}
	g.countdownStep++
	if g.countdownStep >= len(CountdownLabels) {
		g.phase = PhasePlaying
	}
	return true
}

// TogglePause switches between playing and paused.
// Returns false in every other phase.
func (g *Game) TogglePause() bool {
	switch g.phase {
	case PhasePlaying:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhasePlaying
	default:
		return false
	}
	return true
}

// PlayAgain returns from game over to difficulty selection.
func (g *Game) PlayAgain() bool {
	if g.phase != PhaseGameOver {
		return false
	}
	g.phase = PhaseIdle
	return true
}

// Steer changes the snake's heading. A change to the exact opposite of the
// current heading is ignored. The change applies immediately rather than being
// buffered until the next tick, so two quick turns between ticks (e.g. right,
// up, left) can still reverse into the neck.
// Steering is accepted only while playing.
func (g *Game) Steer(d core.Direction) bool {
	if g.phase != PhasePlaying {
		return false
	}
	if d == g.dir.Opposite() {
		return false
	}
	g.dir = d
	return true
}

// Tick advances the snake by one cell, resolving wall, self and food
// collisions. A collision ends the round. No-op outside the playing phase.
func (g *Game) Tick() TickResult {
	if g.phase != PhasePlaying {
		return TickResult{}
	}

	head := g.snake[0].Add(g.dir.Vector())

	if !g.inBounds(head) || g.occupied(head) {
		// The tail counts even though it is about to vacate its cell.
		g.phase = PhaseGameOver
		return TickResult{GameOver: true}
	}

	g.snake = append([]core.Point{head}, g.snake...)

	if head == g.food {
		g.score++
		g.placeFood()
		return TickResult{Moved: true, AteFood: true}
	}

	g.snake = g.snake[:len(g.snake)-1]
	return TickResult{Moved: true}
}

func (g *Game) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.gridSize && p.Y >= 0 && p.Y < g.gridSize
}

func (g *Game) occupied(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// placeFood draws random cells until one is free of snake segments. The draw
// count is capped at the cell count; if the cap is ever hit, a row-major scan
// picks the first free cell instead. A full grid leaves the food off-board.
func (g *Game) placeFood() {
	cells := g.gridSize * g.gridSize
	for i := 0; i < cells; i++ {
		p := core.Point{X: g.rng.Intn(g.gridSize), Y: g.rng.Intn(g.gridSize)}
		if !g.occupied(p) {
			g.food = p
			return
		}
	}

	for y := 0; y < g.gridSize; y++ {
		for x := 0; x < g.gridSize; x++ {
			p := core.Point{X: x, Y: y}
			if !g.occupied(p) {
				g.food = p
				return
			}
		}
	}

	g.food = core.Point{X: -1, Y: -1}
}
