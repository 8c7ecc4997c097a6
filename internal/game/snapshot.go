package game

import "github.com/vkuksa/termsnake/internal/core"

// Snapshot captures the observable game state for determinism tests.
type Snapshot struct {
	Phase      Phase
	Difficulty Difficulty
	Score      int
	SnakeLen   int
	Head       core.Point
	Dir        core.Direction
	Food       core.Point
}

// Snapshot returns the current state. Two games constructed with the same
// seed and fed the same calls produce identical snapshots.
func (g *Game) Snapshot() Snapshot {
	var head core.Point
	if len(g.snake) > 0 {
		head = g.snake[0]
	}

	return Snapshot{
		Phase:      g.phase,
		Difficulty: g.difficulty,
		Score:      g.score,
		SnakeLen:   len(g.snake),
		Head:       head,
		Dir:        g.dir,
		Food:       g.food,
	}
}
