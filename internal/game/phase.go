package game

// Phase represents where the player is in the menu/play flow.
type Phase string

const (
	PhaseHome      Phase = "home"
	PhaseIdle      Phase = "idle" // difficulty select
	PhaseCountdown Phase = "countdown"
	PhasePlaying   Phase = "playing"
	PhasePaused    Phase = "paused"
	PhaseGameOver  Phase = "game_over"
)

// Difficulty selects the movement tick interval. The actual durations live in
// the config layer; the simulation only records the choice.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Difficulties lists all selectable difficulties in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// CountdownLabels is the fixed pre-round sequence. Each label is held for one
// countdown step before play begins.
var CountdownLabels = []string{"3", "2", "1", "Go!"}
