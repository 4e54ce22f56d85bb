package game

// State is the round's phase.
type State int

const (
	Playing  State = iota // Round in progress
	GameOver              // Round ended, waiting for replay
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Score tracks the current round's score and the best score seen by this
// process.
type Score struct {
	Current int
	Best    int
}

// Add awards points to the current round.
func (s *Score) Add(points int) {
	s.Current += points
}

// recordBest folds the current score into the best score.
func (s *Score) recordBest() {
	s.Best = max(s.Best, s.Current)
}

// resetCurrent starts a new round at zero. Best is left alone.
func (s *Score) resetCurrent() {
	s.Current = 0
}
