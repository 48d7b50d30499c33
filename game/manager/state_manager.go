package manager

import (
	"log"

	"github.com/google/uuid"
)

// Round is one life of the snake, from spawn to loss.
type Round struct {
	ID        uuid.UUID
	Elapsed   float64 // simulated seconds
	Score     int
	Collision CollisionType
}

// StateManager tracks rounds for the running session only; nothing is saved.
type StateManager struct {
	logger       *log.Logger
	current      Round
	highScore    int
	rounds       int
	scoreTotal   int
	scoreHistory []int
}

const maxScoreHistory = 50

func NewStateManager(logger *log.Logger) *StateManager {
	sm := &StateManager{logger: logger}
	sm.StartRound()
	return sm
}

func (sm *StateManager) StartRound() Round {
	sm.current = Round{ID: uuid.New()}
	return sm.current
}

// Tick adds simulated time to the current round.
func (sm *StateManager) Tick(dt float64) {
	sm.current.Elapsed += dt
}

// EndRound closes the current round with its final score, records it and
// opens the next one.
func (sm *StateManager) EndRound(score int, collision CollisionType) Round {
	finished := sm.current
	finished.Score = score
	finished.Collision = collision

	sm.rounds++
	sm.scoreTotal += score
	if score > sm.highScore {
		sm.highScore = score
	}
	if len(sm.scoreHistory) >= maxScoreHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)

	if sm.logger != nil {
		sm.logger.Printf("round %s over: score=%d collision=%s elapsed=%.2fs best=%d",
			finished.ID, score, collision, finished.Elapsed, sm.highScore)
	}

	sm.StartRound()
	return finished
}

func (sm *StateManager) Current() Round {
	return sm.current
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) Rounds() int {
	return sm.rounds
}

func (sm *StateManager) AverageScore() float64 {
	if sm.rounds == 0 {
		return 0
	}
	return float64(sm.scoreTotal) / float64(sm.rounds)
}

// GetScoreHistory returns the most recent round scores, oldest first.
func (sm *StateManager) GetScoreHistory() []int {
	out := make([]int, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}
