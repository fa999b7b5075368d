package manager

import "fmt"

// StateManager holds the counters tied to food events: score, speed and the
// best score of the session.
type StateManager struct {
	initialSpeed int
	speedStep    int
	score        int
	speed        int
	highScore    int
	rounds       int
}

func NewStateManager(initialSpeed, speedStep int) *StateManager {
	return &StateManager{
		initialSpeed: initialSpeed,
		speedStep:    speedStep,
		speed:        initialSpeed,
	}
}

// RecordFood bumps score and speed for one eaten food.
func (sm *StateManager) RecordFood() {
	sm.score++
	sm.speed += sm.speedStep
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// Reset ends the round and restores the initial counters.
func (sm *StateManager) Reset() {
	sm.rounds++
	sm.score = 0
	sm.speed = sm.initialSpeed
}

func (sm *StateManager) Score() int {
	return sm.score
}

// Speed is the tick rate in ticks per second.
func (sm *StateManager) Speed() int {
	return sm.speed
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// Rounds is the number of finished rounds.
func (sm *StateManager) Rounds() int {
	return sm.rounds
}

// Title formats the window caption.
func (sm *StateManager) Title(base string) string {
	return fmt.Sprintf("%s. Speed: %d, Score: %d", base, sm.speed, sm.score)
}
