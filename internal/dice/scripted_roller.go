package dice

import (
	"fmt"
	"sync"
)

// ScriptedRoller implements Roller with a fixed sequence of results.
// It backs save-file replay, where recorded hit-point rolls must be
// reproduced exactly, and tests that need predetermined dice.
type ScriptedRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int

	// FallbackToAverage makes an exhausted script resolve remaining
	// dice at their average instead of failing. Replay of older saves
	// with short roll histories relies on this.
	FallbackToAverage bool
}

// NewScriptedRoller creates a roller that replays the given results in order.
func NewScriptedRoller(rolls []int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// SetRolls replaces the script and resets the cursor.
func (s *ScriptedRoller) SetRolls(rolls []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolls = rolls
	s.rollIndex = 0
}

// Remaining returns how many scripted results are left.
func (s *ScriptedRoller) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rolls) - s.rollIndex
}

func (s *ScriptedRoller) next(sides int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rollIndex >= len(s.rolls) {
		if s.FallbackToAverage {
			return Average(sides), nil
		}
		return 0, fmt.Errorf("no more scripted rolls available (used %d of %d)", s.rollIndex, len(s.rolls))
	}

	roll := s.rolls[s.rollIndex]
	s.rollIndex++
	return roll, nil
}

// Roll implements Roller.Roll
func (s *ScriptedRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	rolls := make([]int, count)
	total := 0

	for i := 0; i < count; i++ {
		roll, err := s.next(sides)
		if err != nil {
			return nil, err
		}
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid scripted roll %d for d%d", roll, sides)
		}
		rolls[i] = roll
		total += roll
	}

	return &RollResult{
		Total: total + bonus,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}
