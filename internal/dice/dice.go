package dice

import (
	"errors"
	"math/rand"
	"sync"
)

// Mode controls how every die in the process resolves.
type Mode int

const (
	// ModeRandom resolves dice with math/rand.
	ModeRandom Mode = iota

	// ModeAverage resolves every die to its rounded-up average
	// (size/2 + 1), making all rolls reproducible.
	ModeAverage
)

var (
	modeMu      sync.RWMutex
	currentMode = ModeRandom
)

// SetMode switches the process-wide dice mode. All subsequent rolls,
// on every roller reading the switch, use the new mode immediately.
func SetMode(m Mode) {
	modeMu.Lock()
	defer modeMu.Unlock()
	currentMode = m
}

// CurrentMode returns the active process-wide dice mode.
func CurrentMode() Mode {
	modeMu.RLock()
	defer modeMu.RUnlock()
	return currentMode
}

// Average returns the deterministic value a die of the given size
// resolves to in ModeAverage.
func Average(size int) int {
	return size/2 + 1
}

// RollResult holds the outcome of rolling one or more dice.
type RollResult struct {
	Total int   `json:"total"`
	Rolls []int `json:"rolls"`
	Bonus int   `json:"bonus"`
	Count int   `json:"count"`
	Sides int   `json:"sides"`
}

// Roll rolls count dice of the given size and adds a bonus, honoring the
// process-wide mode.
func Roll(count, size, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if size < 1 {
		return nil, errors.New("invalid dice size")
	}

	mode := CurrentMode()

	total := 0
	out := make([]int, count)
	for i := 0; i < count; i++ {
		var roll int
		if mode == ModeAverage {
			roll = Average(size)
		} else {
			roll = rand.Intn(size) + 1
		}
		total += roll
		out[i] = roll
	}

	return &RollResult{
		Total: total + bonus,
		Rolls: out,
		Bonus: bonus,
		Count: count,
		Sides: size,
	}, nil
}
