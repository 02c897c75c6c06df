package dice

// randomRoller implements Roller on top of the package Roll function.
// It reads the process-wide mode at roll time, so flipping the switch
// changes the behavior of every outstanding roller immediately.
type randomRoller struct{}

// NewRandomRoller creates a roller that honors the process-wide dice mode.
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	return Roll(count, sides, bonus)
}
