package core

// Action is what a key press means to the runner, independent of the key.
type Action int

const (
	ActionNone Action = iota
	// ActionJump jumps while running. On the intro and death screens the
	// game reads it as start or restart instead.
	ActionJump
	ActionRestart // Explicit restart, only meaningful after death
	ActionQuit    // Leaves the program; never reaches the game
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionJump:    "Jump",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the presses seen between two ticks. The model fills
// it from key messages and empties it after every Game.Step.
type InputFrame struct {
	Actions map[Action]bool
}

func NewInputFrame() InputFrame {
	return InputFrame{Actions: map[Action]bool{}}
}

// Set records a press. Pressing twice in one tick still counts once, so a
// key repeat cannot spend both jumps in a single step.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = map[Action]bool{}
	}
	f.Actions[a] = true
}

func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear empties the frame, keeping the map for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
