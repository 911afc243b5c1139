package controller

// Command is one user action delivered to Controller.Handle.
type Command interface {
	isCommand()
}

// Submit runs the lookup pipeline on the current input text.
type Submit struct {
	Text string
}

// KeyUp refreshes the helper text after a keystroke. It never fetches.
type KeyUp struct {
	Text string
}

// RandomPick draws a random identifier, writes it into the input and looks it up.
type RandomPick struct{}

// Clear resets every region to its initial state.
type Clear struct{}

func (Submit) isCommand()     {}
func (KeyUp) isCommand()      {}
func (RandomPick) isCommand() {}
func (Clear) isCommand()      {}
