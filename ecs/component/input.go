package component

// Input stores the held keys sampled this frame.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

var InputComponent = NewComponent[Input]()

// KeyEvent is one discrete key-down. Key is the lower-case key name.
type KeyEvent struct {
	Key   string
	Shift bool
}
