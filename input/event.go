package input

// Event is one raw input event delivered by a backend
// The concrete types form a closed set: KeyPress, MouseMotion, MouseButtonDown, Quit
type Event interface {
	inputEvent()
}

// KeyPress is a key-down event
type KeyPress struct {
	Key Key
	Mod Mod
}

// MouseMotion reports the pointer over a screen cell
type MouseMotion struct {
	X, Y int
}

// MouseButton identifies the pressed button
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota + 1
	ButtonMiddle
	ButtonRight
)

// MouseButtonDown is a button press over a screen cell
type MouseButtonDown struct {
	X, Y   int
	Button MouseButton
}

// Quit is the window-close or terminal-hangup signal
type Quit struct{}

func (KeyPress) inputEvent()        {}
func (MouseMotion) inputEvent()     {}
func (MouseButtonDown) inputEvent() {}
func (Quit) inputEvent()            {}
