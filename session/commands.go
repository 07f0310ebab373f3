package session

//go:generate go tool stringer -type=Action -trimprefix=Action

// Action is a player command.
type Action uint8

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateClockwise
	ActionRotateCounterClockwise
	ActionTogglePause
	ActionRestart
)

// Commands buffers player actions between frames. Drivers push actions as input
// arrives; the InputSystem applies them in order on the next frame, so a frame
// never observes a half-applied input.
type Commands struct {
	actions []Action
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues an action for the next frame.
func (c *Commands) Push(a Action) {
	c.actions = append(c.actions, a)
}

// Defer queues a function to run once the current frame's systems have finished.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued actions.
func (c *Commands) Len() int {
	return len(c.actions)
}

// take returns the queued actions and empties the queue.
func (c *Commands) take() []Action {
	actions := c.actions
	c.actions = nil
	return actions
}

// Flush runs deferred functions and resets the deferred buffer.
func (c *Commands) Flush() {
	for _, fn := range c.defers {
		fn()
	}
	c.defers = c.defers[:0]
}
