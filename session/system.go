package session

// System is one step of a frame. Systems run in registration order and may keep
// their own state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is what every system sees during one scheduler tick.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Session   *Session
}

func newUpdateFrame(dt float64, session *Session) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  session.commands,
		Session:   session,
	}
}
