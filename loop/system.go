package loop

// System is one stage of a frame. Systems may keep their own state between
// frames; input that must not land mid-frame goes through frame.Commands.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to System. Its stats are reported
// under the name given to Scheduler.RegisterFunc.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) { f(frame) }
