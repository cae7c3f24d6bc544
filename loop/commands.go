package loop

import (
	"errors"

	"github.com/plus3/nodefield/field"
)

// Commands buffers input that arrives while a frame may be running. The
// buffer is applied in arrival order at the start of the next frame, so a
// frame always sees either none or all of an event's effect.
type Commands struct {
	queue []command
	spare []command
}

func newCommands() *Commands {
	return &Commands{}
}

type commandKind uint8

const (
	cmdPointerMove commandKind = iota
	cmdPointerLeave
	cmdResize
	cmdDefer
)

type command struct {
	kind commandKind
	x, y float64
	fn   func()
}

// MovePointer queues a pointer move to (x, y).
func (c *Commands) MovePointer(x, y float64) {
	c.queue = append(c.queue, command{kind: cmdPointerMove, x: x, y: y})
}

// LeavePointer queues the pointer leaving the surface.
func (c *Commands) LeavePointer() {
	c.queue = append(c.queue, command{kind: cmdPointerLeave})
}

// Resize queues a surface resize to w×h logical pixels.
func (c *Commands) Resize(w, h float64) {
	c.queue = append(c.queue, command{kind: cmdResize, x: w, y: h})
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.queue = append(c.queue, command{kind: cmdDefer, fn: fn})
}

// Len reports the number of queued commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

// Flush applies every queued command to f and empties the buffer. A failed
// resize does not stop later commands; all failures are joined. Commands
// queued by deferred functions wait for the next flush.
func (c *Commands) Flush(f *field.Field) error {
	var errs []error

	pending := c.queue
	c.queue = c.spare[:0]

	for _, cmd := range pending {
		switch cmd.kind {
		case cmdPointerMove:
			f.MovePointer(cmd.x, cmd.y)
		case cmdPointerLeave:
			f.LeavePointer()
		case cmdResize:
			if err := f.Resize(cmd.x, cmd.y); err != nil {
				errs = append(errs, err)
			}
		case cmdDefer:
			cmd.fn()
		}
	}

	clear(pending)
	c.spare = pending[:0]
	return errors.Join(errs...)
}
