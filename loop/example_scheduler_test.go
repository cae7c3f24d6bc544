package loop_test

import (
	"fmt"

	"github.com/plus3/nodefield/field"
	"github.com/plus3/nodefield/loop"
)

type CountSystem struct {
	Frames int
}

func (s *CountSystem) Execute(frame *loop.UpdateFrame) {
	s.Frames++
}

// ExampleScheduler builds a frame loop from two systems. Input queued on
// the scheduler's Commands is applied before the systems of the next Once
// run, so every system in a frame sees the same pointer.
func ExampleScheduler() {
	f, err := field.New(800, 600, field.DefaultConfig(), field.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}

	counter := &CountSystem{}
	scheduler := loop.NewScheduler(f)
	scheduler.RegisterFunc("Step", func(frame *loop.UpdateFrame) {
		frame.Field.Step()
	})
	scheduler.Register(counter)

	scheduler.Commands().MovePointer(100, 200)
	fmt.Println("queued:", scheduler.Commands().Len())

	if err := scheduler.Once(1.0 / 60.0); err != nil {
		fmt.Println(err)
		return
	}

	p := f.Pointer()
	fmt.Println("pointer:", p.X, p.Y)
	fmt.Println("frames:", counter.Frames)
	for _, sys := range scheduler.Stats().Systems {
		fmt.Println(sys.Name, sys.ExecutionCount)
	}

	// Output:
	// queued: 1
	// pointer: 100 200
	// frames: 1
	// Step 1
	// CountSystem 1
}
