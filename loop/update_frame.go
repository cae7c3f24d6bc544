package loop

import "github.com/plus3/nodefield/field"

type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Field     *field.Field
}

func newUpdateFrame(dt float64, f *field.Field, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
		Field:     f,
	}
}
