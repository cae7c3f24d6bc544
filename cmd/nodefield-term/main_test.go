package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/nodefield/animation"
	"github.com/plus3/nodefield/field"
	"github.com/plus3/nodefield/render/termsurface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (tcell.SimulationScreen, *animation.Animation, *termsurface.Surface) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 12)

	w, h := termsurface.LogicalSize(screen)
	anim, err := animation.New(w, h, 1, field.DefaultConfig(), animation.WithFieldOptions(field.WithSeed(8)))
	require.NoError(t, err)
	return screen, anim, termsurface.New(screen)
}

func runAsync(ctx context.Context, screen tcell.Screen, anim *animation.Animation, surface *termsurface.Surface) <-chan error {
	done := make(chan error, 1)
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	go func() { done <- run(ctx, screen, anim, surface, time.Millisecond, log) }()
	return done
}

func wait(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return")
	}
}

func TestRunQuitKey(t *testing.T) {
	screen, anim, surface := setup(t)
	done := runAsync(context.Background(), screen, anim, surface)

	screen.InjectMouse(5, 2, tcell.ButtonNone, tcell.ModNone)
	time.Sleep(100 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	wait(t, done)

	p := anim.Field().Pointer()
	assert.Equal(t, 44.0, p.X)
	assert.Equal(t, 40.0, p.Y)
	assert.Greater(t, anim.Stats().FrameCount, int64(1))

	nonBlank := 0
	cells, _, _ := screen.GetContents()
	for _, c := range cells {
		if len(c.Bytes) > 0 && c.Bytes[0] != ' ' {
			nonBlank++
		}
	}
	assert.NotZero(t, nonBlank)
}

func TestRunContextCancel(t *testing.T) {
	screen, anim, surface := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, screen, anim, surface)

	time.Sleep(20 * time.Millisecond)
	cancel()
	wait(t, done)
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.False(t, isQuit(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
}
