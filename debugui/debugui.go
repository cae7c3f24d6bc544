// Package debugui draws Dear ImGui inspection windows for a running
// animation on top of an ebiten game.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
)

// Backend wraps the ebiten Dear ImGui backend. Call BeginFrame before and
// EndFrame after building windows in Game.Update, Draw at the end of
// Game.Draw and Layout from Game.Layout.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the ImGui backend and the ebiten window it lives in.
func NewBackend(title string, width, height int) *Backend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	implot.CreateContext()
	return &Backend{EbitenBackend: b}
}

// InputState tracks whether ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CurrentInput reads the capture flags of the current ImGui frame.
func CurrentInput() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}
