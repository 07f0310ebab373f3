// Package debugui provides Dear ImGui overlays for a running session.
// Windows are registered as items on an ImguiSystem, which queues them to render
// after the rest of the frame so they show the state the frame produced.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/session"
)

// ImguiItem is one window or widget group drawn every frame.
type ImguiItem struct {
	Render func(frame *session.UpdateFrame)
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Drivers should not forward keys to the game while WantCaptureKeyboard is set.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every registered item and refreshes
// InputState. It must run inside the backend's BeginFrame and EndFrame.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

// Add registers a render function.
func (i *ImguiSystem) Add(render func(frame *session.UpdateFrame)) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

// Execute refreshes InputState and queues every item for rendering.
func (i *ImguiSystem) Execute(frame *session.UpdateFrame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(func() {
			item.Render(frame)
		})
	}
}
