package window

import (
	"fmt"
	"runtime"

	"github.com/Sebman56/orbit3d/common"
	"github.com/Sebman56/orbit3d/engine/input"
	"github.com/cogentcore/webgpu/wgpu"
)

const defaultTitle = "orbit3d"

// Window provides platform windowing and pointer event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving the vertical scroll delta (positive = away from the user)
	SetScrollCallback(callback func(delta float32))

	// SetMouseButtonCallback sets the callback for mouse button presses and releases.
	//
	// Parameters:
	//   - callback: function receiving the button and whether it went down
	SetMouseButtonCallback(callback func(button input.MouseButton, pressed bool))

	// SetMouseMotionCallback sets the callback for relative pointer movement. Deltas are in
	// window pixels and keep flowing while the cursor is captured.
	//
	// Parameters:
	//   - callback: function receiving the movement since the previous event
	SetMouseMotionCallback(callback func(dx, dy float32))

	// CursorMode returns whether the cursor is free or captured by the window.
	//
	// Returns:
	//   - input.CursorMode: the current mode
	CursorMode() input.CursorMode

	// SetCursorMode captures or frees the cursor.
	//
	// Parameters:
	//   - mode: the new mode
	SetCursorMode(mode input.CursorMode)

	// CursorVisible reports whether the cursor is drawn over the window.
	//
	// Returns:
	//   - bool: true if visible
	CursorVisible() bool

	// SetCursorVisible shows or hides the cursor over the window. A captured cursor is always hidden
	// by the platform; the flag takes effect once the cursor is freed.
	//
	// Parameters:
	//   - visible: true to show the cursor
	SetCursorVisible(visible bool)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// RequestClose asks the message loop to stop after the current iteration. The window stays
	// alive until Close.
	RequestClose()

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// Size limits applied to user resizes.
	maxWidth, maxHeight int
	minWidth, minHeight int

	// width is the current framebuffer width in pixels.
	width int

	// height is the current framebuffer height in pixels.
	height int

	cursorMode    input.CursorMode
	cursorVisible bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)

	// onScroll is called for mouse wheel events.
	onScroll func(delta float32)

	// onMouseButton is called for every button press and release.
	onMouseButton func(button input.MouseButton, pressed bool)

	// onMouseMotion is called with the pointer delta of every movement event.
	onMouseMotion func(dx, dy float32)
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		maxWidth:      2560,
		maxHeight:     1600,
		minWidth:      320,
		minHeight:     240,
		width:         1280,
		height:        720,
		cursorMode:    input.CursorModeFree,
		cursorVisible: true,
	}
	for _, opt := range options {
		opt(w)
	}
	w.title = common.Coalesce(w.title, defaultTitle)
	if w.minWidth > w.maxWidth || w.minHeight > w.maxHeight {
		panic(fmt.Sprintf("window: minimum size %dx%d exceeds maximum %dx%d", w.minWidth, w.minHeight, w.maxWidth, w.maxHeight))
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *engineWindow) SetMouseButtonCallback(callback func(button input.MouseButton, pressed bool)) {
	w.onMouseButton = callback
}

func (w *engineWindow) SetMouseMotionCallback(callback func(dx, dy float32)) {
	w.onMouseMotion = callback
}

func (w *engineWindow) CursorMode() input.CursorMode {
	return w.cursorMode
}

func (w *engineWindow) SetCursorMode(mode input.CursorMode) {
	w.cursorMode = mode
	platformApplyCursor(w)
}

func (w *engineWindow) CursorVisible() bool {
	return w.cursorVisible
}

func (w *engineWindow) SetCursorVisible(visible bool) {
	w.cursorVisible = visible
	platformApplyCursor(w)
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
