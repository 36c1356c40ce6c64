package input

// MouseButton identifies a pointer button independently of the windowing backend.
type MouseButton int

const (
	// MouseButtonLeft is the primary button.
	MouseButtonLeft MouseButton = iota
	// MouseButtonRight is the secondary button.
	MouseButtonRight
	// MouseButtonMiddle is the wheel button.
	MouseButtonMiddle

	mouseButtonCount
)

// CursorMode describes how the window treats the pointer.
type CursorMode int

const (
	// CursorModeFree leaves the pointer unconstrained and reports absolute positions.
	CursorModeFree CursorMode = iota
	// CursorModeCaptured locks the pointer to the window and reports relative motion only.
	CursorModeCaptured
)

func (m CursorMode) String() string {
	switch m {
	case CursorModeCaptured:
		return "captured"
	default:
		return "free"
	}
}

// MotionEvent is one pointer movement delta in window pixels.
type MotionEvent struct {
	DX, DY float32
}

// ScrollEvent is one vertical scroll wheel delta. Positive values scroll away from the user.
type ScrollEvent struct {
	DY float32
}

// State collects the pointer input delivered between two frames.
// Motion and scroll events are kept in arrival order. Button edges are reported for exactly
// one frame and are cleared by EndFrame together with the event queues; held state persists.
//
// State is not safe for concurrent use; it is written by window callbacks and read by systems
// on the same thread.
type State struct {
	motion []MotionEvent
	scroll []ScrollEvent

	pressed      [mouseButtonCount]bool
	justPressed  [mouseButtonCount]bool
	justReleased [mouseButtonCount]bool
}

// NewState creates an empty input State.
//
// Returns:
//   - *State: the new input state
func NewState() *State {
	return &State{}
}

// PushMotion appends a pointer motion delta to this frame's queue.
func (s *State) PushMotion(dx, dy float32) {
	s.motion = append(s.motion, MotionEvent{DX: dx, DY: dy})
}

// PushScroll appends a scroll delta to this frame's queue.
func (s *State) PushScroll(dy float32) {
	s.scroll = append(s.scroll, ScrollEvent{DY: dy})
}

// Press records a button going down. A press of an already held button is not a new edge.
func (s *State) Press(b MouseButton) {
	if !valid(b) {
		return
	}
	if !s.pressed[b] {
		s.justPressed[b] = true
	}
	s.pressed[b] = true
}

// Release records a button going up.
func (s *State) Release(b MouseButton) {
	if !valid(b) {
		return
	}
	if s.pressed[b] {
		s.justReleased[b] = true
	}
	s.pressed[b] = false
}

// Motion returns the pointer deltas received this frame, oldest first.
func (s *State) Motion() []MotionEvent {
	return s.motion
}

// Scroll returns the scroll deltas received this frame, oldest first.
func (s *State) Scroll() []ScrollEvent {
	return s.scroll
}

// Pressed reports whether the button is currently held.
func (s *State) Pressed(b MouseButton) bool {
	return valid(b) && s.pressed[b]
}

// JustPressed reports whether the button went down during this frame.
func (s *State) JustPressed(b MouseButton) bool {
	return valid(b) && s.justPressed[b]
}

// JustReleased reports whether the button went up during this frame.
func (s *State) JustReleased(b MouseButton) bool {
	return valid(b) && s.justReleased[b]
}

// EndFrame drops this frame's events and edges. Held buttons stay held.
func (s *State) EndFrame() {
	s.motion = s.motion[:0]
	s.scroll = s.scroll[:0]
	s.justPressed = [mouseButtonCount]bool{}
	s.justReleased = [mouseButtonCount]bool{}
}

func valid(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount
}
