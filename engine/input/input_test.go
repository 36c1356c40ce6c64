package input

import "testing"

func TestPressEdges(t *testing.T) {
	s := NewState()

	s.Press(MouseButtonLeft)
	if !s.JustPressed(MouseButtonLeft) || !s.Pressed(MouseButtonLeft) {
		t.Fatalf("left press not recorded")
	}
	if s.JustPressed(MouseButtonRight) {
		t.Fatalf("right reported as pressed")
	}

	s.EndFrame()
	if s.JustPressed(MouseButtonLeft) {
		t.Fatalf("edge survived EndFrame")
	}
	if !s.Pressed(MouseButtonLeft) {
		t.Fatalf("held state lost on EndFrame")
	}

	// Repeated press while held is not a new edge.
	s.Press(MouseButtonLeft)
	if s.JustPressed(MouseButtonLeft) {
		t.Fatalf("repeat press produced an edge")
	}

	s.Release(MouseButtonLeft)
	if !s.JustReleased(MouseButtonLeft) || s.Pressed(MouseButtonLeft) {
		t.Fatalf("release not recorded")
	}
}

func TestEventOrderAndReset(t *testing.T) {
	s := NewState()
	s.PushMotion(1, 2)
	s.PushMotion(-3, 4)
	s.PushScroll(1)
	s.PushScroll(-2)

	motion := s.Motion()
	if len(motion) != 2 || motion[0] != (MotionEvent{1, 2}) || motion[1] != (MotionEvent{-3, 4}) {
		t.Fatalf("motion queue\nhave %v\nwant [{1 2} {-3 4}]", motion)
	}
	scroll := s.Scroll()
	if len(scroll) != 2 || scroll[0].DY != 1 || scroll[1].DY != -2 {
		t.Fatalf("scroll queue\nhave %v\nwant [{1} {-2}]", scroll)
	}

	s.EndFrame()
	if len(s.Motion()) != 0 || len(s.Scroll()) != 0 {
		t.Fatalf("queues not cleared: motion=%d scroll=%d", len(s.Motion()), len(s.Scroll()))
	}
}

func TestInvalidButton(t *testing.T) {
	s := NewState()
	s.Press(MouseButton(42))
	if s.Pressed(MouseButton(42)) || s.JustPressed(MouseButton(-1)) {
		t.Fatalf("out of range button accepted")
	}
}

func TestCursorModeString(t *testing.T) {
	if have := CursorModeCaptured.String(); have != "captured" {
		t.Fatalf("have %q, want %q", have, "captured")
	}
	if have := CursorModeFree.String(); have != "free" {
		t.Fatalf("have %q, want %q", have, "free")
	}
}
