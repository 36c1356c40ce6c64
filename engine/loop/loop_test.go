package loop

import (
	"testing"

	"github.com/Sebman56/orbit3d/engine/input"
	"github.com/Sebman56/orbit3d/engine/scene"
)

type fakeCursor struct {
	mode    input.CursorMode
	visible bool
}

func (f *fakeCursor) CursorMode() input.CursorMode { return f.mode }

func (f *fakeCursor) SetCursorMode(mode input.CursorMode) { f.mode = mode }

func (f *fakeCursor) CursorVisible() bool { return f.visible }

func (f *fakeCursor) SetCursorVisible(visible bool) { f.visible = visible }

func newScene(t *testing.T) scene.Scene {
	t.Helper()
	s := scene.NewScene(t.Name(), scene.WithDrawWorkers(1))
	t.Cleanup(s.Release)
	return s
}

func TestStepClearsInputAfterSystems(t *testing.T) {
	in := input.NewState()
	sc := scene.NewSchedule()

	var motions []int
	var edges []bool
	sc.AddUpdate(func(_ scene.Scene, f scene.Frame) {
		motions = append(motions, len(f.Input.Motion()))
		edges = append(edges, f.Input.JustPressed(input.MouseButtonLeft))
	})
	l := NewLoop(newScene(t), WithSchedule(sc), WithInput(in))

	in.Press(input.MouseButtonLeft)
	in.PushMotion(3, 4)
	in.PushMotion(1, 0)
	l.Step(0.016)

	if len(in.Motion()) != 0 || in.JustPressed(input.MouseButtonLeft) {
		t.Fatalf("input not cleared after step: motion %v", in.Motion())
	}
	if !in.Pressed(input.MouseButtonLeft) {
		t.Fatalf("held button released by step")
	}

	l.Step(0.016)
	if len(motions) != 2 || motions[0] != 2 || motions[1] != 0 {
		t.Fatalf("motion seen per frame\nhave %v\nwant [2 0]", motions)
	}
	if !edges[0] || edges[1] {
		t.Fatalf("press edge seen per frame\nhave %v\nwant [true false]", edges)
	}
}

func TestStartupRunsOnceBeforeFirstStepHook(t *testing.T) {
	sc := scene.NewSchedule()
	var calls []string
	sc.AddStartup(func(scene.Scene, scene.Frame) { calls = append(calls, "startup") })
	sc.AddUpdate(func(scene.Scene, scene.Frame) { calls = append(calls, "update") })

	l := NewLoop(newScene(t),
		WithSchedule(sc),
		WithFirstStepHook(func() { calls = append(calls, "hook") }),
	)
	for range 3 {
		l.Step(0.1)
	}

	want := []string{"startup", "update", "hook", "update", "update"}
	if len(calls) != len(want) {
		t.Fatalf("calls\nhave %v\nwant %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls\nhave %v\nwant %v", calls, want)
		}
	}
}

func TestStepPassesDeltaAndCursor(t *testing.T) {
	cursor := &fakeCursor{}
	sc := scene.NewSchedule()
	var seen scene.Frame
	sc.AddUpdate(func(_ scene.Scene, f scene.Frame) { seen = f })

	NewLoop(newScene(t), WithSchedule(sc), WithCursor(cursor)).Step(0.5)
	if seen.Delta != 0.5 || seen.Cursor != cursor || seen.Input == nil {
		t.Fatalf("frame\nhave %+v\nwant delta 0.5 with cursor and input", seen)
	}

	NewLoop(newScene(t), WithSchedule(sc)).Step(0.25)
	if seen.Cursor != nil {
		t.Fatalf("cursor without a window\nhave %v\nwant nil", seen.Cursor)
	}
}

func TestQuitIsIdempotent(t *testing.T) {
	quits := 0
	l := NewLoop(newScene(t), WithQuitHook(func() { quits++ }))

	l.Start()
	if !l.Running() {
		t.Fatalf("loop not running after Start")
	}
	l.Quit()
	l.Quit()
	if l.Running() {
		t.Fatalf("loop still running after Quit")
	}
	if quits != 1 {
		t.Fatalf("quit hook calls\nhave %d\nwant 1", quits)
	}
}

func TestStopSkipsQuitHook(t *testing.T) {
	quits := 0
	l := NewLoop(newScene(t), WithQuitHook(func() { quits++ }))
	l.Start()
	l.Stop()
	if l.Running() || quits != 0 {
		t.Fatalf("stop\nhave running %v, quit hook %d\nwant false, 0", l.Running(), quits)
	}
}

func TestNewLoopNilScenePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewLoop(nil)
}
