package scene

import (
	"reflect"
	"testing"
)

func TestScheduleStartupRunsOnce(t *testing.T) {
	s := NewScene("schedule")
	defer s.Release()
	var calls []string
	record := func(name string) System {
		return func(Scene, Frame) { calls = append(calls, name) }
	}

	sc := NewSchedule()
	sc.AddStartup(record("setup"), record("setup camera"))
	sc.AddUpdate(record("spin"), record("orbit"))

	if sc.Started() {
		t.Fatalf("started before first run")
	}
	sc.Run(s, Frame{})
	sc.Run(s, Frame{})

	want := []string{"setup", "setup camera", "spin", "orbit", "spin", "orbit"}
	if !reflect.DeepEqual(calls, want) {
		t.Fatalf("call order\nhave %v\nwant %v", calls, want)
	}
	if !sc.Started() {
		t.Fatalf("not marked started")
	}
}
