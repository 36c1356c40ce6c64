package profiler

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestTickReportsOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(time.Second)
	p.now = clock.now
	p.Reset()

	frames := []time.Duration{
		100 * time.Millisecond,
		300 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
	}
	for i, d := range frames {
		clock.advance(d)
		reported := p.Tick()
		if last := i == len(frames)-1; reported != last {
			t.Fatalf("frame %d reported\nhave %v\nwant %v", i, reported, last)
		}
	}

	s := p.Last()
	if s.FPS != 4 {
		t.Fatalf("fps\nhave %v\nwant 4", s.FPS)
	}
	if s.AvgFrame != 250*time.Millisecond {
		t.Fatalf("avg frame\nhave %v\nwant 250ms", s.AvgFrame)
	}
	if s.MaxFrame != 400*time.Millisecond {
		t.Fatalf("max frame\nhave %v\nwant 400ms", s.MaxFrame)
	}

	clock.advance(10 * time.Millisecond)
	if p.Tick() {
		t.Fatalf("reported again before the next interval")
	}
}

func TestNewProfilerDefaultInterval(t *testing.T) {
	if have := NewProfiler(0).updateInterval; have != time.Second {
		t.Fatalf("interval\nhave %v\nwant 1s", have)
	}
}
