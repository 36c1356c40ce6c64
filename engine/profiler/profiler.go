package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats is one reporting window of frame and memory statistics.
type Stats struct {
	FPS       float64
	AvgFrame  time.Duration
	MaxFrame  time.Duration
	HeapMB    float64
	AllocRate float64 // MB per second allocated during the window
	GCCount   uint32
	MaxPause  time.Duration
}

// Profiler tracks frame rate, frame time and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	frameTotal     time.Duration
	frameMax       time.Duration
	lastTime       time.Time
	lastFrame      time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats

	now func() time.Time
}

// NewProfiler creates a new Profiler reporting every interval.
// Intervals of zero or less default to 1 second.
//
// Parameters:
//   - interval: the reporting interval
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	p := &Profiler{
		updateInterval: interval,
		now:            time.Now,
	}
	p.Reset()
	return p
}

// Reset starts a fresh reporting window, for example after a pause in the frame loop.
func (p *Profiler) Reset() {
	t := p.now()
	p.frameCount = 0
	p.frameTotal = 0
	p.frameMax = 0
	p.lastTime = t
	p.lastFrame = t
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	currentTime := p.now()
	frame := currentTime.Sub(p.lastFrame)
	p.lastFrame = currentTime

	p.frameCount++
	p.frameTotal += frame
	p.frameMax = max(p.frameMax, frame)

	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	gcCount := p.memStats.NumGC
	var maxPause uint64
	// PauseNs is a circular buffer of the last 256 GC pauses.
	startIdx := p.lastGCCount
	if gcCount-startIdx > 256 {
		startIdx = gcCount - 256
	}
	for i := startIdx; i < gcCount; i++ {
		maxPause = max(maxPause, p.memStats.PauseNs[i%256])
	}

	p.last = Stats{
		FPS:       float64(p.frameCount) / elapsed.Seconds(),
		AvgFrame:  p.frameTotal / time.Duration(p.frameCount),
		MaxFrame:  p.frameMax,
		HeapMB:    float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRate: float64(allocDelta) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:   gcCount,
		MaxPause:  time.Duration(maxPause),
	}

	log.Printf("[Profiler] FPS: %.1f | Frame: avg %.2f ms, max %.2f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (max pause %v)",
		p.last.FPS,
		float64(p.last.AvgFrame.Microseconds())/1000,
		float64(p.last.MaxFrame.Microseconds())/1000,
		p.last.HeapMB, p.last.AllocRate, p.last.GCCount, p.last.MaxPause)

	p.frameCount = 0
	p.frameTotal = 0
	p.frameMax = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the statistics of the most recent completed reporting window.
//
// Returns:
//   - Stats: the last logged statistics, zero before the first report
func (p *Profiler) Last() Stats {
	return p.last
}
