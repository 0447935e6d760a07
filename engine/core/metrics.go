package core

import (
	"time"

	"github.com/spaghettifunk/evil/engine/containers"
)

const frameAverageCount = 30

// Metrics tracks a sliding frame time average and wall clock frames per
// second. Update expects the time elapsed since the previous frame.
type Metrics struct {
	frameTimes         *containers.RingQueue[float64]
	msAvg              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewMetrics() *Metrics {
	return &Metrics{
		frameTimes: containers.NewRingQueue[float64](frameAverageCount),
	}
}

func (m *Metrics) Update(frameElapsed time.Duration) {
	// Calculate frame ms average over the last frameAverageCount frames
	frameMS := float64(frameElapsed) / float64(time.Millisecond)
	if m.frameTimes.IsFull() {
		_, _ = m.frameTimes.Dequeue()
	}
	_ = m.frameTimes.Enqueue(frameMS)
	if m.frameTimes.IsFull() {
		var sum float64
		m.frameTimes.Each(func(ms float64) { sum += ms })
		m.msAvg = sum / frameAverageCount
	}

	// Calculate frames per second.
	m.accumulatedFrameMS += frameMS
	if m.accumulatedFrameMS > 1000 {
		m.fps = float64(m.frames)
		m.accumulatedFrameMS -= 1000
		m.frames = 0
	}

	// Count all frames.
	m.frames++
}

func (m *Metrics) FPS() float64 {
	return m.fps
}

// FrameTime is the average frame time in milliseconds, zero until a full
// window of frames was seen.
func (m *Metrics) FrameTime() float64 {
	return m.msAvg
}

func (m *Metrics) Frame() (float64, float64) {
	return m.fps, m.msAvg
}
