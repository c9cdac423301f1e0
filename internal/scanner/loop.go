// internal/scanner/loop.go

// Package scanner drives the camera-side decode cycle on the scanning
// device; server code only defines the FrameSource/Decoder contract and
// never runs the loop itself.
package scanner

import (
	"sync"
	"time"
)

// Frame is one camera frame's pixel buffer, already in whatever form the
// decoder understands.
type Frame []byte

// FrameSource is a pull-based camera: NextFrame returns the latest frame,
// or ok=false when no frame is ready yet this cycle.
type FrameSource interface {
	NextFrame() (frame Frame, ok bool)
}

// Decoder extracts a QR payload from a frame, ok=false when none is visible.
type Decoder interface {
	Decode(frame Frame) (payload string, ok bool)
}

// Loop polls a frame source on a refresh interval and hands the first
// decoded payload to OnResult exactly once, then stops itself. Scanning
// resumes only on an explicit Start. Stop is safe to call at any time and
// returns after the polling goroutine has exited.
type Loop struct {
	Source   FrameSource
	Decoder  Decoder
	Interval time.Duration
	OnResult func(payload string)

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

func NewLoop(src FrameSource, dec Decoder, interval time.Duration, onResult func(string)) *Loop {
	return &Loop{Source: src, Decoder: dec, Interval: interval, OnResult: onResult}
}

// Start begins polling. Returns false if the loop is already running.
func (l *Loop) Start() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return false
	}
	l.running = true
	l.stop = make(chan struct{})
	l.done = make(chan struct{})

	go l.poll(l.stop, l.done)
	return true
}

// Stop halts polling without delivering a result.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	stop, done := l.stop, l.done
	l.mu.Unlock()

	close(stop)
	<-done
}

func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *Loop) poll(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			frame, ok := l.Source.NextFrame()
			if !ok {
				continue
			}
			payload, ok := l.Decoder.Decode(frame)
			if !ok {
				continue
			}
			// single-shot: one decode, one verification attempt
			l.OnResult(payload)
			return
		}
	}
}
