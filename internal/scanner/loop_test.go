package scanner

import (
	"sync"
	"testing"
	"time"
)

type scriptedSource struct {
	mu     sync.Mutex
	frames []Frame // nil entries mean "no frame ready this cycle"
}

func (s *scriptedSource) NextFrame() (Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		return nil, false
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	if f == nil {
		return nil, false
	}
	return f, true
}

// payloadDecoder treats the frame bytes as the payload itself; empty frames
// decode to nothing.
type payloadDecoder struct{}

func (payloadDecoder) Decode(f Frame) (string, bool) {
	if len(f) == 0 {
		return "", false
	}
	return string(f), true
}

func TestLoopSingleShot(t *testing.T) {
	src := &scriptedSource{frames: []Frame{
		nil,                   // camera not ready
		Frame(""),             // frame with no code visible
		Frame("sess-1|tok"),   // decodable
		Frame("sess-2|other"), // must never be reached
	}}

	var mu sync.Mutex
	var results []string
	loop := NewLoop(src, payloadDecoder{}, time.Millisecond, func(p string) {
		mu.Lock()
		results = append(results, p)
		mu.Unlock()
	})

	if !loop.Start() {
		t.Fatal("Start returned false")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && loop.Running() {
		time.Sleep(5 * time.Millisecond)
	}
	if loop.Running() {
		t.Fatal("loop still running after decode")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(results) != 1 || results[0] != "sess-1|tok" {
		t.Fatalf("results = %v, want exactly one decode", results)
	}
}

func TestLoopStartWhileRunning(t *testing.T) {
	src := &scriptedSource{} // never produces a frame
	loop := NewLoop(src, payloadDecoder{}, time.Millisecond, func(string) {})

	if !loop.Start() {
		t.Fatal("first Start returned false")
	}
	defer loop.Stop()

	if loop.Start() {
		t.Fatal("second Start must be rejected while running")
	}
}

func TestLoopStopHaltsPolling(t *testing.T) {
	src := &scriptedSource{}
	called := false
	loop := NewLoop(src, payloadDecoder{}, time.Millisecond, func(string) { called = true })

	loop.Start()
	loop.Stop()

	if loop.Running() {
		t.Fatal("loop running after Stop")
	}
	if called {
		t.Fatal("Stop must not deliver a result")
	}

	// explicit restart is allowed after a stop
	if !loop.Start() {
		t.Fatal("restart after Stop must succeed")
	}
	loop.Stop()
}
