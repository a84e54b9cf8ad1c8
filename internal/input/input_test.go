package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseBytes_MapsKeys(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		bytes string
		check func(keyState) time.Time
	}{
		{"left letter", "a", func(s keyState) time.Time { return s.left }},
		{"left vim", "j", func(s keyState) time.Time { return s.left }},
		{"right letter", "D", func(s keyState) time.Time { return s.right }},
		{"left arrow", "\x1b[D", func(s keyState) time.Time { return s.left }},
		{"right arrow", "\x1b[C", func(s keyState) time.Time { return s.right }},
		{"pause", "p", func(s keyState) time.Time { return s.pause }},
		{"space", " ", func(s keyState) time.Time { return s.space }},
		{"enter", "\r", func(s keyState) time.Time { return s.enter }},
		{"quit", "q", func(s keyState) time.Time { return s.quit }},
		{"escape", "\x1b", func(s keyState) time.Time { return s.escape }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var state keyState
			parseBytes(&state, []byte(tt.bytes), now)
			if !tt.check(state).Equal(now) {
				t.Errorf("key not registered for input %q", tt.bytes)
			}
		})
	}
}

func TestParseBytes_ArrowSequenceDoesNotTriggerEscape(t *testing.T) {
	var state keyState
	now := time.Now()

	parseBytes(&state, []byte("\x1b[C"), now)

	if !state.escape.IsZero() {
		t.Error("CSI sequence registered as escape key")
	}
	if !state.right.Equal(now) {
		t.Error("right arrow not registered")
	}
}

func TestReadInput_DrainsStreamUntilClose(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("a q")))

	var sawLeft, sawSpace, sawQuit bool
	deadline := time.Now().Add(2 * time.Second)
	for {
		in := ReadInput(s)
		sawLeft = sawLeft || in.Left
		sawSpace = sawSpace || in.Space
		sawQuit = sawQuit || in.Quit
		if in.Closed {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("stream never reported closed")
		}
		time.Sleep(time.Millisecond)
	}

	if !sawLeft || !sawSpace || !sawQuit {
		t.Errorf("keys seen: left=%v space=%v quit=%v, want all", sawLeft, sawSpace, sawQuit)
	}

	// A closed stream keeps returning without blocking.
	if in := ReadInput(s); !in.Closed {
		t.Error("Closed not sticky after stream end")
	}
}

func TestResetKeyInput_ClearsHeldKeys(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))
	s.state.space = time.Now()

	ResetKeyInput(s)

	if in := ReadInput(s); in.Space {
		t.Error("space still held after reset")
	}
}
