// Package input reads raw key presses off a terminal session reader.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key counts as held after its last press.
// Terminal auto-repeat has gaps longer than a frame; this bridges them.
const keyHoldDuration = 30 * time.Millisecond

// Input is the key state sampled for one frame.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Space   bool
	Enter   bool
	Pause   bool
	Escape  bool
	Closed  bool   // The reader went away (session ended)
	Pressed []byte // Raw bytes drained this frame, for inactivity tracking
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit   time.Time
	left   time.Time
	right  time.Time
	space  time.Time
	enter  time.Time
	pause  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key hold state so
// held keys and combinations survive the gaps between frames.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The stream closes when the reader fails.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking),
// parses escape sequences for arrow keys, and reports which keys are held.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	parseBytes(&s.state, buf, now)

	return Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Space:   now.Sub(s.state.space) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		Pause:   now.Sub(s.state.pause) < keyHoldDuration,
		Escape:  now.Sub(s.state.escape) < keyHoldDuration,
		Closed:  s.closed,
		Pressed: buf,
	}
}

// ResetKeyInput clears held-key state and drops any buffered bytes, so a
// key held on one screen does not leak into the next.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}

drain:
	for !s.closed {
		select {
		case _, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
		default:
			break drain
		}
	}
}

// parseBytes updates key state timestamps from a batch of raw bytes.
// CSI sequences (ESC [ code) cover the arrow keys; a lone ESC is the
// escape key itself.
func parseBytes(state *keyState, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C': // Right arrow
				state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				state.left = now
				i += 2
				continue
			case 'A', 'B': // Up/down arrows, unused
				i += 2
				continue
			}
		}

		applyByteToState(state, b, now)
	}
}

// applyByteToState updates the key state timestamps for a single byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'p', 'P':
		state.pause = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	}
}
