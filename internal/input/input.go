// Package input decodes raw terminal bytes into per-frame game signals.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so a held key shows up as a stream of
// presses; the window must outlast the gap between repeats.
const keyHoldDuration = 60 * time.Millisecond

// Keys is the level state of every key the game reads this frame.
type Keys struct {
	Quit    bool
	Left    bool
	Right   bool
	Space   bool
	Enter   bool
	Pressed []byte // Raw bytes received this frame
}

// Signals are the four game inputs plus quit, already edge-detected where
// the game needs it. Fire and Toggle are true only on the frame their key
// goes down; MoveLeft and MoveRight stay true while held.
type Signals struct {
	Fire      bool
	MoveLeft  bool
	MoveRight bool
	Toggle    bool
	Quit      bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	space time.Time
	enter time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error.
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

// ReadInput drains all available bytes from the stream (non-blocking).
// A closed stream reports Quit so the frame driver can stop.
func ReadInput(s *Stream) Keys {
	now := time.Now()
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	keys := s.state.apply(buf, now)
	if closed {
		keys.Quit = true
	}
	return keys
}

// Reset forgets all held keys, e.g. after a screen change.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// apply updates key timestamps from buf and builds the key levels at now.
// Handles CSI escape sequences for arrow keys.
func (ks *keyState) apply(buf []byte, now time.Time) Keys {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C': // Right arrow
				ks.right = now
			case 'D': // Left arrow
				ks.left = now
			}
			i += 2 // Other CSI keys are ignored, not read as letters
			continue
		}

		switch b {
		case 'q', 'Q', '\x03': // q or Ctrl+C
			ks.quit = now
		case 'a', 'A', 'h', 'H':
			ks.left = now
		case 'd', 'D', 'l', 'L':
			ks.right = now
		case ' ':
			ks.space = now
		case '\n', '\r':
			ks.enter = now
		}
	}

	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < keyHoldDuration
	}

	return Keys{
		Quit:    held(ks.quit),
		Left:    held(ks.left),
		Right:   held(ks.right),
		Space:   held(ks.space),
		Enter:   held(ks.enter),
		Pressed: buf,
	}
}

// EdgeTracker turns key levels into Signals by remembering the previous
// frame's Fire and Toggle keys.
type EdgeTracker struct {
	fireHeld   bool
	toggleHeld bool
}

// Signals computes this frame's signals from the current key levels.
func (e *EdgeTracker) Signals(k Keys) Signals {
	sig := Signals{
		Fire:      k.Space && !e.fireHeld,
		Toggle:    k.Enter && !e.toggleHeld,
		MoveLeft:  k.Left,
		MoveRight: k.Right,
		Quit:      k.Quit,
	}
	e.fireHeld = k.Space
	e.toggleHeld = k.Enter
	return sig
}
