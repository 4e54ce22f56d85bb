package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func levels(k Keys) [5]bool {
	return [5]bool{k.Quit, k.Left, k.Right, k.Space, k.Enter}
}

func TestKeyState_Apply(t *testing.T) {
	now := time.Unix(1000, 0)

	tests := []struct {
		name string
		in   string
		want Keys
	}{
		{"space", " ", Keys{Space: true}},
		{"enter", "\r", Keys{Enter: true}},
		{"letters move", "ad", Keys{Left: true, Right: true}},
		{"arrows move", "\x1b[D\x1b[C", Keys{Left: true, Right: true}},
		{"up arrow is not a letter", "\x1b[A", Keys{}},
		{"quit", "q", Keys{Quit: true}},
		{"ctrl-c quits", "\x03", Keys{Quit: true}},
		{"unknown ignored", "zx", Keys{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ks keyState
			got := ks.apply([]byte(tt.in), now)
			if levels(got) != levels(tt.want) {
				t.Errorf("apply(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if string(got.Pressed) != tt.in {
				t.Errorf("Pressed = %q, want %q", got.Pressed, tt.in)
			}
		})
	}
}

func TestKeyState_HoldExpires(t *testing.T) {
	start := time.Unix(1000, 0)
	var ks keyState
	ks.apply([]byte("d"), start)

	if got := ks.apply(nil, start.Add(keyHoldDuration/2)); !got.Right {
		t.Error("key released inside hold window")
	}
	if got := ks.apply(nil, start.Add(keyHoldDuration)); got.Right {
		t.Error("key still held after hold window")
	}
}

func TestEdgeTracker(t *testing.T) {
	var e EdgeTracker

	frames := []struct {
		keys       Keys
		wantFire   bool
		wantToggle bool
	}{
		{Keys{Space: true}, true, false},
		{Keys{Space: true}, false, false}, // held
		{Keys{}, false, false},
		{Keys{Space: true, Enter: true}, true, true},
		{Keys{Enter: true}, false, false},
	}

	for i, f := range frames {
		sig := e.Signals(f.keys)
		if sig.Fire != f.wantFire || sig.Toggle != f.wantToggle {
			t.Errorf("frame %d: Fire=%v Toggle=%v, want Fire=%v Toggle=%v",
				i, sig.Fire, sig.Toggle, f.wantFire, f.wantToggle)
		}
	}
}

func TestEdgeTracker_MovementIsLevel(t *testing.T) {
	var e EdgeTracker
	for i := range 3 {
		sig := e.Signals(Keys{Left: true, Right: true})
		if !sig.MoveLeft || !sig.MoveRight {
			t.Errorf("frame %d: MoveLeft=%v MoveRight=%v, want both", i, sig.MoveLeft, sig.MoveRight)
		}
	}
}

func TestReadInput_ClosedStreamQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))

	deadline := time.After(time.Second)
	for {
		if ReadInput(s).Quit {
			return
		}
		select {
		case <-deadline:
			t.Fatal("closed stream never reported Quit")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestStream_ResetForgetsHeldKeys(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("d")))

	deadline := time.After(time.Second)
	for !ReadInput(s).Right {
		select {
		case <-deadline:
			t.Fatal("right key never arrived")
		case <-time.After(time.Millisecond):
		}
	}

	s.Reset()
	if ReadInput(s).Right {
		t.Error("right still held after Reset")
	}
}
