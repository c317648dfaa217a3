package components

import "testing"

func TestNewTimedOverlayStartsExpired(t *testing.T) {
	o := NewTimedOverlay(1.0)

	if !o.Expired(0) {
		t.Error("Expected a fresh overlay to be expired before the first Restart")
	}
}

func TestRestartExtendsFromLatestCall(t *testing.T) {
	o := NewTimedOverlay(1.0)

	o.Restart(5.0)
	if o.Expired(5.5) {
		t.Error("Expected overlay to be active at 5.5")
	}

	// Re-triggering moves the window, it does not stack.
	o.Restart(5.8)
	if o.Expired(6.5) {
		t.Error("Expected re-trigger to extend the window to 6.8")
	}
	if !o.Expired(6.8) {
		t.Error("Expected overlay to expire exactly at start+duration")
	}
	if !o.Expired(7.5) {
		t.Error("Expected overlay to stay expired afterwards")
	}
}

func TestProgressClamped(t *testing.T) {
	o := TimedOverlay{Start: 2.0, Duration: 2.0}

	tests := []struct {
		now  float64
		want float64
	}{
		{1.0, 0},   // before start
		{2.0, 0},   // at start
		{3.0, 0.5}, // midway
		{4.0, 1},   // at expiry
		{9.0, 1},   // long after
	}

	for _, tt := range tests {
		if got := o.Progress(tt.now); got != tt.want {
			t.Errorf("Progress(%v): got %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestProgressZeroDuration(t *testing.T) {
	o := TimedOverlay{Start: 0, Duration: 0}

	if got := o.Progress(0); got != 1 {
		t.Errorf("Expected zero-duration overlay to report full progress, got %v", got)
	}
	if !o.Expired(0) {
		t.Error("Expected zero-duration overlay to be expired immediately")
	}
}
