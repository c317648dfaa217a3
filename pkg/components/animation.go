package components

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// AnimationFrame is one frame of a looping animation and how long it stays
// on screen, in seconds.
type AnimationFrame struct {
	Image    *ebiten.Image
	Duration float64
}

// AnimationSequence plays an ordered list of frames in a loop. The current
// frame is a pure function of the query time and the start time, so
// querying twice with the same now always yields the same frame and no
// per-tick playhead bookkeeping exists anywhere.
type AnimationSequence struct {
	frames     []AnimationFrame
	cumulative []float64
	total      float64
	start      float64
}

// NewAnimationSequence builds a sequence anchored at the given start time.
// An empty frame list is legal; CurrentFrame then resolves to nil.
func NewAnimationSequence(frames []AnimationFrame, start float64) *AnimationSequence {
	seq := &AnimationSequence{
		frames:     frames,
		cumulative: make([]float64, 0, len(frames)),
		start:      start,
	}
	for _, f := range frames {
		seq.total += f.Duration
		seq.cumulative = append(seq.cumulative, seq.total)
	}
	return seq
}

// TotalDuration returns the length of one full cycle in seconds.
func (a *AnimationSequence) TotalDuration() float64 {
	return a.total
}

// CurrentFrame returns the frame visible at the given time, looping over
// the cycle indefinitely. Returns nil when the sequence is empty; a
// zero-length cycle degenerates to the last frame. The last frame is also
// the fallback at the cycle boundary, where floating-point rounding can
// leave elapsed just outside the cumulative table.
func (a *AnimationSequence) CurrentFrame(now float64) *ebiten.Image {
	if len(a.frames) == 0 {
		return nil
	}
	if a.total <= 0 {
		return a.frames[len(a.frames)-1].Image
	}

	elapsed := math.Mod(now-a.start, a.total)
	if elapsed < 0 {
		elapsed += a.total
	}
	for i, cum := range a.cumulative {
		if elapsed < cum {
			return a.frames[i].Image
		}
	}
	return a.frames[len(a.frames)-1].Image
}
