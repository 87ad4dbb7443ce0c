package render

import (
	"errors"
	"time"

	"github.com/rook-computer/fwdisplay/internal/logging"
	"github.com/rook-computer/fwdisplay/internal/mem"
)

// ErrStaleAnimation is returned by Play when the arena was reset after
// shapes were retained.
var ErrStaleAnimation = errors.New("animation arena was reset after shapes were retained")

// Animation keeps shapes alive across frames by cloning them into an arena.
// The retained clones are valid only for the arena generation they were
// allocated in; use Animate to tie both lifetimes to one scope.
type Animation struct {
	Logger logging.Logger

	arena      *mem.Arena
	generation uint64
	retained   []Shape
	dropped    int
	sleep      func(time.Duration)
}

func NewAnimation(a *mem.Arena) *Animation {
	return &Animation{
		arena:      a,
		generation: a.Generation(),
		retained:   make([]Shape, 0, MaxRetained),
		sleep:      time.Sleep,
	}
}

// Retain clones s into the arena. It returns false, and the shape is simply
// not shown in later frames, when the arena or the retained list is full.
func (an *Animation) Retain(s Shape) bool {
	if len(an.retained) == cap(an.retained) {
		an.drop(s, "retained list full")
		return false
	}
	clone := s.CloneAt(an.arena)
	if clone == nil {
		an.drop(s, "arena exhausted")
		return false
	}
	an.retained = append(an.retained, clone)
	return true
}

func (an *Animation) drop(s Shape, reason string) {
	an.dropped++
	if an.Logger != nil {
		an.Logger.Infof("render", "dropping retained shape %+v: %s", s.Bounds(), reason)
	}
}

func (an *Animation) Retained() []Shape { return an.retained }

// Dropped counts shapes that could not be retained.
func (an *Animation) Dropped() int { return an.dropped }

// Play renders frames passes, FrameInterval apart. Each pass paints the
// retained shapes followed by the shapes returned by overlay for that frame
// index (overlay may be nil).
func (an *Animation) Play(r *Renderer, frames int, overlay func(frame int) []Shape) error {
	seq := make([]Shape, 0, len(an.retained)+4)
	for frame := 0; frame < frames; frame++ {
		if frame > 0 && FrameInterval > 0 {
			an.sleep(FrameInterval)
		}
		if an.arena.Generation() != an.generation {
			an.retained = an.retained[:0]
			return ErrStaleAnimation
		}
		seq = append(seq[:0], an.retained...)
		if overlay != nil {
			seq = append(seq, overlay(frame)...)
		}
		r.Render(seq...)
	}
	return nil
}

// Animate runs one animation inside a scope of a. setup retains the shapes
// that persist across frames; the arena is reclaimed when Animate returns.
func Animate(a *mem.Arena, r *Renderer, frames int, setup func(an *Animation), overlay func(frame int) []Shape) error {
	var playErr error
	err := a.Scope(func(a *mem.Arena) {
		an := NewAnimation(a)
		an.Logger = r.Logger
		if setup != nil {
			setup(an)
		}
		playErr = an.Play(r, frames, overlay)
	})
	if err != nil {
		return err
	}
	return playErr
}
