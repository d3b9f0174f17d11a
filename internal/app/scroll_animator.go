package app

import (
	"math"
	"time"

	tea "charm.land/bubbletea/v2"

	"daybook/internal/logging"
)

const (
	defaultScrollDuration = 200 * time.Millisecond
	scrollFrameInterval   = 16 * time.Millisecond
)

// ScrollContainer is a vertically scrollable surface measured in lines.
type ScrollContainer interface {
	ScrollOffset() int
	MaxScrollOffset() int
	SetScrollOffset(offset int)
}

// ScrollAnimation is the handle for one in-flight smooth scroll.
type ScrollAnimation struct {
	container ScrollContainer
	start     int
	target    int
	startTime time.Time
	duration  time.Duration
	cancelled bool
	done      bool
}

func (a *ScrollAnimation) Cancel() {
	if a != nil {
		a.cancelled = true
	}
}

func (a *ScrollAnimation) Cancelled() bool {
	return a != nil && a.cancelled
}

func (a *ScrollAnimation) Done() bool {
	return a != nil && a.done
}

func (a *ScrollAnimation) Target() int {
	if a == nil {
		return 0
	}
	return a.target
}

// positionAt returns the eased position at time at and whether the
// animation has reached its end.
func (a *ScrollAnimation) positionAt(at time.Time) (int, bool) {
	if a.duration <= 0 {
		return a.target, true
	}
	t := float64(at.Sub(a.startTime)) / float64(a.duration)
	if t >= 1 {
		return a.target, true
	}
	if t < 0 {
		t = 0
	}
	pos := float64(a.start) + float64(a.target-a.start)*easeOutCubic(t)
	return int(math.Round(pos)), false
}

func easeOutCubic(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv*inv
}

type scrollFrameMsg struct {
	anim *ScrollAnimation
	at   time.Time
}

// ScrollAnimator runs at most one smooth scroll at a time against its
// container.
type ScrollAnimator struct {
	state     *State
	container ScrollContainer
	now       func() time.Time
	frame     time.Duration
	logger    logging.Logger
}

func NewScrollAnimator(state *State, container ScrollContainer, logger logging.Logger) *ScrollAnimator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ScrollAnimator{
		state:     state,
		container: container,
		now:       time.Now,
		frame:     scrollFrameInterval,
		logger:    logger,
	}
}

// ScrollBy cancels any running animation and starts a new one moving the
// container by delta lines. It returns nil when there is nothing to animate.
func (s *ScrollAnimator) ScrollBy(delta int, duration time.Duration) (cmd tea.Cmd) {
	if s == nil || s.state == nil {
		return nil
	}
	s.Cancel()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("scroll_setup_failed", logging.F("panic", r))
			s.state.Scroll = nil
			cmd = nil
		}
	}()
	if s.container == nil {
		return nil
	}
	if duration <= 0 {
		duration = defaultScrollDuration
	}
	start := s.container.ScrollOffset()
	target := clampInt(start+delta, 0, max(0, s.container.MaxScrollOffset()))
	if target == start {
		return nil
	}
	anim := &ScrollAnimation{
		container: s.container,
		start:     start,
		target:    target,
		startTime: s.now(),
		duration:  duration,
	}
	s.state.Scroll = anim
	return s.scheduleFrame(anim)
}

// Cancel stops the running animation, if any, leaving the container where it
// currently is.
func (s *ScrollAnimator) Cancel() {
	if s == nil || s.state == nil || s.state.Scroll == nil {
		return
	}
	s.state.Scroll.Cancel()
	s.state.Scroll = nil
}

func (s *ScrollAnimator) Current() *ScrollAnimation {
	if s == nil || s.state == nil {
		return nil
	}
	return s.state.Scroll
}

// Step advances the animation a frame belongs to. Frames of cancelled
// animations end without touching the container.
func (s *ScrollAnimator) Step(msg scrollFrameMsg) tea.Cmd {
	anim := msg.anim
	if anim == nil || anim.cancelled || anim.done {
		return nil
	}
	pos, finished := anim.positionAt(msg.at)
	anim.container.SetScrollOffset(pos)
	if finished {
		anim.done = true
		if s != nil && s.state != nil && s.state.Scroll == anim {
			s.state.Scroll = nil
		}
		return nil
	}
	return s.scheduleFrame(anim)
}

func (s *ScrollAnimator) scheduleFrame(anim *ScrollAnimation) tea.Cmd {
	frame := scrollFrameInterval
	if s != nil && s.frame > 0 {
		frame = s.frame
	}
	return tea.Tick(frame, func(at time.Time) tea.Msg {
		return scrollFrameMsg{anim: anim, at: at}
	})
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
